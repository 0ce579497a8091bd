package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newUnlockCmd creates the unlock command.
func newUnlockCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "unlock <target...>",
		Short: "Release locks on paths or URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Unlock(cmd.Context(), args, &svn.UnlockOptions{
				Force: force,
			})
			return app.finish("unlock", res)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Break locks held by someone else")

	return cmd
}
