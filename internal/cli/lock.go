package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newLockCmd creates the lock command.
func newLockCmd(app *app) *cobra.Command {
	var (
		comment string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "lock <target...>",
		Short: "Take locks on paths or URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Lock(cmd.Context(), args, &svn.LockOptions{
				Comment: comment,
				Force:   force,
			})
			return app.finish("lock", res)
		},
	}

	cmd.Flags().StringVarP(&comment, "message", "m", "", "Comment attached to the lock")
	cmd.Flags().BoolVar(&force, "force", false, "Steal locks held by someone else")

	return cmd
}
