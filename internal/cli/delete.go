package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newDeleteCmd creates the delete command.
func newDeleteCmd(app *app) *cobra.Command {
	var (
		message   string
		force     bool
		keepLocal bool
	)

	cmd := &cobra.Command{
		Use:     "delete <target...>",
		Aliases: []string{"del", "rm", "remove"},
		Short:   "Schedule paths for deletion, or delete URLs immediately",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Delete(cmd.Context(), args, &svn.DeleteOptions{
				Message:   message,
				Force:     force,
				KeepLocal: keepLocal,
			})
			return app.finish("delete", res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for direct URL deletes")
	cmd.Flags().BoolVar(&force, "force", false, "Delete files with local modifications")
	cmd.Flags().BoolVar(&keepLocal, "keep-local", false, "Unversion the targets but leave them on disk")

	return cmd
}
