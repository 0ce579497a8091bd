package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newMoveCmd creates the move command.
func newMoveCmd(app *app) *cobra.Command {
	var (
		message string
		force   bool
		parents bool
	)

	cmd := &cobra.Command{
		Use:     "move <src> <dst>",
		Aliases: []string{"mv", "rename", "ren"},
		Short:   "Move or rename a path or URL, keeping history",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Move(cmd.Context(), args[0], args[1], &svn.MoveOptions{
				Message: message,
				Force:   force,
				Parents: parents,
			})
			return app.finish("move", res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for URL-to-URL moves")
	cmd.Flags().BoolVar(&force, "force", false, "Move files with local modifications")
	cmd.Flags().BoolVar(&parents, "parents", false, "Create missing intermediate directories at the target")

	return cmd
}
