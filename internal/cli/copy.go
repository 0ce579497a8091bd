package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newCopyCmd creates the copy command.
func newCopyCmd(app *app) *cobra.Command {
	var (
		message  string
		revision string
		parents  bool
	)

	cmd := &cobra.Command{
		Use:     "copy <src> <dst>",
		Aliases: []string{"cp"},
		Short:   "Copy a path or URL, keeping history",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Copy(cmd.Context(), args[0], args[1], &svn.CopyOptions{
				Message:  message,
				Revision: revision,
				Parents:  parents,
			})
			return app.finish("copy", res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for URL-to-URL copies")
	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Copy the source as of this revision")
	cmd.Flags().BoolVar(&parents, "parents", false, "Create missing intermediate directories at the target")

	return cmd
}
