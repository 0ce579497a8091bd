package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newImportCmd creates the import command.
func newImportCmd(app *app) *cobra.Command {
	var (
		message  string
		depth    svn.Depth
		noIgnore bool
	)

	cmd := &cobra.Command{
		Use:   "import [path] <url>",
		Short: "Commit an unversioned tree into the repository",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, url := ".", args[0]
			if len(args) == 2 {
				path, url = args[0], args[1]
			}

			res := app.client.Import(cmd.Context(), path, url, &svn.ImportOptions{
				Message:  message,
				Depth:    depth,
				NoIgnore: noIgnore,
			})
			return app.finish("import", res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for the import")
	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit the import: empty, files, immediates or infinity")
	cmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Import items that match ignore patterns too")

	return cmd
}
