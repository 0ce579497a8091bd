package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newExportCmd creates the export command.
func newExportCmd(app *app) *cobra.Command {
	var (
		revision        string
		force           bool
		ignoreExternals bool
	)

	cmd := &cobra.Command{
		Use:   "export <src> [dst]",
		Short: "Produce an unversioned copy of a tree",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dst string
			if len(args) == 2 {
				dst = args[1]
			}

			res := app.client.Export(cmd.Context(), args[0], dst, &svn.ExportOptions{
				Revision:        revision,
				Force:           force,
				IgnoreExternals: ignoreExternals,
			})
			return app.finish("export", res)
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Export the tree as of this revision")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing target directory")
	cmd.Flags().BoolVar(&ignoreExternals, "ignore-externals", false, "Skip externals definitions")

	return cmd
}
