package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newUpdateCmd creates the update command.
func newUpdateCmd(app *app) *cobra.Command {
	var (
		revision        string
		depth           svn.Depth
		setDepth        svn.Depth
		ignoreExternals bool
		force           bool
	)

	cmd := &cobra.Command{
		Use:     "update [target...]",
		Aliases: []string{"up"},
		Short:   "Bring working copy paths up to date with the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Update(cmd.Context(), args, &svn.UpdateOptions{
				Revision:        revision,
				Depth:           depth,
				SetDepth:        setDepth,
				IgnoreExternals: ignoreExternals,
				Force:           force,
			})
			return app.finish("update", res)
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Update to this revision instead of HEAD")
	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit the walk: empty, files, immediates or infinity")
	cmd.Flags().Var(newDepthValue(&setDepth), "set-depth", "Change the sticky depth of the working copy")
	cmd.Flags().BoolVar(&ignoreExternals, "ignore-externals", false, "Skip externals definitions")
	cmd.Flags().BoolVar(&force, "force", false, "Tolerate obstructing unversioned items")

	return cmd
}
