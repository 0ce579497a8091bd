package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newListCmd creates the list command.
func newListCmd(app *app) *cobra.Command {
	var (
		revision string
		depth    svn.Depth
	)

	cmd := &cobra.Command{
		Use:     "list [target]",
		Aliases: []string{"ls"},
		Short:   "List directory entries in the repository",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := app.client.List(cmd.Context(), targetOrDot(args), &svn.ListOptions{
				Revision: revision,
				Depth:    depth,
			})

			if len(names) == 0 {
				app.logger.Info("nothing listed")
				return nil
			}

			app.render.List(names)
			return nil
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "List the tree as of this revision")
	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit recursion: empty, files, immediates or infinity")

	return cmd
}
