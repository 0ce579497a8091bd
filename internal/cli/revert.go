package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newRevertCmd creates the revert command.
func newRevertCmd(app *app) *cobra.Command {
	var depth svn.Depth

	cmd := &cobra.Command{
		Use:   "revert <target...>",
		Short: "Discard local modifications",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Revert(cmd.Context(), args, &svn.RevertOptions{
				Depth: depth,
			})
			return app.finish("revert", res)
		},
	}

	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit the revert: empty, files, immediates or infinity")

	return cmd
}
