package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newResolveCmd creates the resolve command.
func newResolveCmd(app *app) *cobra.Command {
	var (
		accept string
		depth  svn.Depth
	)

	cmd := &cobra.Command{
		Use:   "resolve <target...>",
		Short: "Mark conflicts as resolved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Resolve(cmd.Context(), args, &svn.ResolveOptions{
				Accept: accept,
				Depth:  depth,
			})
			return app.finish("resolve", res)
		},
	}

	cmd.Flags().StringVar(&accept, "accept", "working", "Resolution to record (working, base, mine-full, theirs-full)")
	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit the resolution: empty, files, immediates or infinity")

	return cmd
}
