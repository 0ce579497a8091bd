package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newCheckoutCmd creates the checkout command.
func newCheckoutCmd(app *app) *cobra.Command {
	var (
		revision        string
		depth           svn.Depth
		force           bool
		ignoreExternals bool
	)

	cmd := &cobra.Command{
		Use:     "checkout <url> [path]",
		Aliases: []string{"co"},
		Short:   "Check out a working copy from the repository",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 1 {
				path = args[1]
			}

			res := app.client.Checkout(cmd.Context(), args[0], path, &svn.CheckoutOptions{
				Revision:        revision,
				Depth:           depth,
				Force:           force,
				IgnoreExternals: ignoreExternals,
			})
			return app.finish("checkout", res)
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Check out this revision")
	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit the tree: empty, files, immediates or infinity")
	cmd.Flags().BoolVar(&force, "force", false, "Tolerate preexisting unversioned files")
	cmd.Flags().BoolVar(&ignoreExternals, "ignore-externals", false, "Skip externals definitions")

	return cmd
}
