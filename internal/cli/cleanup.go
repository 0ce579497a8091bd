package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newCleanupCmd creates the cleanup command.
func newCleanupCmd(app *app) *cobra.Command {
	var (
		removeUnversioned bool
		removeIgnored     bool
	)

	cmd := &cobra.Command{
		Use:   "cleanup [path]",
		Short: "Release stale locks and finish interrupted operations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			res := app.client.Cleanup(cmd.Context(), path, &svn.CleanupOptions{
				RemoveUnversioned: removeUnversioned,
				RemoveIgnored:     removeIgnored,
			})
			return app.finish("cleanup", res)
		},
	}

	cmd.Flags().BoolVar(&removeUnversioned, "remove-unversioned", false, "Also delete unversioned items")
	cmd.Flags().BoolVar(&removeIgnored, "remove-ignored", false, "Also delete ignored items")

	return cmd
}
