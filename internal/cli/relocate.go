package cli

import (
	"github.com/spf13/cobra"
)

// newRelocateCmd creates the relocate command.
func newRelocateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relocate <from-url> <to-url> [path]",
		Short: "Rewrite the repository URL recorded in a working copy",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 2 {
				path = args[2]
			}

			res := app.client.Relocate(cmd.Context(), args[0], args[1], path, nil)
			return app.finish("relocate", res)
		},
	}

	return cmd
}
