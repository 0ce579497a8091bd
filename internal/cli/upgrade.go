package cli

import (
	"github.com/spf13/cobra"
)

// newUpgradeCmd creates the upgrade command.
func newUpgradeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade [path]",
		Short: "Migrate a working copy to the current metadata format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			res := app.client.Upgrade(cmd.Context(), path, nil)
			return app.finish("upgrade", res)
		},
	}

	return cmd
}
