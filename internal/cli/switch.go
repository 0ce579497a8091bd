package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newSwitchCmd creates the switch command.
func newSwitchCmd(app *app) *cobra.Command {
	var (
		revision       string
		ignoreAncestry bool
		force          bool
	)

	cmd := &cobra.Command{
		Use:     "switch <url> [path]",
		Aliases: []string{"sw"},
		Short:   "Move a working copy onto a different branch",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 1 {
				path = args[1]
			}

			res := app.client.Switch(cmd.Context(), args[0], path, &svn.SwitchOptions{
				Revision:       revision,
				IgnoreAncestry: ignoreAncestry,
				Force:          force,
			})
			return app.finish("switch", res)
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Switch to this revision of the new URL")
	cmd.Flags().BoolVar(&ignoreAncestry, "ignore-ancestry", false, "Skip the common-ancestry check")
	cmd.Flags().BoolVar(&force, "force", false, "Tolerate obstructing unversioned items")

	return cmd
}
