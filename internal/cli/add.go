package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newAddCmd creates the add command.
func newAddCmd(app *app) *cobra.Command {
	var (
		force    bool
		parents  bool
		noIgnore bool
	)

	cmd := &cobra.Command{
		Use:   "add <path...>",
		Short: "Schedule files and directories for addition",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Add(cmd.Context(), args, &svn.AddOptions{
				Force:    force,
				Parents:  parents,
				NoIgnore: noIgnore,
			})
			return app.finish("add", res)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Keep going when some targets are already versioned")
	cmd.Flags().BoolVar(&parents, "parents", false, "Also add intermediate unversioned directories")
	cmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Schedule items matched by ignore patterns too")

	return cmd
}
