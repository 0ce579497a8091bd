package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newStatusCmd creates the status command.
func newStatusCmd(app *app) *cobra.Command {
	var (
		showUpdates     bool
		quiet           bool
		noIgnore        bool
		ignoreExternals bool
		depth           svn.Depth
	)

	cmd := &cobra.Command{
		Use:     "status [target]",
		Aliases: []string{"st", "stat"},
		Short:   "Show the state of working copy files and directories",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.client.Status(cmd.Context(), targetOrDot(args), &svn.StatusOptions{
				ShowUpdates:     showUpdates,
				Quiet:           quiet,
				NoIgnore:        noIgnore,
				IgnoreExternals: ignoreExternals,
				Depth:           depth,
			})

			if len(items) == 0 {
				app.logger.Info("nothing to report")
				return nil
			}

			app.render.Status(items)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showUpdates, "show-updates", "U", false, "Contact the repository and mark out-of-date items")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Hide unversioned items")
	cmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Also report ignored items")
	cmd.Flags().BoolVar(&ignoreExternals, "ignore-externals", false, "Skip externals definitions")
	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit the walk: empty, files, immediates or infinity")

	return cmd
}
