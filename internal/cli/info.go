package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newInfoCmd creates the info command.
func newInfoCmd(app *app) *cobra.Command {
	var revision string

	cmd := &cobra.Command{
		Use:   "info [target]",
		Short: "Show versioned metadata for a path or URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt := targetOrDot(args)

			info := app.client.Info(cmd.Context(), tgt, &svn.InfoOptions{Revision: revision})
			if info == nil {
				return fmt.Errorf("no information for %s", tgt)
			}

			app.render.Info(info)
			return nil
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Operate on this revision")

	return cmd
}
