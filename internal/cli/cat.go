package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newCatCmd creates the cat command.
func newCatCmd(app *app) *cobra.Command {
	var revision string

	cmd := &cobra.Command{
		Use:   "cat <target>",
		Short: "Print the content of a versioned file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := app.client.Cat(cmd.Context(), args[0], &svn.CatOptions{Revision: revision})
			if content == "" {
				return fmt.Errorf("no content for %s", args[0])
			}

			app.render.Lines(content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Read the file as of this revision")

	return cmd
}
