package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newMkdirCmd creates the mkdir command.
func newMkdirCmd(app *app) *cobra.Command {
	var (
		message string
		parents bool
	)

	cmd := &cobra.Command{
		Use:   "mkdir <target...>",
		Short: "Create versioned directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.client.Mkdir(cmd.Context(), args, &svn.MkdirOptions{
				Message: message,
				Parents: parents,
			})
			return app.finish("mkdir", res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message for directories created at URLs")
	cmd.Flags().BoolVar(&parents, "parents", false, "Create missing intermediate directories")

	return cmd
}
