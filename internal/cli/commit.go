package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newCommitCmd creates the commit command.
func newCommitCmd(app *app) *cobra.Command {
	var (
		message    string
		depth      svn.Depth
		keepLocks  bool
		changelist string
	)

	cmd := &cobra.Command{
		Use:     "commit [target...]",
		Aliases: []string{"ci"},
		Short:   "Send scheduled changes to the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := args
			if len(targets) == 0 {
				targets = []string{"."}
			}

			res := app.client.Commit(cmd.Context(), targets, message, &svn.CommitOptions{
				Depth:      depth,
				KeepLocks:  keepLocks,
				Changelist: changelist,
			})
			return app.finish("commit", res)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().Var(newDepthValue(&depth), "depth", "Limit the commit: empty, files, immediates or infinity")
	cmd.Flags().BoolVar(&keepLocks, "keep-locks", false, "Leave held locks in place after the commit")
	cmd.Flags().StringVar(&changelist, "changelist", "", "Commit only members of this changelist")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
