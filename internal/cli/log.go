package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/internal/output"
	"svnq.dev/svnq/internal/tui"
	"svnq.dev/svnq/svn"
)

// newLogCmd creates the log command.
func newLogCmd(app *app) *cobra.Command {
	var (
		revision    string
		limit       int
		verbose     bool
		stopOnCopy  bool
		search      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "log [target]",
		Short: "Show revision history for a path or URL",
		Long: `Show revision history for a path or URL.

With --interactive the history opens in a browsable view: arrow keys move
between revisions, the message and changed paths of the selected revision
are shown in full.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &svn.LogOptions{
				Revision:   revision,
				Limit:      limit,
				Verbose:    verbose || interactive,
				StopOnCopy: stopOnCopy,
				Search:     search,
			}

			entries := app.client.Log(cmd.Context(), targetOrDot(args), opts)
			if len(entries) == 0 {
				app.logger.Info("no history found")
				return nil
			}

			if interactive && output.IsTTY() {
				app.logger.SetQuiet(true)
				defer app.logger.SetQuiet(false)
				return tui.RunLogBrowser(entries)
			}

			app.render.Log(entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Revision or range, e.g. 42 or HEAD:1")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show at most this many revisions")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include the changed paths of each revision")
	cmd.Flags().BoolVar(&stopOnCopy, "stop-on-copy", false, "Do not cross copy points while walking history")
	cmd.Flags().StringVar(&search, "search", "", "Only revisions matching this pattern")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the history in a full-screen view")

	return cmd
}
