package cli

import (
	"github.com/spf13/cobra"

	"svnq.dev/svnq/svn"
)

// newMergeCmd creates the merge command.
func newMergeCmd(app *app) *cobra.Command {
	var (
		revision       string
		dryRun         bool
		recordOnly     bool
		accept         string
		ignoreAncestry bool
	)

	cmd := &cobra.Command{
		Use:   "merge <source> [wcpath]",
		Short: "Apply repository changes onto a working copy",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var wcpath string
			if len(args) == 2 {
				wcpath = args[1]
			}

			res := app.client.Merge(cmd.Context(), args[0], wcpath, &svn.MergeOptions{
				Revision:       revision,
				DryRun:         dryRun,
				RecordOnly:     recordOnly,
				Accept:         accept,
				IgnoreAncestry: ignoreAncestry,
			})
			return app.finish("merge", res)
		},
	}

	cmd.Flags().StringVarP(&revision, "revision", "r", "", "Revision range to merge, e.g. 10:20")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what the merge would do without touching files")
	cmd.Flags().BoolVar(&recordOnly, "record-only", false, "Mark revisions as merged without applying changes")
	cmd.Flags().StringVar(&accept, "accept", "postpone", "Automatic conflict resolution (postpone, mine-full, theirs-full)")
	cmd.Flags().BoolVar(&ignoreAncestry, "ignore-ancestry", false, "Disable ancestry-aware difference calculation")

	return cmd
}
