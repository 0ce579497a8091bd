package svn

import (
	"context"

	"github.com/samber/lo"
)

// MergeOptions adjusts a single Merge call.
type MergeOptions struct {
	Options

	// Revision selects the range to merge, e.g. "10:20".
	Revision string

	// DryRun reports what the merge would do without touching files.
	DryRun bool

	// RecordOnly marks revisions as merged without applying changes.
	RecordOnly bool

	// Accept picks the automatic conflict resolution, e.g. "postpone".
	Accept string

	// IgnoreAncestry disables ancestry-aware difference calculation.
	IgnoreAncestry bool
}

// Merge runs `svn merge source [wcpath]`, applying repository changes onto
// a working copy.
func (c *Client) Merge(ctx context.Context, source, wcpath string, opts *MergeOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.DryRun {
		args = append(args, "--dry-run")
	}
	if o.RecordOnly {
		args = append(args, "--record-only")
	}
	if o.Accept != "" {
		args = append(args, c.flagToken("--accept", o.Accept))
	}
	if o.IgnoreAncestry {
		args = append(args, "--ignore-ancestry")
	}
	args = append(args, source)
	if wcpath != "" {
		args = append(args, wcpath)
	}

	return c.run(ctx, "merge", args, o.Options)
}
