package svn

import (
	"context"
	"strconv"

	"github.com/samber/lo"
)

// LogOptions adjusts a single Log call.
type LogOptions struct {
	Options

	// Revision selects a revision or range, e.g. "42", "HEAD:1" or
	// "{2024-01-01}:{2024-06-30}".
	Revision string

	// Limit caps the number of entries; zero means no cap.
	Limit int

	// Verbose includes the changed paths of every revision.
	Verbose bool

	// StopOnCopy does not cross copy points while walking history.
	StopOnCopy bool

	// Search keeps only revisions matching svn's --search pattern.
	Search string
}

// Log runs `svn log --xml` against tgt and returns the entries newest
// first. An unknown target yields an empty slice.
func (c *Client) Log(ctx context.Context, tgt string, opts *LogOptions) []LogEntry {
	o := lo.FromPtr(opts)

	args := []string{"--xml"}
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.Limit > 0 {
		args = append(args, "--limit", strconv.Itoa(o.Limit))
	}
	if o.Verbose {
		args = append(args, "--verbose")
	}
	if o.StopOnCopy {
		args = append(args, "--stop-on-copy")
	}
	if o.Search != "" {
		args = append(args, c.flagToken("--search", o.Search))
	}
	args = append(args, tgt)

	out, ok := c.readRun(ctx, "log", args, o.Options)
	if !ok {
		return nil
	}
	return ParseLog(out)
}
