package svn

import (
	"context"

	"github.com/samber/lo"
)

// InfoOptions adjusts a single Info call.
type InfoOptions struct {
	Options

	// Revision pins the query to a specific revision or keyword such as
	// HEAD or BASE.
	Revision string
}

// Info runs `svn info` against tgt and returns the parsed record. An empty
// tgt with a configured base repository queries the repository root; with
// no base it falls back to the current working directory. Returns nil when
// the target is unknown to svn.
func (c *Client) Info(ctx context.Context, tgt string, opts *InfoOptions) *Info {
	o := lo.FromPtr(opts)

	var args []string
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	args = append(args, tgt)

	out, ok := c.readRun(ctx, "info", args, o.Options)
	if !ok {
		return nil
	}
	return ParseInfo(out)
}
