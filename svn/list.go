package svn

import (
	"context"

	"github.com/samber/lo"
)

// ListOptions adjusts a single List call.
type ListOptions struct {
	Options

	// Revision lists the tree as of a specific revision.
	Revision string

	// Depth controls recursion; svn defaults to immediates.
	Depth Depth
}

// List runs `svn list --xml` against tgt and returns the entry names. An
// unknown target yields an empty slice.
func (c *Client) List(ctx context.Context, tgt string, opts *ListOptions) []string {
	o := lo.FromPtr(opts)

	args := []string{"--xml"}
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	args = append(args, tgt)

	out, ok := c.readRun(ctx, "list", args, o.Options)
	if !ok {
		return nil
	}
	return ParseList(out)
}
