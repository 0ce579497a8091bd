package svn

import (
	"context"

	"github.com/samber/lo"
)

// CatOptions adjusts a single Cat call.
type CatOptions struct {
	Options

	// Revision reads the file as of a specific revision.
	Revision string
}

// Cat runs `svn cat` against tgt and returns the file content with
// surrounding whitespace trimmed. An unknown target yields "".
func (c *Client) Cat(ctx context.Context, tgt string, opts *CatOptions) string {
	o := lo.FromPtr(opts)

	var args []string
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	args = append(args, tgt)

	out, _ := c.readRun(ctx, "cat", args, o.Options)
	return out
}
