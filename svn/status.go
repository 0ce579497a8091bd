package svn

import (
	"context"

	"github.com/samber/lo"
)

// StatusOptions adjusts a single Status call.
type StatusOptions struct {
	Options

	// ShowUpdates contacts the repository and marks items that are
	// out of date.
	ShowUpdates bool

	// Quiet hides unversioned items.
	Quiet bool

	// NoIgnore also reports items matched by ignore patterns.
	NoIgnore bool

	// IgnoreExternals skips externals definitions.
	IgnoreExternals bool

	// Depth limits how deep the working copy walk goes.
	Depth Depth
}

// Status runs `svn status --xml` against tgt and returns one item per
// reported entry. A clean or unknown target yields an empty slice.
func (c *Client) Status(ctx context.Context, tgt string, opts *StatusOptions) []StatusItem {
	o := lo.FromPtr(opts)

	args := []string{"--xml"}
	if o.ShowUpdates {
		args = append(args, "--show-updates")
	}
	if o.Quiet {
		args = append(args, "--quiet")
	}
	if o.NoIgnore {
		args = append(args, "--no-ignore")
	}
	if o.IgnoreExternals {
		args = append(args, "--ignore-externals")
	}
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	args = append(args, tgt)

	out, ok := c.readRun(ctx, "status", args, o.Options)
	if !ok {
		return nil
	}
	return ParseStatus(out)
}
