package svn

import (
	"context"

	"github.com/samber/lo"
)

// PropGetOptions adjusts a single PropGet call.
type PropGetOptions struct {
	Options

	// Revision reads the property as of a specific revision.
	Revision string
}

// PropGet runs `svn propget name` against tgt and returns the raw property
// value. A missing property or unknown target yields "".
func (c *Client) PropGet(ctx context.Context, name, tgt string, opts *PropGetOptions) string {
	o := lo.FromPtr(opts)

	args := []string{name}
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	args = append(args, tgt)

	out, _ := c.readRun(ctx, "propget", args, o.Options)
	return out
}

// PropListOptions adjusts a single PropList call.
type PropListOptions struct {
	Options
}

// PropList runs `svn proplist` against tgt and returns the property names.
func (c *Client) PropList(ctx context.Context, tgt string, opts *PropListOptions) []string {
	o := lo.FromPtr(opts)

	out, ok := c.readRun(ctx, "proplist", []string{tgt}, o.Options)
	if !ok {
		return nil
	}
	return ParsePropNames(out)
}

// PropSetOptions adjusts a single PropSet call.
type PropSetOptions struct {
	Options

	// Force skips svn's sanity checks on known property names.
	Force bool
}

// PropSet runs `svn propset name value` on the given targets. Property
// values are passed positionally, so with a configured base repository a
// value that looks like a path will be resolved like one; property edits
// are working-copy operations and should run without a base.
func (c *Client) PropSet(ctx context.Context, name, value string, targets []string, opts *PropSetOptions) *ExecResult {
	o := lo.FromPtr(opts)

	args := []string{name, value}
	if o.Force {
		args = append(args, "--force")
	}
	args = append(args, targets...)

	return c.run(ctx, "propset", args, o.Options)
}

// PropDelOptions adjusts a single PropDel call.
type PropDelOptions struct {
	Options
}

// PropDel runs `svn propdel name` on the given targets.
func (c *Client) PropDel(ctx context.Context, name string, targets []string, opts *PropDelOptions) *ExecResult {
	o := lo.FromPtr(opts)

	args := append([]string{name}, targets...)
	return c.run(ctx, "propdel", args, o.Options)
}
