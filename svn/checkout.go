package svn

import (
	"context"

	"github.com/samber/lo"
)

// CheckoutOptions adjusts a single Checkout call.
type CheckoutOptions struct {
	Options

	// Revision checks out the tree as of a specific revision.
	Revision string

	// Depth controls how much of the tree materializes.
	Depth Depth

	// Force tolerates preexisting unversioned files in the target.
	Force bool

	// IgnoreExternals skips externals definitions.
	IgnoreExternals bool
}

// Checkout runs `svn checkout url [path]`. An empty path lets svn derive
// the directory name from the URL.
func (c *Client) Checkout(ctx context.Context, url, path string, opts *CheckoutOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	if o.Force {
		args = append(args, "--force")
	}
	if o.IgnoreExternals {
		args = append(args, "--ignore-externals")
	}
	args = append(args, url)
	if path != "" {
		args = append(args, path)
	}

	return c.run(ctx, "checkout", args, o.Options)
}

// UpdateOptions adjusts a single Update call.
type UpdateOptions struct {
	Options

	// Revision updates to a specific revision instead of HEAD.
	Revision string

	// Depth limits the update walk without changing the working copy's
	// sticky depth.
	Depth Depth

	// SetDepth changes the working copy's sticky depth for this and all
	// future updates.
	SetDepth Depth

	// IgnoreExternals skips externals definitions.
	IgnoreExternals bool

	// Force tolerates obstructing unversioned items.
	Force bool
}

// Update runs `svn update` on the given working copy paths. No paths means
// the current directory.
func (c *Client) Update(ctx context.Context, targets []string, opts *UpdateOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	if o.SetDepth != "" {
		args = append(args, c.flagToken("--set-depth", string(o.SetDepth)))
	}
	if o.IgnoreExternals {
		args = append(args, "--ignore-externals")
	}
	if o.Force {
		args = append(args, "--force")
	}
	args = append(args, targets...)

	return c.run(ctx, "update", args, o.Options)
}

// SwitchOptions adjusts a single Switch call.
type SwitchOptions struct {
	Options

	// Revision switches to a specific revision of the new URL.
	Revision string

	// IgnoreAncestry skips the common-ancestry check between the current
	// and the new URL.
	IgnoreAncestry bool

	// Force tolerates obstructing unversioned items.
	Force bool
}

// Switch runs `svn switch url [path]`, rebasing the working copy onto a
// different branch of the same repository.
func (c *Client) Switch(ctx context.Context, url, path string, opts *SwitchOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.IgnoreAncestry {
		args = append(args, "--ignore-ancestry")
	}
	if o.Force {
		args = append(args, "--force")
	}
	args = append(args, url)
	if path != "" {
		args = append(args, path)
	}

	return c.run(ctx, "switch", args, o.Options)
}

// RelocateOptions adjusts a single Relocate call.
type RelocateOptions struct {
	Options
}

// Relocate runs `svn relocate from to [path]`, rewriting the repository
// URL recorded in the working copy after a server move.
func (c *Client) Relocate(ctx context.Context, from, to, path string, opts *RelocateOptions) *ExecResult {
	o := lo.FromPtr(opts)

	args := []string{from, to}
	if path != "" {
		args = append(args, path)
	}

	return c.run(ctx, "relocate", args, o.Options)
}

// UpgradeOptions adjusts a single Upgrade call.
type UpgradeOptions struct {
	Options
}

// Upgrade runs `svn upgrade`, migrating a working copy created by an older
// svn to the current metadata format.
func (c *Client) Upgrade(ctx context.Context, path string, opts *UpgradeOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if path != "" {
		args = append(args, path)
	}

	return c.run(ctx, "upgrade", args, o.Options)
}
