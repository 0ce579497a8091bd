package svn

import (
	"context"

	"github.com/samber/lo"
)

// AddOptions adjusts a single Add call.
type AddOptions struct {
	Options

	// Force keeps going when some targets are already versioned.
	Force bool

	// Parents also adds intermediate unversioned directories.
	Parents bool

	// NoIgnore schedules items that match ignore patterns too.
	NoIgnore bool
}

// Add schedules the given paths for addition.
func (c *Client) Add(ctx context.Context, targets []string, opts *AddOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Force {
		args = append(args, "--force")
	}
	if o.Parents {
		args = append(args, "--parents")
	}
	if o.NoIgnore {
		args = append(args, "--no-ignore")
	}
	args = append(args, targets...)

	return c.run(ctx, "add", args, o.Options)
}

// DeleteOptions adjusts a single Delete call.
type DeleteOptions struct {
	Options

	// Message is required when deleting repository URLs directly.
	Message string

	// Force deletes files with local modifications.
	Force bool

	// KeepLocal unversions the targets but leaves them on disk.
	KeepLocal bool
}

// Delete schedules working copy paths for deletion, or deletes repository
// URLs in an immediate commit when Message is set.
func (c *Client) Delete(ctx context.Context, targets []string, opts *DeleteOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Message != "" {
		args = append(args, c.flagToken("--message", o.Message))
	}
	if o.Force {
		args = append(args, "--force")
	}
	if o.KeepLocal {
		args = append(args, "--keep-local")
	}
	args = append(args, targets...)

	return c.run(ctx, "delete", args, o.Options)
}

// RevertOptions adjusts a single Revert call.
type RevertOptions struct {
	Options

	// Depth extends the revert to children of the targets.
	Depth Depth
}

// Revert discards local modifications on the given paths.
func (c *Client) Revert(ctx context.Context, targets []string, opts *RevertOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	args = append(args, targets...)

	return c.run(ctx, "revert", args, o.Options)
}

// ResolveOptions adjusts a single Resolve call.
type ResolveOptions struct {
	Options

	// Accept picks the resolution, e.g. "working", "mine-full" or
	// "theirs-full". svn requires it in non-interactive use.
	Accept string

	// Depth extends the resolution to children of the targets.
	Depth Depth
}

// Resolve marks conflicts on the given paths as resolved.
func (c *Client) Resolve(ctx context.Context, targets []string, opts *ResolveOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Accept != "" {
		args = append(args, c.flagToken("--accept", o.Accept))
	}
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	args = append(args, targets...)

	return c.run(ctx, "resolve", args, o.Options)
}

// CleanupOptions adjusts a single Cleanup call.
type CleanupOptions struct {
	Options

	// RemoveUnversioned deletes unversioned items while cleaning.
	RemoveUnversioned bool

	// RemoveIgnored deletes ignored items while cleaning.
	RemoveIgnored bool
}

// Cleanup releases stale locks and finishes interrupted operations in a
// working copy.
func (c *Client) Cleanup(ctx context.Context, path string, opts *CleanupOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.RemoveUnversioned {
		args = append(args, "--remove-unversioned")
	}
	if o.RemoveIgnored {
		args = append(args, "--remove-ignored")
	}
	if path != "" {
		args = append(args, path)
	}

	return c.run(ctx, "cleanup", args, o.Options)
}
