package svn

import (
	"context"

	"github.com/samber/lo"
)

// LockOptions adjusts a single Lock call.
type LockOptions struct {
	Options

	// Comment is attached to the lock for other users to see.
	Comment string

	// Force steals locks held by someone else.
	Force bool
}

// Lock takes locks on the given paths or URLs.
func (c *Client) Lock(ctx context.Context, targets []string, opts *LockOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Comment != "" {
		args = append(args, c.flagToken("--message", o.Comment))
	}
	if o.Force {
		args = append(args, "--force")
	}
	args = append(args, targets...)

	return c.run(ctx, "lock", args, o.Options)
}

// UnlockOptions adjusts a single Unlock call.
type UnlockOptions struct {
	Options

	// Force breaks locks held by someone else.
	Force bool
}

// Unlock releases locks on the given paths or URLs.
func (c *Client) Unlock(ctx context.Context, targets []string, opts *UnlockOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Force {
		args = append(args, "--force")
	}
	args = append(args, targets...)

	return c.run(ctx, "unlock", args, o.Options)
}
