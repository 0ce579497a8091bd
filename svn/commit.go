package svn

import (
	"context"

	"github.com/samber/lo"
)

// CommitOptions adjusts a single Commit call.
type CommitOptions struct {
	Options

	// Depth limits which scheduled changes are committed.
	Depth Depth

	// KeepLocks leaves held locks in place after the commit.
	KeepLocks bool

	// Changelist restricts the commit to one changelist.
	Changelist string
}

// Commit runs `svn commit` on the given paths. The message travels as one
// structural token, so arbitrary text is safe; an empty message is not
// sent at all and svn will reject the commit rather than open an editor.
func (c *Client) Commit(ctx context.Context, targets []string, message string, opts *CommitOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if message != "" {
		args = append(args, c.flagToken("--message", message))
	}
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	if o.KeepLocks {
		args = append(args, "--keep-locks")
	}
	if o.Changelist != "" {
		args = append(args, c.flagToken("--changelist", o.Changelist))
	}
	args = append(args, targets...)

	return c.run(ctx, "commit", args, o.Options)
}
