package svn

import (
	"context"

	"github.com/samber/lo"
)

// MkdirOptions adjusts a single Mkdir call.
type MkdirOptions struct {
	Options

	// Message is required when creating directories at repository URLs.
	Message string

	// Parents also creates missing intermediate directories.
	Parents bool
}

// Mkdir creates versioned directories, scheduling them in a working copy
// or committing them immediately at repository URLs.
func (c *Client) Mkdir(ctx context.Context, targets []string, opts *MkdirOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Message != "" {
		args = append(args, c.flagToken("--message", o.Message))
	}
	if o.Parents {
		args = append(args, "--parents")
	}
	args = append(args, targets...)

	return c.run(ctx, "mkdir", args, o.Options)
}

// CopyOptions adjusts a single Copy call.
type CopyOptions struct {
	Options

	// Message is required for URL-to-URL copies, the usual way to lay
	// down tags and branches.
	Message string

	// Revision copies the source as of a specific revision.
	Revision string

	// Parents creates missing intermediate directories at the target.
	Parents bool
}

// Copy runs `svn copy src dst`, with history.
func (c *Client) Copy(ctx context.Context, src, dst string, opts *CopyOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Message != "" {
		args = append(args, c.flagToken("--message", o.Message))
	}
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.Parents {
		args = append(args, "--parents")
	}
	args = append(args, src, dst)

	return c.run(ctx, "copy", args, o.Options)
}

// MoveOptions adjusts a single Move call.
type MoveOptions struct {
	Options

	// Message is required for URL-to-URL moves.
	Message string

	// Force moves files with local modifications.
	Force bool

	// Parents creates missing intermediate directories at the target.
	Parents bool
}

// Move runs `svn move src dst`.
func (c *Client) Move(ctx context.Context, src, dst string, opts *MoveOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Message != "" {
		args = append(args, c.flagToken("--message", o.Message))
	}
	if o.Force {
		args = append(args, "--force")
	}
	if o.Parents {
		args = append(args, "--parents")
	}
	args = append(args, src, dst)

	return c.run(ctx, "move", args, o.Options)
}

// ExportOptions adjusts a single Export call.
type ExportOptions struct {
	Options

	// Revision exports the tree as of a specific revision.
	Revision string

	// Force overwrites an existing target directory.
	Force bool

	// IgnoreExternals skips externals definitions.
	IgnoreExternals bool
}

// Export runs `svn export src [dst]`, producing an unversioned copy of the
// tree.
func (c *Client) Export(ctx context.Context, src, dst string, opts *ExportOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Revision != "" {
		args = append(args, c.flagToken("--revision", o.Revision))
	}
	if o.Force {
		args = append(args, "--force")
	}
	if o.IgnoreExternals {
		args = append(args, "--ignore-externals")
	}
	args = append(args, src)
	if dst != "" {
		args = append(args, dst)
	}

	return c.run(ctx, "export", args, o.Options)
}

// ImportOptions adjusts a single Import call.
type ImportOptions struct {
	Options

	// Message labels the commit the import creates.
	Message string

	// Depth limits how much of the local tree is imported.
	Depth Depth

	// NoIgnore imports items that match ignore patterns too.
	NoIgnore bool
}

// Import runs `svn import path url`, committing an unversioned tree into
// the repository.
func (c *Client) Import(ctx context.Context, path, url string, opts *ImportOptions) *ExecResult {
	o := lo.FromPtr(opts)

	var args []string
	if o.Message != "" {
		args = append(args, c.flagToken("--message", o.Message))
	}
	if o.Depth != "" {
		args = append(args, c.flagToken("--depth", string(o.Depth)))
	}
	if o.NoIgnore {
		args = append(args, "--no-ignore")
	}
	args = append(args, path, url)

	return c.run(ctx, "import", args, o.Options)
}
