// Package svn drives the Subversion command-line client. It resolves and
// escapes targets, composes full command lines, runs them through the
// platform shell, and parses the output into typed results.
//
// The package never panics on svn failures. Mutating operations return an
// ExecResult describing what happened; read operations return their parsed
// value, or an empty one when svn had nothing to say.
package svn

import (
	"context"
	"log/slog"
	"sync"
	"time"

	svnerrors "svnq.dev/svnq/internal/errors"
	"svnq.dev/svnq/internal/platform"
)

// DefaultBinary is the executable name looked up on PATH.
const DefaultBinary = "svn"

// Client issues svn commands. The zero value is not usable; construct one
// with New. A Client is safe for concurrent use.
type Client struct {
	bin       string
	policy    platform.Policy
	logger    *slog.Logger
	maxOutput int
	timeout   time.Duration
	runner    *runner

	mu       sync.RWMutex
	defaults Options
}

// ClientOption configures a Client during New.
type ClientOption func(*Client)

// WithDefaults seeds the process-wide options every call starts from.
func WithDefaults(opts Options) ClientOption {
	return func(c *Client) { c.defaults = opts }
}

// WithLogger routes the client's diagnostics to l.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithBinary overrides the svn executable, e.g. an absolute path to a
// specific installation.
func WithBinary(bin string) ClientOption {
	return func(c *Client) { c.bin = bin }
}

// WithPolicy overrides the platform policy. Useful in tests to force posix
// or windows behavior regardless of the host.
func WithPolicy(p platform.Policy) ClientOption {
	return func(c *Client) { c.policy = p }
}

// WithMaxOutput changes the captured-output ceiling in bytes.
func WithMaxOutput(n int) ClientOption {
	return func(c *Client) { c.maxOutput = n }
}

// WithTimeout changes the per-invocation deadline applied when the caller's
// context has none.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// New builds a Client with the platform defaults, then applies opts.
func New(opts ...ClientOption) *Client {
	c := &Client{
		bin:       DefaultBinary,
		policy:    platform.Default(),
		logger:    slog.Default(),
		maxOutput: DefaultMaxOutput,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.runner = newRunner(c.policy, c.maxOutput, c.timeout, c.logger)
	return c
}

// Defaults returns a copy of the process-wide options.
func (c *Client) Defaults() Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaults
}

// SetDefaults replaces the process-wide options. In-flight calls keep the
// view they merged at build time.
func (c *Client) SetDefaults(opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaults = opts
}

// run builds and executes one subcommand.
func (c *Client) run(ctx context.Context, sub string, args []string, per Options) *ExecResult {
	cmdline, eff := c.buildCommand(sub, args, per)
	return c.runner.Run(ctx, cmdline, eff)
}

// readRun executes a read-oriented subcommand and hands back its stdout.
// Failures are logged and reported as absence, never raised: callers of
// queries want "nothing there", not an error to plumb.
func (c *Client) readRun(ctx context.Context, sub string, args []string, per Options) (string, bool) {
	res := c.run(ctx, sub, args, per)
	if !res.Success {
		c.logReadFailure(sub, res)
		return "", false
	}
	return res.Stdout, true
}

func (c *Client) logReadFailure(sub string, res *ExecResult) {
	switch {
	case svnerrors.IsNotWorkingCopy(res.Stderr), svnerrors.IsPathNotFound(res.Stderr):
		c.logger.Debug("svn read found nothing", "subcommand", sub, "stderr", res.Stderr)
	default:
		c.logger.Warn("svn read failed", "subcommand", sub, "stderr", res.Stderr)
	}
}
