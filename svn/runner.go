package svn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	svnerrors "svnq.dev/svnq/internal/errors"
	"svnq.dev/svnq/internal/platform"
)

// DefaultTimeout bounds a single svn invocation when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 5 * time.Minute

// DefaultMaxOutput caps how much stdout or stderr is captured from the
// subprocess. Overrunning the cap fails the invocation rather than
// silently truncating.
const DefaultMaxOutput = 10 << 20

// pipeGrace bounds how long Run waits for the output pipes to close once
// the shell has exited. A killed shell can leave grandchildren holding
// them open.
const pipeGrace = 2 * time.Second

// runner launches composed command lines through the platform shell and
// normalizes every outcome into an ExecResult.
type runner struct {
	policy    platform.Policy
	maxOutput int
	timeout   time.Duration
	logger    *slog.Logger
}

func newRunner(policy platform.Policy, maxOutput int, timeout time.Duration, logger *slog.Logger) *runner {
	return &runner{
		policy:    policy,
		maxOutput: maxOutput,
		timeout:   timeout,
		logger:    logger,
	}
}

// Run executes cmdline in the caller's working directory. It never returns
// an error: launch failures, nonzero exits, signals, timeouts and output
// overruns all come back as a failed ExecResult.
func (r *runner) Run(ctx context.Context, cmdline string, opts Options) *ExecResult {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	argv := r.policy.ShellArgv(cmdline)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = r.environ(opts)
	cmd.WaitDelay = pipeGrace

	stdout := &limitBuffer{limit: r.maxOutput}
	stderr := &limitBuffer{limit: r.maxOutput}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	r.logger.Debug("running svn", "cmd", redactPassword(cmdline), "shell", argv[0])

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())

	if stdout.exceeded || stderr.exceeded {
		r.logger.Error("svn output exceeded capture limit", "cmd", redactPassword(cmdline), "limit", r.maxOutput)
		return &ExecResult{
			Success: false,
			Stderr:  fmt.Sprintf("%s (%d bytes)", svnerrors.ErrOutputLimit, r.maxOutput),
		}
	}

	if err == nil {
		r.logger.Debug("svn finished", "elapsed", elapsed)
		code := 0
		return &ExecResult{Success: true, Stdout: out, Stderr: errOut, ExitCode: &code}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		msg := errOut
		if msg == "" {
			msg = fmt.Sprintf("svn did not finish: %v", ctxErr)
		}
		r.logger.Error("svn interrupted", "cmd", redactPassword(cmdline), "err", ctxErr, "elapsed", elapsed)
		return &ExecResult{Success: false, Stdout: out, Stderr: msg}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			r.logger.Debug("svn exited nonzero", "code", code, "stderr", errOut)
			return &ExecResult{Success: false, Stdout: out, Stderr: errOut, ExitCode: &code}
		}
		// Killed by a signal before producing an exit code.
		msg := errOut
		if msg == "" {
			msg = err.Error()
		}
		return &ExecResult{Success: false, Stdout: out, Stderr: msg}
	}

	// The shell itself could not be started.
	r.logger.Error("svn could not be launched", "err", err)
	return &ExecResult{Success: false, Stderr: err.Error()}
}

// environ builds the subprocess environment: the parent environment, the
// locale pin so svn output stays parseable English, and the credential
// variables some authentication hooks read. Later entries win over earlier
// duplicates.
func (r *runner) environ(opts Options) []string {
	env := append(os.Environ(), r.policy.LocaleEnv()...)
	if opts.Username != "" {
		env = append(env, "SVN_USERNAME="+opts.Username)
	}
	if opts.Password != "" {
		env = append(env, "SVN_PASSWORD="+opts.Password)
	}
	return env
}

// limitBuffer captures up to limit bytes and keeps draining afterwards so
// the subprocess never blocks on a full pipe. The overrun is surfaced
// through exceeded once the process finishes.
type limitBuffer struct {
	buf      bytes.Buffer
	limit    int
	exceeded bool
}

func (b *limitBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if b.exceeded {
		return n, nil
	}
	if room := b.limit - b.buf.Len(); room < n {
		b.buf.Write(p[:room])
		b.exceeded = true
		return n, nil
	}
	b.buf.Write(p)
	return n, nil
}

func (b *limitBuffer) String() string { return b.buf.String() }

var passwordFlag = regexp.MustCompile(`(--password)\s+(?:'[^']*'|"[^"]*"|\S+)`)

// redactPassword masks the credential value before a command line reaches
// the log.
func redactPassword(cmdline string) string {
	return passwordFlag.ReplaceAllString(cmdline, "$1 ***")
}
