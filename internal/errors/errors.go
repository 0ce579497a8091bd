// Package errors provides sentinel errors and custom error types for svnq.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrOutputLimit indicates a subprocess wrote more output than the
	// configured ceiling allows.
	ErrOutputLimit = errors.New("output limit exceeded")

	// ErrNotWorkingCopy indicates a target path is not under version control.
	ErrNotWorkingCopy = errors.New("not a working copy")
)

// CommandError represents a failed svn command invocation.
type CommandError struct {
	Cmdline  string
	Stdout   string
	Stderr   string
	ExitCode *int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("svn command failed: %s", e.Cmdline)
	if e.ExitCode != nil {
		msg += fmt.Sprintf(" (exit %d)", *e.ExitCode)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target is ErrNotWorkingCopy and the captured
// stderr carries that condition.
func (e *CommandError) Is(target error) bool {
	return target == ErrNotWorkingCopy && IsNotWorkingCopy(e.Stderr)
}

// NewCommandError creates a new CommandError.
func NewCommandError(cmdline, stdout, stderr string, exitCode *int, err error) *CommandError {
	return &CommandError{
		Cmdline:  cmdline,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// IsNotWorkingCopy reports whether svn stderr output describes a path that
// is not part of a working copy (E155007 family).
func IsNotWorkingCopy(stderr string) bool {
	return strings.Contains(stderr, "is not a working copy") ||
		strings.Contains(stderr, "E155007") ||
		strings.Contains(stderr, "W155007")
}

// IsPathNotFound reports whether svn stderr output describes a target that
// does not exist in the repository or on disk.
func IsPathNotFound(stderr string) bool {
	return strings.Contains(stderr, "non-existent") ||
		strings.Contains(stderr, "was not found") ||
		strings.Contains(stderr, "W160013") ||
		strings.Contains(stderr, "E200009")
}
