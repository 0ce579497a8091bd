// Package platform isolates the host-specific conventions involved in
// handing a command line to the operating system: the shell used to run it,
// the quoting style that shell expects, and the locale variables that pin
// the external tool's diagnostic output to a parseable language.
package platform

import "strings"

// Policy captures one platform family's conventions. A single policy is
// selected at process start via Default; tests may construct either
// implementation directly.
type Policy interface {
	// Name identifies the policy family ("posix" or "windows").
	Name() string

	// ShellArgv returns the argv that runs cmdline through the host shell.
	ShellArgv(cmdline string) []string

	// Quote wraps a token in the platform quoting convention. Callers are
	// expected to skip quoting for tokens made entirely of safe characters.
	Quote(token string) string

	// LocaleEnv returns KEY=VALUE overrides that force the external tool
	// to emit diagnostics in the C locale regardless of the host locale.
	LocaleEnv() []string
}

// Posix returns the policy for POSIX-style shells: single-quote wrapping
// with the '\'' sequence for embedded quotes, /bin/sh -c execution.
func Posix() Policy { return posixPolicy{} }

// Windows returns the policy for cmd.exe: double-quote wrapping with
// backslash-escaped embedded quotes, cmd /d /s /c execution. Backslashes
// are passed through untouched; only the quote character itself is escaped.
func Windows() Policy { return windowsPolicy{} }

type posixPolicy struct{}

func (posixPolicy) Name() string { return "posix" }

func (posixPolicy) ShellArgv(cmdline string) []string {
	return []string{"/bin/sh", "-c", cmdline}
}

func (posixPolicy) Quote(token string) string {
	return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
}

func (posixPolicy) LocaleEnv() []string {
	return []string{"LANG=C", "LC_ALL=C"}
}

type windowsPolicy struct{}

func (windowsPolicy) Name() string { return "windows" }

func (windowsPolicy) ShellArgv(cmdline string) []string {
	return []string{"cmd", "/d", "/s", "/c", cmdline}
}

func (windowsPolicy) Quote(token string) string {
	return `"` + strings.ReplaceAll(token, `"`, `\"`) + `"`
}

// Windows builds of Subversion ignore LANG, so the alternate variables are
// set as well.
func (windowsPolicy) LocaleEnv() []string {
	return []string{"LANG=C", "LC_ALL=C", "LC_MESSAGES=C"}
}
