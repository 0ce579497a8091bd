// Package testhelpers provides shared fixtures for tests that exercise the
// svn client end to end without a real Subversion installation.
package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// Scene is a sandbox for one test: a temporary directory that becomes the
// process working directory, with a private bin directory first on PATH so
// a fabricated svn executable shadows any real installation.
type Scene struct {
	Dir    string
	BinDir string
}

// NewScene builds a scene and registers cleanup. The fabricated binaries
// are POSIX shell scripts, so scenes skip on Windows.
func NewScene(t *testing.T) *Scene {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("scene requires a POSIX shell")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to enter scene directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
	})

	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	// Point config discovery into the scene so a developer's own files
	// never leak into assertions. Same for the password environment.
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("SVNQ_PASSWORD", "")

	return &Scene{Dir: dir, BinDir: bin}
}

// StubSVN installs a fake svn executable whose behavior is the given POSIX
// shell body. The body runs with the invocation's original arguments.
func (s *Scene) StubSVN(t *testing.T, body string) {
	t.Helper()
	script := "#!/bin/sh\n" + body + "\n"
	path := filepath.Join(s.BinDir, "svn")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to install svn stub: %v", err)
	}
}

// RecordingStub installs a fake svn that writes every argument it receives
// to args.txt in the scene directory, one per line, prints output on
// stdout, and exits with code. Recording one argument per line keeps word
// splitting visible: a quoted target with spaces must arrive as one line.
func (s *Scene) RecordingStub(t *testing.T, output string, code int) {
	t.Helper()
	var b strings.Builder
	b.WriteString(`for a in "$@"; do printf '%s\n' "$a"; done > `)
	b.WriteString(shellQuote(filepath.Join(s.Dir, "args.txt")))
	b.WriteString("\n")
	if output != "" {
		b.WriteString("cat <<'SVN_STUB_EOF'\n")
		b.WriteString(output)
		if !strings.HasSuffix(output, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("SVN_STUB_EOF\n")
	}
	b.WriteString("exit ")
	b.WriteString(strconv.Itoa(code))
	s.StubSVN(t, b.String())
}

// RecordedArgs returns the arguments captured by the last RecordingStub
// invocation, one entry per argument.
func (s *Scene) RecordedArgs(t *testing.T) []string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(s.Dir, "args.txt"))
	if err != nil {
		t.Fatalf("svn stub was never invoked: %v", err)
	}
	trimmed := strings.TrimRight(string(raw), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// FailingStub installs a fake svn that prints stderr and exits with code.
func (s *Scene) FailingStub(t *testing.T, stderr string, code int) {
	t.Helper()
	body := fmt.Sprintf("printf '%%s\\n' %s >&2\nexit %d", shellQuote(stderr), code)
	s.StubSVN(t, body)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
