package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// GetSharedBinaryPath returns the path of the svnq test binary, building it
// on first use. Safe to call from any test package.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		if sharedBinaryPath == "" {
			sharedBinaryPath, binaryErr = buildBinary()
		}
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred while building the binary.
func GetBinaryError() error {
	return binaryErr
}

// TestMain builds the svnq binary once before a package's tests run. Test
// packages use it from their own TestMain.
func TestMain(m *testing.M, cleanup func()) {
	path := GetSharedBinaryPath()
	if path == "" {
		fmt.Fprintf(os.Stderr, "failed to build svnq binary: %v\n", binaryErr)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(filepath.Dir(path))
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// buildBinary compiles cmd/svnq into a temp directory and returns the
// binary path.
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "svnq-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "svnq")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/svnq")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up from startDir to the directory holding go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
