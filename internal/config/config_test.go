package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromFile(t *testing.T) {
	t.Run("parses every field", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", `
repo: https://svn.example.com/repo
username: harvey
non_interactive: true
trust_server_cert: false
binary: /usr/local/bin/svn
timeout: 2m30s
log_file: /tmp/svnq.log
verbose: true
`)

		cfg, err := FromFile(path)

		require.NoError(t, err)
		require.Equal(t, "https://svn.example.com/repo", cfg.Repo)
		require.Equal(t, "harvey", cfg.Username)
		require.True(t, *cfg.NonInteractive)
		require.False(t, *cfg.TrustServerCert)
		require.Nil(t, cfg.NoAuthCache)
		require.Equal(t, "/usr/local/bin/svn", cfg.Binary)
		require.Equal(t, 150*time.Second, cfg.TimeoutDuration())
		require.True(t, cfg.Verbose)
	})

	t.Run("rejects a non-url repo", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", "repo: not a url\n")

		_, err := FromFile(path)

		require.Error(t, err)
		require.Contains(t, err.Error(), "repo")
	})

	t.Run("rejects a malformed timeout", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", "timeout: five minutes\n")

		_, err := FromFile(path)

		require.Error(t, err)
	})

	t.Run("accepts svn+ssh urls", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", "repo: svn+ssh://svn.example.com/repo\n")

		cfg, err := FromFile(path)

		require.NoError(t, err)
		require.Equal(t, "svn+ssh://svn.example.com/repo", cfg.Repo)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestMerge(t *testing.T) {
	t.Run("layer overrides set fields only", func(t *testing.T) {
		base := &Config{
			Repo:           "https://svn.example.com/repo",
			Username:       "harvey",
			NonInteractive: lo.ToPtr(true),
		}
		layer := &Config{
			Username:        "finn",
			TrustServerCert: lo.ToPtr(true),
		}

		merge(base, layer)

		require.Equal(t, "https://svn.example.com/repo", base.Repo)
		require.Equal(t, "finn", base.Username)
		require.True(t, *base.NonInteractive)
		require.True(t, *base.TrustServerCert)
	})

	t.Run("explicit false survives layering", func(t *testing.T) {
		base := &Config{NoAuthCache: lo.ToPtr(true)}
		layer := &Config{NoAuthCache: lo.ToPtr(false)}

		merge(base, layer)

		require.False(t, *base.NoAuthCache)
	})
}

func TestTimeoutDuration(t *testing.T) {
	require.Equal(t, time.Duration(0), (&Config{}).TimeoutDuration())
	require.Equal(t, time.Minute, (&Config{Timeout: "1m"}).TimeoutDuration())
	require.Equal(t, time.Duration(0), (&Config{Timeout: "junk"}).TimeoutDuration())
}
