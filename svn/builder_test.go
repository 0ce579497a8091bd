package svn

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"svnq.dev/svnq/internal/platform"
)

func newPosixClient(opts ...ClientOption) *Client {
	opts = append([]ClientOption{WithPolicy(platform.Posix())}, opts...)
	return New(opts...)
}

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	t.Run("non-interactive is on by default", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient()

		cmdline, _ := c.buildCommand("info", []string{"wc"}, Options{})

		require.Equal(t, "svn info --non-interactive wc", cmdline)
	})

	t.Run("explicit false disables non-interactive", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient()

		cmdline, _ := c.buildCommand("info", nil, Options{NonInteractive: lo.ToPtr(false)})

		require.Equal(t, "svn info", cmdline)
	})

	t.Run("global flags keep a fixed order", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient()

		cmdline, _ := c.buildCommand("update", nil, Options{
			Username:        "harvey",
			Password:        "pa ss",
			TrustServerCert: lo.ToPtr(true),
			NoAuthCache:     lo.ToPtr(true),
		})

		require.Equal(t,
			"svn update --non-interactive --trust-server-cert --no-auth-cache --username harvey --password 'pa ss'",
			cmdline)
	})

	t.Run("flag tokens and bare numbers pass through", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient(WithDefaults(Options{Repo: "https://svn.example.com/repo"}))

		cmdline, _ := c.buildCommand("log", []string{"--xml", "--limit", "50", "trunk"}, Options{})

		require.Equal(t,
			"svn log --non-interactive --xml --limit 50 https://svn.example.com/repo/trunk",
			cmdline)
	})

	t.Run("targets are resolved then escaped", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient(WithDefaults(Options{Repo: "https://svn.example.com/repo"}))

		cmdline, _ := c.buildCommand("info", []string{"trunk/my file.txt"}, Options{})

		require.Equal(t,
			"svn info --non-interactive https://svn.example.com/repo/trunk/my%20file.txt",
			cmdline)
	})

	t.Run("local paths with quoting hazards are wrapped", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient()

		cmdline, _ := c.buildCommand("add", []string{"it's here.txt"}, Options{})

		require.Equal(t, `svn add --non-interactive 'it'\''s here.txt'`, cmdline)
	})

	t.Run("empty target with a base queries the root", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient(WithDefaults(Options{Repo: "https://svn.example.com/repo/"}))

		cmdline, _ := c.buildCommand("info", []string{""}, Options{})

		require.Equal(t, "svn info --non-interactive https://svn.example.com/repo", cmdline)
	})

	t.Run("empty target without a base contributes nothing", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient()

		cmdline, _ := c.buildCommand("status", []string{""}, Options{})

		require.Equal(t, "svn status --non-interactive", cmdline)
	})

	t.Run("per-call options win over defaults", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient(WithDefaults(Options{
			Username: "default-user",
			Repo:     "https://svn.example.com/repo",
		}))

		cmdline, eff := c.buildCommand("info", []string{"trunk"}, Options{Username: "override"})

		require.Equal(t,
			"svn info --non-interactive --username override https://svn.example.com/repo/trunk",
			cmdline)
		require.Equal(t, "override", eff.Username)
		require.Equal(t, "https://svn.example.com/repo", eff.Repo)
	})

	t.Run("custom binary is escaped too", func(t *testing.T) {
		t.Parallel()
		c := newPosixClient(WithBinary("/opt/svn tools/svn"))

		cmdline, _ := c.buildCommand("info", nil, Options{})

		require.Equal(t, `'/opt/svn tools/svn' info --non-interactive`, cmdline)
	})
}

func TestFlagToken(t *testing.T) {
	t.Parallel()
	c := newPosixClient()

	t.Run("composes flag and escaped value as one token", func(t *testing.T) {
		t.Parallel()
		tok := c.flagToken("--message", "fix the build")
		require.Equal(t, "--message 'fix the build'", tok)

		cmdline, _ := c.buildCommand("commit", []string{tok, "wc"}, Options{})
		require.Equal(t, "svn commit --non-interactive --message 'fix the build' wc", cmdline)
	})

	t.Run("keyword values stay bare", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "--revision HEAD", c.flagToken("--revision", "HEAD"))
	})
}

func TestMergedOptions(t *testing.T) {
	t.Parallel()

	t.Run("zero per-call fields inherit defaults", func(t *testing.T) {
		t.Parallel()
		defaults := Options{
			Username:       "harvey",
			Password:       "secret",
			Repo:           "https://svn.example.com/repo",
			NonInteractive: lo.ToPtr(false),
		}

		out := merged(defaults, Options{})

		require.Equal(t, defaults, out)
	})

	t.Run("explicit pointer fields override", func(t *testing.T) {
		t.Parallel()
		defaults := Options{TrustServerCert: lo.ToPtr(true)}

		out := merged(defaults, Options{TrustServerCert: lo.ToPtr(false)})

		require.False(t, *out.TrustServerCert)
	})

	t.Run("tri-state helpers", func(t *testing.T) {
		t.Parallel()
		require.True(t, Options{}.nonInteractive())
		require.False(t, Options{NonInteractive: lo.ToPtr(false)}.nonInteractive())
		require.False(t, Options{}.trustServerCert())
		require.True(t, Options{TrustServerCert: lo.ToPtr(true)}.trustServerCert())
		require.False(t, Options{}.noAuthCache())
		require.True(t, Options{NoAuthCache: lo.ToPtr(true)}.noAuthCache())
	})
}
