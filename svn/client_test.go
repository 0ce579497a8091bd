package svn_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"svnq.dev/svnq/svn"
	"svnq.dev/svnq/testhelpers"
)

func TestClientReadOperations(t *testing.T) {
	t.Run("info parses plain output", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, testhelpers.InfoOutput, 0)
		c := svn.New()

		info := c.Info(context.Background(), ".", nil)

		require.NotNil(t, info)
		require.Equal(t, "https://svn.example.com/repo/trunk/My Project", info.URL)
		require.Equal(t, "42", info.Revision)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{"info", "--non-interactive", "."}, args)
	})

	t.Run("info on an unknown target returns nil", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.FailingStub(t, "svn: warning: W155007: 'x' is not a working copy", 1)
		c := svn.New()

		require.Nil(t, c.Info(context.Background(), "x", nil))
	})

	t.Run("status requests xml and parses it", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, testhelpers.StatusXML, 0)
		c := svn.New()

		items := c.Status(context.Background(), ".", &svn.StatusOptions{ShowUpdates: true})

		require.Len(t, items, 3)
		require.Equal(t, "M", items[0].Status)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{"status", "--non-interactive", "--xml", "--show-updates", "."}, args)
	})

	t.Run("log composes revision and limit", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, testhelpers.LogXML, 0)
		c := svn.New()

		entries := c.Log(context.Background(), ".", &svn.LogOptions{
			Revision: "HEAD:1",
			Limit:    25,
			Verbose:  true,
		})

		require.Len(t, entries, 2)
		require.Equal(t, "Update Mole&More readme", entries[0].Message)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{
			"log", "--non-interactive", "--xml",
			"--revision", "HEAD:1", "--limit", "25", "--verbose", ".",
		}, args)
	})

	t.Run("list returns entry names", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, testhelpers.ListXML, 0)
		c := svn.New(svn.WithDefaults(svn.Options{Repo: "https://svn.example.com/repo"}))

		names := c.List(context.Background(), "trunk", nil)

		require.Equal(t, []string{"README.md", "src"}, names)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{
			"list", "--non-interactive", "--xml",
			"https://svn.example.com/repo/trunk",
		}, args)
	})

	t.Run("cat returns trimmed content", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, "hello world\n", 0)
		c := svn.New()

		require.Equal(t, "hello world", c.Cat(context.Background(), "README.md", nil))
		require.Equal(t, []string{"cat", "--non-interactive", "README.md"}, scene.RecordedArgs(t))
	})

	t.Run("failed reads come back empty, not as errors", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.FailingStub(t, "svn: E170000: Unable to connect", 1)
		c := svn.New()

		require.Empty(t, c.Status(context.Background(), ".", nil))
		require.Empty(t, c.Log(context.Background(), ".", nil))
		require.Empty(t, c.List(context.Background(), ".", nil))
		require.Empty(t, c.Cat(context.Background(), "f", nil))
		require.Empty(t, c.PropGet(context.Background(), "svn:mime-type", "f", nil))
	})
}

func TestClientWriteOperations(t *testing.T) {
	t.Run("checkout carries url and path", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, "Checked out revision 42.", 0)
		c := svn.New()

		res := c.Checkout(context.Background(), "https://svn.example.com/repo/trunk", "wc", &svn.CheckoutOptions{
			Depth: svn.DepthImmediates,
		})

		require.True(t, res.Success)
		require.NotNil(t, res.ExitCode)
		require.Equal(t, 0, *res.ExitCode)
		require.Equal(t, "Checked out revision 42.", res.Stdout)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{
			"checkout", "--non-interactive", "--depth", "immediates",
			"https://svn.example.com/repo/trunk", "wc",
		}, args)
	})

	t.Run("commit message travels as a single argument", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, "Committed revision 43.", 0)
		c := svn.New()

		res := c.Commit(context.Background(), []string{"src/main.c"}, "fix: don't crash on empty input", nil)

		require.True(t, res.Success)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{
			"commit", "--non-interactive",
			"--message", "fix: don't crash on empty input",
			"src/main.c",
		}, args)
	})

	t.Run("copy sends message and both targets", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, "Committed revision 44.", 0)
		c := svn.New(svn.WithDefaults(svn.Options{Repo: "https://svn.example.com/repo"}))

		res := c.Copy(context.Background(), "trunk", "tags/1.0", &svn.CopyOptions{Message: "tag 1.0"})

		require.True(t, res.Success)
		require.Equal(t, []string{
			"copy", "--non-interactive", "--message", "tag 1.0",
			"https://svn.example.com/repo/trunk",
			"https://svn.example.com/repo/tags/1.0",
		}, scene.RecordedArgs(t))
	})

	t.Run("nonzero exit is reported, not raised", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.FailingStub(t, "svn: E155015: conflict", 1)
		c := svn.New()

		res := c.Update(context.Background(), []string{"."}, nil)

		require.False(t, res.Success)
		require.NotNil(t, res.ExitCode)
		require.Equal(t, 1, *res.ExitCode)
		require.Contains(t, res.Stderr, "E155015")
	})

	t.Run("credentials appear as flags and environment", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.StubSVN(t, `for a in "$@"; do printf '%s\n' "$a"; done > args.txt
printf '%s\n' "$SVN_USERNAME" "$SVN_PASSWORD" "$LANG" "$LC_ALL"`)
		c := svn.New()

		res := c.Update(context.Background(), nil, &svn.UpdateOptions{
			Options: svn.Options{Username: "harvey", Password: "s3cret!"},
		})

		require.True(t, res.Success)
		require.Equal(t, "harvey\ns3cret!\nC\nC", res.Stdout)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{
			"update", "--non-interactive",
			"--username", "harvey", "--password", "s3cret!",
		}, args)
	})
}

func TestClientDefaults(t *testing.T) {
	t.Run("set defaults apply to later calls", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, testhelpers.InfoOutput, 0)
		c := svn.New()

		c.SetDefaults(svn.Options{
			Repo:        "https://svn.example.com/repo",
			NoAuthCache: lo.ToPtr(true),
		})

		c.Info(context.Background(), "trunk", nil)

		args := scene.RecordedArgs(t)
		require.Equal(t, []string{
			"info", "--non-interactive", "--no-auth-cache",
			"https://svn.example.com/repo/trunk",
		}, args)
	})

	t.Run("per-call options beat defaults", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.RecordingStub(t, testhelpers.InfoOutput, 0)
		c := svn.New(svn.WithDefaults(svn.Options{Username: "default-user"}))

		c.Info(context.Background(), ".", &svn.InfoOptions{
			Options: svn.Options{Username: "override"},
		})

		args := scene.RecordedArgs(t)
		require.Contains(t, args, "override")
		require.NotContains(t, args, "default-user")
	})
}

func TestClientFailureModes(t *testing.T) {
	t.Run("missing binary surfaces through the shell", func(t *testing.T) {
		testhelpers.NewScene(t)
		c := svn.New(svn.WithBinary("definitely-not-svn-xyz"))

		res := c.Update(context.Background(), nil, nil)

		require.False(t, res.Success)
		require.NotNil(t, res.ExitCode, "the shell itself ran and reported the miss")
		require.NotEqual(t, 0, *res.ExitCode)
	})

	t.Run("output over the ceiling fails the call", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.StubSVN(t, `i=0
while [ $i -lt 200 ]; do printf 'xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx\n'; i=$((i+1)); done`)
		c := svn.New(svn.WithMaxOutput(1024))

		res := c.Update(context.Background(), nil, nil)

		require.False(t, res.Success)
		require.Nil(t, res.ExitCode)
		require.Contains(t, res.Stderr, "output limit")
	})

	t.Run("timeout kills the process and fails the call", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.StubSVN(t, "sleep 5")
		c := svn.New(svn.WithTimeout(100 * time.Millisecond))

		start := time.Now()
		res := c.Update(context.Background(), nil, nil)

		require.False(t, res.Success)
		require.Nil(t, res.ExitCode)
		require.Less(t, time.Since(start), 4*time.Second)
	})

	t.Run("caller context cancellation wins", func(t *testing.T) {
		scene := testhelpers.NewScene(t)
		scene.StubSVN(t, "sleep 5")
		c := svn.New()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		res := c.Update(ctx, nil, nil)

		require.False(t, res.Success)
		require.Nil(t, res.ExitCode)
		require.NotEmpty(t, res.Stderr)
	})
}
