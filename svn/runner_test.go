package svn

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svnq.dev/svnq/internal/platform"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLimitBuffer(t *testing.T) {
	t.Parallel()

	t.Run("keeps everything under the limit", func(t *testing.T) {
		t.Parallel()
		b := &limitBuffer{limit: 16}

		n, err := b.Write([]byte("hello"))

		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, "hello", b.String())
		require.False(t, b.exceeded)
	})

	t.Run("marks the overflow but keeps draining", func(t *testing.T) {
		t.Parallel()
		b := &limitBuffer{limit: 4}

		for i := 0; i < 3; i++ {
			n, err := b.Write([]byte("abcdef"))
			require.NoError(t, err, "the writer must keep accepting input")
			require.Equal(t, 6, n)
		}

		require.True(t, b.exceeded)
		require.Equal(t, "abcd", b.String(), "capture stops at the limit")
	})

	t.Run("exact fit is not an overflow", func(t *testing.T) {
		t.Parallel()
		b := &limitBuffer{limit: 4}

		_, err := b.Write([]byte("abcd"))

		require.NoError(t, err)
		require.False(t, b.exceeded)
	})
}

func TestRedactPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare value",
			in:   "svn update --username u --password hunter2 wc",
			want: "svn update --username u --password *** wc",
		},
		{
			name: "single-quoted value with spaces",
			in:   "svn update --password 'pa ss word' wc",
			want: "svn update --password *** wc",
		},
		{
			name: "double-quoted value",
			in:   `svn update --password "pa ss" wc`,
			want: "svn update --password *** wc",
		},
		{
			name: "no password present",
			in:   "svn info --non-interactive wc",
			want: "svn info --non-interactive wc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, redactPassword(tt.in))
		})
	}
}

func TestRunnerEnviron(t *testing.T) {
	r := newRunner(platform.Posix(), DefaultMaxOutput, DefaultTimeout, discardLogger())

	t.Run("pins the locale", func(t *testing.T) {
		env := r.environ(Options{})

		require.Contains(t, env, "LANG=C")
		require.Contains(t, env, "LC_ALL=C")
	})

	t.Run("injects credentials only when present", func(t *testing.T) {
		env := r.environ(Options{Username: "harvey", Password: "s3cret"})

		require.Contains(t, env, "SVN_USERNAME=harvey")
		require.Contains(t, env, "SVN_PASSWORD=s3cret")

		bare := r.environ(Options{})
		for _, kv := range bare {
			require.False(t, strings.HasPrefix(kv, "SVN_PASSWORD="), "no stray credential: %s", kv)
		}
	})

	t.Run("locale entries come after the inherited environment", func(t *testing.T) {
		t.Setenv("LANG", "de_DE.UTF-8")

		env := r.environ(Options{})

		last := ""
		for _, kv := range env {
			if strings.HasPrefix(kv, "LANG=") {
				last = kv
			}
		}
		require.Equal(t, "LANG=C", last, "the pinned locale must win the duplicate")
	})
}
