package escape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svnq.dev/svnq/internal/platform"
)

func TestTokenSafePassthrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "plain word", token: "trunk"},
		{name: "relative path", token: "branches/feature-1/file.txt"},
		{name: "url", token: "https://example.com:8080/repo/trunk"},
		{name: "flag-like token", token: "--non-interactive"},
		{name: "key value pair", token: "depth=infinity"},
		{name: "at revision suffix", token: "tags/1.0@HEAD"},
		{name: "percent encoded segment", token: "dir/na%20me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.token, Token(tt.token, platform.Posix()))
			require.Equal(t, tt.token, Token(tt.token, platform.Windows()))
		})
	}
}

func TestTokenPosixQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "space forces quoting", token: "my file.txt", expected: `'my file.txt'`},
		{name: "single quote escaped", token: "it's here", expected: `'it'\''s here'`},
		{name: "only a single quote", token: "'", expected: `''\'''`},
		{name: "shell metacharacters", token: "a&&b;c|d", expected: `'a&&b;c|d'`},
		{name: "unicode quoted verbatim", token: "päth äöü", expected: `'päth äöü'`},
		{name: "newline preserved", token: "line1\nline2", expected: "'line1\nline2'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Token(tt.token, platform.Posix()))
		})
	}
}

func TestTokenWindowsQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "space forces quoting", token: "my file.txt", expected: `"my file.txt"`},
		{name: "double quote escaped", token: `say "hi"`, expected: `"say \"hi\""`},
		{name: "backslash path", token: `C:\work space\wc`, expected: `"C:\work space\wc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Token(tt.token, platform.Windows()))
		})
	}
}

func TestTokenDeterministic(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "plain", "with space", "it's", "äöü"} {
		first := Token(token, platform.Posix())
		second := Token(token, platform.Posix())
		require.Equal(t, first, second)
	}
}
