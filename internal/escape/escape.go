// Package escape renders arbitrary strings into tokens that are safe to
// place inside a shell command line.
package escape

import (
	"regexp"

	"svnq.dev/svnq/internal/platform"
)

// safeToken matches tokens that need no quoting: ASCII word characters plus
// the punctuation Subversion targets commonly carry. Everything else gets
// the platform quoting treatment.
var safeToken = regexp.MustCompile(`^[\w@%=:./-]+$`)

// Token makes token safe for inclusion in a command line under the given
// policy. Empty tokens and tokens made entirely of safe characters are
// returned unchanged, so simple targets carry no quoting overhead. Quoting
// never alters character content beyond the platform's escape sequence for
// the quote character itself.
func Token(token string, policy platform.Policy) string {
	if token == "" || safeToken.MatchString(token) {
		return token
	}
	return policy.Quote(token)
}
