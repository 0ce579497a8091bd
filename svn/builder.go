package svn

import (
	"regexp"
	"strings"

	"svnq.dev/svnq/internal/escape"
	"svnq.dev/svnq/internal/target"
)

// numericToken matches bare revision numbers, which travel through the
// builder without path resolution or quoting.
var numericToken = regexp.MustCompile(`^[0-9]+$`)

// buildCommand composes the full command line for one svn subcommand and
// returns it together with the effective (merged) options, so the executor
// works from the same view the builder did.
//
// Global flags come first in a fixed order: --non-interactive unless
// explicitly disabled, then --trust-server-cert, --no-auth-cache and the
// credential pair. Positional arguments that start with "--" or are purely
// numeric pass through untouched; anything else is resolved against the
// effective base repository and escaped for the platform shell. Callers
// that need a flag with a non-numeric value compose the two as a single
// "--flag value" token so the value is never mistaken for a target.
func (c *Client) buildCommand(sub string, args []string, per Options) (string, Options) {
	opts := merged(c.Defaults(), per)

	tokens := make([]string, 0, len(args)+8)
	tokens = append(tokens, escape.Token(c.bin, c.policy), sub)

	if opts.nonInteractive() {
		tokens = append(tokens, "--non-interactive")
	}
	if opts.trustServerCert() {
		tokens = append(tokens, "--trust-server-cert")
	}
	if opts.noAuthCache() {
		tokens = append(tokens, "--no-auth-cache")
	}
	if opts.Username != "" {
		tokens = append(tokens, "--username", escape.Token(opts.Username, c.policy))
	}
	if opts.Password != "" {
		tokens = append(tokens, "--password", escape.Token(opts.Password, c.policy))
	}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--"), numericToken.MatchString(arg):
			tokens = append(tokens, arg)
		default:
			resolved := target.Resolve(arg, opts.Repo)
			if resolved == "" {
				resolved = arg
			}
			if resolved == "" {
				continue
			}
			tokens = append(tokens, escape.Token(resolved, c.policy))
		}
	}

	return strings.Join(tokens, " "), opts
}

// flagToken composes a flag and its value as one structural token. The
// builder passes "--"-prefixed tokens through verbatim, so the value rides
// along already escaped instead of being resolved as a target.
func (c *Client) flagToken(flag, value string) string {
	return flag + " " + escape.Token(value, c.policy)
}
