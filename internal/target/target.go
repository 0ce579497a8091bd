// Package target resolves user-supplied Subversion targets (paths or URLs)
// against an optionally configured base repository location, producing a
// single correctly-encoded argument for the svn command line.
package target

import (
	"html"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
	slashRuns    = regexp.MustCompile(`/{2,}`)
)

// Resolve turns raw into the argument handed to svn. When base is set, raw
// is interpreted relative to it: root-denoting paths collapse to the base
// itself, anything else is joined onto the base with URL semantics and
// percent-encoded per segment. Without a base, URLs get their path segments
// encoded in place and local paths are cleaned but kept relative.
//
// Resolution is idempotent: feeding a resolved URL back in returns it
// unchanged, because absolute URLs short-circuit the join and segment
// encoding decodes before it encodes.
func Resolve(raw, base string) string {
	if base != "" {
		base = strings.TrimRight(base, "/")
		if isRoot(raw) {
			return base
		}
		if schemePrefix.MatchString(raw) {
			return encodeSegments(raw)
		}
		return encodeSegments(join(base, raw))
	}

	if raw == "" {
		return raw
	}
	if schemePrefix.MatchString(raw) {
		return encodeSegments(raw)
	}
	// Local filesystem path: clean separators and dot segments, but never
	// resolve to absolute. Relative targets must stay relative.
	return filepath.Clean(raw)
}

// isRoot reports whether raw denotes the base itself.
func isRoot(raw string) bool {
	switch raw {
	case "", ".", "./", "/":
		return true
	}
	return false
}

// join appends raw onto base with exactly one slash, normalizing raw's dot
// segments with forward-slash semantics regardless of host platform.
func join(base, raw string) string {
	if strings.HasPrefix(raw, "./") {
		raw = raw[2:]
	} else if strings.HasPrefix(raw, "/") {
		raw = raw[1:]
	}
	raw = path.Clean(raw)
	if raw == "." {
		return base
	}
	return base + "/" + raw
}

// encodeSegments percent-encodes every path segment of a URL while leaving
// its scheme and authority untouched. Each segment is decoded first (one
// URL-decode attempt, then HTML entity decoding) so pre-encoded input is
// never encoded twice. Strings carrying a scheme prefix but no "://" have
// no recognizable segment structure and pass through unchanged.
func encodeSegments(u string) string {
	idx := strings.Index(u, "://")
	if idx < 0 {
		return u
	}
	head := u[:idx+3]
	rest := slashRuns.ReplaceAllString(u[idx+3:], "/")

	parts := strings.Split(rest, "/")
	for i, part := range parts {
		if i == 0 {
			continue // authority component
		}
		parts[i] = encodeSegment(part)
	}
	return head + strings.Join(parts, "/")
}

// encodeSegment decodes then re-encodes one path segment. URL-decoding that
// fails (a bare % not part of a valid escape) falls back to the raw string.
func encodeSegment(seg string) string {
	if dec, err := url.PathUnescape(seg); err == nil {
		seg = dec
	}
	seg = html.UnescapeString(seg)
	// QueryEscape matches the encoding svn expects for URL segments except
	// for spaces, which must be %20 rather than +.
	return strings.ReplaceAll(url.QueryEscape(seg), "+", "%20")
}
