package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"svnq.dev/svnq/svn"
)

const logSeparatorWidth = 72

// Renderer writes formatted results to one destination, normally stdout.
type Renderer struct {
	w io.Writer
}

// NewRenderer builds a renderer for w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Status prints one aligned row per item: code, working revision, path,
// and the last committer when known.
func (r *Renderer) Status(items []svn.StatusItem) {
	if len(items) == 0 {
		return
	}

	revWidth := lo.Max(lo.Map(items, func(it svn.StatusItem, _ int) int {
		return len(it.Revision)
	}))

	for _, it := range items {
		line := fmt.Sprintf("%s %*s  %s", StatusCode(it.Status), revWidth, it.Revision, it.Path)
		if it.LastChangedAuthor != "" {
			line += "  " + Dim("("+it.LastChangedAuthor+")")
		}
		fmt.Fprintln(r.w, line)
	}
}

// Log prints entries the way `svn log` does, each under a dim separator,
// with changed paths indented when present.
func (r *Renderer) Log(entries []svn.LogEntry) {
	if len(entries) == 0 {
		return
	}

	separator := Dim(strings.Repeat("-", logSeparatorWidth))
	for _, entry := range entries {
		fmt.Fprintln(r.w, separator)

		header := Revision("r"+entry.Revision) + Dim(" | ") + Author(entry.Author)
		if entry.Date != "" {
			header += Dim(" | ") + entry.Date
		}
		fmt.Fprintln(r.w, header)

		for _, change := range entry.Paths {
			fmt.Fprintf(r.w, "  %s %s\n", StatusCode(change.Action), change.Path)
		}

		if entry.Message != "" {
			fmt.Fprintln(r.w)
			fmt.Fprintln(r.w, entry.Message)
		}
	}
	fmt.Fprintln(r.w, separator)
}

// Info prints the non-empty fields of an info record as aligned key/value
// pairs.
func (r *Renderer) Info(info *svn.Info) {
	if info == nil {
		return
	}

	pairs := infoPairs(info)
	if len(pairs) == 0 {
		return
	}

	keyWidth := lo.Max(lo.Map(pairs, func(p [2]string, _ int) int {
		return len(p[0])
	}))

	for _, p := range pairs {
		fmt.Fprintf(r.w, "%s  %s\n", Dim(fmt.Sprintf("%-*s", keyWidth, p[0])), p[1])
	}
}

func infoPairs(info *svn.Info) [][2]string {
	all := [][2]string{
		{"Path", info.Path},
		{"URL", info.URL},
		{"Relative URL", info.RelativeURL},
		{"Repository Root", info.RepositoryRoot},
		{"Repository UUID", info.RepositoryUUID},
		{"Revision", info.Revision},
		{"Node Kind", info.NodeKind},
		{"Schedule", info.Schedule},
		{"Last Changed Author", info.LastChangedAuthor},
		{"Last Changed Rev", info.LastChangedRev},
		{"Last Changed Date", info.LastChangedDate},
	}
	return lo.Filter(all, func(p [2]string, _ int) bool {
		return p[1] != ""
	})
}

// List prints one name per line, coloring directories by their trailing
// slash convention.
func (r *Renderer) List(names []string) {
	for _, name := range names {
		if strings.HasSuffix(name, "/") {
			fmt.Fprintln(r.w, Directory(name))
			continue
		}
		fmt.Fprintln(r.w, name)
	}
}

// Lines prints pre-formatted text, used for raw svn stdout.
func (r *Renderer) Lines(text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(r.w, text)
}
