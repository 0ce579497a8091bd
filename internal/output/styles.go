// Package output renders svn results for humans: status tables, revision
// logs, info records and directory listings.
package output

import "github.com/charmbracelet/lipgloss"

// statusStyles colors the single-character status codes the way reviewers
// read them: additions green, modifications yellow, anything broken red.
var statusStyles = map[string]lipgloss.Style{
	"A": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"M": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"D": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"R": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"C": lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	"~": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"!": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"I": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	"?": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	"X": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

var (
	revisionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	authorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	directoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// StatusCode renders a status code with its color.
func StatusCode(code string) string {
	if style, ok := statusStyles[code]; ok {
		return style.Render(code)
	}
	return code
}

// Revision renders a revision number.
func Revision(text string) string { return revisionStyle.Render(text) }

// Author renders a committer name.
func Author(text string) string { return authorStyle.Render(text) }

// Dim renders de-emphasized text.
func Dim(text string) string { return dimStyle.Render(text) }

// Directory renders a directory name in a listing.
func Directory(text string) string { return directoryStyle.Render(text) }
