// Package tui holds the full-screen views: currently the interactive
// revision log browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svnq.dev/svnq/svn"
)

// listHeight is how many revisions the upper pane shows at once.
const listHeight = 8

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Quit},
	}
}

var defaultBrowseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous revision"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next revision"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup/b", "scroll detail up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("pgdn/f", "scroll detail down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q/esc", "quit"),
	),
}

type browseStyles struct {
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	revision lipgloss.Style
	author   lipgloss.Style
	dim      lipgloss.Style
	added    lipgloss.Style
	deleted  lipgloss.Style
	modified lipgloss.Style
}

func newBrowseStyles() browseStyles {
	return browseStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		selected: lipgloss.NewStyle().Bold(true),
		revision: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		author:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		added:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		deleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		modified: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// browseModel is the bubbletea model for the log browser: a revision list
// on top, the selected revision's message and changed paths in a viewport
// below.
type browseModel struct {
	entries []svn.LogEntry
	cursor  int
	width   int
	height  int
	ready   bool

	viewport viewport.Model
	styles   browseStyles
	keys     browseKeyMap
	help     help.Model
}

func newBrowseModel(entries []svn.LogEntry) browseModel {
	return browseModel{
		entries: entries,
		cursor:  0,
		styles:  newBrowseStyles(),
		keys:    defaultBrowseKeys,
		help:    help.New(),
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Chrome around the viewport: title, separator above and below,
		// and the help line.
		detail := msg.Height - listHeight - 4
		if detail < 3 {
			detail = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, detail)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = detail
		}
		m.viewport.SetContent(m.detailContent())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.viewport.SetContent(m.detailContent())
				m.viewport.GotoTop()
			}

		default:
			// Scrolling keys are the viewport's own business.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m browseModel) View() string {
	if !m.ready {
		return "Loading history..."
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render(fmt.Sprintf("History (%d revisions)", len(m.entries))))
	b.WriteString("\n")

	start, end := listWindow(m.cursor, len(m.entries), listHeight)
	for i := start; i < end; i++ {
		cursor := "  "
		line := m.entryLine(m.entries[i])
		if i == m.cursor {
			cursor = m.styles.cursor.Render("▸ ")
			line = m.styles.selected.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - start; i < listHeight; i++ {
		b.WriteString("\n")
	}

	rule := m.styles.dim.Render(strings.Repeat("─", max(m.width, 1)))
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// entryLine is the one-line list form of an entry: revision, author, date
// and the first line of the message.
func (m browseModel) entryLine(entry svn.LogEntry) string {
	parts := []string{m.styles.revision.Render("r" + entry.Revision)}
	if entry.Author != "" {
		parts = append(parts, m.styles.author.Render(entry.Author))
	}
	if entry.Date != "" {
		parts = append(parts, m.styles.dim.Render(shortDate(entry.Date)))
	}
	parts = append(parts, firstLine(entry.Message))

	return strings.Join(parts, "  ")
}

// detailContent renders the selected revision in full for the viewport.
func (m browseModel) detailContent() string {
	if len(m.entries) == 0 {
		return ""
	}
	entry := m.entries[m.cursor]

	var b strings.Builder
	b.WriteString(m.styles.revision.Render("r" + entry.Revision))
	if entry.Author != "" {
		b.WriteString(m.styles.dim.Render(" | "))
		b.WriteString(m.styles.author.Render(entry.Author))
	}
	if entry.Date != "" {
		b.WriteString(m.styles.dim.Render(" | "))
		b.WriteString(entry.Date)
	}
	b.WriteString("\n\n")
	b.WriteString(entry.Message)
	b.WriteString("\n")

	if len(entry.Paths) > 0 {
		b.WriteString("\n")
		for _, p := range entry.Paths {
			b.WriteString(fmt.Sprintf("  %s %s\n", m.actionStyle(p.Action).Render(p.Action), p.Path))
		}
	}

	return b.String()
}

func (m browseModel) actionStyle(action string) lipgloss.Style {
	switch action {
	case "A":
		return m.styles.added
	case "D":
		return m.styles.deleted
	default:
		return m.styles.modified
	}
}

// listWindow picks the [start, end) slice of entries to show so the cursor
// stays visible.
func listWindow(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}

	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

// firstLine truncates a log message to its summary line.
func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return strings.TrimSpace(line)
}

// shortDate trims an ISO 8601 timestamp down to its date part.
func shortDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// RunLogBrowser opens the full-screen history view over the given entries
// and blocks until the user quits it.
func RunLogBrowser(entries []svn.LogEntry) error {
	m := newBrowseModel(entries)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
