package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"svnq.dev/svnq/svn"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func browseEntries() []svn.LogEntry {
	return []svn.LogEntry{
		{
			Revision: "3",
			Author:   "mwagner",
			Date:     "2024-05-02T10:11:12.000000Z",
			Message:  "fix parser crash\n\nlong explanation here",
			Paths: []svn.PathChange{
				{Action: "M", Path: "/trunk/src/parse.c"},
				{Action: "A", Path: "/trunk/src/parse_test.c"},
			},
		},
		{Revision: "2", Author: "finn", Date: "2024-05-01T08:00:00.000000Z", Message: "second"},
		{Revision: "1", Author: "finn", Date: "2024-04-30T08:00:00.000000Z", Message: "first"},
	}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowseModelUpdate(t *testing.T) {
	t.Run("window size readies the viewport", func(t *testing.T) {
		m := newBrowseModel(browseEntries())
		require.False(t, m.ready)

		next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		m = next.(browseModel)

		require.True(t, m.ready)
		require.Equal(t, 80, m.viewport.Width)
	})

	t.Run("cursor moves within bounds", func(t *testing.T) {
		m := newBrowseModel(browseEntries())
		next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		m = next.(browseModel)

		next, _ = m.Update(keyPress('j'))
		m = next.(browseModel)
		require.Equal(t, 1, m.cursor)

		next, _ = m.Update(keyPress('j'))
		m = next.(browseModel)
		next, _ = m.Update(keyPress('j'))
		m = next.(browseModel)
		require.Equal(t, 2, m.cursor, "cursor stops at the last entry")

		next, _ = m.Update(keyPress('k'))
		m = next.(browseModel)
		require.Equal(t, 1, m.cursor)
	})

	t.Run("quit keys quit", func(t *testing.T) {
		m := newBrowseModel(browseEntries())

		_, cmd := m.Update(keyPress('q'))
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())

		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestDetailContent(t *testing.T) {
	m := newBrowseModel(browseEntries())

	detail := m.detailContent()
	require.Contains(t, detail, "r3")
	require.Contains(t, detail, "mwagner")
	require.Contains(t, detail, "fix parser crash\n\nlong explanation here")
	require.Contains(t, detail, "M /trunk/src/parse.c")
	require.Contains(t, detail, "A /trunk/src/parse_test.c")

	m.cursor = 2
	detail = m.detailContent()
	require.Contains(t, detail, "r1")
	require.NotContains(t, detail, "parse.c")
}

func TestEntryLine(t *testing.T) {
	m := newBrowseModel(browseEntries())

	line := m.entryLine(m.entries[0])
	require.Equal(t, "r3  mwagner  2024-05-02  fix parser crash", line)
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		name      string
		cursor    int
		total     int
		height    int
		wantStart int
		wantEnd   int
	}{
		{name: "everything fits", cursor: 0, total: 3, height: 8, wantStart: 0, wantEnd: 3},
		{name: "cursor at the top", cursor: 0, total: 40, height: 8, wantStart: 0, wantEnd: 8},
		{name: "cursor mid-list stays centered", cursor: 20, total: 40, height: 8, wantStart: 16, wantEnd: 24},
		{name: "cursor at the bottom", cursor: 39, total: 40, height: 8, wantStart: 32, wantEnd: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := listWindow(tt.cursor, tt.total, tt.height)
			require.Equal(t, tt.wantStart, start)
			require.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestFirstLine(t *testing.T) {
	require.Equal(t, "summary", firstLine("summary\n\nbody text"))
	require.Equal(t, "no newline", firstLine("no newline"))
	require.Equal(t, "padded", firstLine("\n padded \nrest"))
}

func TestShortDate(t *testing.T) {
	require.Equal(t, "2024-05-02", shortDate("2024-05-02T10:11:12.000000Z"))
	require.Equal(t, "r42", shortDate("r42"))
}
