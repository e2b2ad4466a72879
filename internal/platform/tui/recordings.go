package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/journal"
)

// maxRecordings is how many journal entries the browser loads.
const maxRecordings = 200

// RecordingsKeyMap defines the key bindings for the recordings browser.
type RecordingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k RecordingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k RecordingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultRecordingsKeyMap returns the default key bindings.
func DefaultRecordingsKeyMap() RecordingsKeyMap {
	return RecordingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordingsModel browses the session journal and re-simulates entries.
type RecordingsModel struct {
	store      *journal.Store
	recordings []journal.Summary
	table      table.Model
	help       help.Model
	keys       RecordingsKeyMap
	status     string
	width      int
	height     int
	quitting   bool
}

// NewRecordingsModel creates a browser over store.
func NewRecordingsModel(store *journal.Store, width, height int) RecordingsModel {
	m := RecordingsModel{
		store:  store,
		keys:   DefaultRecordingsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table sized to the window.
func (m *RecordingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Shell", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Frames", Width: 9},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches summaries from the journal and refreshes the table.
func (m *RecordingsModel) reload() {
	if m.store == nil {
		m.recordings = nil
		m.status = "journal unavailable"
		m.updateTableRows()
		return
	}

	list, err := m.store.List(maxRecordings)
	if err != nil {
		m.recordings = nil
		m.status = err.Error()
	} else {
		m.recordings = list
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current recordings.
func (m *RecordingsModel) updateTableRows() {
	rows := make([]table.Row, len(m.recordings))
	for i, r := range m.recordings {
		frames := strconv.Itoa(r.FrameCount)
		if r.Truncated {
			frames += "+"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			r.Shell,
			strconv.FormatInt(r.Seed, 10),
			frames,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// selected returns the summary under the cursor.
func (m RecordingsModel) selected() (journal.Summary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.recordings) {
		return journal.Summary{}, false
	}
	return m.recordings[i], true
}

// Init initializes the browser.
func (m RecordingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m RecordingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if sum, ok := m.selected(); ok {
				m.status = m.replay(sum.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if sum, ok := m.selected(); ok && m.store != nil {
				if err := m.store.Delete(sum.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("Deleted #%d", sum.ID)
				}
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// replay re-simulates a recording and describes the outcome.
func (m RecordingsModel) replay(id int64) string {
	rec, err := m.store.Load(id)
	if err != nil {
		return err.Error()
	}
	res, err := journal.Replay(rec)
	if err != nil {
		return err.Error()
	}
	return FormatReplay(id, res)
}

// FormatReplay renders a replay result on one line.
func FormatReplay(id int64, res journal.ReplayResult) string {
	runs := make([]string, len(res.Runs))
	best := 0
	for i, score := range res.Runs {
		runs[i] = strconv.Itoa(score)
		best = max(best, score)
	}
	return fmt.Sprintf("#%d: %d runs [%s], best %d, ended in %s with score %d",
		id, len(res.Runs), strings.Join(runs, " "), best, res.FinalMode, res.FinalScore)
}

// View renders the browser.
func (m RecordingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDED SESSIONS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RecordingsModel) renderTableContent() string {
	if len(m.recordings) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to fill the journal.")
	}

	return m.table.View()
}

// Status returns the last status line.
func (m RecordingsModel) Status() string {
	return m.status
}

// RunRecordings runs the recordings browser.
func RunRecordings(store *journal.Store, width, height int) error {
	p := tea.NewProgram(
		NewRecordingsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
