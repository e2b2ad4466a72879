package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

// Model is the Bubble Tea model for one Flappy Dragon session.
type Model struct {
	session  registry.Session
	game     *dragon.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int

	pending  core.Action // Last key press since the previous tick, consumed once
	lastTick time.Time
	last     dragon.StepResult
	quitting bool
}

// NewModel creates a Bubble Tea model for a session.
func NewModel(s registry.Session) Model {
	if s.Runtime.Seed == 0 {
		s.Runtime.Seed = time.Now().UnixNano()
	}
	if s.Runtime.TickRate <= 0 {
		s.Runtime.TickRate = DefaultTickRate
	}
	if s.Runtime.ScreenW <= 0 || s.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		s.Runtime.ScreenW, s.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		session: s,
		game:    s.NewGame(),
		screen:  core.NewScreen(s.Runtime.ScreenW, s.Runtime.ScreenH),
		keys:    DefaultKeyMap(),
		help:    h,
		width:   s.Runtime.ScreenW,
		height:  s.Runtime.ScreenH,
	}
	m.last.State = m.game.Snapshot()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if _, err := m.saveScreenshot(); err != nil && m.session.Logger != nil {
			m.session.Logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.pending = a
	}
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsedMs float64
	if !m.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	action := m.pending
	m.pending = core.ActionNone
	m.last = m.session.Advance(m.game, elapsedMs, action)

	if m.game.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.session.Runtime.TickRate)
}

// layout sizes the game screen to the window, leaving room for the help bar.
func (m *Model) layout() {
	h := m.height
	if m.showHelp {
		m.help.Width = m.width
		h -= lipgloss.Height(m.help.View(m.keys))
	}
	m.screen.Resize(m.width, core.Max(1, h))
}

// saveScreenshot writes the current frame as plain text and returns the path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".dragon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot save screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Game returns the game driven by this model.
func (m Model) Game() *dragon.Game {
	return m.game
}

// LastResult returns the result of the most recent tick.
func (m Model) LastResult() dragon.StepResult {
	return m.last
}

// Session returns the session the model was built with, after defaults were applied.
func (m Model) Session() registry.Session {
	return m.session
}

// Run starts a Bubble Tea program for the session and blocks until it exits.
func Run(s registry.Session, opts ...tea.ProgramOption) error {
	model := NewModel(s)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	return err
}
