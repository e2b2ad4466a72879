// Package tui runs Flappy Dragon under Bubble Tea. It measures real time between
// ticks, buffers key presses as edge-triggered actions, and draws the game through
// lipgloss. The same Model serves local play and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is the render rate used when none is configured.
const DefaultTickRate = 60

// TickMsg is sent once per rendered frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
