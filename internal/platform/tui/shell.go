package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

// ShellName is the registry name of the Bubble Tea shell.
const ShellName = "tea"

func init() {
	registry.Register(ShellName, func() registry.Shell { return Shell{} })
}

// Shell runs sessions in the local terminal under Bubble Tea.
type Shell struct{}

// Name implements registry.Shell.
func (Shell) Name() string { return ShellName }

// Description implements registry.Shell.
func (Shell) Description() string {
	return "Bubble Tea + lipgloss (default)"
}

// Run implements registry.Shell.
func (Shell) Run(ctx context.Context, s registry.Session) error {
	err := Run(s, tea.WithContext(ctx))
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
