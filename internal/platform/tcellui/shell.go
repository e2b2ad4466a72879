// Package tcellui runs Flappy Dragon directly on a tcell screen: an event goroutine
// feeds key presses through a channel and a ticker drives rendering.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
)

// ShellName is the registry name of the tcell shell.
const ShellName = "tcell"

func init() {
	registry.Register(ShellName, func() registry.Shell { return &Shell{} })
}

// Shell runs sessions on a tcell screen. NewScreen is overridable for tests.
type Shell struct {
	NewScreen func() (tcell.Screen, error)
}

// Name implements registry.Shell.
func (*Shell) Name() string { return ShellName }

// Description implements registry.Shell.
func (*Shell) Description() string {
	return "tcell direct rendering"
}

// Run implements registry.Shell.
func (sh *Shell) Run(ctx context.Context, s registry.Session) error {
	newScreen := sh.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return newLoop(screen, s).run(ctx)
}

// loop owns one running session.
type loop struct {
	screen  tcell.Screen
	session registry.Session
	game    *dragon.Game
	buf     *core.Screen
	pending core.Action
}

func newLoop(screen tcell.Screen, s registry.Session) *loop {
	if s.Runtime.TickRate <= 0 {
		s.Runtime.TickRate = 60
	}
	w, h := screen.Size()
	return &loop{
		screen:  screen,
		session: s,
		game:    s.NewGame(),
		buf:     core.NewScreen(w, h),
	}
}

func (l *loop) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.session.Runtime.TickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go l.pollEvents(events, done)

	last := time.Now()
	l.draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !l.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			elapsed := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			if l.tick(elapsed) {
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes.
func (l *loop) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent buffers input for the next tick. It returns false on Ctrl+C.
func (l *loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a := mapKey(ev); a != core.ActionNone {
			l.pending = a
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		l.buf.Resize(w, h)
		l.screen.Sync()
	}
	return true
}

// tick advances the game and redraws. It returns true once the game asks to quit.
func (l *loop) tick(elapsedMs float64) bool {
	action := l.pending
	l.pending = core.ActionNone
	l.session.Advance(l.game, elapsedMs, action)

	if l.game.QuitRequested() {
		return true
	}
	l.draw()
	return false
}

func (l *loop) draw() {
	l.game.Render(l.buf)
	blit(l.screen, l.buf)
	l.screen.Show()
}

// mapKey translates a tcell key event to a game action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionFlap
	case tcell.KeyEscape:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'W':
			return core.ActionFlap
		case 'q', 'Q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
