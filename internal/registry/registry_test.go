package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/journal"
)

type stubShell struct{ name string }

func (s stubShell) Name() string        { return s.name }
func (s stubShell) Description() string { return "stub " + s.name }

func (s stubShell) Run(ctx context.Context, _ Session) error {
	return ctx.Err()
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Shell { return stubShell{name: "zz-test"} })
	Register("aa-test", func() Shell { return stubShell{name: "aa-test"} })

	if !Exists("zz-test") {
		t.Fatal("Exists() = false after Register")
	}

	sh, err := Create("aa-test")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if sh.Name() != "aa-test" {
		t.Errorf("Name() = %q", sh.Name())
	}

	list := List()
	idx := map[string]int{}
	for i, info := range list {
		idx[info.Name] = i
	}
	if idx["aa-test"] > idx["zz-test"] {
		t.Error("List() should be sorted by name")
	}
	if list[idx["zz-test"]].Description != "stub zz-test" {
		t.Errorf("description = %q", list[idx["zz-test"]].Description)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Shell { return stubShell{name: "dup-test"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Shell { return stubShell{name: "dup-test"} })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-shell")
	if !errors.Is(err, ErrUnknownShell) {
		t.Errorf("Create() error = %v, want ErrUnknownShell", err)
	}
}

type countingCues struct{ flaps, crashes int }

func (c *countingCues) Flap()  { c.flaps++ }
func (c *countingCues) Crash() { c.crashes++ }

func TestSessionAdvance(t *testing.T) {
	cfg := config.DefaultDragonConfig()
	rec, err := journal.NewRecorder("test", 3, cfg, 0)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	cues := &countingCues{}
	s := Session{
		Config:   cfg,
		Runtime:  core.RuntimeConfig{Seed: 3},
		Recorder: rec,
		Cues:     cues,
	}
	g := s.NewGame()

	s.Advance(g, 0, core.ActionFlap) // start
	s.Advance(g, 5, core.ActionFlap) // flap
	for i := 0; i < 500 && g.Mode() == dragon.ModePlaying; i++ {
		s.Advance(g, 21, core.ActionNone)
	}

	if g.Mode() != dragon.ModeGameOver {
		t.Fatalf("expected the dragon to fall to game over, mode=%v", g.Mode())
	}
	if cues.flaps != 2 {
		t.Errorf("flap cues = %d, want 2", cues.flaps)
	}
	if cues.crashes != 1 {
		t.Errorf("crash cues = %d, want 1", cues.crashes)
	}
	if rec.Len() < 3 {
		t.Errorf("recorder saw %d frames", rec.Len())
	}
}

func TestSessionAdvanceWithoutCollaborators(t *testing.T) {
	s := Session{Config: config.DefaultDragonConfig()}
	g := s.NewGame()

	res := s.Advance(g, 0, core.ActionFlap)
	if g.Mode() != dragon.ModePlaying || !res.Events.Has(dragon.EventStart) {
		t.Errorf("mode=%v events=%b", g.Mode(), res.Events)
	}
}
