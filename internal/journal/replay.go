package journal

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// ReplayResult summarizes a headless re-simulation.
type ReplayResult struct {
	Runs       []int       // Score of every run that ended in GameOver, in order
	FinalMode  dragon.Mode // Mode after the last frame
	FinalScore int
	Frames     int
	Ticks      uint64 // Logical frames simulated across all runs
	Quit       bool
}

// Replay rebuilds the game a recording was made with and feeds it every frame.
// The core is deterministic, so the result matches what the player saw.
func Replay(rec Recording) (ReplayResult, error) {
	cfg, err := config.Parse([]byte(rec.ConfigYAML))
	if err != nil {
		return ReplayResult{}, fmt.Errorf("journal: replay config: %w", err)
	}

	g := dragon.New(cfg, core.NewRand(rec.Seed))
	res := ReplayResult{Frames: len(rec.Frames)}

	for i, f := range rec.Frames {
		if !f.Action.Valid() {
			return ReplayResult{}, fmt.Errorf("journal: frame %d: invalid action %d", i, f.Action)
		}
		step := g.Tick(f.ElapsedMs, f.Action)
		if step.Stepped {
			res.Ticks++
		}
		if step.Events.Has(dragon.EventCrash) {
			res.Runs = append(res.Runs, step.State.Score)
		}
	}

	res.FinalMode = g.Mode()
	res.FinalScore = g.Score()
	res.Quit = g.QuitRequested()
	return res, nil
}
