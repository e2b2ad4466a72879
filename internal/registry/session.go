package registry

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/journal"
)

// Cues receives sound effects for game events. A nil Cues is silent.
type Cues interface {
	Flap()
	Crash()
}

// Session carries everything a shell needs to run one game.
type Session struct {
	Config   config.DragonConfig
	Runtime  core.RuntimeConfig
	Recorder *journal.Recorder // Optional
	Cues     Cues              // Optional
	Logger   *log.Logger       // Optional
}

// NewGame builds the game for this session, seeded from Runtime.Seed.
func (s Session) NewGame() *dragon.Game {
	return dragon.New(s.Config, core.NewRand(s.Runtime.Seed))
}

// Advance feeds one frame to g and fans the result out to the recorder, the
// sound cues and the log. Every shell calls it exactly once per rendered frame.
func (s Session) Advance(g *dragon.Game, elapsedMs float64, action core.Action) dragon.StepResult {
	if s.Recorder != nil {
		s.Recorder.Record(elapsedMs, action)
	}

	res := g.Tick(elapsedMs, action)

	if s.Cues != nil {
		if res.Events.Has(dragon.EventFlap) || res.Events.Has(dragon.EventStart) {
			s.Cues.Flap()
		}
		if res.Events.Has(dragon.EventCrash) {
			s.Cues.Crash()
		}
	}

	if s.Logger != nil {
		switch {
		case res.Events.Has(dragon.EventStart):
			s.Logger.Debug("run started", "seed", s.Runtime.Seed)
		case res.Events.Has(dragon.EventCrash):
			s.Logger.Info("run ended", "score", res.State.Score, "ticks", res.State.Tick)
		case res.Events.Has(dragon.EventScore):
			s.Logger.Debug("scored", "score", res.State.Score)
		}
	}

	return res
}
