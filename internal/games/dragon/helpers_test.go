package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
)

// fixedRNG always returns the same value and counts how often it was asked.
type fixedRNG struct {
	value float64
	calls int
}

func (r *fixedRNG) Uniform(min, max float64) float64 {
	r.calls++
	return r.value
}

// newTestGame builds a game with default config and every gap centered on y=25.
func newTestGame() (*Game, *fixedRNG) {
	rng := &fixedRNG{value: 25}
	return New(config.DefaultDragonConfig(), rng), rng
}

// hover pins the player so the next logical frame leaves y unchanged
// (gravity cancels the velocity exactly).
func hover(g *Game, y float64) {
	g.player.position.Y = y
	g.player.velocity = -g.cfg.Physics.Gravity
}
