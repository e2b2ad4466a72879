package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle is a wall spanning the full playfield height with one passable gap.
// Its difficulty (gap size and scroll speed) is fixed by the score at creation.
type Obstacle struct {
	x         float64
	gapCenter float64
	size      float64 // Full height of the gap
	score     int     // Score when this obstacle was created
	collided  bool
	tuning    config.ObstacleConfig
}

// NewObstacle creates an obstacle at x. It draws the gap center from rng exactly once.
func NewObstacle(x float64, score int, rng core.RNG, tuning config.ObstacleConfig) Obstacle {
	return Obstacle{
		x:         x,
		gapCenter: rng.Uniform(tuning.GapCenterMin, tuning.GapCenterMax),
		size:      tuning.GapSize(score),
		score:     score,
		tuning:    tuning,
	}
}

// X returns the obstacle's horizontal position.
func (o Obstacle) X() float64 {
	return o.x
}

// GapCenter returns the vertical center of the gap.
func (o Obstacle) GapCenter() float64 {
	return o.gapCenter
}

// Size returns the full height of the gap.
func (o Obstacle) Size() float64 {
	return o.size
}

// HalfSize returns the distance from the gap center to either gap edge.
func (o Obstacle) HalfSize() float64 {
	return o.size / 2
}

// CreationScore returns the score the obstacle was spawned with.
func (o Obstacle) CreationScore() int {
	return o.score
}

// Collided reports whether the last check found the player hitting the wall.
func (o Obstacle) Collided() bool {
	return o.collided
}

// Velocity returns the per-tick horizontal delta.
func (o Obstacle) Velocity() float64 {
	return o.tuning.Velocity(o.score)
}

// MoveVelocity scrolls the obstacle left by one tick.
func (o *Obstacle) MoveVelocity() {
	o.x += o.Velocity()
}

// InGap reports whether y is inside the gap band. Band edges count as inside.
func (o Obstacle) InGap(y float64) bool {
	half := o.HalfSize()
	return y >= o.gapCenter-half && y <= o.gapCenter+half
}

// CheckCollisionAndMove predicts whether this tick's movement carries the obstacle
// across the player's column while the player is outside the gap. On a hit the
// obstacle stays where it is, so the impact frame shows the wall at the player.
func (o *Obstacle) CheckCollisionAndMove(p *Player) {
	px := p.Position().X
	crossing := o.x >= px && o.x+o.Velocity() <= px

	o.collided = crossing && !o.InGap(p.Position().Y)
	if !o.collided {
		o.MoveVelocity()
	}
}

// OffScreen reports whether the obstacle reached the left boundary.
func (o Obstacle) OffScreen() bool {
	return o.x <= 0
}
