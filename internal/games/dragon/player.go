package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Player is the dragon. Its x never changes; obstacles scroll toward it instead.
type Player struct {
	position core.PointF
	velocity float64 // Vertical speed per logical frame, negative = up
	physics  config.PhysicsConfig
}

// NewPlayer creates a player at (x, y) with zero velocity.
func NewPlayer(x, y float64, physics config.PhysicsConfig) Player {
	return Player{
		position: core.NewPointF(x, y),
		physics:  physics,
	}
}

// Position returns the player's current position.
func (p Player) Position() core.PointF {
	return p.position
}

// Velocity returns the player's vertical velocity.
func (p Player) Velocity() float64 {
	return p.velocity
}

// ApplyGravity accelerates the player downward, capped at terminal velocity.
// There is no upward cap.
func (p *Player) ApplyGravity() {
	p.velocity = min(p.velocity+p.physics.Gravity, p.physics.TerminalVelocity)
}

// ApplyFlap replaces the current velocity with the flap velocity, whatever it was.
func (p *Player) ApplyFlap() {
	p.velocity = p.physics.FlapVelocity
}

// MoveVelocity moves the player by its velocity. The top edge pins y at 0 but
// keeps the velocity, so gravity keeps accumulating while pinned.
func (p *Player) MoveVelocity() {
	newY := p.position.Y + p.velocity
	if newY < 0 {
		p.position.Y = 0
		return
	}
	p.position.Y = newY
}
