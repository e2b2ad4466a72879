package dragon

import (
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

func testPhysics() config.PhysicsConfig {
	return config.DefaultDragonConfig().Physics
}

func TestPlayerGravityConvergesToTerminal(t *testing.T) {
	phys := testPhysics()

	for _, start := range []float64{-5, -2, 0, 1.9, phys.TerminalVelocity} {
		p := NewPlayer(5, 25, phys)
		p.velocity = start
		for i := 0; i < 200; i++ {
			p.ApplyGravity()
			if p.Velocity() > phys.TerminalVelocity {
				t.Fatalf("start %g: velocity %g exceeded terminal %g after %d steps",
					start, p.Velocity(), phys.TerminalVelocity, i+1)
			}
		}
		if p.Velocity() != phys.TerminalVelocity {
			t.Errorf("start %g: velocity = %g, want terminal %g", start, p.Velocity(), phys.TerminalVelocity)
		}
	}
}

func TestPlayerGravityAccelerates(t *testing.T) {
	p := NewPlayer(5, 25, testPhysics())
	p.ApplyGravity()
	if p.Velocity() != 0.2 {
		t.Errorf("velocity after one gravity step = %g, want 0.2", p.Velocity())
	}
}

func TestPlayerFlapOverridesVelocity(t *testing.T) {
	phys := testPhysics()
	for _, prior := range []float64{-10, -2, 0, 0.7, 2} {
		p := NewPlayer(5, 25, phys)
		p.velocity = prior
		p.ApplyFlap()
		if p.Velocity() != phys.FlapVelocity {
			t.Errorf("prior %g: velocity after flap = %g, want %g", prior, p.Velocity(), phys.FlapVelocity)
		}
	}
}

func TestPlayerFlapIgnoresTerminalVelocity(t *testing.T) {
	phys := testPhysics()
	phys.TerminalVelocity = -5

	p := NewPlayer(5, 25, phys)
	p.ApplyFlap()

	if p.Velocity() != phys.FlapVelocity {
		t.Errorf("velocity after flap = %g, want %g", p.Velocity(), phys.FlapVelocity)
	}
}

func TestPlayerMoveNeverAboveTop(t *testing.T) {
	phys := testPhysics()
	for _, y := range []float64{0, 0.5, 1, 10, 49} {
		for _, v := range []float64{-100, -2, -0.5, 0, 0.5, 2} {
			p := NewPlayer(5, y, phys)
			p.velocity = v
			p.MoveVelocity()
			if p.Position().Y < 0 {
				t.Errorf("y=%g v=%g: moved to %g", y, v, p.Position().Y)
			}
		}
	}
}

func TestPlayerCeilingKeepsVelocity(t *testing.T) {
	p := NewPlayer(5, 1, testPhysics())
	p.velocity = -2
	p.MoveVelocity()

	if p.Position().Y != 0 {
		t.Errorf("y = %g, want pinned at 0", p.Position().Y)
	}
	if p.Velocity() != -2 {
		t.Errorf("velocity = %g, ceiling must not zero it", p.Velocity())
	}

	// Gravity keeps accumulating while pinned
	p.ApplyGravity()
	p.MoveVelocity()
	if p.Position().Y != 0 || p.Velocity() != -1.8 {
		t.Errorf("pinned step: y=%g v=%g, want y=0 v=-1.8", p.Position().Y, p.Velocity())
	}
}

func TestPlayerXNeverChanges(t *testing.T) {
	p := NewPlayer(5, 25, testPhysics())
	for i := 0; i < 50; i++ {
		if i%7 == 0 {
			p.ApplyFlap()
		}
		p.ApplyGravity()
		p.MoveVelocity()
	}
	if p.Position().X != 5 {
		t.Errorf("x = %g, want 5", p.Position().X)
	}
}
