// Package dragon implements Flappy Dragon: a dragon falls under gravity, flaps to
// climb, and must fly through the gap of walls that scroll in from the right.
//
// The simulation runs on a fixed logical frame. Shells call Tick once per rendered
// frame with the real elapsed time; Tick folds that time into an accumulator and
// advances physics by at most one logical frame per call.
package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Events is a bitmask of things that happened during one Tick.
type Events uint8

const (
	EventStart Events = 1 << iota // A new run started (Menu/GameOver -> Playing)
	EventFlap                     // Flap applied
	EventScore                    // An obstacle scrolled off and score went up
	EventCrash                    // Playing -> GameOver
	EventQuit                     // Termination requested
)

// Has reports whether every event in x is set.
func (e Events) Has(x Events) bool {
	return e&x == x
}

// StepResult is returned by Tick.
type StepResult struct {
	State   Snapshot
	Stepped bool // A logical frame was simulated during this call
	Events  Events
}

// Game owns the complete simulation state. It is not safe for concurrent use.
type Game struct {
	cfg      config.DragonConfig
	rng      core.RNG
	player   Player
	obstacle Obstacle
	mode     Mode

	frameTime float64 // Accumulated real milliseconds since the last logical frame
	score     int
	quit      bool
	tickCount uint64 // Logical frames simulated in the current run
}

// New creates a game in the menu. The menu already holds a player and an obstacle
// so renderers always have something to read.
func New(cfg config.DragonConfig, rng core.RNG) *Game {
	g := &Game{
		cfg:  cfg,
		rng:  rng,
		mode: ModeMenu,
	}
	g.player = g.newPlayer()
	g.obstacle = g.newObstacle(0)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dragon"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Dragon"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.DragonConfig {
	return g.cfg
}

// Reset starts a fresh run: new player, new obstacle at score 0, empty accumulator.
func (g *Game) Reset() {
	g.player = g.newPlayer()
	g.obstacle = g.newObstacle(0)
	g.frameTime = 0
	g.score = 0
	g.tickCount = 0
	g.mode = ModePlaying
}

func (g *Game) newPlayer() Player {
	return NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Physics)
}

func (g *Game) newObstacle(score int) Obstacle {
	return NewObstacle(float64(g.cfg.Screen.Width), score, g.rng, g.cfg.Obstacles)
}

// Tick advances the game by elapsedMs of real time with an optional key press.
// Menu and GameOver only react to keys. Playing accumulates time and simulates one
// logical frame once the accumulator exceeds the frame duration; a flap is applied
// on every call regardless of the accumulator.
func (g *Game) Tick(elapsedMs float64, key core.Action) StepResult {
	var res StepResult

	switch g.mode {
	case ModeMenu, ModeGameOver:
		res.Events = g.handleIdleKey(key)
	case ModePlaying:
		res.Stepped, res.Events = g.play(elapsedMs, key)
	}

	res.State = g.Snapshot()
	return res
}

// handleIdleKey processes input on the menu and game over screens.
func (g *Game) handleIdleKey(key core.Action) Events {
	switch key {
	case core.ActionFlap:
		g.Reset()
		return EventStart
	case core.ActionQuit:
		g.quit = true
		return EventQuit
	}
	return 0
}

func (g *Game) play(elapsedMs float64, key core.Action) (bool, Events) {
	var ev Events
	stepped := false

	if elapsedMs > 0 {
		g.frameTime += elapsedMs
	}
	if g.frameTime > g.cfg.Timing.FrameDurationMs {
		ev |= g.step()
		g.frameTime = 0
		stepped = true
	}

	if key == core.ActionFlap {
		g.player.ApplyFlap()
		ev |= EventFlap
	}
	return stepped, ev
}

// step simulates exactly one logical frame.
func (g *Game) step() Events {
	var ev Events
	g.tickCount++

	g.player.ApplyGravity()
	g.player.MoveVelocity()
	g.obstacle.CheckCollisionAndMove(&g.player)

	if g.player.Position().Y > float64(g.cfg.Screen.Height) || g.obstacle.Collided() {
		g.mode = ModeGameOver
		ev |= EventCrash
	}

	if g.obstacle.OffScreen() {
		g.score++
		g.obstacle = g.newObstacle(g.score)
		ev |= EventScore
	}
	return ev
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of obstacles passed in the current run.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacle returns a copy of the live obstacle.
func (g *Game) Obstacle() Obstacle {
	return g.obstacle
}

// QuitRequested reports whether a Quit key was pressed on the menu or game over screen.
func (g *Game) QuitRequested() bool {
	return g.quit
}

// TickCount returns the number of logical frames simulated in the current run.
func (g *Game) TickCount() uint64 {
	return g.tickCount
}
