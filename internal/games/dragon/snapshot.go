package dragon

// Snapshot contains the observable game state for renderers and replays.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Mode      Mode
	Score     int
	Tick      uint64
	FrameTime float64

	PlayerX   float64
	PlayerY   float64
	PlayerVel float64

	ObstacleX     float64
	GapCenter     float64
	GapHalf       float64
	ObstacleScore int
	Collided      bool

	QuitRequested bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.player.Position()
	return Snapshot{
		Mode:          g.mode,
		Score:         g.score,
		Tick:          g.tickCount,
		FrameTime:     g.frameTime,
		PlayerX:       pos.X,
		PlayerY:       pos.Y,
		PlayerVel:     g.player.Velocity(),
		ObstacleX:     g.obstacle.X(),
		GapCenter:     g.obstacle.GapCenter(),
		GapHalf:       g.obstacle.HalfSize(),
		ObstacleScore: g.obstacle.CreationScore(),
		Collided:      g.obstacle.Collided(),
		QuitRequested: g.quit,
	}
}
