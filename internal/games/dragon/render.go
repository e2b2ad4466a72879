package dragon

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '@'
	WallChar    = '|'
	RisingChar  = '/'
	LevelChar   = '-'
	FallingChar = '\\'
	WallWidth   = 2 // Walls are drawn two cells wide
)

// tiltThreshold is the speed above which the dragon is drawn tilted.
const tiltThreshold = 0.5

// Render draws the current game state to the screen. The logical playfield is
// scaled to whatever size dst has; text stays unscaled.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case ModeMenu:
		g.drawMenu(dst)
	case ModePlaying:
		g.drawPlayfield(dst)
		dst.DrawTextColored(0, 0, "Press [Space] to flap.", core.ColorWhite)
		dst.DrawTextColored(0, 1, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)
	case ModeGameOver:
		g.drawGameOver(dst)
	}
}

func (g *Game) drawMenu(dst *core.Screen) {
	top := textTop(dst, 3)
	dst.DrawTextCentered(top, "Welcome to Flappy Dragon!", core.ColorBrightYellow)
	dst.DrawTextCentered(top+1, "Press [Space] to start.", core.ColorWhite)
	dst.DrawTextCentered(top+2, "Press [Esc] to quit.", core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	top := textTop(dst, 4)
	dst.DrawTextCentered(top, "You Died!", core.ColorRed)
	dst.DrawTextCentered(top+1, fmt.Sprintf("Score: %d", g.score), core.ColorBrightYellow)
	dst.DrawTextCentered(top+2, "Press [Space] to play again.", core.ColorWhite)
	dst.DrawTextCentered(top+3, "Press [Esc] to quit.", core.ColorGray)
}

// textTop returns the first row for a block of centered text: a quarter of the
// way down, never on row 0, and leaving room for all lines when the screen can.
func textTop(dst *core.Screen, lines int) int {
	return core.Clamp(dst.Height()/4, 1, dst.Height()-lines)
}

func (g *Game) drawPlayfield(dst *core.Screen) {
	v := newViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, dst)

	// Wall rows: everything above floor(center-half) and from floor(center+half) down.
	top := math.Floor(g.obstacle.GapCenter() - g.obstacle.HalfSize())
	bottom := math.Floor(g.obstacle.GapCenter() + g.obstacle.HalfSize())
	gapStart := v.firstRowAt(top)
	gapEnd := v.firstRowAt(bottom)

	col := v.col(g.obstacle.X())
	dst.DrawRect(core.NewRect(col, 0, WallWidth, gapStart), WallChar, core.ColorGray)
	dst.DrawRect(core.NewRect(col, gapEnd, WallWidth, dst.Height()-gapEnd), WallChar, core.ColorGray)

	pos := g.player.Position()
	px, py := v.col(pos.X), v.row(pos.Y)
	dst.SetColored(px, py, PlayerChar, core.ColorBrightGreen)
	dst.SetColored(px+1, py, tiltGlyph(g.player.Velocity()), core.ColorGreen)
}

// tiltGlyph picks a wing glyph from vertical velocity.
func tiltGlyph(vel float64) rune {
	switch {
	case vel < -tiltThreshold:
		return RisingChar
	case vel > tiltThreshold:
		return FallingChar
	default:
		return LevelChar
	}
}

// viewport maps logical playfield coordinates to screen cells.
type viewport struct {
	logicalW, logicalH float64
	screenW, screenH   float64
}

func newViewport(logicalW, logicalH int, dst *core.Screen) viewport {
	return viewport{
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
		screenW:  float64(dst.Width()),
		screenH:  float64(dst.Height()),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.screenW / v.logicalW))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.screenH / v.logicalH))
}

// logicalRow returns the integer logical row shown on screen row r.
func (v viewport) logicalRow(r int) float64 {
	return math.Floor(float64(r) * v.logicalH / v.screenH)
}

// firstRowAt returns the first screen row whose logical row is at least ly,
// or the screen height if there is none.
func (v viewport) firstRowAt(ly float64) int {
	r := 0
	for r < int(v.screenH) && v.logicalRow(r) < ly {
		r++
	}
	return r
}
