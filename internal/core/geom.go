// Package core provides fundamental types and utilities shared by the simulation
// and its terminal shells. It has no external dependencies (especially no Bubble Tea
// or tcell) to keep game logic pure and testable.
package core

// PointF is a continuous 2D position in logical screen units.
// Y grows downward: y = 0 is the top edge of the playfield.
type PointF struct {
	X, Y float64
}

// NewPointF creates a point at (x, y).
func NewPointF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// Rect represents an axis-aligned cell rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
