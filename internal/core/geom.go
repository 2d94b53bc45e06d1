// Package core provides fundamental types and utilities shared by the game logic
// and the frontends. It has no external dependencies so the maze logic stays
// pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a rectangle in a floating-point canvas (overlay coordinates).
type RectF struct {
	X, Y, W, H float64
}

// Scale maps a rectangle from a logical canvas of size (fromW, fromH) onto an
// integer target of size (toW, toH). Degenerate results keep at least one cell.
func (r RectF) Scale(fromW, fromH float64, toW, toH int) Rect {
	sx := float64(toW) / fromW
	sy := float64(toH) / fromH
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil((r.X + r.W) * sx))
	y1 := int(math.Ceil((r.Y + r.H) * sy))
	return Rect{X: x0, Y: y0, W: max(1, x1-x0), H: max(1, y1-y0)}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// math.Mod can round a tiny negative value up to exactly 2π.
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// DeadZone zeroes an analog axis value whose magnitude does not exceed dz.
func DeadZone(v, dz float64) float64 {
	if math.Abs(v) <= dz {
		return 0
	}
	return v
}
