// Package core provides the types shared by the game core and its frontends.
// It has no terminal or window dependencies (no Bubble Tea, no ebiten) so the
// game rules stay pure and testable.
package core

import (
	"cmp"
	"math"
)

// Vec is a position in play-field units, anchored at the top-left of a sprite.
// Units are pixels for the window frontend and cells for the terminal.
type Vec struct {
	X, Y float64
}

// Pixel returns the integer origin used for drawing and mask offsets.
// Flooring each coordinate on its own keeps offsets between two entities
// antisymmetric, which mask collision relies on.
func (v Vec) Pixel() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Rect is an axis-aligned box in play-field units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersection returns the overlapping region of r and other.
// The result has zero width or height when they do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Field is the play area. Entities live in [0, W] × [0, H].
type Field struct {
	W, H int
}

// InsideY reports whether y lies within the vertical bounds [0, H].
func (f Field) InsideY(y float64) bool {
	return y >= 0 && y <= float64(f.H)
}

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
