// Package core provides fundamental types and utilities for the crossing game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in board units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles share at least one point.
// Touching edges count as an overlap.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.Right() < other.X ||
		other.Right() < r.X ||
		r.Bottom() < other.Y ||
		other.Bottom() < r.Y)
}

// Within reports whether the point (x, y) lies closer than tol to the
// rectangle's bottom-right corner on both axes.
func (r Rect) Within(x, y, tol float64) bool {
	return math.Abs(r.Right()-x) < tol && math.Abs(r.Bottom()-y) < tol
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
