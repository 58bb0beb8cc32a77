// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in world cells.
// Positions are fractional so bodies can move at sub-cell speeds;
// rendering snaps them to whole cells.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects returns true if this box overlaps another.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Center returns the centre point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// CenterOn returns the box moved so that its centre is at (cx, cy).
func (b Box) CenterOn(cx, cy float64) Box {
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
	return b
}

// Cell returns the integer cell of the box's top-left corner.
func (b Box) Cell() (int, int) {
	return int(math.Floor(b.X)), int(math.Floor(b.Y))
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
