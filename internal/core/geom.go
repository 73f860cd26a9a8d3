// Package core provides fundamental types and utilities for the arcade engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in field units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect represents an axis-aligned bounding box used for collision detection.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Circle is a circular body outline; C is the center.
type Circle struct {
	C Vec2
	R float64
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() Rect {
	return Rect{X: c.C.X - c.R, Y: c.C.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// RectIntersects reports whether two rectangles overlap.
// Rectangles that only touch along an edge do not intersect.
func RectIntersects(a, b Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

// Intersects is the method form of RectIntersects.
func (r Rect) Intersects(other Rect) bool {
	return RectIntersects(r, other)
}

// CircleIntersectsRect reports whether the circle overlaps the rectangle.
// The closest point of the rectangle must lie strictly inside the circle.
func CircleIntersectsRect(c Circle, r Rect) bool {
	closestX := ClampF(c.C.X, r.X, r.Right())
	closestY := ClampF(c.C.Y, r.Y, r.Bottom())
	dx := c.C.X - closestX
	dy := c.C.Y - closestY
	return dx*dx+dy*dy < c.R*c.R
}

// PointInRect reports whether p lies inside r, using the half-open
// interval [X, X+W) x [Y, Y+H).
func PointInRect(p Vec2, r Rect) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Contains is the method form of PointInRect.
func (r Rect) Contains(p Vec2) bool {
	return PointInRect(p, r)
}

// OverlapsSpan reports whether the open intervals (a0, a1) and (b0, b1) overlap.
func OverlapsSpan(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
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
