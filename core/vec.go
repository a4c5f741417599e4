package core

import "math"

// Vec2 is a 2D float vector used for movement directions. The zero value
// doubles as the "no direction" marker; consumers that must distinguish
// "none" from "arrived" get an explicit ok flag from the field queries.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o. Complexity: O(1).
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s. Complexity: O(1).
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v. Complexity: O(1).
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v
// is (numerically) zero. Complexity: O(1).
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether v is numerically the zero vector.
func (v Vec2) IsZero() bool {
	return v.Len() < 1e-9
}
