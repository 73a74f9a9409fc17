// Package ik implements the joint chains that drive creature bodies: angle math,
// an angle-constrained follow-the-leader resolve and a single-sweep FABRIK resolve.
package ik

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at heading a.
func FromAngle(a float64) Vec2 {
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// IsZero reports whether v has no usable direction.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Heading returns the angle of v in (-pi, pi]. A zero vector has heading 0;
// callers that need a different fallback check IsZero first.
func (v Vec2) Heading() float64 { return math.Atan2(v.Y, v.X) }

// WithLen returns v rescaled to length l. A zero vector stays zero.
func (v Vec2) WithLen(l float64) Vec2 {
	n := v.Len()
	if n == 0 {
		return Vec2{}
	}
	return v.Scale(l / n)
}

// Lerp moves from v toward o by fraction t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// IsNaN reports whether either coordinate is NaN or infinite.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}
