package ik

import "math"

// TwoPi is a full turn.
const TwoPi = 2 * math.Pi

// DefaultHeading is the direction used when a distance constraint has no
// direction to work with (point on top of its anchor). It points along +Y,
// the direction chains are laid out in when constructed.
const DefaultHeading = math.Pi / 2

// NormalizeAngle reduces a into [0, 2pi).
func NormalizeAngle(a float64) float64 {
	if a >= 4*TwoPi || a < -4*TwoPi {
		a = math.Mod(a, TwoPi)
	}
	for a >= TwoPi {
		a -= TwoPi
	}
	for a < 0 {
		a += TwoPi
	}
	// a tiny negative input plus 2pi can round up to exactly 2pi
	if a >= TwoPi {
		a = 0
	}
	return a
}

// RelativeAngleDiff returns how far angle has to turn to reach anchor, in
// (-pi, pi]. The space is rotated so anchor sits at pi, which keeps the
// comparison away from the 0/2pi seam.
func RelativeAngleDiff(angle, anchor float64) float64 {
	return math.Pi - NormalizeAngle(angle-anchor+math.Pi)
}

// ConstrainAngle clamps angle to within maxDelta of anchor. Angles inside the
// limit are returned normalized; angles outside snap to the nearest boundary.
func ConstrainAngle(angle, anchor, maxDelta float64) float64 {
	diff := RelativeAngleDiff(angle, anchor)
	if math.Abs(diff) <= maxDelta {
		return NormalizeAngle(angle)
	}
	if diff > maxDelta {
		return NormalizeAngle(anchor - maxDelta)
	}
	return NormalizeAngle(anchor + maxDelta)
}

// ConstrainDistance moves point onto the circle of radius distance around
// anchor, along the ray from anchor through point. A point sitting exactly on
// the anchor is pushed out along DefaultHeading.
func ConstrainDistance(point, anchor Vec2, distance float64) Vec2 {
	d := point.Sub(anchor)
	n := d.Len()
	if n == 0 {
		return anchor.Add(FromAngle(DefaultHeading).Scale(distance))
	}
	return anchor.Add(d.Scale(distance / n))
}
