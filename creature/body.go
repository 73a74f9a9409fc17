package creature

import "github.com/pthm-cable/wriggle/ik"

// Body pairs a spine with a half-width per vertebra so points on the skin can
// be sampled.
type Body struct {
	spine  *ik.Chain
	widths []float64
}

// Width returns the half-width at vertebra i. Vertebrae past the table have
// no width.
func (b *Body) Width(i int) float64 {
	if i < len(b.widths) {
		return b.widths[i]
	}
	return 0
}

// SurfacePoint returns the point at angleOffset from vertebra i's heading,
// lengthOffset beyond the skin.
func (b *Body) SurfacePoint(i int, angleOffset, lengthOffset float64) ik.Vec2 {
	dir := ik.FromAngle(b.spine.Angle(i) + angleOffset)
	return b.spine.Joint(i).Add(dir.Scale(b.Width(i) + lengthOffset))
}

// SkewedPoint is SurfacePoint with separate offsets beyond the skin along
// the world X and Y axes.
func (b *Body) SkewedPoint(i int, angleOffset, dx, dy float64) ik.Vec2 {
	dir := ik.FromAngle(b.spine.Angle(i) + angleOffset)
	w := b.Width(i)
	return b.spine.Joint(i).Add(ik.Vec2{X: dir.X * (w + dx), Y: dir.Y * (w + dy)})
}

// Outline returns the closed silhouette: down the right side, optionally
// around the tail tip, back up the left side, then over the snout.
func (b *Body) Outline(last int, tailTip bool, snout [3]ik.Vec2) []ik.Vec2 {
	pts := make([]ik.Vec2, 0, 2*(last+1)+4)
	for i := 0; i <= last; i++ {
		pts = append(pts, b.SurfacePoint(i, halfTurn, 0))
	}
	if tailTip {
		pts = append(pts, b.SurfacePoint(last, pi, 0))
	}
	for i := last; i >= 0; i-- {
		pts = append(pts, b.SurfacePoint(i, -halfTurn, 0))
	}
	return append(pts, snout[:]...)
}
