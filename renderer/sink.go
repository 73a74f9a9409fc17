// Package renderer draws creatures with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/camera"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/renderer/geom"
)

// Sampling density for curved primitives.
const (
	curveSteps   = 6  // per Catmull-Rom span
	bezierSteps  = 12 // per cubic segment
	ellipseSteps = 36
)

// Sink implements creature.Sink on the raylib immediate-mode API. Shapes are
// given in world coordinates and mapped to the screen through the camera.
type Sink struct {
	cam *camera.Camera

	// scratch buffers reused across calls
	screen []rl.Vector2
}

var _ creature.Sink = (*Sink)(nil)

// NewSink creates a sink drawing through cam.
func NewSink(cam *camera.Camera) *Sink {
	return &Sink{cam: cam}
}

// Curve draws a closed smooth loop through points.
func (s *Sink) Curve(points []ik.Vec2, style creature.Style) {
	s.polygon(geom.CatmullRomLoop(points, curveSteps), true, style)
}

// BezierPath draws start followed by each cubic segment. Filled paths are
// closed back to start; the stroke follows the path as given.
func (s *Sink) BezierPath(start ik.Vec2, segments []creature.PathSegment, style creature.Style) {
	pts := make([]ik.Vec2, 0, 1+len(segments)*bezierSteps)
	pts = append(pts, start)
	prev := start
	for _, seg := range segments {
		pts = append(pts, geom.CubicBezier(prev, seg.C1, seg.C2, seg.To, bezierSteps)...)
		prev = seg.To
	}
	s.polygon(pts, false, style)
}

// Ellipse draws a rotated ellipse.
func (s *Sink) Ellipse(center ik.Vec2, rx, ry, rotation float64, style creature.Style) {
	s.polygon(geom.Ellipse(center, rx, ry, rotation, ellipseSteps), true, style)
}

// Circle draws a circle with its stroke centred on the edge.
func (s *Sink) Circle(center ik.Vec2, r float64, style creature.Style) {
	c := s.toScreen(center)
	half := style.StrokeWidth / 2
	if style.StrokeWidth > 0 {
		rl.DrawCircleV(c, s.cam.Scale(float32(r+half)), style.Stroke)
	}
	if !style.NoFill {
		inner := r
		if style.StrokeWidth > 0 {
			inner -= half
		}
		if inner > 0 {
			rl.DrawCircleV(c, s.cam.Scale(float32(inner)), style.Fill)
		}
	}
}

// Line draws a single stroked segment with round caps.
func (s *Sink) Line(a, b ik.Vec2, style creature.Style) {
	if style.StrokeWidth <= 0 {
		return
	}
	w := s.cam.Scale(float32(style.StrokeWidth))
	pa, pb := s.toScreen(a), s.toScreen(b)
	rl.DrawLineEx(pa, pb, w, style.Stroke)
	rl.DrawCircleV(pa, w/2, style.Stroke)
	rl.DrawCircleV(pb, w/2, style.Stroke)
}

// polygon fills pts as a polygon and strokes its outline.
func (s *Sink) polygon(pts []ik.Vec2, closed bool, style creature.Style) {
	if len(pts) < 2 {
		return
	}
	screen := s.project(pts)

	if !style.NoFill && len(pts) >= 3 {
		for _, tri := range geom.Triangulate(pts) {
			fillTriangle(screen[tri[0]], screen[tri[1]], screen[tri[2]], style.Fill)
		}
	}
	if style.StrokeWidth > 0 {
		w := s.cam.Scale(float32(style.StrokeWidth))
		n := len(screen)
		last := n - 1
		if closed {
			last = n
		}
		for i := 0; i < last; i++ {
			a, b := screen[i], screen[(i+1)%n]
			rl.DrawLineEx(a, b, w, style.Stroke)
			rl.DrawCircleV(a, w/2, style.Stroke)
		}
		if !closed {
			rl.DrawCircleV(screen[n-1], w/2, style.Stroke)
		}
	}
}

// project maps world points to the screen, reusing the scratch buffer.
func (s *Sink) project(pts []ik.Vec2) []rl.Vector2 {
	s.screen = s.screen[:0]
	for _, p := range pts {
		s.screen = append(s.screen, s.toScreen(p))
	}
	return s.screen
}

func (s *Sink) toScreen(p ik.Vec2) rl.Vector2 {
	x, y := s.cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}

// fillTriangle draws a triangle in the winding raylib expects, whichever
// order the vertices arrive in.
func fillTriangle(a, b, c rl.Vector2, col rl.Color) {
	// raylib culls triangles whose screen-space cross product is positive
	if (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(a, b, c, col)
}
