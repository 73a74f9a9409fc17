package creature

import (
	"testing"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

// recorder is a Sink that keeps every call for inspection.
type recorder struct {
	curves   [][]ik.Vec2
	paths    [][]PathSegment
	starts   []ik.Vec2
	ellipses []ik.Vec2
	circles  []ik.Vec2
	lines    int
	styles   []Style
}

func (r *recorder) Curve(points []ik.Vec2, style Style) {
	r.curves = append(r.curves, append([]ik.Vec2(nil), points...))
	r.styles = append(r.styles, style)
}

func (r *recorder) BezierPath(start ik.Vec2, segments []PathSegment, style Style) {
	r.starts = append(r.starts, start)
	r.paths = append(r.paths, append([]PathSegment(nil), segments...))
	r.styles = append(r.styles, style)
}

func (r *recorder) Ellipse(center ik.Vec2, rx, ry, rotation float64, style Style) {
	r.ellipses = append(r.ellipses, center)
	r.styles = append(r.styles, style)
}

func (r *recorder) Circle(center ik.Vec2, radius float64, style Style) {
	r.circles = append(r.circles, center)
	r.styles = append(r.styles, style)
}

func (r *recorder) Line(a, b ik.Vec2, style Style) {
	r.lines++
	r.styles = append(r.styles, style)
}

// points returns every recorded position.
func (r *recorder) points() []ik.Vec2 {
	var pts []ik.Vec2
	for _, c := range r.curves {
		pts = append(pts, c...)
	}
	for i, p := range r.paths {
		pts = append(pts, r.starts[i])
		for _, s := range p {
			pts = append(pts, s.C1, s.C2, s.To)
		}
	}
	pts = append(pts, r.ellipses...)
	return append(pts, r.circles...)
}

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func checkFinite(t *testing.T, r *recorder) {
	t.Helper()
	for i, p := range r.points() {
		if p.IsNaN() {
			t.Fatalf("point %d is not finite: %v", i, p)
		}
	}
}
