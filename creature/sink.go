package creature

import (
	"image/color"

	"github.com/pthm-cable/wriggle/ik"
)

// Style describes how a shape is painted.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64 // 0 disables the stroke
	NoFill      bool
}

// PathSegment is one cubic bezier step: two control points and an end point.
type PathSegment struct {
	C1, C2, To ik.Vec2
}

// Sink receives shapes in world coordinates, back to front.
type Sink interface {
	// Curve draws a closed smooth loop passing through every point in order.
	Curve(points []ik.Vec2, style Style)
	// BezierPath draws a path of cubic segments starting at start.
	BezierPath(start ik.Vec2, segments []PathSegment, style Style)
	// Ellipse draws an ellipse with radii rx along its rotated X axis and ry
	// along its rotated Y axis.
	Ellipse(center ik.Vec2, rx, ry, rotation float64, style Style)
	Circle(center ik.Vec2, r float64, style Style)
	Line(a, b ik.Vec2, style Style)
}

var jointFill = color.RGBA{R: 42, G: 44, B: 53, A: 255}

// RenderSkeleton draws a chain's links and joints for debugging.
func RenderSkeleton(s Sink, c *ik.Chain) {
	link := Style{Stroke: white, StrokeWidth: 8, NoFill: true}
	joints := c.Joints()
	for i := 0; i+1 < len(joints); i++ {
		s.Line(joints[i], joints[i+1], link)
	}
	joint := Style{Fill: jointFill, Stroke: white, StrokeWidth: 8}
	for _, j := range joints {
		s.Circle(j, 16, joint)
	}
}
