// Package geom turns the creature drawing primitives into polylines and
// triangles that an immediate-mode renderer can draw.
package geom

import (
	"math"

	"github.com/pthm-cable/wriggle/ik"
)

// CatmullRomLoop samples a closed Catmull-Rom spline through pts. Each span
// between consecutive points is split into steps segments. The result starts
// at pts[0] and does not repeat it at the end.
func CatmullRomLoop(pts []ik.Vec2, steps int) []ik.Vec2 {
	n := len(pts)
	if n < 3 || steps < 1 {
		return append([]ik.Vec2(nil), pts...)
	}
	out := make([]ik.Vec2, 0, n*steps)
	for i := 0; i < n; i++ {
		p0 := pts[(i-1+n)%n]
		p1 := pts[i]
		p2 := pts[(i+1)%n]
		p3 := pts[(i+2)%n]
		for s := 0; s < steps; s++ {
			out = append(out, catmullRom(p0, p1, p2, p3, float64(s)/float64(steps)))
		}
	}
	return out
}

// catmullRom evaluates the uniform Catmull-Rom segment between p1 and p2.
func catmullRom(p0, p1, p2, p3 ik.Vec2, t float64) ik.Vec2 {
	t2 := t * t
	t3 := t2 * t
	f := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b + (c-a)*t + (2*a-5*b+4*c-d)*t2 + (3*b-a-3*c+d)*t3)
	}
	return ik.Vec2{
		X: f(p0.X, p1.X, p2.X, p3.X),
		Y: f(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// CubicBezier samples the cubic curve from p0 to p3. The result excludes p0
// and ends exactly on p3, so consecutive segments can be appended.
func CubicBezier(p0, c1, c2, p3 ik.Vec2, steps int) []ik.Vec2 {
	if steps < 1 {
		steps = 1
	}
	out := make([]ik.Vec2, 0, steps)
	for s := 1; s < steps; s++ {
		t := float64(s) / float64(steps)
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		out = append(out, ik.Vec2{
			X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
			Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
		})
	}
	return append(out, p3)
}

// Ellipse samples n points around an ellipse with radius rx along its
// rotated X axis and ry along its rotated Y axis.
func Ellipse(center ik.Vec2, rx, ry, rotation float64, n int) []ik.Vec2 {
	if n < 3 {
		n = 3
	}
	sin, cos := math.Sincos(rotation)
	out := make([]ik.Vec2, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := rx*math.Cos(a), ry*math.Sin(a)
		out[i] = ik.Vec2{X: center.X + x*cos - y*sin, Y: center.Y + x*sin + y*cos}
	}
	return out
}

// SignedArea returns the shoelace area of poly. It is positive when the
// vertices turn counter-clockwise in a Y-up frame.
func SignedArea(poly []ik.Vec2) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Triangulate splits a simple polygon into triangles by ear clipping and
// returns vertex indices. Polygons that stop yielding ears, such as
// self-intersecting outlines, have their remainder fanned from the first
// remaining vertex.
func Triangulate(poly []ik.Vec2) [][3]int {
	n := len(poly)
	if n < 3 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	orient := 1.0
	if SignedArea(poly) < 0 {
		orient = -1
	}

	tris := make([][3]int, 0, n-2)
	for len(idx) > 3 {
		found := false
		for i := range idx {
			a := idx[(i-1+len(idx))%len(idx)]
			b := idx[i]
			c := idx[(i+1)%len(idx)]
			if !isEar(poly, idx, a, b, c, orient) {
				continue
			}
			tris = append(tris, [3]int{a, b, c})
			idx = append(idx[:i], idx[i+1:]...)
			found = true
			break
		}
		if !found {
			for i := 1; i+1 < len(idx); i++ {
				tris = append(tris, [3]int{idx[0], idx[i], idx[i+1]})
			}
			return tris
		}
	}
	return append(tris, [3]int{idx[0], idx[1], idx[2]})
}

// isEar reports whether the corner a-b-c is convex and contains no other
// remaining vertex.
func isEar(poly []ik.Vec2, idx []int, a, b, c int, orient float64) bool {
	pa, pb, pc := poly[a], poly[b], poly[c]
	if cross(pa, pb, pc)*orient <= 0 {
		return false
	}
	for _, k := range idx {
		if k == a || k == b || k == c {
			continue
		}
		if inTriangle(poly[k], pa, pb, pc, orient) {
			return false
		}
	}
	return true
}

func cross(a, b, c ik.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func inTriangle(p, a, b, c ik.Vec2, orient float64) bool {
	return cross(a, b, p)*orient >= 0 &&
		cross(b, c, p)*orient >= 0 &&
		cross(c, a, p)*orient >= 0
}
