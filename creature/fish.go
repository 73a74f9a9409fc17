package creature

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

// Joint layout of the fish spine. Vertebrae with a width carry the body; the
// caudal fin starts at fishTailStart.
const (
	fishMidJoint  = 6
	fishTailStart = 8
)

// Fish swims toward the target with a limited turn rate and rests when close.
type Fish struct {
	body     Body
	steering *Steering
	idle     bool

	bodyColor color.RGBA
	finColor  color.RGBA
}

// NewFish builds a fish with its head at origin, initially heading along +X.
func NewFish(origin ik.Vec2, cfg *config.Config) (*Fish, error) {
	fc := cfg.Fish
	spine, err := newSpine(origin, fc.Spine, cfg.Derived.FishConstraint)
	if err != nil {
		return nil, fmt.Errorf("fish spine: %w", err)
	}
	if fc.Spine.Joints <= fishTailStart+3 || len(fc.BodyWidth) <= fishTailStart+1 {
		return nil, fmt.Errorf("fish needs %d joints and %d widths, got %d and %d",
			fishTailStart+4, fishTailStart+2, fc.Spine.Joints, len(fc.BodyWidth))
	}
	return &Fish{
		body:      Body{spine: spine, widths: fc.BodyWidth},
		steering:  NewSteering(fc.Speed, cfg.Derived.FishMaxTurn, fc.DeadZone, 0),
		bodyColor: rgba(fc.BodyColor),
		finColor:  rgba(fc.FinColor),
	}, nil
}

func (f *Fish) Kind() Kind { return KindFish }

func (f *Fish) Spine() *ik.Chain { return f.body.spine }

func (f *Fish) Body() *Body { return &f.body }

func (f *Fish) Steering() *Steering { return f.steering }

func (f *Fish) Idle() bool { return f.idle }

// Resolve steers the head one step toward target.
func (f *Fish) Resolve(target ik.Vec2) {
	next, ok := f.steering.Next(f.body.spine.Head(), target)
	f.idle = !ok
	if !ok {
		return
	}
	f.body.spine.Resolve(next)
}

// Render draws fins behind the body, then the body, dorsal fin and eyes.
func (f *Fish) Render(s Sink) {
	b := &f.body
	j := b.spine.Joints()
	a := b.spine.Angles()
	last := len(j) - 1
	bodyEnd := len(b.widths) - 1
	fin := filled(f.finColor)

	headToMid1 := ik.RelativeAngleDiff(a[0], a[fishMidJoint])
	headToMid2 := ik.RelativeAngleDiff(a[0], a[fishMidJoint+1])
	// split at the middle so a tightly curled fish does not flip sign past pi
	headToTail := headToMid1 + ik.RelativeAngleDiff(a[fishMidJoint], a[last])

	// pectoral fins
	s.Ellipse(b.SurfacePoint(3, pi/3, 0), 80, 32, a[2]-pi/4, fin)
	s.Ellipse(b.SurfacePoint(3, -pi/3, 0), 80, 32, a[2]+pi/4, fin)

	// ventral fins
	s.Ellipse(b.SurfacePoint(7, halfTurn, 0), 48, 16, a[6]-pi/4, fin)
	s.Ellipse(b.SurfacePoint(7, -halfTurn, 0), 48, 16, a[6]+pi/4, fin)

	// caudal fin
	tail := make([]ik.Vec2, 0, 2*(last-fishTailStart+1))
	for i := fishTailStart; i <= last; i++ {
		k := float64(i - fishTailStart)
		w := 1.5 * headToTail * k * k
		tail = append(tail, j[i].Add(ik.FromAngle(a[i]-halfTurn).Scale(w)))
	}
	topWidth := math.Max(-13, math.Min(13, headToTail*6))
	for i := last; i >= fishTailStart; i-- {
		tail = append(tail, j[i].Add(ik.FromAngle(a[i]+halfTurn).Scale(topWidth)))
	}
	s.Curve(tail, fin)

	s.Curve(b.Outline(bodyEnd, true, [3]ik.Vec2{
		b.SurfacePoint(0, -pi/6, 0),
		b.SurfacePoint(0, 0, 4),
		b.SurfacePoint(0, pi/6, 0),
	}), filled(f.bodyColor))

	// dorsal fin
	s.BezierPath(j[4], []PathSegment{
		{C1: j[5], C2: j[6], To: j[7]},
		{
			C1: j[6].Add(ik.FromAngle(a[6] + halfTurn).Scale(headToMid2 * 16)),
			C2: j[5].Add(ik.FromAngle(a[5] + halfTurn).Scale(headToMid1 * 16)),
			To: j[4],
		},
	}, fin)

	eye := filled(white)
	s.Circle(b.SurfacePoint(0, halfTurn, eyeInset), eyeRadius, eye)
	s.Circle(b.SurfacePoint(0, -halfTurn, eyeInset), eyeRadius, eye)
}
