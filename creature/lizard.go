package creature

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

const (
	lizardLegs     = 4
	backElbowBend  = 30 // back-leg elbow offset along the leg normal
	legStrokeOuter = 40
	legStrokeInner = 32
	lizardEyeInset = -7
)

// lizardSnout holds the head-cap points with their separate X and Y insets.
var lizardSnout = [3]struct{ angle, dx, dy float64 }{
	{-pi / 6, -8, -10},
	{0, -6, -4},
	{pi / 6, -8, -10},
}

// Lizard walks toward the target on four FABRIK legs. Legs 0 and 1 are the
// front pair, 2 and 3 the back pair; even legs are on the right.
type Lizard struct {
	body      Body
	limbs     []*Limb
	speed     float64
	gait      config.GaitConfig
	bodyColor color.RGBA
}

// NewLizard builds a lizard with its head and feet at origin.
func NewLizard(origin ik.Vec2, cfg *config.Config) (*Lizard, error) {
	lc := cfg.Lizard
	spine, err := newSpine(origin, lc.Spine, cfg.Derived.LizardConstraint)
	if err != nil {
		return nil, fmt.Errorf("lizard spine: %w", err)
	}
	if len(lc.BodyWidth) != lc.Spine.Joints {
		return nil, fmt.Errorf("lizard has %d widths for %d joints", len(lc.BodyWidth), lc.Spine.Joints)
	}

	l := &Lizard{
		body:      Body{spine: spine, widths: lc.BodyWidth},
		speed:     lc.Speed,
		gait:      lc.Gait,
		bodyColor: rgba(lc.BodyColor),
	}
	for i := 0; i < lizardLegs; i++ {
		leg, reach := lc.Front, cfg.Derived.FrontReach
		if i >= 2 {
			leg, reach = lc.Back, cfg.Derived.BackReach
		}
		side := 1.0
		if i%2 == 1 {
			side = -1
		}
		limb, err := NewLimb(origin, leg, lc.Gait.Joints, reach, side)
		if err != nil {
			return nil, fmt.Errorf("lizard leg %d: %w", i, err)
		}
		l.limbs = append(l.limbs, limb)
	}
	return l, nil
}

func (l *Lizard) Kind() Kind { return KindLizard }

func (l *Lizard) Spine() *ik.Chain { return l.body.spine }

func (l *Lizard) Body() *Body { return &l.body }

func (l *Lizard) Limbs() []*Limb { return l.limbs }

// Gait returns the stepping parameters in use.
func (l *Lizard) Gait() config.GaitConfig { return l.gait }

// SetGait replaces the stepping parameters.
func (l *Lizard) SetGait(g config.GaitConfig) {
	g.Joints = l.gait.Joints
	l.gait = g
}

// Resolve moves the head a fixed step toward target and walks the legs.
func (l *Lizard) Resolve(target ik.Vec2) {
	spine := l.body.spine
	spine.Resolve(StepToward(spine.Head(), target, l.speed))
	for _, limb := range l.limbs {
		limb.Update(&l.body, l.gait.StepDistance, l.gait.FootBlend)
	}
}

// Render draws the legs first so the body covers the shoulders.
func (l *Lizard) Render(s Sink) {
	outer := Style{Stroke: white, StrokeWidth: legStrokeOuter, NoFill: true}
	inner := Style{Stroke: l.bodyColor, StrokeWidth: legStrokeInner, NoFill: true}
	for i, limb := range l.limbs {
		shoulder, foot := limb.Shoulder(), limb.Foot()
		elbow := limb.Chain().Joint(1)
		if i >= 2 {
			para := foot.Sub(shoulder)
			perp := ik.Vec2{X: -para.Y, Y: para.X}.WithLen(backElbowBend)
			elbow = elbow.Sub(perp.Scale(limb.Side()))
		}
		seg := []PathSegment{{C1: elbow, C2: elbow, To: foot}}
		s.BezierPath(shoulder, seg, outer)
		s.BezierPath(shoulder, seg, inner)
	}

	b := &l.body
	var snout [3]ik.Vec2
	for i, p := range lizardSnout {
		snout[i] = b.SkewedPoint(0, p.angle, p.dx, p.dy)
	}
	s.Curve(b.Outline(b.spine.Len()-1, false, snout), filled(l.bodyColor))

	eye := filled(white)
	s.Circle(b.SurfacePoint(0, 3*pi/5, lizardEyeInset), eyeRadius, eye)
	s.Circle(b.SurfacePoint(0, -3*pi/5, lizardEyeInset), eyeRadius, eye)
}
