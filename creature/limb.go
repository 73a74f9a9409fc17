package creature

import (
	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

// Limb is a FABRIK leg hanging from one vertebra. Joint 0 is the foot and the
// last joint is the shoulder.
type Limb struct {
	chain    *ik.Chain
	vertebra int
	side     float64 // +1 right, -1 left
	reach    float64 // radians off the spine where the foot lands
	reachOut float64
	shoulder float64 // shoulder offset from the skin

	desired ik.Vec2
	aim     ik.Vec2
	planted bool
	steps   int
}

// NewLimb builds a leg from its geometry. reach is in radians.
func NewLimb(origin ik.Vec2, leg config.LegConfig, joints int, reach, side float64) (*Limb, error) {
	c, err := ik.NewChain(origin, joints, leg.LinkSize, ik.Unconstrained)
	if err != nil {
		return nil, err
	}
	return &Limb{
		chain:    c,
		vertebra: leg.Vertebra,
		side:     side,
		reach:    reach,
		reachOut: leg.ReachOut,
		shoulder: leg.ShoulderIn,
	}, nil
}

// Chain returns the leg's joints.
func (l *Limb) Chain() *ik.Chain { return l.chain }

// Side is +1 for a right leg and -1 for a left one.
func (l *Limb) Side() float64 { return l.side }

// Foot returns the tip of the leg.
func (l *Limb) Foot() ik.Vec2 { return l.chain.Head() }

// Shoulder returns where the leg joins the body.
func (l *Limb) Shoulder() ik.Vec2 { return l.chain.Tail() }

// Desired returns the spot the foot is currently planted toward.
func (l *Limb) Desired() ik.Vec2 { return l.desired }

// Aim returns the point the foot was pulled toward on the last update.
func (l *Limb) Aim() ik.Vec2 { return l.aim }

// Steps counts how many times the foot has been re-planted.
func (l *Limb) Steps() int { return l.steps }

// IdealFoot returns where the foot would be planted if it stepped now.
func (l *Limb) IdealFoot(b *Body) ik.Vec2 {
	return b.SurfacePoint(l.vertebra, l.reach*l.side, l.reachOut)
}

// Update re-plants the foot when its ideal spot has drifted more than
// stepDistance, eases the foot toward the planted spot by blend and resolves
// the leg between foot and shoulder. It reports whether a step was taken.
func (l *Limb) Update(b *Body, stepDistance, blend float64) bool {
	ideal := l.IdealFoot(b)
	stepped := false
	if !l.planted || ideal.Dist(l.desired) > stepDistance {
		l.desired = ideal
		if l.planted {
			l.steps++
			stepped = true
		}
		l.planted = true
	}

	l.aim = l.chain.Head().Lerp(l.desired, blend)
	shoulder := b.SurfacePoint(l.vertebra, halfTurn*l.side, l.shoulder)
	l.chain.FabrikResolve(l.aim, shoulder)
	return stepped
}
