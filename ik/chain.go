package ik

import (
	"errors"
	"fmt"
	"math"
)

// Unconstrained lets consecutive links bend by a full turn.
const Unconstrained = TwoPi

// ErrInvalidConfiguration is returned when a chain cannot be built from the
// given parameters.
var ErrInvalidConfiguration = errors.New("ik: invalid chain configuration")

// Chain is a fixed-length sequence of joints joined by links of equal length.
// Joint 0 is the head. Angles[i] is the heading of the link arriving at joint i
// (pointing from joint i toward joint i-1), or the direction of travel for the
// head.
type Chain struct {
	joints          []Vec2
	angles          []float64
	linkSize        float64
	angleConstraint float64
}

// NewChain lays out jointCount joints from origin along +Y, linkSize apart.
// angleConstraint bounds the bend between consecutive links for Resolve; pass
// Unconstrained for none.
func NewChain(origin Vec2, jointCount int, linkSize, angleConstraint float64) (*Chain, error) {
	if jointCount < 2 {
		return nil, fmt.Errorf("%w: need at least 2 joints, got %d", ErrInvalidConfiguration, jointCount)
	}
	if !(linkSize > 0) || math.IsInf(linkSize, 0) {
		return nil, fmt.Errorf("%w: link size must be positive, got %v", ErrInvalidConfiguration, linkSize)
	}
	if !(angleConstraint >= 0) {
		return nil, fmt.Errorf("%w: angle constraint must be non-negative, got %v", ErrInvalidConfiguration, angleConstraint)
	}

	c := &Chain{
		joints:          make([]Vec2, jointCount),
		angles:          make([]float64, jointCount),
		linkSize:        linkSize,
		angleConstraint: angleConstraint,
	}
	c.joints[0] = origin
	for i := 1; i < jointCount; i++ {
		c.joints[i] = c.joints[i-1].Add(Vec2{Y: linkSize})
	}
	return c, nil
}

// Len returns the number of joints.
func (c *Chain) Len() int { return len(c.joints) }

// LinkSize returns the rest length between adjacent joints.
func (c *Chain) LinkSize() float64 { return c.linkSize }

// AngleConstraint returns the maximum bend between consecutive links.
func (c *Chain) AngleConstraint() float64 { return c.angleConstraint }

// Reach returns the distance from head to tail when fully stretched.
func (c *Chain) Reach() float64 { return c.linkSize * float64(len(c.joints)-1) }

// Joints exposes the joint positions head to tail. The slice is owned by the
// chain and rewritten on every resolve; callers must not modify it.
func (c *Chain) Joints() []Vec2 { return c.joints }

// Angles exposes the per-joint headings, parallel to Joints.
func (c *Chain) Angles() []float64 { return c.angles }

// Joint returns the position of joint i.
func (c *Chain) Joint(i int) Vec2 { return c.joints[i] }

// Angle returns the heading stored at joint i.
func (c *Chain) Angle(i int) float64 { return c.angles[i] }

// Head returns joint 0.
func (c *Chain) Head() Vec2 { return c.joints[0] }

// Tail returns the last joint.
func (c *Chain) Tail() Vec2 { return c.joints[len(c.joints)-1] }

// Resolve snaps the head onto target and drags every following joint behind
// its predecessor at exactly LinkSize, bending each link by at most
// AngleConstraint relative to the one before it.
func (c *Chain) Resolve(target Vec2) {
	if move := target.Sub(c.joints[0]); !move.IsZero() {
		c.angles[0] = NormalizeAngle(move.Heading())
	}
	c.joints[0] = target

	for i := 1; i < len(c.joints); i++ {
		raw := c.angles[i-1]
		if link := c.joints[i-1].Sub(c.joints[i]); !link.IsZero() {
			raw = link.Heading()
		}
		c.angles[i] = ConstrainAngle(raw, c.angles[i-1], c.angleConstraint)
		c.joints[i] = c.joints[i-1].Sub(FromAngle(c.angles[i]).Scale(c.linkSize))
	}
}

// FabrikResolve runs one forward pass pinning the head to target followed by
// one backward pass pinning the tail to anchor. It is a single sweep and is
// not iterated to convergence, so after the call the head sits within
// LinkSize of joint 1 rather than exactly on target. Angles are not touched.
func (c *Chain) FabrikResolve(target, anchor Vec2) {
	c.ForwardPass(target)
	c.BackwardPass(anchor)
}

// ForwardPass places the head on target and pulls each later joint to
// LinkSize from its new predecessor.
func (c *Chain) ForwardPass(target Vec2) {
	c.joints[0] = target
	for i := 1; i < len(c.joints); i++ {
		c.joints[i] = ConstrainDistance(c.joints[i], c.joints[i-1], c.linkSize)
	}
}

// BackwardPass places the tail on anchor and pulls each earlier joint to
// LinkSize from its new successor.
func (c *Chain) BackwardPass(anchor Vec2) {
	last := len(c.joints) - 1
	c.joints[last] = anchor
	for i := last - 1; i >= 0; i-- {
		c.joints[i] = ConstrainDistance(c.joints[i], c.joints[i+1], c.linkSize)
	}
}
