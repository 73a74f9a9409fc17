package systems

import (
	"math"

	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/telemetry"
)

// ChainMetrics measures how far a chain is from its own constraints.
type ChainMetrics struct {
	LinkError float64 // worst |link length - LinkSize| / LinkSize
	BendRatio float64 // worst |bend| / AngleConstraint, 0 for unconstrained chains
}

// MeasureChain inspects every link of c.
func MeasureChain(c *ik.Chain) ChainMetrics {
	var m ChainMetrics
	joints, angles := c.Joints(), c.Angles()
	link := c.LinkSize()
	limit := c.AngleConstraint()
	constrained := limit > 0 && limit < math.Pi

	for i := 1; i < len(joints); i++ {
		if e := math.Abs(joints[i-1].Dist(joints[i])-link) / link; e > m.LinkError {
			m.LinkError = e
		}
		if constrained {
			r := math.Abs(ik.RelativeAngleDiff(angles[i], angles[i-1])) / limit
			if r > m.BendRatio {
				m.BendRatio = r
			}
		}
	}
	return m
}

// MeasureFrame builds the telemetry sample for a creature after it resolved.
// prevHead is the head position before the resolve.
func MeasureFrame(c creature.Controller, prevHead ik.Vec2) telemetry.FrameSample {
	spine := MeasureChain(c.Spine())
	s := telemetry.FrameSample{
		HeadTravel: c.Spine().Head().Dist(prevHead),
		LinkError:  spine.LinkError,
		BendRatio:  spine.BendRatio,
	}
	if l, ok := c.(creature.Limbed); ok {
		for _, limb := range l.Limbs() {
			if e := MeasureChain(limb.Chain()).LinkError; e > s.LimbError {
				s.LimbError = e
			}
		}
	}
	return s
}

// GaitProgress returns how far the limb's ideal foot spot has drifted toward
// the re-plant threshold, in [0, 1].
func GaitProgress(l *creature.Limb, b *creature.Body, stepDistance float64) float64 {
	if stepDistance <= 0 {
		return 0
	}
	return clamp01(l.IdealFoot(b).Dist(l.Desired()) / stepDistance)
}
