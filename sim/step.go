package sim

import (
	"github.com/pthm-cable/wriggle/components"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/systems"
	"github.com/pthm-cable/wriggle/telemetry"
)

// TargetSource yields the point the active creature chases each tick.
type TargetSource interface {
	Next() ik.Vec2
}

// fixedTarget is a TargetSource that never moves.
type fixedTarget ik.Vec2

func (t fixedTarget) Next() ik.Vec2 { return ik.Vec2(t) }

// Step advances one tick with the active creature chasing target.
func (s *Simulation) Step(target ik.Vec2) {
	s.Update(fixedTarget(target))
}

// Update advances one tick, reading the target from src inside the timed
// target phase.
func (s *Simulation) Update(src TargetSource) {
	s.perfCollector.StartTick()

	s.perfCollector.StartPhase(telemetry.PhaseTarget)
	target := src.Next()

	query := s.activeFilter.Query()
	for query.Next() {
		species, rig, pose, _ := query.Get()
		s.resolve(species.Kind, rig.Controller, pose, target)
	}

	s.tick++

	s.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	s.flushTelemetry()

	s.perfCollector.EndTick()
}

// resolve moves one creature toward target and records what happened.
func (s *Simulation) resolve(kind creature.Kind, ctrl creature.Controller, pose *components.Pose, target ik.Vec2) {
	s.perfCollector.StartPhase(telemetry.PhaseResolve)
	prev := ctrl.Spine().Head()
	before := limbSteps(ctrl)
	ctrl.Resolve(target)

	s.perfCollector.StartPhase(telemetry.PhaseMetrics)
	sample := systems.MeasureFrame(ctrl, prev)
	s.collector.RecordFrame(sample)
	s.sessions.RecordFrame(s.tick, sample)

	name := kind.String()
	for i, n := range limbSteps(ctrl) {
		for ; n > before[i]; n-- {
			s.record(telemetry.NewStepEvent(s.tick, name, i))
		}
	}
	if idler, ok := ctrl.(creature.Idler); ok && idler.Idle() {
		s.record(telemetry.NewIdleEvent(s.tick, name))
	}

	*pose = poseOf(ctrl, *pose)
	pose.Travel = float32(sample.HeadTravel)
	pose.Bend = float32(sample.BendRatio)
}

// record counts an event in the window and the open session.
func (s *Simulation) record(e telemetry.Event) {
	s.collector.Record(e)
	s.sessions.Record(e)
}

// limbSteps returns the re-plant count of each limb, or nil for limbless
// creatures.
func limbSteps(ctrl creature.Controller) []int {
	l, ok := ctrl.(creature.Limbed)
	if !ok {
		return nil
	}
	limbs := l.Limbs()
	steps := make([]int, len(limbs))
	for i, limb := range limbs {
		steps[i] = limb.Steps()
	}
	return steps
}

// poseOf refreshes the position fields of p from the controller.
func poseOf(ctrl creature.Controller, p components.Pose) components.Pose {
	spine := ctrl.Spine()
	head := spine.Head()
	p.X, p.Y = float32(head.X), float32(head.Y)
	p.Heading = float32(spine.Angle(0))

	p.Steps = 0
	for _, n := range limbSteps(ctrl) {
		p.Steps += int32(n)
	}

	p.Idle = false
	if idler, ok := ctrl.(creature.Idler); ok {
		p.Idle = idler.Idle()
	}
	return p
}
