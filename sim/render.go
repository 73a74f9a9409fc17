package sim

import (
	"time"

	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/telemetry"
)

// Render draws the active creature into sink. With skeleton set the spine
// and limb chains are drawn on top. The time spent is charged to the render
// phase of the last tick.
func (s *Simulation) Render(sink creature.Sink, skeleton bool) {
	start := time.Now()

	ctrl := s.Active()
	ctrl.Render(sink)
	if skeleton {
		creature.RenderSkeleton(sink, ctrl.Spine())
		if l, ok := ctrl.(creature.Limbed); ok {
			for _, limb := range l.Limbs() {
				creature.RenderSkeleton(sink, limb.Chain())
			}
		}
	}

	s.perfCollector.AddToLastTick(telemetry.PhaseRender, time.Since(start))
}
