package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1.25, 0.125)
	if c.WindowDurationTicks() != 10 {
		t.Fatalf("WindowDurationTicks = %d, want 10", c.WindowDurationTicks())
	}

	for tick := int32(1); tick <= 10; tick++ {
		c.RecordFrame(FrameSample{
			HeadTravel: float64(tick),
			BendRatio:  0.1 * float64(tick),
			LinkError:  1e-12 * float64(tick),
		})
		if tick%5 == 0 {
			c.Record(NewStepEvent(tick, "lizard", 0))
		}
		if tick < 10 && c.ShouldFlush(tick) {
			t.Fatalf("ShouldFlush true early at tick %d", tick)
		}
	}
	c.Record(NewIdleEvent(10, "lizard"))
	c.Record(NewSelectEvent(10, "lizard"))

	if !c.ShouldFlush(10) {
		t.Fatal("expected ShouldFlush at window end")
	}
	s := c.Flush(10, "lizard")

	if s.Frames != 10 || s.Steps != 2 || s.IdleFrames != 1 || s.Switches != 1 {
		t.Errorf("counts = frames %d steps %d idle %d switches %d", s.Frames, s.Steps, s.IdleFrames, s.Switches)
	}
	if math.Abs(s.HeadTravelMean-5.5) > 1e-9 {
		t.Errorf("HeadTravelMean = %v, want 5.5", s.HeadTravelMean)
	}
	if math.Abs(s.BendMax-1.0) > 1e-9 {
		t.Errorf("BendMax = %v, want 1", s.BendMax)
	}
	if math.Abs(s.LinkErrorMax-1e-11) > 1e-15 {
		t.Errorf("LinkErrorMax = %v, want 1e-11", s.LinkErrorMax)
	}
	if math.Abs(s.SimTimeSec-1.25) > 1e-9 {
		t.Errorf("SimTimeSec = %v, want 1.25", s.SimTimeSec)
	}
	if s.Creature != "lizard" {
		t.Errorf("Creature = %q", s.Creature)
	}

	// the next window starts empty
	if c.ShouldFlush(11) {
		t.Error("ShouldFlush true right after a flush")
	}
	next := c.Flush(20, "lizard")
	if next.WindowStartTick != 10 || next.Frames != 0 || next.Steps != 0 || next.BendMax != 0 {
		t.Errorf("collector not reset: %+v", next)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0.001, 1.0/60)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("WindowDurationTicks = %d, want 1", c.WindowDurationTicks())
	}
}
