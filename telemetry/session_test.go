package telemetry

import (
	"math"
	"testing"
)

func TestSessionTracker(t *testing.T) {
	st := NewSessionTracker()

	if _, ok := st.End(0, 0.1); ok {
		t.Fatal("End without Begin reported a session")
	}

	st.Begin("lizard", 10)
	for tick := int32(11); tick <= 20; tick++ {
		st.RecordFrame(tick, FrameSample{HeadTravel: 12, BendRatio: float64(tick) / 40})
	}
	st.Record(NewStepEvent(15, "lizard", 2))
	st.Record(NewStepEvent(18, "lizard", 1))
	st.Record(NewIdleEvent(19, "lizard"))

	s, ok := st.End(20, 0.1)
	if !ok {
		t.Fatal("expected a finished session")
	}
	if s.Creature != "lizard" || s.StartTick != 10 || s.EndTick != 20 {
		t.Errorf("session bounds = %+v", s)
	}
	if math.Abs(s.DurationSec-1.0) > 1e-6 {
		t.Errorf("DurationSec = %v, want 1", s.DurationSec)
	}
	if math.Abs(s.Distance-120) > 1e-9 || s.Steps != 2 || s.IdleTicks != 1 {
		t.Errorf("session totals = %+v", s)
	}
	if math.Abs(s.PeakBend-0.5) > 1e-9 {
		t.Errorf("PeakBend = %v, want 0.5", s.PeakBend)
	}
	if st.Active() != nil {
		t.Error("session still open after End")
	}

	// a second stint adds to the creature's totals
	st.Begin("lizard", 30)
	st.RecordFrame(31, FrameSample{HeadTravel: 5})
	st.End(31, 0.1)

	total := st.Total("lizard")
	if total == nil || math.Abs(total.Distance-125) > 1e-9 || total.Steps != 2 {
		t.Errorf("lizard total = %+v", total)
	}
	if st.Total("fish") != nil {
		t.Error("fish total exists without a session")
	}
}

func TestSessionTrackerIgnoresFramesWhenClosed(t *testing.T) {
	st := NewSessionTracker()
	st.RecordFrame(1, FrameSample{HeadTravel: 10})
	st.Record(NewStepEvent(1, "lizard", 0))
	if st.Active() != nil {
		t.Error("recording opened a session")
	}
}
