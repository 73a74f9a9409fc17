package systems

import (
	"testing"

	"github.com/pthm-cable/wriggle/telemetry"
)

func TestRegistryCoversFramePhases(t *testing.T) {
	reg := NewSystemRegistry()
	want := []string{
		telemetry.PhaseTarget,
		telemetry.PhaseResolve,
		telemetry.PhaseMetrics,
		telemetry.PhaseTelemetry,
		telemetry.PhaseRender,
	}

	ids := reg.IDs()
	if len(ids) != len(want) {
		t.Fatalf("registered %d phases, want %d", len(ids), len(want))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("phase %d = %q, want %q", i, ids[i], id)
		}
		if _, ok := reg.Get(id); !ok {
			t.Errorf("Get(%q) missing", id)
		}
	}
}

func TestRegistryNameFallback(t *testing.T) {
	reg := NewSystemRegistry()
	if got := reg.GetName(telemetry.PhaseResolve); got != "Resolve" {
		t.Errorf("GetName(resolve) = %q", got)
	}
	if got := reg.GetName("unknown"); got != "unknown" {
		t.Errorf("GetName(unknown) = %q, want fallback to id", got)
	}
}
