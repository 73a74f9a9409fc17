package systems

import (
	"testing"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

func TestWanderDeterministic(t *testing.T) {
	cfg := config.WanderConfig{Radius: 350, TimeScale: 0.004}
	center := ik.Vec2{X: 640, Y: 400}
	a := NewWander(42, center, cfg)
	b := NewWander(42, center, cfg)

	for i := 0; i < 500; i++ {
		pa, pb := a.Next(), b.Next()
		if pa != pb {
			t.Fatalf("tick %d: %v != %v for the same seed", i, pa, pb)
		}
	}
}

func TestWanderStaysNearCenter(t *testing.T) {
	cfg := config.WanderConfig{Radius: 200, TimeScale: 0.05}
	center := ik.Vec2{X: 100, Y: -50}
	w := NewWander(7, center, cfg)

	moved := false
	for i := 0; i < 2000; i++ {
		p := w.Next()
		d := p.Sub(center)
		if d.X < -200 || d.X > 200 || d.Y < -200 || d.Y > 200 {
			t.Fatalf("tick %d: %v left the wander box", i, p)
		}
		if p != center {
			moved = true
		}
	}
	if !moved {
		t.Error("wander never left the centre")
	}
}

func TestWanderIsSmooth(t *testing.T) {
	cfg := config.WanderConfig{Radius: 350, TimeScale: 0.004}
	w := NewWander(3, ik.Vec2{}, cfg)

	prev := w.Next()
	for i := 0; i < 1000; i++ {
		p := w.Next()
		// simplex gradients are bounded, so small time steps give small jumps
		if d := p.Dist(prev); d > 20 {
			t.Fatalf("tick %d: jumped %v", i, d)
		}
		prev = p
	}
}

func TestWanderRecenter(t *testing.T) {
	cfg := config.WanderConfig{Radius: 50, TimeScale: 0.01}
	w := NewWander(1, ik.Vec2{}, cfg)
	before := w.At(3)

	w.Recenter(ik.Vec2{X: 1000, Y: 1000})
	after := w.At(3)

	if d := after.Sub(before); d != (ik.Vec2{X: 1000, Y: 1000}) {
		t.Errorf("recenter shifted path by %v", d)
	}
}
