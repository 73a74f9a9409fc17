package creature

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/wriggle/ik"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("newt"); err == nil {
		t.Error("expected error for unknown creature")
	}
}

func TestKindNextWraps(t *testing.T) {
	tests := []struct {
		in, want Kind
	}{
		{KindFish, KindSnake},
		{KindSnake, KindLizard},
		{KindLizard, KindFish},
	}
	for _, tt := range tests {
		if got := tt.in.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewBuildsEveryKind(t *testing.T) {
	cfg := loadConfig(t)
	origin := ik.Vec2{X: 640, Y: 400}
	for _, k := range Kinds {
		c, err := New(k, origin, cfg)
		if err != nil {
			t.Fatalf("New(%v): %v", k, err)
		}
		if c.Kind() != k {
			t.Errorf("New(%v).Kind() = %v", k, c.Kind())
		}
		if c.Spine().Head() != origin {
			t.Errorf("%v head = %v, want %v", k, c.Spine().Head(), origin)
		}
		_, limbed := c.(Limbed)
		if limbed != (k == KindLizard) {
			t.Errorf("%v limbed = %v", k, limbed)
		}
	}
}

func TestNewRejectsBadSpine(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Snake.Spine.LinkSize = 0
	if _, err := NewSnake(ik.Vec2{}, cfg); !errors.Is(err, ik.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}

	cfg = loadConfig(t)
	cfg.Fish.Spine.Joints = 5
	if _, err := NewFish(ik.Vec2{}, cfg); err == nil {
		t.Error("expected error for a fish too short for its fins")
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		name         string
		head, target ik.Vec2
		step         float64
		want         ik.Vec2
	}{
		{"along x", ik.Vec2{}, ik.Vec2{X: 100}, 8, ik.Vec2{X: 8}},
		{"diagonal", ik.Vec2{X: 1, Y: 1}, ik.Vec2{X: 4, Y: 5}, 10, ik.Vec2{X: 7, Y: 9}},
		{"overshoots close target", ik.Vec2{}, ik.Vec2{X: 2}, 12, ik.Vec2{X: 12}},
		{"target on head", ik.Vec2{X: 3, Y: 3}, ik.Vec2{X: 3, Y: 3}, 12, ik.Vec2{X: 3, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepToward(tt.head, tt.target, tt.step)
			if got.Dist(tt.want) > 1e-9 {
				t.Errorf("StepToward = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBodySurfacePoint(t *testing.T) {
	spine, err := ik.NewChain(ik.Vec2{}, 3, 64, ik.Unconstrained)
	if err != nil {
		t.Fatal(err)
	}
	b := Body{spine: spine, widths: []float64{10, 20}}

	got := b.SurfacePoint(1, math.Pi/2, 5)
	if got.Dist(ik.Vec2{X: 0, Y: 89}) > 1e-9 {
		t.Errorf("SurfacePoint = %v, want (0, 89)", got)
	}
	got = b.SurfacePoint(0, 0, 0)
	if got.Dist(ik.Vec2{X: 10}) > 1e-9 {
		t.Errorf("SurfacePoint on head = %v, want (10, 0)", got)
	}
	if w := b.Width(2); w != 0 {
		t.Errorf("Width past table = %v, want 0", w)
	}
}

func TestRenderSkeleton(t *testing.T) {
	c, err := ik.NewChain(ik.Vec2{}, 5, 10, ik.Unconstrained)
	if err != nil {
		t.Fatal(err)
	}
	var r recorder
	RenderSkeleton(&r, c)
	if r.lines != 4 || len(r.circles) != 5 {
		t.Errorf("skeleton drew %d lines and %d joints, want 4 and 5", r.lines, len(r.circles))
	}
}
