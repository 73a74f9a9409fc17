package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	return cfg
}

func TestMeasureChainStraight(t *testing.T) {
	c, err := ik.NewChain(ik.Vec2{}, 6, 20, math.Pi/8)
	if err != nil {
		t.Fatal(err)
	}
	m := MeasureChain(c)
	if m.LinkError > 1e-12 || m.BendRatio != 0 {
		t.Errorf("straight chain metrics = %+v, want zero", m)
	}
}

func TestMeasureChainBent(t *testing.T) {
	c, err := ik.NewChain(ik.Vec2{}, 8, 20, math.Pi/8)
	if err != nil {
		t.Fatal(err)
	}
	// drag the head around a tight circle so the spine curls up to its limit
	for i := 0; i < 200; i++ {
		a := float64(i) * 0.3
		c.Resolve(ik.Vec2{X: 30 * math.Cos(a), Y: 30 * math.Sin(a)})
	}

	m := MeasureChain(c)
	if m.LinkError > 1e-9 {
		t.Errorf("link error = %v, want ~0", m.LinkError)
	}
	if m.BendRatio <= 0 || m.BendRatio > 1+1e-9 {
		t.Errorf("bend ratio = %v, want in (0, 1]", m.BendRatio)
	}
}

func TestMeasureChainUnconstrained(t *testing.T) {
	c, err := ik.NewChain(ik.Vec2{}, 4, 10, ik.Unconstrained)
	if err != nil {
		t.Fatal(err)
	}
	c.FabrikResolve(ik.Vec2{X: 5, Y: 5}, ik.Vec2{})
	if m := MeasureChain(c); m.BendRatio != 0 {
		t.Errorf("unconstrained bend ratio = %v, want 0", m.BendRatio)
	}
}

func TestMeasureFrame(t *testing.T) {
	cfg := loadConfig(t)
	for _, k := range creature.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			c, err := creature.New(k, ik.Vec2{X: 640, Y: 400}, cfg)
			if err != nil {
				t.Fatal(err)
			}
			prev := c.Spine().Head()
			c.Resolve(ik.Vec2{X: 640, Y: 100})
			s := MeasureFrame(c, prev)

			if s.HeadTravel <= 0 {
				t.Errorf("head travel = %v, want > 0", s.HeadTravel)
			}
			if s.LinkError > 1e-9 {
				t.Errorf("spine link error = %v", s.LinkError)
			}
			if s.BendRatio < 0 || s.BendRatio > 1+1e-9 {
				t.Errorf("bend ratio = %v, want in [0, 1]", s.BendRatio)
			}
			if k != creature.KindLizard && s.LimbError != 0 {
				t.Errorf("limbless %v has limb error %v", k, s.LimbError)
			}
		})
	}
}

func TestGaitProgress(t *testing.T) {
	cfg := loadConfig(t)
	l, err := creature.NewLizard(ik.Vec2{X: 640, Y: 400}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Resolve(ik.Vec2{X: 640, Y: 0})

	step := cfg.Lizard.Gait.StepDistance
	for i, limb := range l.Limbs() {
		p := GaitProgress(limb, l.Body(), step)
		if p < 0 || p > 1 {
			t.Errorf("leg %d progress = %v, want in [0, 1]", i, p)
		}
	}
	if p := GaitProgress(l.Limbs()[0], l.Body(), 0); p != 0 {
		t.Errorf("progress with zero step distance = %v, want 0", p)
	}
}
