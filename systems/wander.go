package systems

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

// noiseOffset separates the X and Y noise tracks.
const noiseOffset = 97.31

// Wander produces a smooth pseudo-random pointer path around a centre. It
// stands in for the mouse when no one is driving the creature.
type Wander struct {
	noise     opensimplex.Noise
	center    ik.Vec2
	radius    float64
	timeScale float64
	t         float64
}

// NewWander creates a deterministic path for seed.
func NewWander(seed int64, center ik.Vec2, cfg config.WanderConfig) *Wander {
	return &Wander{
		noise:     opensimplex.New(seed),
		center:    center,
		radius:    cfg.Radius,
		timeScale: cfg.TimeScale,
	}
}

// Next advances the path one tick and returns the new target.
func (w *Wander) Next() ik.Vec2 {
	w.t += w.timeScale
	return w.At(w.t)
}

// At returns the target at noise time t without advancing.
func (w *Wander) At(t float64) ik.Vec2 {
	dx := clamp(w.noise.Eval2(t, 0), -1, 1)
	dy := clamp(w.noise.Eval2(t, noiseOffset), -1, 1)
	return w.center.Add(ik.Vec2{X: dx, Y: dy}.Scale(w.radius))
}

// Recenter moves the path, e.g. after the window is resized.
func (w *Wander) Recenter(c ik.Vec2) {
	w.center = c
}
