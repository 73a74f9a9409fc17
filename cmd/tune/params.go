package main

import (
	"github.com/pthm-cable/wriggle/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable gait parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of gait parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "step_distance", Path: "lizard.gait.step_distance", Min: 80, Max: 320, Default: 200},
			{Name: "foot_blend", Path: "lizard.gait.foot_blend", Min: 0.05, Max: 0.9, Default: 0.4},
			{Name: "front_reach_deg", Path: "lizard.front.reach_deg", Min: 15, Max: 80, Default: 45},
			{Name: "front_reach_out", Path: "lizard.front.reach_out", Min: 20, Max: 140, Default: 80},
			{Name: "back_reach_deg", Path: "lizard.back.reach_deg", Min: 20, Max: 90, Default: 60},
			{Name: "back_reach_out", Path: "lizard.back.reach_out", Min: 20, Max: 140, Default: 80},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct and refreshes
// the derived reach angles. Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Lizard.Gait.StepDistance = clamped[0]
	cfg.Lizard.Gait.FootBlend = clamped[1]
	cfg.Lizard.Front.ReachDeg = clamped[2]
	cfg.Lizard.Front.ReachOut = clamped[3]
	cfg.Lizard.Back.ReachDeg = clamped[4]
	cfg.Lizard.Back.ReachOut = clamped[5]

	cfg.Derived.FrontReach = config.Radians(cfg.Lizard.Front.ReachDeg)
	cfg.Derived.BackReach = config.Radians(cfg.Lizard.Back.ReachDeg)
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Lizard.Gait.StepDistance,
		cfg.Lizard.Gait.FootBlend,
		cfg.Lizard.Front.ReachDeg,
		cfg.Lizard.Front.ReachOut,
		cfg.Lizard.Back.ReachDeg,
		cfg.Lizard.Back.ReachOut,
	}
}
