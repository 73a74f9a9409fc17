// Package config provides configuration loading and access for the creatures.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Camera     CameraConfig     `yaml:"camera"`
	Fish       FishConfig       `yaml:"fish"`
	Snake      SnakeConfig      `yaml:"snake"`
	Lizard     LizardConfig     `yaml:"lizard"`
	Wander     WanderConfig     `yaml:"wander"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int   `yaml:"width"`
	Height     int   `yaml:"height"`
	TargetFPS  int   `yaml:"target_fps"`
	Background Color `yaml:"background"`
}

// SimulationConfig holds frame loop settings.
type SimulationConfig struct {
	DT       float64 `yaml:"dt"`       // Seconds per tick, used for telemetry windows
	Creature string  `yaml:"creature"` // Creature active at start: fish, snake or lizard
}

// CameraConfig holds viewport limits.
type CameraConfig struct {
	MinZoom float32 `yaml:"min_zoom"`
	MaxZoom float32 `yaml:"max_zoom"`
}

// Color is an opaque RGB colour.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// SpineConfig describes a creature's main angle-constrained chain.
type SpineConfig struct {
	Joints             int     `yaml:"joints"`
	LinkSize           float64 `yaml:"link_size"`
	AngleConstraintDeg float64 `yaml:"angle_constraint_deg"` // Max bend between consecutive links
}

// FishConfig holds the free-swimming creature's parameters.
type FishConfig struct {
	Spine      SpineConfig `yaml:"spine"`
	BodyWidth  []float64   `yaml:"body_width"`   // Half-width per vertebra; tail fin joints have none
	Speed      float64     `yaml:"speed"`        // Head travel per tick
	MaxTurnDeg float64     `yaml:"max_turn_deg"` // Heading change per tick
	DeadZone   float64     `yaml:"dead_zone"`    // No movement when the head is this close to the target
	BodyColor  Color       `yaml:"body_color"`
	FinColor   Color       `yaml:"fin_color"`
}

// SnakeConfig holds the snake's parameters.
type SnakeConfig struct {
	Spine      SpineConfig `yaml:"spine"`
	HeadWidths []float64   `yaml:"head_widths"` // Widths of the first vertebrae
	TaperBase  float64     `yaml:"taper_base"`  // Remaining vertebra i has width taper_base - i
	Speed      float64     `yaml:"speed"`
	BodyColor  Color       `yaml:"body_color"`
}

// LegConfig holds limb geometry for one pair of legs.
type LegConfig struct {
	Vertebra   int     `yaml:"vertebra"`    // Spine joint the pair hangs from
	LinkSize   float64 `yaml:"link_size"`   // Length of each leg segment
	ReachDeg   float64 `yaml:"reach_deg"`   // Angle off the spine where feet are placed
	ReachOut   float64 `yaml:"reach_out"`   // Distance past the body surface for the feet
	ShoulderIn float64 `yaml:"shoulder_in"` // Offset from the body surface for the shoulder
}

// GaitConfig controls stepping.
type GaitConfig struct {
	Joints       int     `yaml:"joints"`        // Joints per leg
	StepDistance float64 `yaml:"step_distance"` // Re-plant a foot once its ideal spot drifts this far
	FootBlend    float64 `yaml:"foot_blend"`    // Fraction of the way a foot moves toward its planted spot per tick
}

// LizardConfig holds the legged creature's parameters.
type LizardConfig struct {
	Spine     SpineConfig `yaml:"spine"`
	BodyWidth []float64   `yaml:"body_width"`
	Speed     float64     `yaml:"speed"`
	Front     LegConfig   `yaml:"front"`
	Back      LegConfig   `yaml:"back"`
	Gait      GaitConfig  `yaml:"gait"`
	BodyColor Color       `yaml:"body_color"`
}

// WanderConfig holds the headless pointer path parameters.
type WanderConfig struct {
	Radius    float64 `yaml:"radius"`     // Max distance of the target from the screen centre
	TimeScale float64 `yaml:"time_scale"` // Noise advance per tick
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FishConstraint   float64 // Fish.Spine.AngleConstraintDeg in radians
	FishMaxTurn      float64 // Fish.MaxTurnDeg in radians
	SnakeConstraint  float64
	LizardConstraint float64
	FrontReach       float64 // Lizard.Front.ReachDeg in radians
	BackReach        float64
	ScreenW32        float32
	ScreenH32        float32
	CenterX          float64 // Screen centre, creature origin
	CenterY          float64
	DT32             float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects settings the creatures cannot be built from.
func (c *Config) validate() error {
	if c.Simulation.DT <= 0 {
		return fmt.Errorf("simulation.dt must be positive, got %v", c.Simulation.DT)
	}
	if len(c.Fish.BodyWidth) > c.Fish.Spine.Joints {
		return fmt.Errorf("fish.body_width has %d entries for %d joints", len(c.Fish.BodyWidth), c.Fish.Spine.Joints)
	}
	if len(c.Lizard.BodyWidth) != c.Lizard.Spine.Joints {
		return fmt.Errorf("lizard.body_width has %d entries, want %d", len(c.Lizard.BodyWidth), c.Lizard.Spine.Joints)
	}
	for name, leg := range map[string]LegConfig{"front": c.Lizard.Front, "back": c.Lizard.Back} {
		if leg.Vertebra < 0 || leg.Vertebra >= c.Lizard.Spine.Joints {
			return fmt.Errorf("lizard.%s.vertebra %d outside spine of %d joints", name, leg.Vertebra, c.Lizard.Spine.Joints)
		}
	}
	if c.Lizard.Gait.FootBlend < 0 || c.Lizard.Gait.FootBlend > 1 {
		return fmt.Errorf("lizard.gait.foot_blend must be in [0, 1], got %v", c.Lizard.Gait.FootBlend)
	}
	switch c.Simulation.Creature {
	case "fish", "snake", "lizard":
	default:
		return fmt.Errorf("simulation.creature %q is not one of fish, snake, lizard", c.Simulation.Creature)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FishConstraint = Radians(c.Fish.Spine.AngleConstraintDeg)
	c.Derived.FishMaxTurn = Radians(c.Fish.MaxTurnDeg)
	c.Derived.SnakeConstraint = Radians(c.Snake.Spine.AngleConstraintDeg)
	c.Derived.LizardConstraint = Radians(c.Lizard.Spine.AngleConstraintDeg)
	c.Derived.FrontReach = Radians(c.Lizard.Front.ReachDeg)
	c.Derived.BackReach = Radians(c.Lizard.Back.ReachDeg)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.CenterX = float64(c.Screen.Width) / 2
	c.Derived.CenterY = float64(c.Screen.Height) / 2
	c.Derived.DT32 = float32(c.Simulation.DT)

	if c.Camera.MinZoom <= 0 {
		c.Camera.MinZoom = 0.25
	}
	if c.Camera.MaxZoom < c.Camera.MinZoom {
		c.Camera.MaxZoom = c.Camera.MinZoom
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
