package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Creature != "fish" {
		t.Errorf("creature = %q, want fish", cfg.Simulation.Creature)
	}
	if got := cfg.Derived.LizardConstraint; math.Abs(got-math.Pi/8) > 1e-12 {
		t.Errorf("lizard constraint = %v, want pi/8", got)
	}
	if cfg.Derived.CenterX != float64(cfg.Screen.Width)/2 || cfg.Derived.CenterY != float64(cfg.Screen.Height)/2 {
		t.Errorf("center = (%v, %v)", cfg.Derived.CenterX, cfg.Derived.CenterY)
	}
	if cfg.Camera.MinZoom <= 0 || cfg.Camera.MaxZoom < cfg.Camera.MinZoom {
		t.Errorf("zoom range = [%v, %v]", cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeFile(t, "simulation:\n  creature: snake\nsnake:\n  speed: 4\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Creature != "snake" || cfg.Snake.Speed != 4 {
		t.Errorf("overrides not applied: %q, %v", cfg.Simulation.Creature, cfg.Snake.Speed)
	}
	def, _ := Load("")
	if cfg.Fish.Speed != def.Fish.Speed || cfg.Simulation.DT != def.Simulation.DT {
		t.Error("fields absent from the file changed")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"creature", "simulation:\n  creature: newt\n", "simulation.creature"},
		{"dt", "simulation:\n  dt: 0\n", "simulation.dt"},
		{"blend", "lizard:\n  gait:\n    foot_blend: 1.5\n", "foot_blend"},
		{"vertebra", "lizard:\n  back:\n    vertebra: 40\n", "vertebra"},
		{"widths", "lizard:\n  body_width: [1, 2]\n", "body_width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Lizard.Gait.StepDistance = 150
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Lizard.Gait.StepDistance != 150 {
		t.Errorf("step distance = %v, want 150", back.Lizard.Gait.StepDistance)
	}
}
