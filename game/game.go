// Package game is the raylib front end: it feeds the pointer to the
// simulation, draws the active creature and runs the HUD.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/camera"
	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/renderer"
	"github.com/pthm-cable/wriggle/sim"
	"github.com/pthm-cable/wriggle/systems"
	"github.com/pthm-cable/wriggle/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64   // Wander noise seed for headless runs
	LogStats       bool    // Output stats via slog
	StatsWindowSec float64 // Telemetry window length (0 = use config)
	OutputDir      string  // Directory for CSV logs (empty = disabled)
	Creature       string  // Creature selected first (empty = use config)
	Headless       bool    // Skip all raylib calls
	StepsPerUpdate int     // Ticks per UpdateHeadless call
}

// Game holds the complete viewer state.
type Game struct {
	sim    *sim.Simulation
	wander *systems.Wander

	// Rendering, nil when headless
	camera     *camera.Camera
	sink       *renderer.Sink
	background *renderer.BackgroundRenderer

	// UI
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	inspector *ui.Inspector
	perfPanel *ui.PerfPanel
	overlays  *ui.OverlayRegistry
	registry  *systems.SystemRegistry

	target         ik.Vec2 // last pointer position in world space
	paused         bool
	headless       bool
	stepsPerUpdate int

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. config.Init must have been called and,
// unless opts.Headless is set, the raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	s, err := sim.New(cfg, sim.Options{
		LogStats:       opts.LogStats,
		StatsWindowSec: opts.StatsWindowSec,
		OutputDir:      opts.OutputDir,
		Creature:       opts.Creature,
	})
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	center := ik.Vec2{X: cfg.Derived.CenterX, Y: cfg.Derived.CenterY}
	g := &Game{
		sim:            s,
		wander:         systems.NewWander(opts.Seed, center, cfg.Wander),
		registry:       systems.NewSystemRegistry(),
		target:         center,
		headless:       opts.Headless,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
	}

	if !opts.Headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
		g.sink = renderer.NewSink(g.camera)
		bg := cfg.Screen.Background
		g.background = renderer.NewBackgroundRenderer(bg.R, bg.G, bg.B)

		g.hud = ui.NewHUD()
		g.overlays = ui.NewOverlayRegistry()
		g.controls = ui.NewControlsPanel(10, 120, 200)
		g.inspector = ui.NewInspector(int32(g.screenWidth)-250, 10, 240)
		g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-250, 18)
	}

	slog.Info("game created",
		"headless", opts.Headless,
		"creature", s.ActiveKind().String(),
		"steps_per_update", g.stepsPerUpdate,
	)
	return g, nil
}

// Update handles input and advances one tick toward the pointer.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	g.sim.Step(g.target)
	g.sim.Perf().RecordFrame()
}

// UpdateHeadless advances StepsPerUpdate ticks along the wander path.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.sim.Update(g.wander)
	}
}

// Tick returns the number of ticks simulated so far.
func (g *Game) Tick() int32 {
	return g.sim.Tick()
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Unload closes the session and flushes output files.
func (g *Game) Unload() {
	if err := g.sim.Close(); err != nil {
		slog.Error("failed to close simulation", "error", err)
	}
}

// mouseWorld returns the pointer position in world space.
func (g *Game) mouseWorld() ik.Vec2 {
	m := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(m.X, m.Y)
	return ik.Vec2{X: float64(wx), Y: float64(wy)}
}
