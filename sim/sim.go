// Package sim owns the creatures and advances the active one frame by frame.
//
// Every creature lives in an ECS world as an entity carrying its Species, its
// Rig (the controller) and a Pose summary. Exactly one entity also carries the
// Active tag: that creature alone is resolved, measured and drawn.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/wriggle/components"
	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/telemetry"
)

// Options configures a Simulation.
type Options struct {
	LogStats       bool    // Log window and perf stats through slog
	StatsWindowSec float64 // Telemetry window length (0 = use config)
	OutputDir      string  // Directory for CSV logs (empty = disabled)
	Creature       string  // Creature selected first (empty = use config)
}

// Simulation holds the creature world and the telemetry around it.
type Simulation struct {
	cfg   *config.Config
	world *ecs.World

	creatureMap  *ecs.Map3[components.Species, components.Rig, components.Pose]
	speciesMap   *ecs.Map1[components.Species]
	rigMap       *ecs.Map1[components.Rig]
	poseMap      *ecs.Map1[components.Pose]
	activeMap    *ecs.Map1[components.Active]
	activeFilter *ecs.Filter4[components.Species, components.Rig, components.Pose, components.Active]

	entities map[creature.Kind]ecs.Entity
	active   creature.Kind

	tick int32

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	sessions         *telemetry.SessionTracker
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.WindowStats)
}

// New builds every creature at the screen centre and selects the starting one.
func New(cfg *config.Config, opts Options) (*Simulation, error) {
	world := ecs.NewWorld()

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	s := &Simulation{
		cfg:          cfg,
		world:        world,
		creatureMap:  ecs.NewMap3[components.Species, components.Rig, components.Pose](world),
		speciesMap:   ecs.NewMap1[components.Species](world),
		rigMap:       ecs.NewMap1[components.Rig](world),
		poseMap:      ecs.NewMap1[components.Pose](world),
		activeMap:    ecs.NewMap1[components.Active](world),
		activeFilter: ecs.NewFilter4[components.Species, components.Rig, components.Pose, components.Active](world),
		entities:     make(map[creature.Kind]ecs.Entity, len(creature.Kinds)),

		collector:        telemetry.NewCollector(statsWindow, cfg.Derived.DT32),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		sessions:         telemetry.NewSessionTracker(),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		logStats:         opts.LogStats,
	}

	origin := ik.Vec2{X: cfg.Derived.CenterX, Y: cfg.Derived.CenterY}
	for _, k := range creature.Kinds {
		if _, err := s.spawn(k, origin); err != nil {
			return nil, err
		}
	}

	start := cfg.Simulation.Creature
	if opts.Creature != "" {
		start = opts.Creature
	}
	kind, err := creature.ParseKind(start)
	if err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}
	if om != nil {
		slog.Info("output enabled", "dir", om.Dir())
	}
	s.outputManager = om

	s.activate(kind)
	return s, nil
}

// spawn creates the entity for one creature kind.
func (s *Simulation) spawn(k creature.Kind, origin ik.Vec2) (ecs.Entity, error) {
	ctrl, err := creature.New(k, origin, s.cfg)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("building %s: %w", k, err)
	}
	species := components.Species{Kind: k}
	rig := components.Rig{Controller: ctrl}
	pose := poseOf(ctrl, components.Pose{})
	e := s.creatureMap.NewEntity(&species, &rig, &pose)
	s.entities[k] = e
	return e, nil
}

// activate tags kind as the active creature and opens its session.
func (s *Simulation) activate(kind creature.Kind) {
	s.activeMap.Add(s.entities[kind], &components.Active{})
	s.active = kind
	s.sessions.Begin(kind.String(), s.tick)
	slog.Info("creature selected", "creature", kind.String(), "tick", s.tick)
}

// Select makes kind the active creature. Selecting the active creature is a
// no-op. The outgoing creature keeps its pose and resumes from it when
// selected again.
func (s *Simulation) Select(kind creature.Kind) error {
	e, ok := s.entities[kind]
	if !ok || !s.world.Alive(e) {
		return fmt.Errorf("no creature %v", kind)
	}
	if kind == s.active {
		return nil
	}

	if cur := s.entities[s.active]; s.activeMap.HasAll(cur) {
		s.activeMap.Remove(cur)
	}
	s.endSession()

	s.activate(kind)
	s.collector.Record(telemetry.NewSelectEvent(s.tick, kind.String()))
	return nil
}

// Cycle selects the next creature in fish, snake, lizard order.
func (s *Simulation) Cycle() creature.Kind {
	next := s.active.Next()
	if err := s.Select(next); err != nil {
		slog.Error("cycle failed", "error", err)
		return s.active
	}
	return next
}

// endSession closes the active creature's session and logs it.
func (s *Simulation) endSession() {
	sess, ok := s.sessions.End(s.tick, s.cfg.Derived.DT32)
	if !ok {
		return
	}
	if err := s.outputManager.WriteSession(sess); err != nil {
		slog.Error("failed to write session", "error", err)
	}
}

// ActiveKind returns the kind of the active creature.
func (s *Simulation) ActiveKind() creature.Kind {
	return s.active
}

// Active returns the active creature's controller.
func (s *Simulation) Active() creature.Controller {
	return s.Controller(s.active)
}

// Controller returns the controller for kind, or nil if there is none.
func (s *Simulation) Controller(kind creature.Kind) creature.Controller {
	e, ok := s.entities[kind]
	if !ok {
		return nil
	}
	return s.rigMap.Get(e).Controller
}

// Pose returns the last pose recorded for kind.
func (s *Simulation) Pose(kind creature.Kind) components.Pose {
	e, ok := s.entities[kind]
	if !ok {
		return components.Pose{}
	}
	return *s.poseMap.Get(e)
}

// ActivePose returns the active creature's pose.
func (s *Simulation) ActivePose() components.Pose {
	return s.Pose(s.active)
}

// Tick returns the current simulation tick.
func (s *Simulation) Tick() int32 {
	return s.tick
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Perf returns the frame timing collector.
func (s *Simulation) Perf() *telemetry.PerfCollector {
	return s.perfCollector
}

// Sessions returns the per-creature session tracker.
func (s *Simulation) Sessions() *telemetry.SessionTracker {
	return s.sessions
}

// SetStatsCallback registers fn to receive every flushed stats window.
func (s *Simulation) SetStatsCallback(fn func(telemetry.WindowStats)) {
	s.statsCallback = fn
}

// Close ends the open session and closes output files.
func (s *Simulation) Close() error {
	s.endSession()
	return s.outputManager.Close()
}
