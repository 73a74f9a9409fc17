package sim

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/systems"
	"github.com/pthm-cable/wriggle/telemetry"
)

func newSim(t *testing.T, opts Options) *Simulation {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	s, err := New(cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// activeCount counts entities carrying the Active tag.
func activeCount(s *Simulation) int {
	n := 0
	q := s.activeFilter.Query()
	for q.Next() {
		n++
	}
	return n
}

// countingSink tallies draw calls.
type countingSink struct {
	shapes, lines, circles int
}

func (c *countingSink) Curve([]ik.Vec2, creature.Style) { c.shapes++ }
func (c *countingSink) BezierPath(ik.Vec2, []creature.PathSegment, creature.Style) { c.shapes++ }
func (c *countingSink) Ellipse(ik.Vec2, float64, float64, float64, creature.Style) { c.shapes++ }
func (c *countingSink) Circle(ik.Vec2, float64, creature.Style) { c.circles++ }
func (c *countingSink) Line(ik.Vec2, ik.Vec2, creature.Style) { c.lines++ }

// loop drives the pointer around a wide figure eight.
type loop struct{ step int }

func (l *loop) Next() ik.Vec2 {
	a := float64(l.step) * 0.02
	l.step++
	return ik.Vec2{X: 640 + 400*math.Sin(a), Y: 400 + 250*math.Sin(2*a)}
}

func TestNewSelectsStartingCreature(t *testing.T) {
	s := newSim(t, Options{})
	if s.ActiveKind() != creature.KindFish {
		t.Errorf("active = %v, want fish from defaults", s.ActiveKind())
	}
	if n := activeCount(s); n != 1 {
		t.Errorf("active entities = %d, want 1", n)
	}

	origin := ik.Vec2{X: 640, Y: 400}
	for _, k := range creature.Kinds {
		c := s.Controller(k)
		if c == nil {
			t.Fatalf("no controller for %v", k)
		}
		if c.Spine().Head() != origin {
			t.Errorf("%v starts at %v, want %v", k, c.Spine().Head(), origin)
		}
	}

	s2 := newSim(t, Options{Creature: "lizard"})
	if s2.ActiveKind() != creature.KindLizard {
		t.Errorf("option override ignored: active = %v", s2.ActiveKind())
	}
}

func TestNewRejectsUnknownCreature(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(cfg, Options{Creature: "newt"}); err == nil {
		t.Error("expected error for unknown creature")
	}
}

func TestSelectAndCycle(t *testing.T) {
	s := newSim(t, Options{})

	if err := s.Select(creature.KindLizard); err != nil {
		t.Fatal(err)
	}
	if s.ActiveKind() != creature.KindLizard || activeCount(s) != 1 {
		t.Errorf("after select: active = %v with %d tagged", s.ActiveKind(), activeCount(s))
	}
	if err := s.Select(creature.KindLizard); err != nil {
		t.Errorf("reselecting active creature: %v", err)
	}
	if err := s.Select(creature.Kind(9)); err == nil {
		t.Error("expected error for unknown kind")
	}

	order := []creature.Kind{creature.KindFish, creature.KindSnake, creature.KindLizard, creature.KindFish}
	for i, want := range order {
		if got := s.Cycle(); got != want {
			t.Errorf("cycle %d = %v, want %v", i, got, want)
		}
		if n := activeCount(s); n != 1 {
			t.Errorf("cycle %d left %d active entities", i, n)
		}
	}
}

func TestSelectMovesActiveTag(t *testing.T) {
	s := newSim(t, Options{})

	for _, kind := range []creature.Kind{creature.KindSnake, creature.KindLizard, creature.KindFish} {
		if err := s.Select(kind); err != nil {
			t.Fatalf("select %v: %v", kind, err)
		}
		for _, k := range creature.Kinds {
			tagged := s.activeMap.HasAll(s.entities[k])
			if tagged != (k == kind) {
				t.Errorf("after selecting %v: %v tagged = %v", kind, k, tagged)
			}
		}
	}
}

func TestStepMovesOnlyActiveCreature(t *testing.T) {
	s := newSim(t, Options{})
	if err := s.Select(creature.KindSnake); err != nil {
		t.Fatal(err)
	}

	target := ik.Vec2{X: 640, Y: 100}
	for i := 0; i < 10; i++ {
		s.Step(target)
	}
	if s.Tick() != 10 {
		t.Errorf("tick = %d, want 10", s.Tick())
	}

	snake := s.Controller(creature.KindSnake).Spine().Head()
	if d := snake.Dist(ik.Vec2{X: 640, Y: 400}); d < 70 {
		t.Errorf("snake moved %v, want ~80", d)
	}
	for _, k := range []creature.Kind{creature.KindFish, creature.KindLizard} {
		if h := s.Controller(k).Spine().Head(); h != (ik.Vec2{X: 640, Y: 400}) {
			t.Errorf("inactive %v moved to %v", k, h)
		}
	}

	pose := s.ActivePose()
	if pose.X != float32(snake.X) || pose.Y != float32(snake.Y) {
		t.Errorf("pose (%v, %v) does not match head %v", pose.X, pose.Y, snake)
	}
	if pose.Travel <= 0 {
		t.Errorf("pose travel = %v, want > 0", pose.Travel)
	}

	// switching away and back resumes from the same spot
	if err := s.Select(creature.KindFish); err != nil {
		t.Fatal(err)
	}
	s.Step(target)
	if err := s.Select(creature.KindSnake); err != nil {
		t.Fatal(err)
	}
	if h := s.Controller(creature.KindSnake).Spine().Head(); h != snake {
		t.Errorf("snake moved while inactive: %v != %v", h, snake)
	}
}

func TestLizardStepsCounted(t *testing.T) {
	s := newSim(t, Options{StatsWindowSec: 1})
	if err := s.Select(creature.KindLizard); err != nil {
		t.Fatal(err)
	}

	var windows []telemetry.WindowStats
	s.SetStatsCallback(func(ws telemetry.WindowStats) {
		windows = append(windows, ws)
	})

	src := &loop{}
	for i := 0; i < 300; i++ {
		s.Update(src)
	}

	if len(windows) < 4 {
		t.Fatalf("flushed %d windows, want at least 4", len(windows))
	}
	steps := 0
	for _, ws := range windows {
		if ws.Creature != "lizard" {
			t.Errorf("window creature = %q", ws.Creature)
		}
		if ws.LinkErrorMax > 1e-9 || ws.LimbErrorMax > 1e-9 {
			t.Errorf("window link errors = %v, %v", ws.LinkErrorMax, ws.LimbErrorMax)
		}
		steps += ws.Steps
	}
	if steps == 0 {
		t.Error("lizard took no steps")
	}
	if got := s.ActivePose().Steps; int(got) < steps {
		t.Errorf("pose steps = %d, windows counted %d", got, steps)
	}
}

func TestUpdateWithWander(t *testing.T) {
	s := newSim(t, Options{Creature: "snake"})
	w := systems.NewWander(5, ik.Vec2{X: 640, Y: 400}, s.Config().Wander)

	for i := 0; i < 200; i++ {
		s.Update(w)
	}
	if s.Tick() != 200 {
		t.Errorf("tick = %d, want 200", s.Tick())
	}
	h := s.Active().Spine().Head()
	if math.IsNaN(h.X) || math.IsNaN(h.Y) {
		t.Fatalf("head = %v", h)
	}
	if d := h.Dist(ik.Vec2{X: 640, Y: 400}); d > s.Config().Wander.Radius*1.5+s.Config().Snake.Speed {
		t.Errorf("snake wandered %v from centre", d)
	}
	if stats := s.Perf().Stats(); stats.PhaseAvg[telemetry.PhaseResolve] <= 0 {
		t.Error("resolve phase not timed")
	}
}

func TestFishIdleRecorded(t *testing.T) {
	s := newSim(t, Options{})
	head := s.Active().Spine().Head()

	s.Step(head.Add(ik.Vec2{X: 3}))

	if !s.ActivePose().Idle {
		t.Error("fish inside dead zone should be idle")
	}
	if sess := s.Sessions().Active(); sess == nil || sess.IdleTicks != 1 {
		t.Errorf("session idle ticks = %+v, want 1", sess)
	}
}

func TestRender(t *testing.T) {
	s := newSim(t, Options{Creature: "lizard"})
	s.Step(ik.Vec2{X: 640, Y: 0})

	var plain countingSink
	s.Render(&plain, false)
	if plain.shapes == 0 || plain.lines != 0 {
		t.Errorf("plain render = %+v", plain)
	}

	var skel countingSink
	s.Render(&skel, true)
	spine := s.Active().Spine().Len()
	legs := 4 * s.Config().Lizard.Gait.Joints
	if want := spine + legs + 2; skel.circles != want {
		t.Errorf("skeleton joints drawn = %d, want %d (plus eyes)", skel.circles, want)
	}
	if skel.lines != spine-1+4*(s.Config().Lizard.Gait.Joints-1) {
		t.Errorf("skeleton links drawn = %d", skel.lines)
	}
}

func TestOutputFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(cfg, Options{OutputDir: dir, StatsWindowSec: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 60; i++ {
		s.Step(ik.Vec2{X: 640, Y: 100})
	}
	s.Cycle()
	for i := 0; i < 60; i++ {
		s.Step(ik.Vec2{X: 100, Y: 400})
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv", "sessions.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "sessions.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var sessions []telemetry.Session
	if err := gocsv.UnmarshalFile(f, &sessions); err != nil {
		t.Fatalf("reading sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}
	if sessions[0].Creature != "fish" || sessions[1].Creature != "snake" {
		t.Errorf("session creatures = %q, %q", sessions[0].Creature, sessions[1].Creature)
	}
	if sessions[0].EndTick != 60 || sessions[1].StartTick != 60 || sessions[1].EndTick != 120 {
		t.Errorf("session ticks = %+v", sessions)
	}
}
