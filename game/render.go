package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/ui"
)

const controlsLegend = "[Click/1-3] Creature  [Space] Pause  [Arrows/Wheel] Camera  [Home] Reset  [H] Overlays  [F11] Fullscreen"

// Draw renders the game state.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.background.Draw(g.camera, g.overlays.IsEnabled(ui.OverlayGrid))
	g.sim.Render(g.sink, g.overlays.IsEnabled(ui.OverlaySkeleton))
	g.drawWorldOverlays()
	g.drawUI()

	rl.EndDrawing()
}

// drawUI draws the HUD and any enabled panels.
func (g *Game) drawUI() {
	active := g.sim.ActiveKind()

	g.hud.Draw(ui.HUDData{
		Title:        "Wriggle",
		Creature:     active,
		Tick:         g.sim.Tick(),
		FPS:          rl.GetFPS(),
		Zoom:         g.camera.Zoom,
		Paused:       g.paused,
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})

	skeleton := g.overlays.IsEnabled(ui.OverlaySkeleton)
	action := g.hud.DrawSwitcher(active, skeleton)
	if action.Select && action.Creature != active {
		g.selectCreature(action.Creature)
	}
	if action.Skeleton != skeleton {
		g.overlays.SetEnabled(ui.OverlaySkeleton, action.Skeleton)
	}

	ctl := g.controls.Draw(ui.ControlsData{
		Overlays: g.overlays,
		Active:   active,
		Paused:   g.paused,
	})
	if ctl.Select && ctl.Creature != active {
		g.selectCreature(ctl.Creature)
	}
	if ctl.Toggle != "" {
		g.overlays.Toggle(ctl.Toggle)
	}

	if g.overlays.IsEnabled(ui.OverlayInspector) {
		g.inspector.Draw(ui.InspectorData{
			Controller: g.sim.Active(),
			Pose:       g.sim.ActivePose(),
			Session:    g.sim.Sessions().Total(active.String()),
		})
	}

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		stats := g.sim.Perf().Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			SystemTimes: stats.PhaseAvg,
			Total:       stats.AvgTickDuration,
			TicksPerSec: stats.TicksPerSecond,
			Registry:    g.registry,
		})
	}

	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight), controlsLegend)
}
