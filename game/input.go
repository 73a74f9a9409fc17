package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ui"
)

// creatureKeys maps number keys to creatures in selection order.
var creatureKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.controls.Toggle()
	}

	g.handleOverlayKeys()

	for i, key := range creatureKeys {
		if i < len(creature.Kinds) && rl.IsKeyPressed(key) {
			g.selectCreature(creature.Kinds[i])
		}
	}

	// Camera controls
	g.handleCameraInput()

	// Pointer: clicks outside the HUD cycle creatures
	m := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.overHUD(m) {
		next := g.sim.Cycle()
		slog.Debug("creature cycled", "creature", next.String())
	}
	g.target = g.mouseWorld()
}

// selectCreature switches to kind, logging any failure.
func (g *Game) selectCreature(kind creature.Kind) {
	if err := g.sim.Select(kind); err != nil {
		slog.Warn("select failed", "creature", kind.String(), "error", err)
	}
}

// overHUD reports whether a screen point lies on a clickable HUD element.
func (g *Game) overHUD(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, ui.SwitcherBounds()) ||
		rl.CheckCollisionPointRec(p, g.controls.Bounds())
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.inspector.SetPosition(int32(w)-250, 10)
	g.perfPanel.SetPosition(int32(w)-250, 18)
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.camera.Zoom

	// Arrow key panning
	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Mouse wheel zooms around the cursor
	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		m := rl.GetMousePosition()
		g.camera.ZoomAt(m.X, m.Y, 1.0+wheelMove*0.1)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
