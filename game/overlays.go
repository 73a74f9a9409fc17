package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/ui"
)

var (
	targetColor  = rl.Color{R: 255, G: 220, B: 80, A: 200}
	plantedColor = rl.Color{R: 120, G: 220, B: 255, A: 200}
	idealColor   = rl.Color{R: 255, G: 120, B: 120, A: 160}
)

// handleOverlayKeys toggles overlays bound to pressed keys.
func (g *Game) handleOverlayKeys() {
	key := rl.GetKeyPressed()
	for key != 0 {
		if id, on, ok := g.overlays.HandleKeyPress(key); ok {
			slog.Debug("overlay toggled", "overlay", string(id), "enabled", on)
		}
		key = rl.GetKeyPressed()
	}
}

// drawWorldOverlays draws overlays that live in world space.
func (g *Game) drawWorldOverlays() {
	if g.overlays.IsEnabled(ui.OverlayTargets) {
		g.drawTargets()
	}
}

// drawTargets marks the pointer target and, for legged creatures, each
// foot's planted spot and the spot it would step to now.
func (g *Game) drawTargets() {
	tx, ty := g.camera.WorldToScreen(float32(g.target.X), float32(g.target.Y))
	rl.DrawCircleLines(int32(tx), int32(ty), 6, targetColor)
	rl.DrawLineV(rl.Vector2{X: tx - 10, Y: ty}, rl.Vector2{X: tx + 10, Y: ty}, targetColor)
	rl.DrawLineV(rl.Vector2{X: tx, Y: ty - 10}, rl.Vector2{X: tx, Y: ty + 10}, targetColor)

	l, ok := g.sim.Active().(*creature.Lizard)
	if !ok {
		return
	}
	for _, limb := range l.Limbs() {
		planted := g.screen(limb.Desired())
		ideal := g.screen(limb.IdealFoot(l.Body()))
		rl.DrawCircleV(planted, 4, plantedColor)
		rl.DrawCircleLines(int32(ideal.X), int32(ideal.Y), 4, idealColor)
		rl.DrawLineV(planted, ideal, idealColor)
	}
}

// screen maps a world point to the screen.
func (g *Game) screen(p ik.Vec2) rl.Vector2 {
	x, y := g.camera.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}
