package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Creature     creature.Kind
	Tick         int32
	FPS          int32
	Zoom         float32
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUDAction reports what the player clicked on the HUD this frame.
type HUDAction struct {
	Select   bool
	Creature creature.Kind
	Skeleton bool // state of the skeleton checkbox after this frame
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Creature: %s | Tick: %d | FPS: %d | Zoom: %.2fx", data.Creature, data.Tick, data.FPS, data.Zoom),
		10, 35, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 55, 16, rl.Yellow)
}

// switcher layout
const (
	buttonWidth  = 72
	buttonHeight = 24
	buttonGap    = 6
	switcherY    = 80
)

// SwitcherBounds returns the screen area covered by the creature buttons
// and the skeleton checkbox.
func SwitcherBounds() rl.Rectangle {
	n := float32(len(creature.Kinds))
	return rl.Rectangle{
		X:      10,
		Y:      switcherY,
		Width:  n*(buttonWidth+buttonGap) + 110,
		Height: buttonHeight,
	}
}

// DrawSwitcher draws one button per creature and the skeleton checkbox.
func (h *HUD) DrawSwitcher(active creature.Kind, skeleton bool) HUDAction {
	action := HUDAction{Skeleton: skeleton}
	x := float32(10)
	for _, k := range creature.Kinds {
		label := k.String()
		if k == active {
			label = "[" + label + "]"
		}
		if gui.Button(rl.Rectangle{X: x, Y: switcherY, Width: buttonWidth, Height: buttonHeight}, label) {
			action.Select = true
			action.Creature = k
		}
		x += buttonWidth + buttonGap
	}
	action.Skeleton = gui.CheckBox(rl.Rectangle{X: x + 4, Y: switcherY + 4, Width: 16, Height: 16}, "Skeleton", skeleton)
	return action
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	SystemTimes map[string]time.Duration
	Total       time.Duration
	TicksPerSec float64
	Registry    *systems.SystemRegistry
}

// PerfPanel renders the per-phase performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel. Phases are listed in registry order.
func (p *PerfPanel) Draw(data PerfPanelData) {
	x := p.x
	y := p.y

	p.renderer.DrawPanel(x-8, y-8, 260, 60+int32(len(data.SystemTimes))*14)

	rl.DrawText("Frame Phases", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Total: %s | %.0f ticks/s", data.Total.Round(time.Microsecond), data.TicksPerSec), x, y, 14, rl.Yellow)
	y += 16

	var ids []string
	if data.Registry != nil {
		ids = data.Registry.IDs()
	}
	for _, id := range ids {
		avg, ok := data.SystemTimes[id]
		if !ok {
			continue
		}
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", data.Registry.GetName(id), avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
