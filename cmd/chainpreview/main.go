// Chain preview tool - drag a single IK chain around with the mouse and tune
// its geometry with sliders.
//
// Usage: go run ./cmd/chainpreview
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/wriggle/camera"
	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/creature"
	"github.com/pthm-cable/wriggle/ik"
	"github.com/pthm-cable/wriggle/renderer"
	"github.com/pthm-cable/wriggle/systems"
)

const (
	windowWidth  = 1280
	windowHeight = 800
	panelWidth   = 320
	panelX       = windowWidth - panelWidth
	sliderWidth  = panelWidth - 100

	// a constraint slider at this value means no constraint
	maxConstraintDeg = 180
)

// chainParams holds the tunable chain geometry.
type chainParams struct {
	Joints        int
	LinkSize      float32
	ConstraintDeg float32
	Fabrik        bool // two-pass FABRIK with the tail pinned to the anchor
}

func defaultParams() chainParams {
	return chainParams{Joints: 12, LinkSize: 32, ConstraintDeg: 30}
}

// spineConfig converts p into the YAML block used by creature configs.
func (p chainParams) spineConfig() config.SpineConfig {
	return config.SpineConfig{
		Joints:             p.Joints,
		LinkSize:           float64(p.LinkSize),
		AngleConstraintDeg: float64(p.ConstraintDeg),
	}
}

func (p chainParams) constraint() float64 {
	if p.ConstraintDeg >= maxConstraintDeg {
		return ik.Unconstrained
	}
	return config.Radians(float64(p.ConstraintDeg))
}

func buildChain(p chainParams, origin ik.Vec2) *ik.Chain {
	c, err := ik.NewChain(origin, p.Joints, float64(p.LinkSize), p.constraint())
	if err != nil {
		// sliders keep every value in range
		slog.Error("invalid chain", "error", err)
		os.Exit(1)
	}
	return c
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	rl.InitWindow(windowWidth, windowHeight, "Chain Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := camera.New(windowWidth, windowHeight, 0.25, 4)
	sink := renderer.NewSink(cam)
	background := renderer.NewBackgroundRenderer(40, 44, 52)

	anchor := ik.Vec2{X: float64(panelX) / 2, Y: windowHeight / 2}
	params := defaultParams()
	chain := buildChain(params, anchor)

	for !rl.WindowShouldClose() {
		m := rl.GetMousePosition()
		if m.X < panelX {
			wx, wy := cam.ScreenToWorld(m.X, m.Y)
			target := ik.Vec2{X: float64(wx), Y: float64(wy)}
			if rl.IsMouseButtonDown(rl.MouseButtonRight) {
				anchor = target
			}
			if params.Fabrik {
				chain.FabrikResolve(target, anchor)
			} else {
				chain.Resolve(target)
			}
		}

		rl.BeginDrawing()
		background.Draw(cam, true)
		creature.RenderSkeleton(sink, chain)
		if params.Fabrik {
			ax, ay := cam.WorldToScreen(float32(anchor.X), float32(anchor.Y))
			rl.DrawCircleLines(int32(ax), int32(ay), 10, rl.Orange)
		}

		next := drawPanel(params, systems.MeasureChain(chain))
		if next != params {
			params = next
			chain = buildChain(params, chain.Head())
		}

		rl.EndDrawing()
	}
}

// drawPanel draws the slider panel and returns the possibly edited params.
func drawPanel(params chainParams, m systems.ChainMetrics) chainParams {
	rl.DrawRectangle(panelX, 0, panelWidth, windowHeight, rl.Color{R: 20, G: 25, B: 30, A: 240})

	x := float32(panelX + 10)
	y := float32(10)

	rl.DrawText("Chain Parameters", int32(x), int32(y), 20, rl.RayWhite)
	y += 35

	slider := func(label, lo, hi string, value, minV, maxV float32, shown string) float32 {
		rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
		y += 18
		v := gui.SliderBar(rl.Rectangle{X: x + 20, Y: y, Width: sliderWidth, Height: 20}, lo, hi, value, minV, maxV)
		rl.DrawText(shown, int32(x+sliderWidth+40), int32(y+2), 16, rl.LightGray)
		y += 35
		return v
	}

	params.Joints = int(slider("Joints", "2", "64", float32(params.Joints), 2, 64, fmt.Sprintf("%d", params.Joints)))
	params.LinkSize = float32(int(slider("Link size", "4", "128", params.LinkSize, 4, 128, fmt.Sprintf("%.0f", params.LinkSize))))

	shown := fmt.Sprintf("%.0f", params.ConstraintDeg)
	if params.ConstraintDeg >= maxConstraintDeg {
		shown = "off"
	}
	params.ConstraintDeg = float32(int(slider("Angle constraint (deg)", "0", "off", params.ConstraintDeg, 0, maxConstraintDeg, shown)))

	mode := "Mode: follow"
	if params.Fabrik {
		mode = "Mode: FABRIK"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 140, Height: 30}, mode) {
		params.Fabrik = !params.Fabrik
	}
	if gui.Button(rl.Rectangle{X: x + 150, Y: y, Width: 140, Height: 30}, "Reset All") {
		params = defaultParams()
	}
	y += 45

	rl.DrawText(fmt.Sprintf("Link error: %.2e", m.LinkError), int32(x), int32(y), 14, rl.LightGray)
	y += 18
	rl.DrawText(fmt.Sprintf("Bend: %.2f of limit", m.BendRatio), int32(x), int32(y), 14, rl.LightGray)
	y += 30

	text := spineYAML(params)
	rl.DrawText("YAML Config:", int32(x), int32(y), 16, rl.RayWhite)
	y += 25
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		rl.DrawText(line, int32(x), int32(y), 14, rl.Gray)
		y += 16
	}

	rl.DrawText("Right drag moves the anchor. C copies YAML.", int32(x), windowHeight-30, 12, rl.Gray)
	if rl.IsKeyPressed(rl.KeyC) {
		rl.SetClipboardText(text)
	}

	return params
}

// spineYAML renders params as a spine block.
func spineYAML(p chainParams) string {
	out, err := yaml.Marshal(map[string]config.SpineConfig{"spine": p.spineConfig()})
	if err != nil {
		return err.Error()
	}
	return string(out)
}
