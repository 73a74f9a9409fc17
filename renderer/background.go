package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wriggle/camera"
)

// BackgroundRenderer clears the screen and draws a faint world grid so camera
// movement stays visible on an otherwise empty plane.
type BackgroundRenderer struct {
	base    rl.Color
	grid    rl.Color
	spacing float32 // world units between grid lines
}

// NewBackgroundRenderer creates a background in the given base colour.
func NewBackgroundRenderer(baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		base:    rl.Color{R: baseR, G: baseG, B: baseB, A: 255},
		grid:    rl.Color{R: 255, G: 255, B: 255, A: 12},
		spacing: 128,
	}
}

// Draw clears to the base colour and, with grid set, draws the grid lines
// visible through cam.
func (b *BackgroundRenderer) Draw(cam *camera.Camera, grid bool) {
	rl.ClearBackground(b.base)

	// skip the grid when lines would be closer than a few pixels
	if !grid || cam.Scale(b.spacing) < 8 {
		return
	}

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	startX := float32(math.Floor(float64(minX/b.spacing))) * b.spacing
	startY := float32(math.Floor(float64(minY/b.spacing))) * b.spacing

	for x := startX; x <= maxX; x += b.spacing {
		sx, _ := cam.WorldToScreen(x, 0)
		rl.DrawLineV(rl.Vector2{X: sx, Y: 0}, rl.Vector2{X: sx, Y: cam.ViewportH}, b.grid)
	}
	for y := startY; y <= maxY; y += b.spacing {
		_, sy := cam.WorldToScreen(0, y)
		rl.DrawLineV(rl.Vector2{X: 0, Y: sy}, rl.Vector2{X: cam.ViewportW, Y: sy}, b.grid)
	}
}
