package camera

import (
	"math"
	"testing"
)

func TestNewMatchesScreen(t *testing.T) {
	cam := New(1280, 720, 0.25, 4)

	if cam.X != 640 || cam.Y != 360 {
		t.Errorf("expected camera at (640, 360), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}

	// untouched camera is the identity mapping
	sx, sy := cam.WorldToScreen(100, 200)
	if sx != 100 || sy != 200 {
		t.Errorf("expected (100, 200), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 0.25, 4)
	cam.Pan(-300, 125)
	cam.SetZoom(2.5)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
		{-50, 900},  // off screen
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanIsUnbounded(t *testing.T) {
	cam := New(1280, 720, 0.25, 4)
	cam.SetZoom(2)

	cam.Pan(-2000, 0)

	// 2000 screen pixels at 2x zoom is 1000 world units
	if cam.X != -360 {
		t.Errorf("expected X = -360, got %f", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 0.5, 3)

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != 3.0 {
		t.Errorf("expected zoom clamped to 3.0, got %f", cam.Zoom)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	cam := New(1280, 720, 0.25, 4)
	wx, wy := cam.ScreenToWorld(200, 150)

	cam.ZoomAt(200, 150, 1.5)

	sx, sy := cam.WorldToScreen(wx, wy)
	if math.Abs(float64(sx-200)) > 0.01 || math.Abs(float64(sy-150)) > 0.01 {
		t.Errorf("anchor moved to (%f, %f)", sx, sy)
	}
	if cam.Zoom != 1.5 {
		t.Errorf("expected zoom 1.5, got %f", cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 0.25, 4)

	tests := []struct {
		name    string
		x, y, r float32
		want    bool
	}{
		{"center", 640, 360, 10, true},
		{"far outside", 2400, 1300, 10, false},
		{"edge with large radius", -40, 360, 100, true},
		{"just past edge", -40, 360, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cam.IsVisible(tt.x, tt.y, tt.r); got != tt.want {
				t.Errorf("IsVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResizeFollowsHome(t *testing.T) {
	cam := New(1280, 720, 0.25, 4)
	cam.Resize(1600, 900)
	if cam.X != 800 || cam.Y != 450 {
		t.Errorf("camera at home should follow the new centre, got (%f, %f)", cam.X, cam.Y)
	}

	cam.Pan(100, 0)
	cam.Resize(1280, 720)
	if cam.X != 900 || cam.Y != 450 {
		t.Errorf("panned camera should stay put, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.HomeX != 640 || cam.HomeY != 360 {
		t.Errorf("home = (%f, %f), want (640, 360)", cam.HomeX, cam.HomeY)
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 0.25, 4)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 640 || cam.Y != 360 {
		t.Errorf("expected position (640, 360), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
