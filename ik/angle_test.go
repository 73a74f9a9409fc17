package ik

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 1.5, 1.5},
		{"two pi wraps to zero", TwoPi, 0},
		{"negative", -math.Pi / 2, 3 * math.Pi / 2},
		{"several turns", 3*TwoPi + 0.25, 0.25},
		{"several negative turns", -5*TwoPi + 0.25, 0.25},
		{"far outside", 1000*TwoPi + 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAngleRangeAndIdempotence(t *testing.T) {
	for x := -50.0; x <= 50.0; x += 0.37 {
		n := NormalizeAngle(x)
		if n < 0 || n >= TwoPi {
			t.Fatalf("NormalizeAngle(%v) = %v, outside [0, 2pi)", x, n)
		}
		if again := NormalizeAngle(n); again != n {
			t.Fatalf("NormalizeAngle not idempotent at %v: %v then %v", x, n, again)
		}
	}

	// a value just below zero must not come back as exactly 2pi
	if n := NormalizeAngle(-1e-18); n < 0 || n >= TwoPi {
		t.Errorf("NormalizeAngle(-1e-18) = %v, outside [0, 2pi)", n)
	}
}

func TestRelativeAngleDiff(t *testing.T) {
	tests := []struct {
		name          string
		angle, anchor float64
		want          float64
	}{
		{"same", 1, 1, 0},
		{"anchor ahead", 0.5, 1.0, 0.5},
		{"anchor behind", 1.0, 0.5, -0.5},
		{"across seam", TwoPi - 0.1, 0.1, 0.2},
		{"across seam reversed", 0.1, TwoPi - 0.1, -0.2},
		{"opposite is pi", 0, math.Pi, math.Pi},
		{"unnormalized inputs", 0.5 + 4*TwoPi, 1.0 - 2*TwoPi, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeAngleDiff(tt.angle, tt.anchor)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("RelativeAngleDiff(%v, %v) = %v, want %v", tt.angle, tt.anchor, got, tt.want)
			}
		})
	}
}

func TestRelativeAngleDiffProperties(t *testing.T) {
	for a := -7.0; a <= 7.0; a += 0.13 {
		if d := RelativeAngleDiff(a, a); d != 0 {
			t.Fatalf("RelativeAngleDiff(%v, %v) = %v, want 0", a, a, d)
		}
		for b := -7.0; b <= 7.0; b += 0.29 {
			ab := RelativeAngleDiff(a, b)
			if ab <= -math.Pi || ab > math.Pi+eps {
				t.Fatalf("RelativeAngleDiff(%v, %v) = %v, outside (-pi, pi]", a, b, ab)
			}
			// antisymmetry holds away from the +-pi boundary
			if math.Abs(math.Abs(ab)-math.Pi) < 1e-6 {
				continue
			}
			ba := RelativeAngleDiff(b, a)
			if math.Abs(ab+ba) > eps {
				t.Fatalf("not antisymmetric: d(%v,%v)=%v d(%v,%v)=%v", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestConstrainAngle(t *testing.T) {
	limit := math.Pi / 8
	tests := []struct {
		name          string
		angle, anchor float64
		want          float64
	}{
		{"inside limit", 1.1, 1.0, 1.1},
		{"inside limit normalized", 1.1 + TwoPi, 1.0, 1.1},
		{"clamped below", 0.0, 1.0, 1.0 - limit},
		{"clamped above", 2.0, 1.0, 1.0 + limit},
		{"clamped across seam", 0.5, TwoPi - 0.1, NormalizeAngle(-0.1 + limit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConstrainAngle(tt.angle, tt.anchor, limit)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ConstrainAngle(%v, %v) = %v, want %v", tt.angle, tt.anchor, got, tt.want)
			}
			if d := RelativeAngleDiff(got, tt.anchor); math.Abs(d) > limit+eps {
				t.Errorf("result %v is %v from anchor, limit %v", got, d, limit)
			}
		})
	}
}

func TestConstrainAngleUnconstrained(t *testing.T) {
	for a := -4.0; a < 4.0; a += 0.5 {
		got := ConstrainAngle(a, 2.0, Unconstrained)
		if math.Abs(got-NormalizeAngle(a)) > eps {
			t.Errorf("ConstrainAngle(%v, 2, unconstrained) = %v, want %v", a, got, NormalizeAngle(a))
		}
	}
}

func TestConstrainDistance(t *testing.T) {
	anchor := Vec2{X: 10, Y: 10}

	got := ConstrainDistance(Vec2{X: 40, Y: 50}, anchor, 10)
	want := Vec2{X: 16, Y: 18}
	if got.Dist(want) > eps {
		t.Errorf("ConstrainDistance = %v, want %v", got, want)
	}

	// inside the circle is pushed out too
	got = ConstrainDistance(Vec2{X: 11, Y: 10}, anchor, 5)
	if got.Dist(Vec2{X: 15, Y: 10}) > eps {
		t.Errorf("ConstrainDistance inside = %v, want (15, 10)", got)
	}
}

func TestConstrainDistanceDegenerate(t *testing.T) {
	anchor := Vec2{X: 3, Y: 4}
	got := ConstrainDistance(anchor, anchor, 7)
	if got.IsNaN() {
		t.Fatalf("ConstrainDistance on anchor produced %v", got)
	}
	if got.Dist(Vec2{X: 3, Y: 11}) > eps {
		t.Errorf("ConstrainDistance on anchor = %v, want (3, 11)", got)
	}
}
