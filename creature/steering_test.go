package creature

import (
	"math"
	"testing"

	"github.com/pthm-cable/wriggle/ik"
)

func TestSteeringTurnLimit(t *testing.T) {
	s := NewSteering(16, math.Pi/6, 25, 0)

	next, ok := s.Next(ik.Vec2{}, ik.Vec2{Y: 100})
	if !ok {
		t.Fatal("expected movement outside the dead zone")
	}
	if math.Abs(s.Heading()-math.Pi/6) > 1e-12 {
		t.Errorf("heading = %v, want pi/6", s.Heading())
	}
	want := ik.Vec2{X: 16 * math.Cos(math.Pi/6), Y: 8}
	if next.Dist(want) > 1e-9 {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestSteeringTurnsTheShortWay(t *testing.T) {
	s := NewSteering(10, math.Pi/6, 0, 0.1)
	s.Next(ik.Vec2{}, ik.Vec2{X: 100, Y: -10})
	if h := s.Heading(); h < math.Pi {
		t.Errorf("heading = %v, expected a clockwise turn past zero", h)
	}
}

func TestSteeringSmallTurnIsExact(t *testing.T) {
	s := NewSteering(10, math.Pi/6, 0, 0)
	desired := 0.2
	s.Next(ik.Vec2{}, ik.FromAngle(desired).Scale(100))
	if math.Abs(s.Heading()-desired) > 1e-12 {
		t.Errorf("heading = %v, want %v", s.Heading(), desired)
	}
}

func TestSteeringDeadZone(t *testing.T) {
	s := NewSteering(16, math.Pi/6, 25, 0)
	head := ik.Vec2{X: 10, Y: 10}

	next, ok := s.Next(head, ik.Vec2{X: 10, Y: 30})
	if ok {
		t.Error("expected no movement inside the dead zone")
	}
	if next != head {
		t.Errorf("next = %v, want head %v", next, head)
	}
	if s.Heading() != 0 {
		t.Errorf("heading changed inside the dead zone: %v", s.Heading())
	}
}

func TestSteeringConvergesOnTarget(t *testing.T) {
	s := NewSteering(16, math.Pi/6, 25, 0)
	head := ik.Vec2{}
	target := ik.Vec2{X: -300, Y: 200}

	for i := 0; i < 200; i++ {
		next, ok := s.Next(head, target)
		if !ok {
			break
		}
		head = next
	}
	if d := head.Dist(target); d >= 25 {
		t.Errorf("head stopped %v from target, want inside dead zone", d)
	}
}
