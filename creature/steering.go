package creature

import (
	"math"

	"github.com/pthm-cable/wriggle/ik"
)

const (
	pi       = math.Pi
	halfTurn = math.Pi / 2
)

// Steering moves a head a fixed distance per frame, limiting how fast the
// direction of travel may turn.
type Steering struct {
	Speed    float64 // Head travel per frame
	MaxTurn  float64 // Radians of turn per frame
	DeadZone float64 // Hold still when the target is closer than this

	heading float64
}

// NewSteering starts out travelling along heading.
func NewSteering(speed, maxTurn, deadZone, heading float64) *Steering {
	return &Steering{Speed: speed, MaxTurn: maxTurn, DeadZone: deadZone, heading: ik.NormalizeAngle(heading)}
}

// Heading returns the current direction of travel.
func (s *Steering) Heading() float64 { return s.heading }

// Next returns where the head should go this frame. ok is false inside the
// dead zone, in which case the head stays put and the heading is unchanged.
func (s *Steering) Next(head, target ik.Vec2) (next ik.Vec2, ok bool) {
	if head.Dist(target) < s.DeadZone {
		return head, false
	}
	desired := target.Sub(head)
	if desired.IsZero() {
		return head, false
	}

	turn := ik.RelativeAngleDiff(s.heading, desired.Heading())
	turn = math.Max(-s.MaxTurn, math.Min(s.MaxTurn, turn))
	s.heading = ik.NormalizeAngle(s.heading + turn)

	return head.Add(ik.FromAngle(s.heading).Scale(s.Speed)), true
}
