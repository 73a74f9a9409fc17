package creature

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

// Snake slides straight at the target every frame.
type Snake struct {
	body      Body
	speed     float64
	bodyColor color.RGBA
}

// NewSnake builds a snake with its head at origin. Vertebrae past the head
// table taper by one unit each.
func NewSnake(origin ik.Vec2, cfg *config.Config) (*Snake, error) {
	sc := cfg.Snake
	spine, err := newSpine(origin, sc.Spine, cfg.Derived.SnakeConstraint)
	if err != nil {
		return nil, fmt.Errorf("snake spine: %w", err)
	}

	widths := make([]float64, sc.Spine.Joints)
	for i := range widths {
		if i < len(sc.HeadWidths) {
			widths[i] = sc.HeadWidths[i]
		} else {
			widths[i] = sc.TaperBase - float64(i)
		}
		if widths[i] <= 0 {
			return nil, fmt.Errorf("snake vertebra %d has width %v", i, widths[i])
		}
	}

	return &Snake{
		body:      Body{spine: spine, widths: widths},
		speed:     sc.Speed,
		bodyColor: rgba(sc.BodyColor),
	}, nil
}

func (s *Snake) Kind() Kind { return KindSnake }

func (s *Snake) Spine() *ik.Chain { return s.body.spine }

func (s *Snake) Body() *Body { return &s.body }

// Resolve moves the head a fixed step toward target.
func (s *Snake) Resolve(target ik.Vec2) {
	spine := s.body.spine
	spine.Resolve(StepToward(spine.Head(), target, s.speed))
}

func (s *Snake) Render(sink Sink) {
	b := &s.body
	sink.Curve(b.Outline(b.spine.Len()-1, true, [3]ik.Vec2{
		b.SurfacePoint(0, -pi/6, 0),
		b.SurfacePoint(0, 0, 0),
		b.SurfacePoint(0, pi/6, 0),
	}), filled(s.bodyColor))

	eye := filled(white)
	sink.Circle(b.SurfacePoint(0, halfTurn, eyeInset), eyeRadius, eye)
	sink.Circle(b.SurfacePoint(0, -halfTurn, eyeInset), eyeRadius, eye)
}
