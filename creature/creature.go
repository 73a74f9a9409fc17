// Package creature composes IK chains into animated animals.
//
// Every creature owns one angle-constrained spine. Legged creatures add
// FABRIK-resolved limbs anchored to the body surface. Controllers never draw
// directly; Render describes the silhouette to a Sink.
package creature

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/wriggle/config"
	"github.com/pthm-cable/wriggle/ik"
)

// Kind identifies a creature type.
type Kind uint8

const (
	KindFish Kind = iota
	KindSnake
	KindLizard
)

// Kinds lists every creature in selection order.
var Kinds = []Kind{KindFish, KindSnake, KindLizard}

func (k Kind) String() string {
	switch k {
	case KindFish:
		return "fish"
	case KindSnake:
		return "snake"
	case KindLizard:
		return "lizard"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	return Kind((int(k) + 1) % len(Kinds))
}

// ParseKind maps a creature name to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown creature %q", s)
}

// Eyes sit eyeInset inside the skin at the sides of the head.
const (
	eyeInset  = -18
	eyeRadius = 12
)

// Controller is the per-frame surface every creature exposes.
type Controller interface {
	Kind() Kind
	// Resolve advances the creature one frame toward target.
	Resolve(target ik.Vec2)
	// Render describes the current pose to s.
	Render(s Sink)
	// Spine returns the main body chain.
	Spine() *ik.Chain
}

// Limbed is implemented by creatures with legs.
type Limbed interface {
	Limbs() []*Limb
}

// Idler is implemented by creatures that can hold still near their target.
type Idler interface {
	// Idle reports whether the last Resolve left the creature in place.
	Idle() bool
}

// New builds the creature of the given kind with its head at origin.
func New(kind Kind, origin ik.Vec2, cfg *config.Config) (Controller, error) {
	switch kind {
	case KindFish:
		return NewFish(origin, cfg)
	case KindSnake:
		return NewSnake(origin, cfg)
	case KindLizard:
		return NewLizard(origin, cfg)
	}
	return nil, fmt.Errorf("unknown creature kind %d", kind)
}

// StepToward returns the point step away from head in the direction of
// target. A target on the head yields the head.
func StepToward(head, target ik.Vec2, step float64) ik.Vec2 {
	return head.Add(target.Sub(head).WithLen(step))
}

func rgba(c config.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

var (
	white   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outline = Style{Stroke: white, StrokeWidth: 4}
)

func filled(c color.RGBA) Style {
	s := outline
	s.Fill = c
	return s
}

func newSpine(origin ik.Vec2, sc config.SpineConfig, constraint float64) (*ik.Chain, error) {
	return ik.NewChain(origin, sc.Joints, sc.LinkSize, constraint)
}
