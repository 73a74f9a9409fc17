// Package components defines ECS components for the creatures.
package components

import "github.com/pthm-cable/wriggle/creature"

// Species tags an entity with its creature kind.
type Species struct {
	Kind creature.Kind
}

// Rig holds the controller that owns the entity's chains.
type Rig struct {
	Controller creature.Controller
}

// Active marks the creature that is resolved and drawn each frame.
// Exactly one entity carries it at a time.
type Active struct{}
