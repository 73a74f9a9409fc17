// Package telemetry records how well creature chains hold their shape and
// how the creatures move, in fixed time windows.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventSelect EventType = iota // a creature became active
	EventStep                    // a limb re-planted its foot
	EventIdle                    // the creature held still for a frame
)

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Tick     int32
	Creature string
	Limb     int // for EventStep
}

// NewSelectEvent creates a creature switch event.
func NewSelectEvent(tick int32, creature string) Event {
	return Event{Type: EventSelect, Tick: tick, Creature: creature}
}

// NewStepEvent creates a limb step event.
func NewStepEvent(tick int32, creature string, limb int) Event {
	return Event{Type: EventStep, Tick: tick, Creature: creature, Limb: limb}
}

// NewIdleEvent creates an idle frame event.
func NewIdleEvent(tick int32, creature string) Event {
	return Event{Type: EventIdle, Tick: tick, Creature: creature}
}
