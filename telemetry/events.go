// Package telemetry provides population health tracking, bookmarking, and CSV output.
package telemetry

import "github.com/pthm-cable/gotchi/creature"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventDeath EventType = iota
	EventAsleep
	EventWake
	EventInput
)

func (t EventType) String() string {
	switch t {
	case EventDeath:
		return "death"
	case EventAsleep:
		return "asleep"
	case EventWake:
		return "wake"
	case EventInput:
		return "input"
	default:
		return "unknown"
	}
}

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Tick     int32
	EntityID uint32

	// Optional fields depending on event type
	Attr     creature.Attribute // death cause or input target
	Amount   int                // input delta
	Accepted bool               // input taken by the creature
}

// NewDeathEvent creates a death event.
func NewDeathEvent(tick int32, entityID uint32, cause creature.Attribute) Event {
	return Event{Type: EventDeath, Tick: tick, EntityID: entityID, Attr: cause}
}

// NewAsleepEvent creates a sleep onset event.
func NewAsleepEvent(tick int32, entityID uint32) Event {
	return Event{Type: EventAsleep, Tick: tick, EntityID: entityID}
}

// NewWakeEvent creates a wake-up event.
func NewWakeEvent(tick int32, entityID uint32) Event {
	return Event{Type: EventWake, Tick: tick, EntityID: entityID}
}

// NewInputEvent creates a manual input event.
func NewInputEvent(tick int32, entityID uint32, attr creature.Attribute, amount int, accepted bool) Event {
	return Event{
		Type:     EventInput,
		Tick:     tick,
		EntityID: entityID,
		Attr:     attr,
		Amount:   amount,
		Accepted: accepted,
	}
}

// EventsFromOutcome converts a tick outcome into events.
func EventsFromOutcome(entityID uint32, out creature.Outcome) []Event {
	var events []Event
	tick := int32(out.Tick)
	if out.FellAsleep {
		events = append(events, NewAsleepEvent(tick, entityID))
	}
	if out.Woke {
		events = append(events, NewWakeEvent(tick, entityID))
	}
	if out.Died {
		events = append(events, NewDeathEvent(tick, entityID, out.Cause))
	}
	return events
}
