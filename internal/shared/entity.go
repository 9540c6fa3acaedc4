package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity carries the identity every non-value domain object has.
// Equality between entities is identity equality within a concrete
// type; entities of different types are never the same even when their
// ids collide.
type Entity struct {
	id uuid.UUID
}

// NewEntity assigns a fresh identity.
func NewEntity() Entity {
	return Entity{id: uuid.New()}
}

// EntityFrom rebuilds an entity around an existing identity, rejecting
// the nil uuid.
func EntityFrom(id uuid.UUID) (Entity, error) {
	if id == uuid.Nil {
		return Entity{}, fmt.Errorf("%w: entity id cannot be empty", ErrValidation)
	}
	return Entity{id: id}, nil
}

func (e Entity) ID() uuid.UUID { return e.id }

// AggregateRoot extends Entity with the ordered buffer of domain
// events produced during the aggregate's current in-memory lifetime.
// Events are not part of persisted state; the orchestrating service
// reads and clears them after a successful persist.
type AggregateRoot struct {
	Entity
	events []Event
}

// NewAggregateRoot creates a root with a fresh identity and an empty
// event buffer.
func NewAggregateRoot() AggregateRoot {
	return AggregateRoot{Entity: NewEntity()}
}

// RaiseEvent appends an event to the buffer. Intended for the
// aggregate's own operations only.
func (a *AggregateRoot) RaiseEvent(event Event) {
	a.events = append(a.events, event)
}

// Events returns the buffered events in the order they were raised.
func (a *AggregateRoot) Events() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

// ClearEvents empties the buffer, typically after dispatch.
func (a *AggregateRoot) ClearEvents() {
	a.events = nil
}
