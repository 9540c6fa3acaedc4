package shared

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact recorded by an aggregate for asynchronous
// external reaction.
type Event interface {
	EventID() uuid.UUID
	OccurredAt() time.Time
}

// EventMeta supplies the identity and UTC timestamp every concrete
// event embeds.
type EventMeta struct {
	id         uuid.UUID
	occurredAt time.Time
}

// NewEventMeta stamps a fresh event with an id and the current UTC
// time.
func NewEventMeta() EventMeta {
	return EventMeta{id: uuid.New(), occurredAt: time.Now().UTC()}
}

func (m EventMeta) EventID() uuid.UUID    { return m.id }
func (m EventMeta) OccurredAt() time.Time { return m.occurredAt }
