// Package events provides the in-process dispatcher that delivers
// buffered domain events to subscribed handlers after an aggregate has
// been persisted. Delivery is best-effort: a crash between persist and
// dispatch loses the batch.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/storefront/internal/shared"
)

// Handler reacts to a dispatched domain event. Handlers must not
// block; long work belongs in their own goroutines.
type Handler func(ctx context.Context, event shared.Event)

// Dispatcher fans domain events out to handlers in subscription order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher logging each delivery through
// the given logger.
func NewDispatcher(log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{log: log}
}

// Subscribe registers a handler for all subsequent dispatches.
func (d *Dispatcher) Subscribe(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Dispatch delivers the events, in order, to every handler.
func (d *Dispatcher) Dispatch(ctx context.Context, evs ...shared.Event) {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, ev := range evs {
		d.log.Info("domain event dispatched",
			slog.String("event", fmt.Sprintf("%T", ev)),
			slog.String("event_id", ev.EventID().String()),
			slog.Time("occurred_at", ev.OccurredAt()),
		)
		for _, h := range handlers {
			h(ctx, ev)
		}
	}
}
