package events

import (
	"log"
	"sync"
)

// Handler consumes one event. Handlers must not be relied on for errors:
// anything they panic with is swallowed by the bus.
type Handler func(Event)

// Bus is a process-wide, in-memory publish/subscribe dispatcher. It holds no
// persistent state; a restart starts from an empty subscription table.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a kind. For a given kind, handlers run
// in registration order.
func (b *Bus) Subscribe(kind string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], h)
}

// Publish invokes every handler registered for the event's kind,
// synchronously and in order. A failing handler never stops the remaining
// handlers and never reaches the publisher: the triggering write has already
// committed, so notification failures must not surface as request errors.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	hs := b.handlers[ev.Kind()]
	b.mu.RUnlock()
	for _, h := range hs {
		b.dispatch(ev, h)
	}
}

func (b *Bus) dispatch(ev Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("events: handler for %s panicked: %v", ev.Kind(), r)
		}
	}()
	h(ev)
}
