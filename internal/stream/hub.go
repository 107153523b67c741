package stream

import (
	"encoding/json"
	"log"
	"sync"

	"campus/internal/events"
)

// Client is one open streaming connection (SSE or WebSocket) for a user.
// A user may hold several at once (multi-tab).
type Client struct {
	UserID string
	Send   chan []byte

	hub    *Hub
	mu     sync.Mutex
	closed bool
}

// Close removes the client from the hub and closes its send channel. Safe to
// call more than once; connection teardown paths can race.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// Hub is the in-memory registry of live streaming connections, keyed by user.
// It is runtime-only state: nothing here survives a restart.
type Hub struct {
	mu     sync.RWMutex
	byUser map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{byUser: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(userID string) *Client {
	c := &Client{
		UserID: userID,
		Send:   make(chan []byte, 256),
		hub:    h,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.byUser[userID] == nil {
		h.byUser[userID] = make(map[*Client]struct{})
	}
	h.byUser[userID][c] = struct{}{}
	return c
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.byUser[c.UserID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.byUser, c.UserID)
		}
	}
}

// BroadcastEvent pushes a {type, event} frame to every connection of every
// registered user. The broadcast is deliberately unscoped: no filtering by
// whether the event concerns that user. A connection whose buffer is full is
// skipped rather than blocking the rest.
func (h *Hub) BroadcastEvent(kind string, event interface{}) {
	data, err := json.Marshal(map[string]interface{}{"type": kind, "event": event})
	if err != nil {
		log.Printf("stream: marshal %s frame: %v", kind, err)
		return
	}
	h.mu.RLock()
	clients := make([]*Client, 0)
	for _, m := range h.byUser {
		for c := range m {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()
	for _, c := range clients {
		c.trySend(data)
	}
}

// trySend drops the frame if the client is closed or its buffer is full, so
// one dead or slow connection never stalls delivery to the others.
func (c *Client) trySend(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

// SubscribeTo wires the hub to every domain event kind on the bus.
func (h *Hub) SubscribeTo(bus *events.Bus) {
	handler := func(ev events.Event) {
		h.BroadcastEvent(ev.Kind(), ev)
	}
	bus.Subscribe(events.KindGradesUpdated, handler)
	bus.Subscribe(events.KindAttendanceUpdated, handler)
	bus.Subscribe(events.KindNurseVisitLogged, handler)
	bus.Subscribe(events.KindDisciplineRecorded, handler)
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, m := range h.byUser {
		n += len(m)
	}
	return n
}
