package auth

import (
	"sync"

	"lumina/models"
)

// Session event types.
const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)

// Event notifies listeners of a session change. User carries at least the ID
// on sign-out.
type Event struct {
	Type string
	User *models.User
}

type hub struct {
	mu        sync.Mutex
	seq       int
	listeners map[int]func(Event)
}

func newHub() *hub {
	return &hub{listeners: make(map[int]func(Event))}
}

// subscribe registers a listener and returns its unsubscribe function.
func (h *hub) subscribe(fn func(Event)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	id := h.seq
	h.listeners[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

func (h *hub) publish(e Event) {
	h.mu.Lock()
	fns := make([]func(Event), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
