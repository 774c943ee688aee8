package portal

import (
	"sync"
	"time"

	"lumina/auth"
	"lumina/models"
)

// Registry tracks portal state per signed-in user. It listens for session
// changes from the auth collaborator: sign-in builds the state, sign-out
// tears it down.
type Registry struct {
	mu          sync.Mutex
	states      map[string]*State
	idleTTL     time.Duration
	unsubscribe func()
}

// Sessions is the process-wide registry, set by Init.
var Sessions *Registry

// Init wires the global registry to the auth service's session events.
func Init(svc *auth.Service, idleTTL time.Duration) {
	Sessions = NewRegistry(idleTTL)
	Sessions.unsubscribe = svc.Subscribe(Sessions.onSessionChange)
}

func NewRegistry(idleTTL time.Duration) *Registry {
	return &Registry{states: make(map[string]*State), idleTTL: idleTTL}
}

func (r *Registry) onSessionChange(e auth.Event) {
	if e.User == nil {
		return
	}
	switch e.Type {
	case auth.EventSignedIn:
		r.Attach(e.User)
	case auth.EventSignedOut:
		r.Drop(e.User.ID)
	}
}

// Attach returns the user's portal state, creating it on first contact. The
// stored user record is refreshed on every call.
func (r *Registry) Attach(user *models.User) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[user.ID]
	if !ok {
		state = newState(user)
		r.states[user.ID] = state
		return state
	}
	state.setUser(user)
	return state
}

// Get returns the state for the user id, or nil if none exists.
func (r *Registry) Get(uid string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[uid]
}

// Drop discards the user's portal state entirely.
func (r *Registry) Drop(uid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, uid)
}

// SweepIdle evicts states that have been idle longer than the configured
// TTL and reports how many were removed.
func (r *Registry) SweepIdle() int {
	if r.idleTTL <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	evicted := 0
	for uid, state := range r.states {
		if state.idleSince(now) > r.idleTTL {
			delete(r.states, uid)
			evicted++
		}
	}
	return evicted
}

// Close unregisters the session listener.
func (r *Registry) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
