package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// registryIdleTTL bounds how long an untouched guard stays cached. Most
// entries are one-shot anonymous sessions (cookieless hits that never log
// in); an evicted authenticated guard simply rehydrates from the store on
// its next request.
const registryIdleTTL = 30 * time.Minute

type registryEntry struct {
	guard    *Guard
	lastSeen time.Time
}

// Registry hands out one Guard per session ID so repeated requests from the
// same browser share in-memory state (and the Initialize debounce). Idle
// entries are evicted by a janitor goroutine.
type Registry struct {
	store Store
	auth  AuthSource

	mu     sync.Mutex
	guards map[string]*registryEntry
	stop   chan struct{}
}

func NewRegistry(store Store, auth AuthSource) *Registry {
	r := &Registry{
		store:  store,
		auth:   auth,
		guards: make(map[string]*registryEntry),
		stop:   make(chan struct{}),
	}
	go r.janitor()
	return r
}

func (r *Registry) Guard(sid string) *Guard {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.guards[sid]; ok {
		e.lastSeen = time.Now()
		return e.guard
	}
	g := NewGuard(r.store, r.auth, sid)
	r.guards[sid] = &registryEntry{guard: g, lastSeen: time.Now()}
	return g
}

// Drop forgets a guard after logout so the map does not accumulate dead
// sessions; the next request with the same cookie gets a fresh one.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guards, sid)
}

func (r *Registry) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.prune(time.Now())
		case <-r.stop:
			return
		}
	}
}

func (r *Registry) prune(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for sid, e := range r.guards {
		if now.Sub(e.lastSeen) > registryIdleTTL {
			delete(r.guards, sid)
		}
	}
}

// Close stops the janitor.
func (r *Registry) Close() {
	close(r.stop)
}

// NewSessionID mints an ID for a browser that arrived without a cookie.
func NewSessionID() string {
	return uuid.NewString()
}
