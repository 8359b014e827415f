package session

import (
	"context"
	"testing"
	"time"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(newTestStore(t), &fakeAuth{})
	t.Cleanup(r.Close)
	return r
}

func TestRegistryReusesGuardPerSession(t *testing.T) {
	r := newTestRegistry(t)

	g1 := r.Guard("s1")
	g2 := r.Guard("s1")
	if g1 != g2 {
		t.Fatal("same session ID must share one guard")
	}
	if r.Guard("s2") == g1 {
		t.Fatal("different session IDs must not share a guard")
	}
}

func TestRegistryDrop(t *testing.T) {
	r := newTestRegistry(t)

	g1 := r.Guard("s1")
	r.Drop("s1")
	if r.Guard("s1") == g1 {
		t.Fatal("dropped session must get a fresh guard")
	}
}

func TestRegistryPrunesIdleAnonymousGuards(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	// One-shot cookieless hits: each mints an ID, hydrates, and never
	// comes back.
	for i := 0; i < 1000; i++ {
		g := r.Guard(NewSessionID())
		g.Initialize(ctx)
	}
	active := r.Guard("active")

	r.mu.Lock()
	for sid, e := range r.guards {
		if sid != "active" {
			e.lastSeen = e.lastSeen.Add(-registryIdleTTL - time.Minute)
		}
	}
	r.mu.Unlock()

	r.prune(time.Now())

	r.mu.Lock()
	remaining := len(r.guards)
	r.mu.Unlock()
	if remaining != 1 {
		t.Fatalf("registry kept %d guards after pruning, want 1", remaining)
	}
	if r.Guard("active") != active {
		t.Fatal("recently used guard must survive pruning")
	}
}
