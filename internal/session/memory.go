package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore holds session records in maps protected by a RWMutex.
// Expiration is handled lazily on read plus a background janitor goroutine.
// Suitable for single-instance deployments and tests; multi-instance setups
// use the Redis store.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]memoryRecord
	users  map[string]memoryRecord
	stop   chan struct{}
}

type memoryRecord struct {
	value  []byte
	expiry time.Time
}

func (r memoryRecord) expired(now time.Time) bool {
	return !r.expiry.IsZero() && now.After(r.expiry)
}

func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{
		tokens: make(map[string]memoryRecord),
		users:  make(map[string]memoryRecord),
		stop:   make(chan struct{}),
	}
	go ms.janitor()
	return ms
}

func (m *MemoryStore) SetToken(ctx context.Context, sid, token string, ttl time.Duration) error {
	m.set(m.tokens, sid, []byte(token), ttl)
	return nil
}

func (m *MemoryStore) Token(ctx context.Context, sid string) (string, error) {
	raw, err := m.get(m.tokens, sid)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (m *MemoryStore) SetUser(ctx context.Context, sid string, raw []byte, ttl time.Duration) error {
	m.set(m.users, sid, raw, ttl)
	return nil
}

func (m *MemoryStore) User(ctx context.Context, sid string) ([]byte, error) {
	return m.get(m.users, sid)
}

func (m *MemoryStore) Clear(ctx context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, sid)
	delete(m.users, sid)
	return nil
}

func (m *MemoryStore) set(records map[string]memoryRecord, sid string, value []byte, ttl time.Duration) {
	rec := memoryRecord{value: value}
	if ttl > 0 {
		rec.expiry = time.Now().Add(ttl)
	}
	m.mu.Lock()
	records[sid] = rec
	m.mu.Unlock()
}

func (m *MemoryStore) get(records map[string]memoryRecord, sid string) ([]byte, error) {
	m.mu.RLock()
	rec, ok := records[sid]
	m.mu.RUnlock()
	if !ok || rec.expired(time.Now()) {
		return nil, ErrNoRecord
	}
	return rec.value, nil
}

// janitor purges expired records once a minute.
func (m *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.prune()
		case <-m.stop:
			return
		}
	}
}

func (m *MemoryStore) prune() {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for sid, rec := range m.tokens {
		if rec.expired(now) {
			delete(m.tokens, sid)
		}
	}
	for sid, rec := range m.users {
		if rec.expired(now) {
			delete(m.users, sid)
		}
	}
}

// Close stops the janitor.
func (m *MemoryStore) Close() {
	close(m.stop)
}
