package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/rantevou-app/gateway/internal/backend"
)

// initDebounce coalesces bursts of Initialize calls (one per request while
// a page hydrates) into a single store read.
const initDebounce = 100 * time.Millisecond

// AuthSource exchanges credentials for a bearer token. Satisfied by
// *backend.Client.
type AuthSource interface {
	Authenticate(ctx context.Context, username, password string) (backend.AuthenticateResponse, error)
}

// Guard owns authentication state for one session: current user,
// authenticated flag, loading flag. It is the only component that touches
// the token store; handlers and middleware only ask it questions.
type Guard struct {
	store Store
	auth  AuthSource
	sid   string

	mu            sync.Mutex
	user          *UserRecord
	authenticated bool
	loading       bool
	lastInit      time.Time
}

func NewGuard(store Store, auth AuthSource, sid string) *Guard {
	return &Guard{
		store:   store,
		auth:    auth,
		sid:     sid,
		loading: true,
	}
}

// Initialize hydrates in-memory state from the store. Anything missing,
// expired or corrupt resolves to "not authenticated" and purges the bad
// records; errors are never surfaced to the caller. The loading flag is
// always cleared on return.
func (g *Guard) Initialize(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.lastInit.IsZero() && time.Since(g.lastInit) < initDebounce {
		return
	}

	g.loading = true
	defer func() {
		g.loading = false
		g.lastInit = time.Now()
	}()

	token, err := g.store.Token(ctx, g.sid)
	if err != nil || token == "" {
		g.resetLocked(ctx)
		return
	}

	raw, err := g.store.User(ctx, g.sid)
	if err != nil {
		g.resetLocked(ctx)
		return
	}

	var user UserRecord
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("session: corrupt user record for %s, clearing: %v", g.sid, err)
		g.resetLocked(ctx)
		return
	}

	if user.Expired(time.Now()) {
		g.resetLocked(ctx)
		return
	}

	g.user = &user
	g.authenticated = true
}

// Login exchanges credentials upstream and, on success, writes the token
// and user records (absolute expiry = now + expiresIn) and flips the state
// to authenticated. Failures force the unauthenticated state and propagate.
func (g *Guard) Login(ctx context.Context, username, password string) (UserRecord, error) {
	g.mu.Lock()
	g.loading = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.loading = false
		g.mu.Unlock()
	}()

	resp, err := g.auth.Authenticate(ctx, username, password)
	if err != nil {
		g.failLogin(ctx)
		return UserRecord{}, err
	}

	ttl := time.Duration(resp.ExpiresIn) * time.Second
	user := UserRecord{
		Username:  resp.Username,
		Role:      resp.Role,
		ExpiresAt: time.Now().Add(ttl),
	}

	raw, err := json.Marshal(user)
	if err != nil {
		g.failLogin(ctx)
		return UserRecord{}, err
	}
	if err := g.store.SetToken(ctx, g.sid, resp.Token, ttl); err != nil {
		g.failLogin(ctx)
		return UserRecord{}, err
	}
	if err := g.store.SetUser(ctx, g.sid, raw, ttl); err != nil {
		g.failLogin(ctx)
		return UserRecord{}, err
	}

	g.mu.Lock()
	g.user = &user
	g.authenticated = true
	g.lastInit = time.Now()
	g.mu.Unlock()

	return user, nil
}

// Logout clears the store and resets state. Idempotent: calling it when
// already logged out only removes any stale records.
func (g *Guard) Logout(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked(ctx)
	g.lastInit = time.Now()
}

// failLogin clears any partially written records; a half-committed login
// must not leave an orphaned token behind.
func (g *Guard) failLogin(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked(ctx)
}

func (g *Guard) resetLocked(ctx context.Context) {
	if err := g.store.Clear(ctx, g.sid); err != nil {
		log.Printf("session: clear failed for %s: %v", g.sid, err)
	}
	g.user = nil
	g.authenticated = false
}

// IsAuthenticated is a pure in-memory read; expiry is still honored so a
// long-lived guard cannot report a token that has lapsed since hydration.
func (g *Guard) IsAuthenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.authenticated || g.user == nil {
		return false
	}
	return !g.user.Expired(time.Now())
}

// CurrentUser returns a copy of the user record, or zero when anonymous.
func (g *Guard) CurrentUser() (UserRecord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.authenticated || g.user == nil || g.user.Expired(time.Now()) {
		return UserRecord{}, false
	}
	return *g.user, true
}

func (g *Guard) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// Token returns the bearer token for upstream calls. A read past expiry
// triggers an implicit logout before reporting no record.
func (g *Guard) Token(ctx context.Context) (string, error) {
	g.mu.Lock()
	user := g.user
	g.mu.Unlock()

	if user != nil && user.Expired(time.Now()) {
		g.Logout(ctx)
		return "", ErrNoRecord
	}

	return g.store.Token(ctx, g.sid)
}

// Teardown is the hook for upstream 401s: the remote API has declared the
// token dead, so the whole session goes with it.
func (g *Guard) Teardown() {
	g.Logout(context.Background())
}
