package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoRecord means the session has no such record (never stored, expired,
// or cleared). Callers treat it as "not authenticated", never as a failure.
var ErrNoRecord = errors.New("session: no record")

// UserRecord is the persisted user descriptor. ExpiresAt is the absolute
// expiry instant computed at login from the backend's expiresIn.
type UserRecord struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (u UserRecord) Expired(now time.Time) bool {
	return !u.ExpiresAt.IsZero() && now.After(u.ExpiresAt)
}

// Store keeps two separate records per session: the opaque bearer token and
// the user descriptor as raw JSON. The user record stays raw at this level
// so a corrupted payload surfaces on decode, where the guard can self-heal.
type Store interface {
	SetToken(ctx context.Context, sid, token string, ttl time.Duration) error
	Token(ctx context.Context, sid string) (string, error)

	SetUser(ctx context.Context, sid string, raw []byte, ttl time.Duration) error
	User(ctx context.Context, sid string) ([]byte, error)

	Clear(ctx context.Context, sid string) error
}
