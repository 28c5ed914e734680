// Package session keeps server-side session state keyed by an opaque cookie token.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable wraps backend failures (network, closed client, ...).
var ErrStoreUnavailable = errors.New("session store unavailable")

// Record is the authenticated identity bound to a session.
type Record struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
}

// Entry is what a store holds per token. User is nil for anonymous sessions.
type Entry struct {
	User *Record `json:"user,omitempty"`
}

// Store is implemented by MemoryStore and RedisStore.
type Store interface {
	// Get returns ok=false for unknown or expired tokens.
	Get(ctx context.Context, token string) (Entry, bool, error)
	Set(ctx context.Context, token string, entry Entry, ttl time.Duration) error
	// Destroy is idempotent: removing an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}
