package session

import (
	"context"
	"time"
)

// Session holds only the account identifier, never provider-shaped
// profile data. Display data is re-fetched on demand from the store.
type Session struct {
	SessionID string    // unique session identifier
	SteamID   string    // references the account record key
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
