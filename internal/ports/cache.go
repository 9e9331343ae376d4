package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionRevocationStore flags logged-out sessions so tokens die before their
// natural expiry.
type SessionRevocationStore interface {
	MarkRevoked(ctx context.Context, sessionID uuid.UUID, expiresAt time.Time) error
	IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error)
}
