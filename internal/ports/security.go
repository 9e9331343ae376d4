package ports

import (
	"time"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/google/uuid"
)

// AuthClaims is the principal carried by a session token: an account identity
// plus the normalized role label that gates operations.
type AuthClaims struct {
	UserID    int64
	Username  string
	Role      domain.Role
	SessionID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenSigner signs and validates session tokens.
type TokenSigner interface {
	Sign(claims AuthClaims) (string, error)
	ParseAndValidate(raw string) (AuthClaims, error)
}

// PasswordHasher hides the hash implementation from the application layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
