package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the normalized role label gating which operations are reachable.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleTrazabilidad Role = "TRAZABILIDAD"
	RoleDispatch     Role = "DISPATCH"
)

// User is an operator account. Accounts gate access only; they carry no
// packing-workflow state of their own.
type User struct {
	UserID       int64
	Username     string
	FullName     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session models an issued login session, persisted for revocation.
type Session struct {
	SessionID uuid.UUID
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// NormalizeRole maps the role spellings found in legacy user data onto the
// closed role set. This is a static declared contract; the legacy system
// discovered role columns by schema introspection instead.
func NormalizeRole(input string) (Role, bool) {
	s := strings.ToUpper(strings.TrimSpace(input))
	switch s {
	case "ADMIN", "ADM", "ADMINISTRADOR":
		return RoleAdmin, true
	case "TRAZABILIDAD", "TRACE", "PRODUCCION", "PRODUCCIÓN":
		return RoleTrazabilidad, true
	case "DISPATCH", "DESPACHO", "DESPACHOS":
		return RoleDispatch, true
	}
	switch {
	case strings.Contains(s, "ADMIN"):
		return RoleAdmin, true
	case strings.Contains(s, "DISPATCH"), strings.Contains(s, "DESPACH"):
		return RoleDispatch, true
	case strings.Contains(s, "TRAZABILIDAD"), strings.Contains(s, "PRODUC"):
		return RoleTrazabilidad, true
	}
	return "", false
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,40}$`)

// ValidateUsername enforces the account-name shape.
func ValidateUsername(v string) error {
	if !usernamePattern.MatchString(strings.TrimSpace(v)) {
		return fmt.Errorf("%w: username must be 3-40 chars of letters, digits, dot, dash, underscore", ErrInvalidInput)
	}
	return nil
}

const minPasswordLength = 8

// ValidatePassword enforces the baseline password policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if len(password) > 128 {
		return fmt.Errorf("%w: password must be <= 128 characters", ErrInvalidInput)
	}
	return nil
}
