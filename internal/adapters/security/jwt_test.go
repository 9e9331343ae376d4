package security

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
)

func TestJWTSignerRoundtrip(t *testing.T) {
	t.Parallel()

	signer, err := NewEphemeralJWTSigner("")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	claims := ports.AuthClaims{
		UserID:    42,
		Username:  "maria.gomez",
		Role:      domain.RoleTrazabilidad,
		SessionID: uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(12 * time.Hour),
	}

	token, err := signer.Sign(claims)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := signer.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != claims.UserID || parsed.Username != claims.Username {
		t.Fatalf("identity mismatch: %+v", parsed)
	}
	if parsed.Role != domain.RoleTrazabilidad {
		t.Fatalf("role = %s", parsed.Role)
	}
	if parsed.SessionID != claims.SessionID {
		t.Fatalf("session mismatch: %s vs %s", parsed.SessionID, claims.SessionID)
	}
	if !parsed.ExpiresAt.Equal(claims.ExpiresAt) {
		t.Fatalf("expiry mismatch: %s vs %s", parsed.ExpiresAt, claims.ExpiresAt)
	}
}

func TestJWTSignerRejectsTampering(t *testing.T) {
	t.Parallel()

	signer, err := NewEphemeralJWTSigner("test-key")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	now := time.Now().UTC()
	token, err := signer.Sign(ports.AuthClaims{
		UserID:    1,
		Username:  "admin",
		Role:      domain.RoleAdmin,
		SessionID: uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := signer.ParseAndValidate(tampered); err == nil {
		t.Fatal("tampered signature should not validate")
	}

	// A token from another keypair never validates either.
	other, err := NewEphemeralJWTSigner("other-key")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	foreign, err := other.Sign(ports.AuthClaims{
		UserID:    1,
		Username:  "admin",
		Role:      domain.RoleAdmin,
		SessionID: uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := signer.ParseAndValidate(foreign); err == nil {
		t.Fatal("foreign-key token should not validate")
	}
}

func TestJWTSignerRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, err := NewEphemeralJWTSigner("test-key")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	now := time.Now().UTC()
	token, err := signer.Sign(ports.AuthClaims{
		UserID:    1,
		Username:  "admin",
		Role:      domain.RoleAdmin,
		SessionID: uuid.New(),
		IssuedAt:  now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := signer.ParseAndValidate(token); err == nil {
		t.Fatal("expired token should not validate")
	}
}

func TestBcryptHasherRoundtrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(4)
	hash, err := hasher.Hash("packhouse-2024")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "packhouse-2024" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := hasher.Compare(hash, "packhouse-2024"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong-password"); err == nil {
		t.Fatal("wrong password should not compare")
	}
}
