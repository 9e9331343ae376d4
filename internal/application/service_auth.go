package application

import (
	"context"
	"errors"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
	"github.com/google/uuid"
)

// Login authenticates an operator and issues a signed session token carrying
// the normalized role. Wrong username and wrong password are indistinguishable
// to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginResponse{}, domain.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}
	if !user.IsActive {
		return LoginResponse{}, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	now := s.nowFn()
	claims := ports.AuthClaims{
		UserID:    user.UserID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: uuid.New(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	token, err := s.tokenSigner.Sign(claims)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{
		Token:     token,
		Role:      string(user.Role),
		Username:  user.Username,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// Logout revokes the current session; the token stops validating immediately.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokenSigner.ParseAndValidate(token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	return s.revocations.MarkRevoked(ctx, claims.SessionID, claims.ExpiresAt)
}

// ValidateToken parses a session token and rejects revoked sessions.
func (s *Service) ValidateToken(ctx context.Context, token string) (ports.AuthClaims, error) {
	claims, err := s.tokenSigner.ParseAndValidate(token)
	if err != nil {
		return ports.AuthClaims{}, domain.ErrUnauthorized
	}
	revoked, err := s.revocations.IsRevoked(ctx, claims.SessionID)
	if err != nil {
		return ports.AuthClaims{}, err
	}
	if revoked {
		return ports.AuthClaims{}, domain.ErrSessionRevoked
	}
	return claims, nil
}
