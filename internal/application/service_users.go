package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/agroandes/trazabilidad/internal/ports"
)

// CreateUser registers an operator account. The submitted role label is
// normalized onto the closed role set; unrecognized labels are rejected.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if err := domain.ValidateUsername(username); err != nil {
		return UserResponse{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return UserResponse{}, err
	}

	roleInput := req.Role
	if strings.TrimSpace(roleInput) == "" {
		roleInput = s.cfg.DefaultRole
	}
	role, ok := domain.NormalizeRole(roleInput)
	if !ok {
		return UserResponse{}, fmt.Errorf("%w: unrecognized role %q", domain.ErrInvalidInput, req.Role)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, ports.UserCreateParams{
		Username:     username,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return UserResponse{}, err
	}
	return userResponse(user), nil
}

// UpdateUser edits name, role and active flag.
func (s *Service) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}

	role := user.Role
	if strings.TrimSpace(req.Role) != "" {
		normalized, ok := domain.NormalizeRole(req.Role)
		if !ok {
			return UserResponse{}, fmt.Errorf("%w: unrecognized role %q", domain.ErrInvalidInput, req.Role)
		}
		role = normalized
	}
	fullName := user.FullName
	if strings.TrimSpace(req.FullName) != "" {
		fullName = strings.TrimSpace(req.FullName)
	}
	isActive := user.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if err := s.users.Update(ctx, userID, fullName, role, isActive); err != nil {
		return UserResponse{}, err
	}
	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}
	return userResponse(updated), nil
}

// ChangeUserPassword resets an account password (ADMIN operation).
func (s *Service) ChangeUserPassword(ctx context.Context, userID int64, password string) error {
	if err := domain.ValidatePassword(password); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, hash, s.nowFn())
}

// ListUsers returns every operator account.
func (s *Service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	return out, nil
}

func userResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
