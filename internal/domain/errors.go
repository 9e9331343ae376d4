package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput marks user input that violates an invariant. The wrapped
	// message names the field/rule so the caller can redisplay the form with it.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict signals a duplicate unique field (user management).
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials hides whether username or password failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	// ErrForbidden is returned when the principal's role does not reach the operation.
	ErrForbidden      = errors.New("forbidden")
	ErrSessionRevoked = errors.New("session revoked")
)
