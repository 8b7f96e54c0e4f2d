// Package common defines shared constants and sentinel errors used across
// client and server layers of Event-Hub. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound is returned both when a row is
	// genuinely absent and when an owner-conditioned mutation matched no row;
	// the two cases are deliberately not told apart.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// Registration conflicts.
	ErrorEmailTaken = errors.New("email already registered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
