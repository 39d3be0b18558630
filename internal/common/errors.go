// Package common defines shared constants and sentinel errors used across
// the HealthDash client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")

	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// Transport errors.
	ErrUnavailable = errors.New("server unavailable")
)
