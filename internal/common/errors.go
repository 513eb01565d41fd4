// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Controller-level outcomes. A validation rejection keeps the form
	// populated for correction; an authorization denial is a silent no-op.
	ErrValidation    = errors.New("validation rejected")
	ErrNotAuthorized = errors.New("not authorized")

	// Auth errors.
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidLogin     = errors.New("invalid username or password")
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotAuthenticated = errors.New("not authenticated")
)
