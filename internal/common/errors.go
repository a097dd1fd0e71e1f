// Package common defines shared constants and sentinel errors used across
// client and server layers of the portal. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors. These are raised before any network call is made.
	ErrorValidation         = errors.New("validation error")
	ErrNoOrganization       = errors.New("user has no associated organization")
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
	ErrFolderMetadata       = errors.New("folders cannot carry metadata")

	// Workflow errors.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBusy              = errors.New("another operation is in progress")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
