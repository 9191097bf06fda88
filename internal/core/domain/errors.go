package domain

import "errors"

// Common domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrInternal        = errors.New("internal server error")
)

// Auth errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAccountLocked     = errors.New("account is locked")
	ErrAccountDisabled   = errors.New("account is disabled")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Workflow errors
var (
	ErrAlreadyHandled    = errors.New("case is already closed")
	ErrAlreadyCompleted  = errors.New("reservation is already completed")
	ErrInvalidOrder      = errors.New("timestamp ordering violation")
	ErrInvalidTransition = errors.New("invalid status transition")
)
