package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates the operation conflicts with existing records,
	// e.g. deleting a process that still has subprocesses.
	ErrConflict = errors.New("conflicting records exist")

	// ErrValidation indicates the input failed a required-field or
	// referential check before any mutation was attempted.
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized indicates a missing, expired, or unknown credential.
	ErrUnauthorized = errors.New("unauthorized")
)
