package store

import "errors"

var (
	// ErrStorageUnavailable means the underlying database could not be
	// opened. Fatal for the session; callers must surface it.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateKey means a uniqueness constraint was violated, e.g.
	// registering an email that already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound means the target record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidState means the record's status does not support the
	// requested transition (e.g. restoring an active record). Soft
	// error, never fatal.
	ErrInvalidState = errors.New("invalid state for operation")
)
