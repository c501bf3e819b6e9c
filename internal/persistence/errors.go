package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	// Callers treat it as "use defaults", never as a failure.
	ErrNotFound = errors.New("persistence: not found")
)
