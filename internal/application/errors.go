package application

import (
	"errors"
	"fmt"

	"github.com/example/escala/internal/roster"
)

var (
	// ErrForbidden is returned when the acting principal lacks permission for an operation.
	ErrForbidden = errors.New("application: forbidden")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("application: not found")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// merge copies entries from another validation error into the receiver.
func (v *ValidationError) merge(other *ValidationError) {
	if other == nil || len(other.FieldErrors) == 0 {
		return
	}
	for field, msg := range other.FieldErrors {
		v.add(field, msg)
	}
}

// ConflictError reports that a requested assignment would double-book an
// employee. It names the first colliding cell; the whole request is
// rejected without touching the schedule.
type ConflictError struct {
	EmployeeID string
	Day        string
	Time       string
	Channel    roster.Channel
}

// Error implements the error interface.
func (c *ConflictError) Error() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("employee %s is already assigned on %s at %s (%s)", c.EmployeeID, c.Day, c.Time, c.Channel)
}

// WarningKindPersistence marks a failed best-effort write-through. The
// in-memory state remains authoritative and the operation still succeeds.
const WarningKindPersistence = "persistence"

// Warning describes a non-fatal condition attached to a successful operation.
type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func persistenceWarning(operation string, err error) Warning {
	return Warning{
		Kind:    WarningKindPersistence,
		Message: fmt.Sprintf("%s: %v", operation, err),
	}
}
