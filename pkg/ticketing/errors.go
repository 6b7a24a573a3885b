package ticketing

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing is returned when the guild has not been set up.
	ErrConfigurationMissing = errors.New("ticket system is not set up")

	// ErrPermissionDenied is returned when a member without the administrator permission runs setup.
	ErrPermissionDenied = errors.New("administrator permission required")

	// ErrInvalidName is returned when a ticket is renamed to an empty name.
	ErrInvalidName = errors.New("ticket name is empty")
)

// PlatformError is returned when Discord rejects one of the calls made for a ticket operation.
type PlatformError struct {
	// Op describes what was being done, e.g. "creating the ticket channel".
	Op string

	Err error
}

func platformError(op string, err error) error {
	return &PlatformError{Op: op, Err: err}
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}
