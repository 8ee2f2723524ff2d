package user

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested user doesn't exist.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidArgument indicates a caller supplied an unacceptable value.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError describes why a field was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }
