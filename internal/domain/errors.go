package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock indicates a requested quantity exceeds what is
	// on the shelf.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError marks input the caller can fix; the HTTP layer turns it
// into a 400 with the message as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
