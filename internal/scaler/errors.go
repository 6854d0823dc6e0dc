package scaler

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when pixel data does not match its declared shape.
var ErrInvalidInput = errors.New("invalid input")

// InvariantError is the panic value used when an internally computed index
// falls outside a buffer. It signals a bug, never bad caller data.
type InvariantError struct {
	Index int
	Len   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("scaler: index %d out of range for buffer of length %d", e.Index, e.Len)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
