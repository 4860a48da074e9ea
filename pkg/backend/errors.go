package backend

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrEmptyGraph     = errors.New("graph has no nodes")
	ErrUnknownBackend = errors.New("unknown backend")
)

// ComputeError wraps an opaque failure inside a backend's partition
// computation, naming the backend involved.
type ComputeError struct {
	Backend string
	Cause   error
}

// Error implements the error interface.
func (e *ComputeError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ComputeError) Unwrap() error {
	return e.Cause
}

// IsEmptyGraph returns true if the error indicates a degenerate empty input.
func IsEmptyGraph(err error) bool {
	return errors.Is(err, ErrEmptyGraph)
}
