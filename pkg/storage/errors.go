package storage

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrInvalidWeight = errors.New("edge weight must be positive")
)

// StorageError provides structured error information for engine operations.
type StorageError struct {
	Op     string // Operation that failed (e.g., "CreateEdge")
	FromID int64
	ToID   int64
	Cause  error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.FromID != e.ToID {
		return fmt.Sprintf("%s %d->%d: %v", e.Op, e.FromID, e.ToID, e.Cause)
	}
	return fmt.Sprintf("%s node %d: %v", e.Op, e.FromID, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NodeNotFoundError creates a node not found error.
func NodeNotFoundError(id int64) error {
	return &StorageError{Op: "get", FromID: id, ToID: id, Cause: ErrNodeNotFound}
}

// EdgeError creates an edge operation error.
func EdgeError(fromID, toID int64, cause error) error {
	return &StorageError{Op: "CreateEdge", FromID: fromID, ToID: toID, Cause: cause}
}
