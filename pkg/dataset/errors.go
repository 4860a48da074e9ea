package dataset

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrDatasetMissing = errors.New("dataset file missing")
	ErrMalformedEdge  = errors.New("malformed edge line")
)

// DatasetError provides structured error information for dataset operations.
type DatasetError struct {
	Op    string // Operation that failed (e.g., "load")
	Path  string // Dataset file involved
	Line  int    // Line number (for parse errors)
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *DatasetError) Error() string {
	if e.Line != 0 {
		return fmt.Sprintf("%s %s (line %d): %v", e.Op, e.Path, e.Line, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DatasetError) Unwrap() error {
	return e.Cause
}

// IsMissing returns true if the error indicates an absent dataset file.
func IsMissing(err error) bool {
	return errors.Is(err, ErrDatasetMissing)
}

// IsMalformed returns true if the error indicates an unparseable edge line.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedEdge)
}
