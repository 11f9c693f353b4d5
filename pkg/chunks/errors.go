package chunks

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrDirNotFound = errors.New("chunk record directory not found")
	ErrBadPattern  = errors.New("invalid chunk artifact pattern")
)

// StorageError provides structured error information for chunk storage
// failures.
type StorageError struct {
	Op    string // operation that failed ("FindChunks", "ReadRecord")
	Dir   string // chunk record directory
	Cause error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Dir, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *StorageError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
