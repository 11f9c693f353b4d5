package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrGraphNotFound = errors.New("graph artifact not found")
	ErrGraphSchema   = errors.New("graph artifact missing nodes or edges")
	ErrGraphDecode   = errors.New("graph artifact is not valid JSON")
)

// LoadError provides structured error information for graph load failures.
type LoadError struct {
	Op     string // operation that failed ("Load", "Save")
	Source string // artifact path
	Cause  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *LoadError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
