package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrOutputWrite marks a failure to persist a result artifact.
var ErrOutputWrite = errors.New("result output not writable")

// WriteError provides structured error information for result persistence
// failures.
type WriteError struct {
	Op    string
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

func (e *WriteError) Is(target error) bool {
	if target == nil {
		return false
	}
	return target == ErrOutputWrite || errors.Is(e.Cause, target)
}

// WriteResult serializes a result to path as indented JSON, creating
// intermediate directories as needed.
func WriteResult(res *Result, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return &WriteError{Op: "WriteResult", Path: path, Cause: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Op: "WriteResult", Path: path, Cause: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Op: "WriteResult", Path: path, Cause: err}
	}
	return nil
}

// ReadResult loads a previously persisted result. Serialization is lossless
// for every defined field, so WriteResult followed by ReadResult yields a
// structurally identical object.
func ReadResult(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &WriteError{Op: "ReadResult", Path: path, Cause: err}
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, &WriteError{Op: "ReadResult", Path: path, Cause: err}
	}
	return &res, nil
}
