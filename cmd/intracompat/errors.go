package main

import (
	"errors"
	"fmt"
)

// Exit codes of the binary
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ErrTestsFailed is returned when the run completed but the verdict is negative
var ErrTestsFailed = errors.New("compatibility tests failed")

// RunError marks a failure that aborted the run before a verdict was reached,
// such as a failed clone, build or test discovery
type RunError struct {
	Err error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run error: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a new RunError
func NewRunError(err error) *RunError {
	return &RunError{Err: err}
}

// IsRunError checks if the error is or wraps a RunError
func IsRunError(err error) bool {
	var runErr *RunError
	return err != nil && errors.As(err, &runErr)
}
