// Package errors provides typed errors for lint-runner
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a missing or invalid required input
	ErrConfig ErrorType = iota
	// ErrFlag indicates an unsupported linter option token
	ErrFlag
	// ErrLint indicates the linter reported findings (non-zero exit)
	ErrLint
	// ErrPublish indicates a review-system API error
	ErrPublish
)

// RunnerError is the base error type for all lint-runner errors
type RunnerError struct {
	Type    ErrorType
	Message string
	Cause   error

	// Code is the process exit code this error should produce.
	Code int
}

// Error returns the error message
func (e *RunnerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *RunnerError) Unwrap() error {
	return e.Cause
}

// New creates a new RunnerError
func New(errType ErrorType, message string, cause error) *RunnerError {
	return &RunnerError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Code:    1,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var rerr *RunnerError
	if err == nil {
		return false
	}
	if errors.As(err, &rerr) {
		return rerr.Type == errType
	}
	return false
}

// ExitCode maps an error to the process exit code it should produce.
// Configuration, flag and publish errors exit 1; a lint failure carries
// the linter's own exit code unchanged; nil exits 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var rerr *RunnerError
	if errors.As(err, &rerr) && rerr.Code != 0 {
		return rerr.Code
	}
	return 1
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrFlag:
		return "FLAG"
	case ErrLint:
		return "LINT"
	case ErrPublish:
		return "PUBLISH"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *RunnerError {
	return New(ErrConfig, message, cause)
}

// FlagError creates an unsupported-flag error naming the offending token
func FlagError(token string) *RunnerError {
	return New(ErrFlag, fmt.Sprintf("unsupported option: %s", token), nil)
}

// LintFailure creates an error carrying the linter's non-zero exit code.
// It is the expected findings-exist outcome, not a defect of the runner.
func LintFailure(code int) *RunnerError {
	e := New(ErrLint, fmt.Sprintf("lint failed with exit code %d", code), nil)
	e.Code = code
	return e
}

// PublishError creates a review-system API error
func PublishError(message string, cause error) *RunnerError {
	return New(ErrPublish, message, cause)
}
