// Package errors provides structured error types for gridsort.
//
// Every error the engine or the CLI produces carries a machine-readable
// [Code] so callers can branch on the category without string matching:
//   - INVALID_*: caller-supplied input or configuration was rejected
//   - NOT_FOUND / FILE_NOT_FOUND: a lookup missed
//   - INVARIANT_VIOLATION: the order mapping is no longer a bijection
//   - INTERNAL_ERROR: anything else unexpected
//
// Invariant violations are programming errors. The engine surfaces them by
// panicking with an *Error, so a recover site can still inspect the code.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "duplicate identity %q", id)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Reject the item list
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidScenario Code = "INVALID_SCENARIO"

	// Lookup errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Engine errors
	ErrCodeInvariant Code = "INVARIANT_VIOLATION"
	ErrCodeInternal  Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Recovered converts a value obtained from recover() back into an error.
// It returns nil for a nil value and wraps non-error panics as INTERNAL_ERROR.
func Recovered(v any) error {
	switch p := v.(type) {
	case nil:
		return nil
	case error:
		return p
	default:
		return New(ErrCodeInternal, "panic: %v", p)
	}
}
