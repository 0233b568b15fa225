// Package errors provides structured error types for pumlex.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the export pipeline and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages carrying the offending file path
//   - Error wrapping with context preservation
//
// # Usage
//
//	err := errors.New(errors.ErrCodePath, "no file stem in input path %q", path)
//	if errors.Is(err, errors.ErrCodePath) {
//	    // Handle path derivation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the different failure stages of an export.
const (
	// ErrCodeEncoding marks a failure while compressing or encoding diagram text.
	ErrCodeEncoding Code = "ENCODING_ERROR"

	// ErrCodeClientConfig marks an invalid HTTP client configuration (e.g. a
	// malformed proxy URL). Fatal for the whole run, not a per-file condition.
	ErrCodeClientConfig Code = "CLIENT_CONFIG_ERROR"

	// ErrCodePath marks a failure to derive an output path from an input path.
	ErrCodePath Code = "PATH_ERROR"

	// ErrCodeIO marks a file read or write failure.
	ErrCodeIO Code = "IO_ERROR"

	// ErrCodeNetwork marks an HTTP transport failure or non-success status.
	ErrCodeNetwork Code = "NETWORK_ERROR"

	// ErrCodeInvalidFormat marks an unrecognized output format name.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// ErrCodeInvalidInput marks other invalid user input (flags, config).
	ErrCodeInvalidInput Code = "INVALID_INPUT"
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
