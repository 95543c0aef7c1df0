// Package errors provides structured error types for the blog image tools.
//
// Both command-line tools recognize only a handful of fatal conditions. Each
// one carries a machine-readable [Code] so callers and tests can tell them
// apart without matching on message text:
//
//   - INVALID_*: flag or catalog input that cannot be used
//   - UNKNOWN_PHASE, EMPTY_PHASE, UNKNOWN_ICON: phase catalog content
//   - MISSING_CREDENTIAL: no API key from flag or environment
//   - FILE_NOT_FOUND: a referenced input file does not exist
//   - NO_IMAGE: the generation response carried no image payload
//   - NETWORK_ERROR, IO_ERROR: failures of the two I/O boundaries
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownPhase, "unknown phase: %s", name)
//	if errors.Is(err, errors.ErrCodeUnknownPhase) {
//	    // report and exit
//	}
//
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
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
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeInvalidResolution Code = "INVALID_RESOLUTION"
	ErrCodeInvalidCatalog    Code = "INVALID_CATALOG"
	ErrCodeInvalidName       Code = "INVALID_NAME"

	// Phase catalog errors
	ErrCodeUnknownPhase Code = "UNKNOWN_PHASE"
	ErrCodeEmptyPhase   Code = "EMPTY_PHASE"
	ErrCodeUnknownIcon  Code = "UNKNOWN_ICON"

	// Image generation errors
	ErrCodeMissingCredential Code = "MISSING_CREDENTIAL"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"
	ErrCodeNoImage           Code = "NO_IMAGE"

	// Boundary errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeIO      Code = "IO_ERROR"

	// Internal errors
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// UserMessage returns the message meant for the error stream.
// For *Error values the code prefix is dropped and the cause, if any, is
// appended. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}
