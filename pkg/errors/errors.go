// Package errors provides structured error types for the laurent library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - LP1_*/LP2_*: seed axiom violations detected at construction
//   - INVALID_*: malformed input (expressions, rings, options, indices)
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLP1Violation, "%s depends on %s", poly, name)
//	if errors.Is(err, errors.ErrCodeLP1Violation) {
//	    // Handle axiom violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidExpression, origErr, "parse %q", input)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Seed axiom violations
	ErrCodeLP1Violation Code = "LP1_VIOLATION"
	ErrCodeLP2Violation Code = "LP2_VIOLATION"

	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidExpression Code = "INVALID_EXPRESSION"
	ErrCodeInvalidRing       Code = "INVALID_RING"
	ErrCodeInvalidAlgorithm  Code = "INVALID_ALGORITHM"
	ErrCodeInvalidSeedfile   Code = "INVALID_SEEDFILE"
	ErrCodeIndexOutOfRange   Code = "INDEX_OUT_OF_RANGE"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
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

// IsValidation reports whether err is one of the seed axiom violations.
// Callers use this to distinguish mathematically invalid seeds from
// malformed input.
func IsValidation(err error) bool {
	code := GetCode(err)
	return code == ErrCodeLP1Violation || code == ErrCodeLP2Violation
}
