// Package errors provides structured error types for the chartdeck engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across builder, combiner, and expansion calls
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages carrying the offending name and value
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (the ValidationError class)
//   - LENGTH_MISMATCH: Parallel expansion vectors of unequal length
//   - COMBINE_TYPE: A non-collection value passed to Combine
//
// All errors in this package are deterministic given the same inputs; there
// is no transient-failure class and therefore no retry policy. The only
// recovery is for the caller to supply corrected input and re-invoke.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidKind, "unsupported kind %q", kind)
//	if errors.IsValidation(err) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidTabgroup, parseErr, "tabgroup for item %d", idx)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors (the ValidationError class)
	ErrCodeInvalidKind     Code = "INVALID_KIND"
	ErrCodeInvalidTabgroup Code = "INVALID_TABGROUP"
	ErrCodeInvalidTitle    Code = "INVALID_TITLE"
	ErrCodeInvalidTabLabel Code = "INVALID_TAB_LABEL"
	ErrCodeInvalidFilter   Code = "INVALID_FILTER"
	ErrCodeInvalidParam    Code = "INVALID_PARAM"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"

	// Expansion errors
	ErrCodeLengthMismatch Code = "LENGTH_MISMATCH"

	// Combination errors
	ErrCodeCombineType Code = "COMBINE_TYPE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Is reports whether err carries the given error code anywhere in its
// chain, so a wrapped cause's code stays matchable after rewrapping.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// IsValidation reports whether err belongs to the validation class,
// i.e. carries any INVALID_* code.
func IsValidation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case ErrCodeInvalidKind, ErrCodeInvalidTabgroup, ErrCodeInvalidTitle,
		ErrCodeInvalidTabLabel, ErrCodeInvalidFilter, ErrCodeInvalidParam,
		ErrCodeInvalidManifest:
		return true
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
