// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used throughout CLUE.
//              Errors carry a code, a severity, the failing operation and a
//              detail map while staying compatible with Go's standard error
//              interface and errors.Is/As/Unwrap chains.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-12
// Modified: 2026-05-12
//
// Change History:
// - 2026-05-12 v0.1.0: Initial implementation with contextual errors

package error

import (
	"fmt"
)

// Error represents a structured error with code, severity and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. The code and
// severity of a wrapped *Error are preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
	}
	if clueErr, ok := err.(*Error); ok {
		wrapped.code = clueErr.code
		wrapped.severity = clueErr.severity
	}
	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and aligns the severity to it
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that failed, e.g. "fmtx.FormattedWrite"
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a single key/value pair to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the recorded operation, or an empty string
func (e *Error) Operation() string {
	return e.operation
}

// Detail returns a detail value and whether it is present
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// HasCode reports whether err (or anything it wraps) is a *Error with the
// given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if clueErr, ok := err.(*Error); ok {
			if clueErr.code == code {
				return true
			}
			err = clueErr.cause
			continue
		}
		return false
	}
	return false
}
