// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the CLUE library. Codes separate
//              caller-contract violations (programmer errors, fatal) from
//              ordinary validation failures that callers can handle.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-12
// Modified: 2026-05-12
//
// Change History:
// - 2026-05-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the CLUE library
const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeNotFound         Code = "NOT_FOUND"

	// Formatting contract codes. These mark programmer errors: the
	// formatters panic with them instead of returning them.
	CodeContractViolation Code = "CONTRACT_VIOLATION"
	CodeBufferTooSmall    Code = "BUFFER_TOO_SMALL"
	CodeUnsupportedBase   Code = "UNSUPPORTED_BASE"

	// Configuration codes
	CodeConfigParse   Code = "CONFIG_PARSE"
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// IsContract reports whether the code marks a caller-contract violation,
// which is raised by panic rather than returned.
func (c Code) IsContract() bool {
	switch c {
	case CodeContractViolation, CodeBufferTooSmall, CodeUnsupportedBase:
		return true
	}
	return false
}
