// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization when CLUE errors surface in embedding
//              applications. Contract violations are always critical;
//              validation problems are low.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-12
// Modified: 2026-05-12
//
// Change History:
// - 2026-05-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, unknown profile names
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unparsable configuration files
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	SeverityHigh

	// SeverityCritical indicates a programming error that must not be tolerated
	// Examples: formatter contract violations, internal consistency failures
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for a code
func GetSeverityFromCode(code Code) Severity {
	switch {
	case code.IsContract(), code == CodeInternal:
		return SeverityCritical
	case code == CodeConfigParse, code == CodeConfigInvalid:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
