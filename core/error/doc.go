// File: doc.go
// Title: Package Documentation for core/error
// Description: Package error implements the structured error type shared by
//              all CLUE packages.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-12
// Modified: 2026-05-12
//
// Change History:
// - 2026-05-12 v0.1.0: Initial documentation

// Package error implements structured errors for the CLUE library.
//
// Every error carries a Code, a Severity and optionally the failing
// operation plus a free-form detail map. The type integrates with the
// standard library: it implements error, supports errors.Is/As through
// Unwrap, and wraps foreign errors via Wrap.
//
// Two classes of failure exist in CLUE, and the code decides the class:
//
//   - Contract violations (Code.IsContract() == true) are programmer
//     errors. The formatters raise them with panic at the point of
//     violation; they are never returned and never meant to be recovered
//     in production code.
//   - Ordinary failures (configuration parsing, validation) are returned
//     as plain error values for the caller to handle.
//
// Typical construction:
//
//	err := clueerror.New("unknown formatter kind").
//	    WithCode(clueerror.CodeConfigInvalid).
//	    WithOperation("config.Build").
//	    WithDetail("kind", kind)
package error
