// File: doc.go
// Title: Package Documentation for fmtx
// Description: Package fmtx provides composable value-to-string formatting
//              for the CLUE utility library, covering integers in several
//              bases, bounded-precision floating-point output, and shortest
//              round-trip floating-point conversion.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-20
// Modified: 2026-05-27
//
// Change History:
// - 2026-05-20 v0.1.0: Initial implementation
// - 2026-05-27 v0.1.1: Generic Str/Strf facade and formatter adapters

// Package fmtx provides composable value-to-string formatting for CLUE.
//
// Package: fmtx
// Title: Extended Value Formatting for CLUE
// Description: This package provides explicit, configurable formatters that
//              separate sizing from writing, so callers can format into
//              caller-owned buffers without hidden allocation.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-20
// Modified: 2026-05-27
//
// Overview
//
// The fmtx package provides three formatter families plus a generic facade:
//
//   - IntFormatter: integers in octal, decimal, and hexadecimal, with
//     minimum field width, zero padding, explicit plus sign, and upper-case
//     digits
//   - FloatFormatter: bounded-precision floating-point output in fixed or
//     scientific notation
//   - ShortestFormatter: the shortest decimal representation that parses
//     back to the exact same float64
//   - Str and Strf: convert any supported value to a freshly allocated
//     string, either with the type's default formatter or with an explicit
//     one
//
// Every formatter follows the same two-call contract: MaxFormattedLength
// returns an upper bound on the output size for a given value, and
// FormattedWrite writes the formatted value into a caller-supplied buffer
// of at least that size, returning the byte count. Output is never
// NUL-terminated and the buffer beyond the returned count is unspecified.
//
// Formatters are immutable values. Configuration methods return modified
// copies, so formatters can be shared across goroutines and stored in
// package-level variables without synchronization:
//
//	hex := fmtx.Hex().Width(8).With(fmtx.PadZeros | fmtx.UpperCase)
//	s := fmtx.Strf(int64(255), fmtx.For[int64](hex))
//	// Result: "000000FF"
//
// The default conversions go through Str:
//
//	fmtx.Str(42)        // "42"
//	fmtx.Str(3.25)      // "3.25"
//	fmtx.Str(0.1)       // "0.1", shortest round-trip digits
//
// Error Handling
//
// Violating a formatter contract is a programming error, not a runtime
// condition, so contract violations panic with a *clueerror.Error carrying
// a diagnostic code:
//
//   - CodeBufferTooSmall: the destination buffer is smaller than the bound
//   - CodeUnsupportedBase: an IntFormatter was constructed with a base
//     other than 8, 10, or 16
//
// Operations that can legitimately fail on ordinary input, such as StrOf
// on an unsupported type, return errors instead.
//
// Thread Safety
//
// All formatters are immutable values and all exported functions are safe
// for concurrent use.
//
// See Also
//
//   - strconv: Go standard library numeric conversions
//   - Package stringx: extended string operations
//   - Package rangex: integer value ranges
//
package fmtx
