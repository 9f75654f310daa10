// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the
//              CLUE utility library: clamped slicing, needle matching,
//              whitespace trimming, and separator-set tokenization.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-29
// Modified: 2026-05-30
//
// Change History:
// - 2026-05-29 v0.1.0: Initial implementation
// - 2026-05-30 v0.1.1: Tokens collecting convenience

// Package stringx provides extended string operations for CLUE.
//
// The helpers favor forgiving, clamping semantics over errors: Prefix and
// Suffix never index out of bounds, and the tokenizer never produces empty
// tokens. All functions operate on bytes except the trim family, which is
// Unicode-whitespace aware.
//
// Tokenization treats the separator argument as a set of single bytes, so
// ";, " splits on semicolons, commas and spaces alike:
//
//	stringx.Tokens(" abc ; xy, uvw ,", ";, ")
//	// Result: []string{"abc", "xy", "uvw"}
//
// ForeachToken yields substrings of the input without allocating; use it
// when the token consumer does not need to retain the slice.
package stringx
