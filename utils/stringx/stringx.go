// File: stringx.go
// Title: Extended String Operations
// Description: Implements the CLUE string helpers: clamped prefix and
//              suffix extraction, byte and string needle matching,
//              whitespace trimming, and separator-set tokenization with
//              an early-stop walk.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-29
// Modified: 2026-05-30
//
// Change History:
// - 2026-05-29 v0.1.0: Initial implementation
// - 2026-05-30 v0.1.1: Tokens collecting convenience

package stringx

import (
	"strings"
	"unicode"
)

// Prefix returns the first n bytes of s, or all of s when n exceeds its
// length. Negative n yields the empty string.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[:n]
}

// Suffix returns the last n bytes of s, or all of s when n exceeds its
// length. Negative n yields the empty string.
func Suffix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// StartsWithByte reports whether s begins with the byte c
func StartsWithByte(s string, c byte) bool {
	return len(s) > 0 && s[0] == c
}

// EndsWithByte reports whether s ends with the byte c
func EndsWithByte(s string, c byte) bool {
	return len(s) > 0 && s[len(s)-1] == c
}

// StartsWith reports whether s begins with the string needle. Every string
// starts with the empty needle.
func StartsWith(s, needle string) bool {
	return strings.HasPrefix(s, needle)
}

// EndsWith reports whether s ends with the string needle. Every string
// ends with the empty needle.
func EndsWith(s, needle string) bool {
	return strings.HasSuffix(s, needle)
}

// TrimLeft returns s with leading Unicode whitespace removed
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimRight returns s with trailing Unicode whitespace removed
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Trim returns s with leading and trailing Unicode whitespace removed
func Trim(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// ForeachToken walks the maximal runs of s that contain no byte of seps
// and calls fn once per run, in order. Empty runs are skipped, so
// consecutive separators never produce empty tokens. fn returning false
// stops the walk. Tokens are substrings of s; no copies are made.
func ForeachToken(s, seps string, fn func(token string) bool) {
	i := 0
	for i < len(s) {
		for i < len(s) && strings.IndexByte(seps, s[i]) >= 0 {
			i++
		}
		if i == len(s) {
			return
		}
		start := i
		for i < len(s) && strings.IndexByte(seps, s[i]) < 0 {
			i++
		}
		if !fn(s[start:i]) {
			return
		}
	}
}

// Tokens collects the tokens of s into a slice. A string of only
// separators yields a nil slice.
func Tokens(s, seps string) []string {
	var out []string
	ForeachToken(s, seps, func(token string) bool {
		out = append(out, token)
		return true
	})
	return out
}
