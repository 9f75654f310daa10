// File: flags.go
// Title: Formatting Flag Set
// Description: Defines the orthogonal style flags shared by all CLUE
//              formatters. Flags combine with bitwise OR and are carried
//              by value; no formatter call ever mutates them.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-14
// Modified: 2026-05-14
//
// Change History:
// - 2026-05-14 v0.1.0: Initial implementation with flag parsing

package fmtx

import (
	"strings"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

// Flags is a bit set of independent formatting options
type Flags uint

const (
	// UpperCase selects upper-case digit letters (hex A-F) and upper-case
	// special values (INF, NAN) and exponent markers
	UpperCase Flags = 1 << iota

	// PadZeros fills a minimum field width with zeros between the sign
	// and the first digit
	PadZeros

	// PlusSign forces an explicit '+' on non-negative values
	PlusSign

	// LeftJustify is reserved: defined for forward compatibility,
	// consumed by no formatter
	LeftJustify

	// Quoted is reserved: defined for forward compatibility,
	// consumed by no formatter
	Quoted
)

// Any reports whether any flag of mask is set
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

// flagNames maps the canonical configuration spelling to each flag
var flagNames = map[string]Flags{
	"upper_case":   UpperCase,
	"pad_zeros":    PadZeros,
	"plus_sign":    PlusSign,
	"left_justify": LeftJustify,
	"quoted":       Quoted,
}

// String returns the canonical pipe-separated spelling of the flag set
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	// fixed order, independent of map iteration
	ordered := []struct {
		name string
		flag Flags
	}{
		{"upper_case", UpperCase},
		{"pad_zeros", PadZeros},
		{"plus_sign", PlusSign},
		{"left_justify", LeftJustify},
		{"quoted", Quoted},
	}
	var parts []string
	for _, entry := range ordered {
		if f.Any(entry.flag) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseFlag resolves a single canonical flag name
func ParseFlag(name string) (Flags, error) {
	if flag, ok := flagNames[name]; ok {
		return flag, nil
	}
	return 0, clueerror.Newf("unknown formatting flag: %s", name).
		WithCode(clueerror.CodeInvalidInput).
		WithOperation("fmtx.ParseFlag").
		WithDetail("flag", name)
}

// ParseFlags resolves and combines a list of canonical flag names
func ParseFlags(names []string) (Flags, error) {
	var flags Flags
	for _, name := range names {
		flag, err := ParseFlag(name)
		if err != nil {
			return 0, err
		}
		flags |= flag
	}
	return flags, nil
}
