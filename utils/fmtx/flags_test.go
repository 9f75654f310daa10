// File: flags_test.go
// Title: Unit Tests for Formatting Flags
// Description: Tests for flag combination, canonical string rendering and
//              parsing of flag names from configuration input.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-14
// Modified: 2026-05-14
//
// Change History:
// - 2026-05-14 v0.1.0: Initial test implementation

package fmtx

import (
	"testing"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

func TestFlagsAny(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		mask     Flags
		expected bool
	}{
		{"empty set", 0, UpperCase, false},
		{"exact match", PadZeros, PadZeros, true},
		{"one of several", UpperCase | PlusSign, PlusSign, true},
		{"disjoint", UpperCase | PlusSign, PadZeros, false},
		{"overlapping mask", PadZeros, PadZeros | PlusSign, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.flags.Any(tt.mask)
			if result != tt.expected {
				t.Errorf("Flags(%v).Any(%v) = %v; want %v", tt.flags, tt.mask, result, tt.expected)
			}
		})
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		expected string
	}{
		{"no flags", 0, "none"},
		{"single flag", UpperCase, "upper_case"},
		{"two flags ordered", PlusSign | UpperCase, "upper_case|plus_sign"},
		{"all flags", UpperCase | PadZeros | PlusSign | LeftJustify | Quoted,
			"upper_case|pad_zeros|plus_sign|left_justify|quoted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.flags.String()
			if result != tt.expected {
				t.Errorf("Flags.String() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Flags
		wantErr  bool
	}{
		{"upper_case", "upper_case", UpperCase, false},
		{"pad_zeros", "pad_zeros", PadZeros, false},
		{"plus_sign", "plus_sign", PlusSign, false},
		{"left_justify", "left_justify", LeftJustify, false},
		{"quoted", "quoted", Quoted, false},
		{"unknown name", "centered", 0, true},
		{"empty name", "", 0, true},
		{"wrong case", "UPPER_CASE", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseFlag(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFlag(%q) expected error, got none", tt.input)
				}
				if !clueerror.HasCode(err, clueerror.CodeInvalidInput) {
					t.Errorf("ParseFlag(%q) error code mismatch: %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlag(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseFlag(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected Flags
		wantErr  bool
	}{
		{"nil list", nil, 0, false},
		{"empty list", []string{}, 0, false},
		{"single", []string{"pad_zeros"}, PadZeros, false},
		{"combined", []string{"upper_case", "plus_sign"}, UpperCase | PlusSign, false},
		{"duplicate is idempotent", []string{"quoted", "quoted"}, Quoted, false},
		{"invalid member", []string{"upper_case", "bogus"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseFlags(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFlags(%v) expected error, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags(%v) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseFlags(%v) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}
