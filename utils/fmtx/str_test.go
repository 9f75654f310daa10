// File: str_test.go
// Title: Unit Tests for the String Conversion Facade
// Description: Tests for the generic Str and Strf entry points, the
//              formatter adapters for concrete integer types, and the
//              dynamic StrOf dispatch.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-27
// Modified: 2026-05-27
//
// Change History:
// - 2026-05-27 v0.1.0: Initial test implementation

package fmtx

import (
	"math"
	"testing"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

func TestStrIntegers(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected string
	}{
		{"int", Str(42), "42"},
		{"negative int", Str(-42), "-42"},
		{"int8 min", Str(int8(math.MinInt8)), "-128"},
		{"int16", Str(int16(1000)), "1000"},
		{"int32", Str(int32(-70000)), "-70000"},
		{"int64 min", Str(int64(math.MinInt64)), "-9223372036854775808"},
		{"uint", Str(uint(7)), "7"},
		{"uint8 max", Str(uint8(255)), "255"},
		{"uint16 max", Str(uint16(65535)), "65535"},
		{"uint32", Str(uint32(4000000000)), "4000000000"},
		{"uint64 max", Str(uint64(math.MaxUint64)), "18446744073709551615"},
		{"uintptr", Str(uintptr(4096)), "4096"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Str = %q; want %q", tt.result, tt.expected)
			}
		})
	}
}

func TestStrFloats(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected string
	}{
		{"float64 integral", Str(2.0), "2.0"},
		{"float64 fraction", Str(0.1), "0.1"},
		{"float64 negative", Str(-3.25), "-3.25"},
		{"float32 exact", Str(float32(0.5)), "0.5"},
		{"float32 integral", Str(float32(100)), "100.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Str = %q; want %q", tt.result, tt.expected)
			}
		})
	}
}

func TestStrfWithFormatter(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected string
	}{
		{"hex upper", Strf(int64(255), For[int64](Hex().With(UpperCase))), "FF"},
		{"zero padded", Strf(int64(42), For[int64](Dec().Width(5).With(PadZeros))), "00042"},
		{"space padded", Strf(int64(42), For[int64](Dec().Width(5))), "   42"},
		{"unsigned hex", Strf(uint64(math.MaxUint64), ForUint[uint64](Hex())), "ffffffffffffffff"},
		{"narrow signed type", Strf(int16(-300), For[int16](Dec())), "-300"},
		{"narrow unsigned type", Strf(uint8(200), ForUint[uint8](Hex())), "c8"},
		{"fixed float", Strf(3.14159, FixedFmt().Precision(2)), "3.14"},
		{"sci float", Strf(1e6, SciFmt()), "1.000000e+06"},
		{"shortest float", Strf(0.25, ShortestFmt()), "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Strf = %q; want %q", tt.result, tt.expected)
			}
		})
	}
}

func TestStrOf(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		wantErr  bool
	}{
		{"int", 42, "42", false},
		{"int64", int64(-9), "-9", false},
		{"uint32", uint32(77), "77", false},
		{"float64", 1.5, "1.5", false},
		{"float32", float32(0.5), "0.5", false},
		{"bool true", true, "true", false},
		{"bool false", false, "false", false},
		{"string passthrough", "hello", "hello", false},
		{"unsupported struct", struct{}{}, "", true},
		{"unsupported slice", []int{1}, "", true},
		{"nil", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := StrOf(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("StrOf(%v) expected error, got %q", tt.input, result)
				}
				if !clueerror.HasCode(err, clueerror.CodeInvalidInput) {
					t.Errorf("StrOf(%v) error code mismatch: %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("StrOf(%v) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("StrOf(%v) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// violatingFormatter claims a smaller bound than it writes; Strf must
// refuse the result instead of returning corrupt text.
type violatingFormatter struct{}

func (violatingFormatter) MaxFormattedLength(x int64) int { return 1 }

func (violatingFormatter) FormattedWrite(x int64, buf []byte) int { return 5 }

func TestStrfRejectsBoundViolation(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for formatter exceeding its bound")
		}
		err, ok := r.(error)
		if !ok || !clueerror.HasCode(err, clueerror.CodeContractViolation) {
			t.Errorf("panic value %v lacks contract-violation code", r)
		}
	}()
	Strf(int64(1), violatingFormatter{})
}
