// File: grisu_test.go
// Title: Unit Tests for Shortest Round-Trip Float Conversion
// Description: Tests for the shortest-digit float conversion: exact output
//              for pinned values, the bit-for-bit round-trip guarantee over
//              deterministic pseudo-random doubles, special values, and the
//              sizing contract.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-20
// Modified: 2026-05-27
//
// Change History:
// - 2026-05-20 v0.1.0: Initial test implementation
// - 2026-05-27 v0.1.1: Negative-zero round-trip coverage

package fmtx

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

func shortest(x float64) string {
	buf := make([]byte, shortestMaxLength)
	n := ShortestFmt().FormattedWrite(x, buf)
	return string(buf[:n])
}

func TestShortestPinnedValues(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0.0, "0.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"one", 1.0, "1.0"},
		{"minus one", -1.0, "-1.0"},
		{"half", 0.5, "0.5"},
		{"tenth", 0.1, "0.1"},
		{"pi digits", 3.14, "3.14"},
		{"integral hundred", 100.0, "100.0"},
		{"large integral", 1e7, "10000000.0"},
		{"fraction with point insert", 1234.5678, "1234.5678"},
		{"small fixed", 1e-5, "0.00001"},
		{"smallest fixed", 1e-6, "0.000001"},
		{"first scientific below one", 1e-7, "1e-7"},
		{"negative scientific", -2.5e-10, "-2.5e-10"},
		{"largest fixed", 1e21, "1e21"},
		{"full precision pi", math.Pi, "3.141592653589793"},
		{"huge power of ten", 1e300, "1e300"},
		{"max double", math.MaxFloat64, "1.7976931348623157e308"},
		{"smallest denormal", 5e-324, "5e-324"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shortest(tt.value)
			if result != tt.expected {
				t.Errorf("shortest(%g) = %q; want %q", tt.value, result, tt.expected)
			}
		})
	}
}

func TestShortestSpecialValues(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"nan", math.NaN(), "nan"},
		{"positive infinity", math.Inf(1), "inf"},
		{"negative infinity", math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shortest(tt.value)
			if result != tt.expected {
				t.Errorf("shortest(%v) = %q; want %q", tt.value, result, tt.expected)
			}
		})
	}
}

// Every finite double, formatted and parsed back, must restore the exact
// same bit pattern. The seed is fixed so failures reproduce.
func TestShortestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(63))
	checked := 0
	for checked < 20000 {
		x := math.Float64frombits(rng.Uint64())
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		checked++

		text := shortest(x)
		back, err := strconv.ParseFloat(text, 64)
		if err != nil {
			t.Fatalf("output %q of %b does not parse: %v", text, x, err)
		}
		if math.Float64bits(back) != math.Float64bits(x) {
			t.Fatalf("round trip of %b via %q yielded %b", x, text, back)
		}
	}
}

// Formatting the parse of an output must reproduce the output exactly.
func TestShortestIdempotent(t *testing.T) {
	values := []float64{
		0.1, 1.0 / 3.0, 2.0 / 3.0, math.E, math.Sqrt2,
		6.02214076e23, 1.602176634e-19, 123456.789,
	}
	for _, x := range values {
		first := shortest(x)
		back, err := strconv.ParseFloat(first, 64)
		if err != nil {
			t.Fatalf("output %q does not parse: %v", first, err)
		}
		second := shortest(back)
		if second != first {
			t.Errorf("formatting is not idempotent: %q then %q", first, second)
		}
	}
}

// Exactly representable doubles near power-of-two boundaries exercise the
// asymmetric lower boundary of the digit generator.
func TestShortestPowerOfTwoBoundaries(t *testing.T) {
	for exp := -30; exp <= 30; exp++ {
		x := math.Ldexp(1, exp)
		text := shortest(x)
		back, err := strconv.ParseFloat(text, 64)
		if err != nil {
			t.Fatalf("output %q of 2^%d does not parse: %v", text, exp, err)
		}
		if back != x {
			t.Errorf("2^%d via %q yielded %g", exp, text, back)
		}
	}
}

// No strictly shorter digit sequence may round-trip for these
// boundary-rich values; the digit generator must match the platform's
// shortest conversion digit for digit count.
func TestShortestDigitCountMinimal(t *testing.T) {
	values := []float64{
		1.0, 0.1, 0.5, 3.14, 1e300, 5e-324,
		math.Pi, math.MaxFloat64,
		math.Nextafter(1, 2),   // 1.0000000000000002
		math.Ldexp(1, -10),     // 0.0009765625
		math.Nextafter(0.5, 1), // just above a power of two
	}
	buf := make([]byte, 32)
	for _, x := range values {
		length, _ := grisu2(x, buf)
		if want := shortestDigitCount(x); length != want {
			t.Errorf("grisu2(%b) emitted %d digits; shortest needs %d", x, length, want)
		}
	}
}

// shortestDigitCount returns the significant digit count of the
// platform's shortest round-trip conversion of x.
func shortestDigitCount(x float64) int {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	n := 0
	for i := 0; i < len(s) && s[i] != 'e'; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

func TestShortestMaxFormattedLength(t *testing.T) {
	values := []float64{
		0, math.Copysign(0, -1), 1, -1, math.Pi,
		math.MaxFloat64, -math.MaxFloat64, 5e-324, -5e-324,
		math.NaN(), math.Inf(1), math.Inf(-1),
		0.000001234567890123456, -123456789012345680000.0,
	}
	f := ShortestFmt()
	for _, x := range values {
		bound := f.MaxFormattedLength(x)
		buf := make([]byte, bound)
		n := f.FormattedWrite(x, buf)
		if n > bound {
			t.Errorf("wrote %d bytes past bound %d for %b", n, bound, x)
		}
	}
}

func TestShortestBufferTooSmall(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for short buffer")
		}
		err, ok := r.(error)
		if !ok || !clueerror.HasCode(err, clueerror.CodeBufferTooSmall) {
			t.Errorf("panic value %v lacks buffer-too-small code", r)
		}
	}()
	buf := make([]byte, 8)
	ShortestFmt().FormattedWrite(math.Pi, buf)
}
