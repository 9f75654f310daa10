// File: floatfmt.go
// Title: Floating-Point Formatters
// Description: Implements the bounded-precision float formatter (fixed and
//              scientific notation, delegating digit production to the
//              platform formatting routine through a constructed pattern)
//              and the stateless shortest round-trip formatter wrapping the
//              grisu converter. Non-finite values become "nan"/"inf"/"-inf"
//              with case and sign controlled by the flag set.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-21
// Modified: 2026-05-27
//
// Change History:
// - 2026-05-21 v0.1.0: Initial implementation
// - 2026-05-27 v0.1.1: Width padding for non-finite values

package fmtx

import (
	"fmt"
	"math"
	"strconv"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

// Notation selects the representation of the bounded-precision formatter
type Notation int

const (
	// Fixed is plain decimal notation, e.g. 3.14
	Fixed Notation = iota

	// Sci is normalized scientific notation, e.g. 3.140000e+00
	Sci
)

// String returns the configuration spelling of the notation
func (n Notation) String() string {
	switch n {
	case Sci:
		return "sci"
	default:
		return "fixed"
	}
}

// DefaultPrecision is the decimal precision of freshly constructed
// bounded-precision formatters
const DefaultPrecision = 6

// FloatFormatter is an immutable bounded-precision float formatting
// configuration
type FloatFormatter struct {
	notation  Notation
	width     int
	precision int
	flags     Flags
}

// FixedFmt returns a fixed-notation formatter with the default precision
func FixedFmt() FloatFormatter {
	return FloatFormatter{notation: Fixed, precision: DefaultPrecision}
}

// SciFmt returns a scientific-notation formatter with the default precision
func SciFmt() FloatFormatter {
	return FloatFormatter{notation: Sci, precision: DefaultPrecision}
}

// Width returns a copy of the formatter with the minimum field width replaced
func (f FloatFormatter) Width(width int) FloatFormatter {
	f.width = width
	return f
}

// Precision returns a copy of the formatter with the decimal precision replaced
func (f FloatFormatter) Precision(precision int) FloatFormatter {
	f.precision = precision
	return f
}

// Flags returns a copy of the formatter with the flag set replaced
func (f FloatFormatter) Flags(flags Flags) FloatFormatter {
	f.flags = flags
	return f
}

// With returns a copy of the formatter with additional flags OR-ed in
func (f FloatFormatter) With(flags Flags) FloatFormatter {
	f.flags |= flags
	return f
}

// GetNotation returns the configured notation
func (f FloatFormatter) GetNotation() Notation { return f.notation }

// GetWidth returns the configured minimum field width
func (f FloatFormatter) GetWidth() int { return f.width }

// GetPrecision returns the configured decimal precision
func (f FloatFormatter) GetPrecision() int { return f.precision }

// GetFlags returns the configured flag set
func (f FloatFormatter) GetFlags() Flags { return f.flags }

// Any reports whether any flag of mask is set on the formatter
func (f FloatFormatter) Any(mask Flags) bool {
	return f.flags.Any(mask)
}

// MaxFormattedLength returns an upper bound on the bytes FormattedWrite
// produces for x. The bound is computed independently of the platform
// formatting routine so callers can size buffers up front; it is loose
// rather than tight.
func (f FloatFormatter) MaxFormattedLength(x float64) int {
	var n int
	switch {
	case math.IsInf(x, 0):
		n = 3
		if math.Signbit(x) || f.Any(PlusSign) {
			n = 4
		}
	case math.IsNaN(x):
		n = 3
		if f.Any(PlusSign) {
			n = 4
		}
	default:
		n = f.maxFiniteLength(x)
	}
	if n < f.width {
		n = f.width
	}
	return n
}

func (f FloatFormatter) maxFiniteLength(x float64) int {
	// one digit, plus one for a rounding carry into a new leading digit
	intDigits := 2
	if a := math.Abs(x); a >= 10 {
		// digit count, rounding carry, and slack for log10 inaccuracy
		intDigits = int(math.Log10(a)) + 3
	}

	var n int
	switch f.notation {
	case Sci:
		// mantissa digit, exponent marker, exponent sign, three exponent digits
		n = 1 + 5 + f.precision
		if f.precision > 0 {
			n++ // decimal point
		}
	default:
		n = intDigits + f.precision
		if f.precision > 0 {
			n++ // decimal point
		}
	}
	if math.Signbit(x) || f.Any(PlusSign) {
		n++
	}
	return n
}

// FormattedWrite writes the formatted representation of x into buf and
// returns the number of bytes written. Digit production for finite values
// is delegated to the platform formatting routine via a constructed
// conversion pattern; buf must hold MaxFormattedLength(x) bytes.
func (f FloatFormatter) FormattedWrite(x float64, buf []byte) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return writeSpecial(x, f.Any(UpperCase), f.Any(PlusSign), f.width, buf)
	}
	out := fmt.Appendf(buf[:0], f.pattern(), x)
	if len(out) > len(buf) {
		panic(clueerror.Newf("buffer of %d bytes cannot hold %d formatted bytes", len(buf), len(out)).
			WithCode(clueerror.CodeBufferTooSmall).
			WithOperation("fmtx.FloatFormatter.FormattedWrite").
			WithDetail("need", len(out)).
			WithDetail("have", len(buf)))
	}
	return len(out)
}

// pattern constructs the conversion pattern consumed by the platform
// formatting routine: %[+][0][width].[precision]{f|F|e|E}
func (f FloatFormatter) pattern() string {
	pat := make([]byte, 0, 16)
	pat = append(pat, '%')
	if f.Any(PlusSign) {
		pat = append(pat, '+')
	}
	if f.Any(PadZeros) {
		pat = append(pat, '0')
	}
	if f.width > 0 {
		pat = strconv.AppendInt(pat, int64(f.width), 10)
	}
	pat = append(pat, '.')
	pat = strconv.AppendInt(pat, int64(f.precision), 10)
	pat = append(pat, f.verb())
	return string(pat)
}

func (f FloatFormatter) verb() byte {
	switch f.notation {
	case Sci:
		if f.Any(UpperCase) {
			return 'E'
		}
		return 'e'
	default:
		if f.Any(UpperCase) {
			return 'F'
		}
		return 'f'
	}
}

// writeSpecial writes the non-finite spellings, right-justified with
// space fill when a width is set. Zero fill never applies to non-finite
// values.
func writeSpecial(x float64, upper, plus bool, width int, buf []byte) int {
	var text string
	switch {
	case math.IsNaN(x):
		text = "nan"
		if upper {
			text = "NAN"
		}
		if plus {
			text = "+" + text
		}
	case math.Signbit(x):
		text = "-inf"
		if upper {
			text = "-INF"
		}
	default:
		text = "inf"
		if upper {
			text = "INF"
		}
		if plus {
			text = "+" + text
		}
	}

	total := len(text)
	if width > total {
		total = width
	}
	if len(buf) < total {
		panic(clueerror.Newf("buffer of %d bytes cannot hold %d formatted bytes", len(buf), total).
			WithCode(clueerror.CodeBufferTooSmall).
			WithOperation("fmtx.writeSpecial").
			WithDetail("need", total).
			WithDetail("have", len(buf)))
	}
	p := 0
	for i := 0; i < total-len(text); i++ {
		buf[p] = ' '
		p++
	}
	copy(buf[p:], text)
	return total
}

// ShortestFormatter is the stateless shortest round-trip float formatter.
// It always emits the fewest decimal digits that parse back to the exact
// same float64; precision is not configurable.
type ShortestFormatter struct{}

// ShortestFmt returns the shortest round-trip formatter
func ShortestFmt() ShortestFormatter { return ShortestFormatter{} }

// DefaultFloat returns the default formatter for floating values: the
// shortest round-trip conversion
func DefaultFloat() ShortestFormatter { return ShortestFormatter{} }

// MaxFormattedLength returns the fixed worst-case output bound. The bound
// covers the non-finite spellings as well; it is loose for most values
// and trimmed by the Str/Strf facade.
func (ShortestFormatter) MaxFormattedLength(x float64) int {
	return shortestMaxLength
}

// FormattedWrite writes the shortest round-tripping representation of x
// into buf and returns the number of bytes written. buf must hold
// MaxFormattedLength(x) bytes.
func (ShortestFormatter) FormattedWrite(x float64, buf []byte) int {
	if len(buf) < shortestMaxLength {
		panic(clueerror.Newf("buffer of %d bytes cannot hold %d formatted bytes", len(buf), shortestMaxLength).
			WithCode(clueerror.CodeBufferTooSmall).
			WithOperation("fmtx.ShortestFormatter.FormattedWrite").
			WithDetail("need", shortestMaxLength).
			WithDetail("have", len(buf)))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return writeSpecial(x, false, false, 0, buf)
	}
	return dtoa(x, buf)
}
