// File: intfmt.go
// Title: Integer Formatter
// Description: Implements the immutable integer formatter: base 8/10/16,
//              minimum field width and style flags. Every setter returns a
//              new formatter value; formatting writes into caller-provided
//              buffers sized via MaxFormattedLength. Buffer-size and base
//              contract violations panic with a typed error.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-14
// Modified: 2026-05-18
//
// Change History:
// - 2026-05-14 v0.1.0: Initial implementation
// - 2026-05-18 v0.1.1: Unsigned write path for full uint64 range

package fmtx

import (
	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

// IntFormatter is an immutable integer formatting configuration
type IntFormatter struct {
	base  uint
	width int
	flags Flags
}

// Oct returns an octal integer formatter
func Oct() IntFormatter { return IntFormatter{base: 8} }

// Dec returns a decimal integer formatter
func Dec() IntFormatter { return IntFormatter{base: 10} }

// Hex returns a hexadecimal integer formatter
func Hex() IntFormatter { return IntFormatter{base: 16} }

// DefaultInt returns the default formatter for integral values: plain
// decimal, no width, no flags
func DefaultInt() IntFormatter { return Dec() }

// Base returns a copy of the formatter with the numeric base replaced
func (f IntFormatter) Base(base uint) IntFormatter {
	f.base = base
	return f
}

// Width returns a copy of the formatter with the minimum field width replaced
func (f IntFormatter) Width(width int) IntFormatter {
	f.width = width
	return f
}

// Flags returns a copy of the formatter with the flag set replaced
func (f IntFormatter) Flags(flags Flags) IntFormatter {
	f.flags = flags
	return f
}

// With returns a copy of the formatter with additional flags OR-ed in
func (f IntFormatter) With(flags Flags) IntFormatter {
	f.flags |= flags
	return f
}

// GetBase returns the configured numeric base
func (f IntFormatter) GetBase() uint { return f.base }

// GetWidth returns the configured minimum field width
func (f IntFormatter) GetWidth() int { return f.width }

// GetFlags returns the configured flag set
func (f IntFormatter) GetFlags() Flags { return f.flags }

// Any reports whether any flag of mask is set on the formatter
func (f IntFormatter) Any(mask Flags) bool {
	return f.flags.Any(mask)
}

// MaxFormattedLength returns an upper bound on the bytes FormattedWrite
// produces for x: the digit count of |x|, plus one for a sign character,
// floored at the minimum width.
func (f IntFormatter) MaxFormattedLength(x int64) int {
	n := ndigits(uabs(x), f.base)
	if x < 0 || f.Any(PlusSign) {
		n++
	}
	if n < f.width {
		n = f.width
	}
	return n
}

// MaxFormattedLengthUint is the unsigned counterpart of MaxFormattedLength
func (f IntFormatter) MaxFormattedLengthUint(x uint64) int {
	n := ndigits(x, f.base)
	if f.Any(PlusSign) {
		n++
	}
	if n < f.width {
		n = f.width
	}
	return n
}

// FormattedWrite writes the formatted representation of x into buf and
// returns the number of bytes written. With PadZeros the sign precedes the
// zero fill; otherwise the space fill precedes the sign, keeping the sign
// adjacent to the first digit. buf must hold at least
// MaxFormattedLength(x) bytes; a shorter buffer is a contract violation
// and panics.
func (f IntFormatter) FormattedWrite(x int64, buf []byte) int {
	var sign byte
	if x < 0 {
		sign = '-'
	} else if f.Any(PlusSign) {
		sign = '+'
	}
	return f.write(uabs(x), sign, buf)
}

// FormattedWriteUint is the unsigned counterpart of FormattedWrite
func (f IntFormatter) FormattedWriteUint(x uint64, buf []byte) int {
	var sign byte
	if f.Any(PlusSign) {
		sign = '+'
	}
	return f.write(x, sign, buf)
}

func (f IntFormatter) write(magnitude uint64, sign byte, buf []byte) int {
	nd := ndigits(magnitude, f.base)
	if nd == 0 {
		panic(clueerror.Newf("unsupported integer base %d", f.base).
			WithCode(clueerror.CodeUnsupportedBase).
			WithOperation("fmtx.IntFormatter.FormattedWrite").
			WithDetail("base", f.base))
	}

	flen := nd
	if sign != 0 {
		flen++
	}
	total := flen
	if f.width > total {
		total = f.width
	}
	if len(buf) < total {
		panic(clueerror.Newf("buffer of %d bytes cannot hold %d formatted bytes", len(buf), total).
			WithCode(clueerror.CodeBufferTooSmall).
			WithOperation("fmtx.IntFormatter.FormattedWrite").
			WithDetail("need", total).
			WithDetail("have", len(buf)))
	}

	p := 0
	if pad := total - flen; pad > 0 {
		if f.Any(PadZeros) {
			if sign != 0 {
				buf[p] = sign
				p++
			}
			for i := 0; i < pad; i++ {
				buf[p] = '0'
				p++
			}
		} else {
			for i := 0; i < pad; i++ {
				buf[p] = ' '
				p++
			}
			if sign != 0 {
				buf[p] = sign
				p++
			}
		}
	} else if sign != 0 {
		buf[p] = sign
		p++
	}

	extractDigits(magnitude, f.base, f.Any(UpperCase), buf[p:p+nd])
	return p + nd
}
