// File: digits.go
// Title: Digit Extraction Primitives
// Description: Implements digit counting and digit character extraction for
//              unsigned magnitudes in base 8, 10 and 16. These are the leaf
//              routines every integer formatter builds on: callers first size
//              a buffer with Ndigits, then extract exactly that many digit
//              characters, most significant first.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-14
// Modified: 2026-05-14
//
// Change History:
// - 2026-05-14 v0.1.0: Initial implementation

package fmtx

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)

// smallsString holds the two-digit decimal pairs 00..99, letting the
// decimal writer peel two digits per division.
const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Integer is the exact integral type set accepted by the formatters
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Float is the exact floating type set accepted by the formatters
type Float interface {
	float32 | float64
}

// Real combines the integral and floating type sets
type Real interface {
	Integer | Float
}

// uabs returns the unsigned magnitude of x. The two's-complement identity
// keeps the minimum signed value from overflowing during negation.
func uabs[T Integer](x T) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// ndigitsDec returns the decimal digit count of u
func ndigitsDec(u uint64) int {
	n := 1
	for u >= 100000000 {
		u /= 100000000
		n += 8
	}
	if u >= 10000 {
		u /= 10000
		n += 4
	}
	if u >= 100 {
		u /= 100
		n += 2
	}
	if u >= 10 {
		n++
	}
	return n
}

// ndigitsPow2 returns the digit count of u in base 2^bitsPerDigit
func ndigitsPow2(u uint64, bitsPerDigit uint) int {
	n := 1
	for u >>= bitsPerDigit; u != 0; u >>= bitsPerDigit {
		n++
	}
	return n
}

// ndigits returns the digit count of the magnitude u in the given base,
// or 0 for any base other than 8, 10 and 16
func ndigits(u uint64, base uint) int {
	switch base {
	case 8:
		return ndigitsPow2(u, 3)
	case 10:
		return ndigitsDec(u)
	case 16:
		return ndigitsPow2(u, 4)
	}
	return 0
}

// Ndigits returns the number of digits the unsigned magnitude of x
// occupies in the given base (8, 10 or 16). Unsupported bases yield 0.
func Ndigits[T Integer](x T, base uint) int {
	return ndigits(uabs(x), base)
}

// extractDigits writes the digits of u in the given base into buf, most
// significant digit first. len(buf) must equal ndigits(u, base); the
// caller guarantees this pairing.
func extractDigits(u uint64, base uint, upper bool, buf []byte) {
	switch base {
	case 10:
		extractDigitsDec(u, buf)
	default:
		digits := lowerHexDigits
		if upper {
			digits = upperHexDigits
		}
		mask := uint64(base) - 1
		shift := uint(3)
		if base == 16 {
			shift = 4
		}
		for i := len(buf) - 1; i >= 0; i-- {
			buf[i] = digits[u&mask]
			u >>= shift
		}
	}
}

// extractDigitsDec writes the decimal digits of u into buf, two at a time
// through the smalls table
func extractDigitsDec(u uint64, buf []byte) {
	i := len(buf)
	for u >= 100 {
		q := u / 100
		j := (u - q*100) * 2
		i -= 2
		buf[i] = smallsString[j]
		buf[i+1] = smallsString[j+1]
		u = q
	}
	if u >= 10 {
		j := u * 2
		buf[0] = smallsString[j]
		buf[1] = smallsString[j+1]
	} else {
		buf[0] = byte('0' + u)
	}
}
