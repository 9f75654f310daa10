// File: grisu.go
// Title: Shortest Round-Trip Float Conversion
// Description: Implements the Grisu-class shortest decimal conversion for
//              finite IEEE-754 doubles. The value and the midpoints to its
//              two neighboring representable doubles are scaled by a cached
//              power of ten, then decimal digits are generated until the
//              remaining uncertainty interval guarantees that the emitted
//              prefix parses back to the original bits.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-20
// Modified: 2026-05-27
//
// Change History:
// - 2026-05-20 v0.1.0: Initial implementation
// - 2026-05-27 v0.1.1: Negative zero keeps its sign so parsing round-trips

package fmtx

import (
	"math"
	"math/bits"
)

// extFloat represents mant * 2^exp with a full 64-bit significand,
// giving the headroom the scaled boundary comparisons need.
type extFloat struct {
	mant uint64
	exp  int
}

const (
	float64MantBits = 52
	float64ExpBias  = 1075 // 1023 + float64MantBits
	hiddenBit       = uint64(1) << float64MantBits

	firstPowerOfTen = -348
	stepPowerOfTen  = 8

	// shortestMaxLength bounds the prettified output of dtoa: up to 17
	// significant digits, sign, decimal point, padding zeros or a
	// four-byte exponent block.
	shortestMaxLength = 27
)

// newExtFloat decomposes a positive finite float64 without normalizing
func newExtFloat(f float64) extFloat {
	b := math.Float64bits(f)
	biased := int(b>>float64MantBits) & 0x7ff
	mant := b & (hiddenBit - 1)
	if biased != 0 {
		return extFloat{mant | hiddenBit, biased - float64ExpBias}
	}
	// denormal
	return extFloat{mant, 1 - float64ExpBias}
}

// normalize shifts the significand until its top bit is set
func (f *extFloat) normalize() {
	shift := bits.LeadingZeros64(f.mant)
	f.mant <<= uint(shift)
	f.exp -= shift
}

// mul returns the rounded 64-bit product of two extFloats
func (f extFloat) mul(g extFloat) extFloat {
	hi, lo := bits.Mul64(f.mant, g.mant)
	return extFloat{hi + lo>>63, f.exp + g.exp + 64}
}

// normalizedBounds returns the midpoints to the adjacent representable
// doubles, normalized to a shared exponent. A value sitting exactly on a
// power of two has an asymmetric lower boundary: its predecessor is twice
// as close as its successor.
func (f extFloat) normalizedBounds() (lower, upper extFloat) {
	upper = extFloat{f.mant<<1 + 1, f.exp - 1}
	upper.normalize()
	if f.mant == hiddenBit && f.exp != 1-float64ExpBias {
		lower = extFloat{f.mant<<2 - 1, f.exp - 2}
	} else {
		lower = extFloat{f.mant<<1 - 1, f.exp - 1}
	}
	lower.mant <<= uint(lower.exp - upper.exp)
	lower.exp = upper.exp
	return lower, upper
}

// cachedPower picks the precomputed power of ten whose product with an
// extFloat of binary exponent e lands the result exponent in [-60, -32],
// and returns it together with its decimal exponent (negated, i.e. the
// amount the final decimal exponent must be corrected by).
func cachedPower(e int) (extFloat, int) {
	// 1/lg(10) ~= 0.30102999566398114
	dk := float64(-61-e)*0.30102999566398114 + 347
	k := int(dk)
	if dk-float64(k) > 0 {
		k++
	}
	index := (k >> 3) + 1
	return powersOfTen[index], -(firstPowerOfTen + index*stepPowerOfTen)
}

var uint32pow10 = [10]uint32{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000,
}

// decimalCount32 returns the decimal digit count of n
func decimalCount32(n uint32) int {
	switch {
	case n < 10:
		return 1
	case n < 100:
		return 2
	case n < 1000:
		return 3
	case n < 10000:
		return 4
	case n < 100000:
		return 5
	case n < 1000000:
		return 6
	case n < 10000000:
		return 7
	case n < 100000000:
		return 8
	case n < 1000000000:
		return 9
	}
	return 10
}

// grisuRound nudges the last emitted digit toward the scaled value w as
// long as the result stays inside the boundary interval, resolving the
// midpoint test the digit loop left open.
func grisuRound(buf []byte, length int, delta, rest, tenKappa, wFrac uint64) {
	for rest < wFrac && delta-rest >= tenKappa &&
		(rest+tenKappa < wFrac || wFrac-rest > rest+tenKappa-wFrac) {
		buf[length-1]--
		rest += tenKappa
	}
}

// digitGen emits decimal digits of the upper boundary mp until the
// remaining interval against delta pins down the original double, then
// lets grisuRound fix the final digit. Returns the digit count and the
// corrected decimal exponent.
func digitGen(w, mp extFloat, delta uint64, buf []byte, k int) (int, int) {
	one := extFloat{uint64(1) << uint(-mp.exp), mp.exp}
	wFrac := mp.mant - w.mant
	p1 := uint32(mp.mant >> uint(-one.exp))
	p2 := mp.mant & (one.mant - 1)
	kappa := decimalCount32(p1)
	length := 0

	for kappa > 0 {
		pow := uint32pow10[kappa-1]
		d := p1 / pow
		p1 -= d * pow
		if d != 0 || length != 0 {
			buf[length] = byte('0' + d)
			length++
		}
		kappa--
		rest := uint64(p1)<<uint(-one.exp) + p2
		if rest <= delta {
			k += kappa
			grisuRound(buf, length, delta, rest,
				uint64(uint32pow10[kappa])<<uint(-one.exp), wFrac)
			return length, k
		}
	}

	// fractional digits: multiply the remainder into the next digit
	for {
		p2 *= 10
		delta *= 10
		wFrac *= 10
		d := byte(p2 >> uint(-one.exp))
		if d != 0 || length != 0 {
			buf[length] = '0' + d
			length++
		}
		p2 &= one.mant - 1
		kappa--
		if p2 < delta {
			k += kappa
			grisuRound(buf, length, delta, p2, one.mant, wFrac)
			return length, k
		}
	}
}

// grisu2 produces the shortest digit string for a positive finite value.
// Returns the digit count and the decimal exponent k: reading the digits
// as an integer D, value == D * 10^k, so the decimal point belongs at
// digit position length+k.
func grisu2(value float64, buf []byte) (int, int) {
	v := newExtFloat(value)
	lower, upper := v.normalizedBounds()
	cmk, decExp := cachedPower(upper.exp)
	v.normalize()
	w := v.mul(cmk)
	wp := upper.mul(cmk)
	wm := lower.mul(cmk)
	// one ulp of safety margin for the rounded scaling multiplications
	wm.mant++
	wp.mant--
	return digitGen(w, wp, wp.mant-wm.mant, buf, decExp)
}

// writeExponent writes a decimal exponent (sign only when negative,
// at most three digits for doubles) and returns the byte count.
func writeExponent(e int, buf []byte) int {
	n := 0
	if e < 0 {
		buf[n] = '-'
		n++
		e = -e
	}
	if e >= 100 {
		buf[n] = byte('0' + e/100)
		n++
		e %= 100
		buf[n] = byte('0' + e/10)
		n++
		e %= 10
	} else if e >= 10 {
		buf[n] = byte('0' + e/10)
		n++
		e %= 10
	}
	buf[n] = byte('0' + e)
	return n + 1
}

// prettify rewrites the raw digit string in place into its final textual
// form: plain fixed notation while the decimal point lands in (-6, 21],
// scientific notation otherwise. Integral values gain a trailing ".0" so
// the text reads as floating-point.
func prettify(buf []byte, length, k int) int {
	kk := length + k // decimal point position relative to buf[0]
	switch {
	case 0 < kk && kk <= 21:
		if length <= kk {
			for i := length; i < kk; i++ {
				buf[i] = '0'
			}
			buf[kk] = '.'
			buf[kk+1] = '0'
			return kk + 2
		}
		copy(buf[kk+1:length+1], buf[kk:length])
		buf[kk] = '.'
		return length + 1
	case -6 < kk && kk <= 0:
		offset := 2 - kk
		copy(buf[offset:offset+length], buf[:length])
		buf[0] = '0'
		buf[1] = '.'
		for i := 2; i < offset; i++ {
			buf[i] = '0'
		}
		return length + offset
	case length == 1:
		buf[1] = 'e'
		return 2 + writeExponent(kk-1, buf[2:])
	default:
		copy(buf[2:length+1], buf[1:length])
		buf[1] = '.'
		buf[length+1] = 'e'
		return length + 2 + writeExponent(kk-1, buf[length+2:])
	}
}

// dtoa writes the shortest round-tripping decimal text of a finite value
// into buf and returns the byte count. buf must hold at least
// shortestMaxLength bytes. Negative zero keeps its sign so that parsing
// the text restores the exact bits.
func dtoa(value float64, buf []byte) int {
	n := 0
	if math.Signbit(value) {
		buf[0] = '-'
		n = 1
		value = -value
	}
	if value == 0 {
		buf[n] = '0'
		buf[n+1] = '.'
		buf[n+2] = '0'
		return n + 3
	}
	length, k := grisu2(value, buf[n:])
	return n + prettify(buf[n:], length, k)
}
