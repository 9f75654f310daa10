// File: str.go
// Title: Generic String Conversion Facade
// Description: Defines the ValueFormatter contract shared by all formatters
//              and the Str/Strf entry points that turn values into freshly
//              allocated strings: Strf pairs an explicit formatter with a
//              value, Str dispatches on the value's type to the default
//              formatter for that type.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-27
// Modified: 2026-05-27
//
// Change History:
// - 2026-05-27 v0.1.0: Initial implementation

package fmtx

import (
	"strconv"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

// ValueFormatter is the contract all formatters satisfy: a bound on the
// formatted size of a value, and a write of the formatted value into a
// caller-supplied buffer returning the byte count.
type ValueFormatter[T any] interface {
	MaxFormattedLength(x T) int
	FormattedWrite(x T, buf []byte) int
}

// Strf formats x with the given formatter into a new string. The string is
// sized by MaxFormattedLength and trimmed to the bytes actually written.
func Strf[T any](x T, f ValueFormatter[T]) string {
	maxLen := f.MaxFormattedLength(x)
	buf := make([]byte, maxLen)
	n := f.FormattedWrite(x, buf)
	if n > maxLen {
		panic(clueerror.Newf("formatter wrote %d bytes past its own bound of %d", n, maxLen).
			WithCode(clueerror.CodeContractViolation).
			WithOperation("fmtx.Strf").
			WithDetail("written", n).
			WithDetail("bound", maxLen))
	}
	return string(buf[:n])
}

// signedFormatter adapts IntFormatter to the ValueFormatter contract for a
// concrete signed integer type.
type signedFormatter[T int | int8 | int16 | int32 | int64] struct {
	f IntFormatter
}

func (s signedFormatter[T]) MaxFormattedLength(x T) int {
	return s.f.MaxFormattedLength(int64(x))
}

func (s signedFormatter[T]) FormattedWrite(x T, buf []byte) int {
	return s.f.FormattedWrite(int64(x), buf)
}

// unsignedFormatter adapts IntFormatter to the ValueFormatter contract for a
// concrete unsigned integer type.
type unsignedFormatter[T uint | uint8 | uint16 | uint32 | uint64 | uintptr] struct {
	f IntFormatter
}

func (u unsignedFormatter[T]) MaxFormattedLength(x T) int {
	return u.f.MaxFormattedLengthUint(uint64(x))
}

func (u unsignedFormatter[T]) FormattedWrite(x T, buf []byte) int {
	return u.f.FormattedWriteUint(uint64(x), buf)
}

// For returns the formatter adapted to the ValueFormatter contract for the
// signed integer type T, for use with Strf.
func For[T int | int8 | int16 | int32 | int64](f IntFormatter) ValueFormatter[T] {
	return signedFormatter[T]{f: f}
}

// ForUint returns the formatter adapted to the ValueFormatter contract for
// the unsigned integer type T, for use with Strf.
func ForUint[T uint | uint8 | uint16 | uint32 | uint64 | uintptr](f IntFormatter) ValueFormatter[T] {
	return unsignedFormatter[T]{f: f}
}

// float32Formatter adapts ShortestFormatter to float32 values by widening
// through the exact float64 representation.
type float32Formatter struct {
	f ShortestFormatter
}

func (w float32Formatter) MaxFormattedLength(x float32) int {
	return w.f.MaxFormattedLength(float64(x))
}

func (w float32Formatter) FormattedWrite(x float32, buf []byte) int {
	return w.f.FormattedWrite(float64(x), buf)
}

// Str converts x to a string using the default formatter for its type:
// decimal for integers, shortest round-trip for floats.
func Str[T Real](x T) string {
	switch v := any(x).(type) {
	case int:
		return Strf(int64(v), For[int64](DefaultInt()))
	case int8:
		return Strf(int64(v), For[int64](DefaultInt()))
	case int16:
		return Strf(int64(v), For[int64](DefaultInt()))
	case int32:
		return Strf(int64(v), For[int64](DefaultInt()))
	case int64:
		return Strf(v, For[int64](DefaultInt()))
	case uint:
		return Strf(uint64(v), ForUint[uint64](DefaultInt()))
	case uint8:
		return Strf(uint64(v), ForUint[uint64](DefaultInt()))
	case uint16:
		return Strf(uint64(v), ForUint[uint64](DefaultInt()))
	case uint32:
		return Strf(uint64(v), ForUint[uint64](DefaultInt()))
	case uint64:
		return Strf(v, ForUint[uint64](DefaultInt()))
	case uintptr:
		return Strf(uint64(v), ForUint[uint64](DefaultInt()))
	case float32:
		return Strf(v, float32Formatter{f: DefaultFloat()})
	case float64:
		return Strf(v, DefaultFloat())
	}
	// unreachable: Real enumerates the cases above exactly
	return ""
}

// StrOf converts an arbitrary value to a string: the numeric kinds go
// through their default formatters, booleans and strings pass through,
// everything else is rejected with an invalid-input error.
func StrOf(x any) (string, error) {
	switch v := x.(type) {
	case int:
		return Str(v), nil
	case int8:
		return Str(v), nil
	case int16:
		return Str(v), nil
	case int32:
		return Str(v), nil
	case int64:
		return Str(v), nil
	case uint:
		return Str(v), nil
	case uint8:
		return Str(v), nil
	case uint16:
		return Str(v), nil
	case uint32:
		return Str(v), nil
	case uint64:
		return Str(v), nil
	case uintptr:
		return Str(v), nil
	case float32:
		return Str(v), nil
	case float64:
		return Str(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		return v, nil
	default:
		return "", clueerror.Newf("no default formatter for type %T", x).
			WithCode(clueerror.CodeInvalidInput).
			WithOperation("fmtx.StrOf")
	}
}
