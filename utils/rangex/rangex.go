// File: rangex.go
// Title: Integral Value Ranges
// Description: Implements the half-open integral value range: an immutable
//              pair of endpoints with size and membership queries, indexed
//              access, and forward and backward iteration through Go range
//              functions.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-29
// Modified: 2026-05-30
//
// Change History:
// - 2026-05-29 v0.1.0: Initial implementation
// - 2026-05-30 v0.1.1: Backward iteration and Collect

package rangex

import (
	"iter"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

// Integer constrains the element types a Range can carry
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range is an immutable half-open interval [first, last) over an integral
// type. The zero value is the empty range starting at zero.
type Range[T Integer] struct {
	first T
	last  T
}

// New returns the range [first, last). last preceding first is a contract
// violation and panics.
func New[T Integer](first, last T) Range[T] {
	if last < first {
		panic(clueerror.Newf("range end %v precedes start %v", last, first).
			WithCode(clueerror.CodeContractViolation).
			WithOperation("rangex.New"))
	}
	return Range[T]{first: first, last: last}
}

// First returns the inclusive lower endpoint
func (r Range[T]) First() T { return r.first }

// Last returns the exclusive upper endpoint
func (r Range[T]) Last() T { return r.last }

// Size returns the number of values in the range
func (r Range[T]) Size() int {
	return int(r.last - r.first)
}

// Empty reports whether the range holds no values
func (r Range[T]) Empty() bool {
	return r.first == r.last
}

// Contains reports whether x lies inside the half-open interval
func (r Range[T]) Contains(x T) bool {
	return r.first <= x && x < r.last
}

// At returns the i-th value of the range. An index outside [0, Size()) is
// a contract violation and panics.
func (r Range[T]) At(i int) T {
	if i < 0 || i >= r.Size() {
		panic(clueerror.Newf("index %d outside range of %d values", i, r.Size()).
			WithCode(clueerror.CodeContractViolation).
			WithOperation("rangex.Range.At").
			WithDetail("index", i).
			WithDetail("size", r.Size()))
	}
	return r.first + T(i)
}

// Values returns an ascending iterator over the range, usable directly in
// a for-range statement.
func (r Range[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := r.first; v < r.last; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a descending iterator over the range
func (r Range[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := r.last; v > r.first; {
			v--
			if !yield(v) {
				return
			}
		}
	}
}

// Each calls fn for every value in ascending order; fn returning false
// stops the walk.
func (r Range[T]) Each(fn func(T) bool) {
	for v := r.first; v < r.last; v++ {
		if !fn(v) {
			return
		}
	}
}

// Collect materializes the range into a slice. The empty range yields nil.
func (r Range[T]) Collect() []T {
	if r.Empty() {
		return nil
	}
	out := make([]T, 0, r.Size())
	for v := r.first; v < r.last; v++ {
		out = append(out, v)
	}
	return out
}
