// File: rangex_test.go
// Title: Unit Tests for Integral Value Ranges
// Description: Tests for range construction, size and membership queries,
//              indexed access with its contract, and the iteration forms.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-05-29
// Modified: 2026-05-30
//
// Change History:
// - 2026-05-29 v0.1.0: Initial test implementation
// - 2026-05-30 v0.1.1: Backward iteration and Collect coverage

package rangex

import (
	"reflect"
	"testing"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
)

func TestRangeProperties(t *testing.T) {
	tests := []struct {
		name      string
		first     int
		last      int
		size      int
		empty     bool
		collected []int
	}{
		{"empty at zero", 0, 0, 0, true, nil},
		{"empty elsewhere", 5, 5, 0, true, nil},
		{"single value", 3, 4, 1, false, []int{3}},
		{"small range", 0, 5, 5, false, []int{0, 1, 2, 3, 4}},
		{"negative start", -2, 3, 5, false, []int{-2, -1, 0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.first, tt.last)
			if r.First() != tt.first || r.Last() != tt.last {
				t.Errorf("endpoints = [%d, %d); want [%d, %d)",
					r.First(), r.Last(), tt.first, tt.last)
			}
			if r.Size() != tt.size {
				t.Errorf("Size() = %d; want %d", r.Size(), tt.size)
			}
			if r.Empty() != tt.empty {
				t.Errorf("Empty() = %v; want %v", r.Empty(), tt.empty)
			}
			if got := r.Collect(); !reflect.DeepEqual(got, tt.collected) {
				t.Errorf("Collect() = %v; want %v", got, tt.collected)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := New(2, 7)
	tests := []struct {
		name     string
		value    int
		expected bool
	}{
		{"below first", 1, false},
		{"first is inside", 2, true},
		{"interior", 5, true},
		{"last is outside", 7, false},
		{"above last", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.value); got != tt.expected {
				t.Errorf("Contains(%d) = %v; want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestRangeAt(t *testing.T) {
	r := New(10, 15)
	for i := 0; i < r.Size(); i++ {
		if got := r.At(i); got != 10+i {
			t.Errorf("At(%d) = %d; want %d", i, got, 10+i)
		}
	}
}

func TestRangeAtContract(t *testing.T) {
	for _, i := range []int{-1, 5, 100} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("At(%d) expected panic", i)
				}
				err, ok := r.(error)
				if !ok || !clueerror.HasCode(err, clueerror.CodeContractViolation) {
					t.Errorf("panic value %v lacks contract-violation code", r)
				}
			}()
			New(0, 5).At(i)
		}()
	}
}

func TestNewContract(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for reversed endpoints")
		}
		err, ok := r.(error)
		if !ok || !clueerror.HasCode(err, clueerror.CodeContractViolation) {
			t.Errorf("panic value %v lacks contract-violation code", r)
		}
	}()
	New(5, 0)
}

func TestRangeValues(t *testing.T) {
	var got []uint8
	for v := range New[uint8](250, 255).Values() {
		got = append(got, v)
	}
	want := []uint8{250, 251, 252, 253, 254}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values() yielded %v; want %v", got, want)
	}
}

func TestRangeValuesEarlyBreak(t *testing.T) {
	count := 0
	for range New(0, 1000).Values() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("break left count = %d; want 3", count)
	}
}

func TestRangeBackward(t *testing.T) {
	var got []int
	for v := range New(0, 4).Backward() {
		got = append(got, v)
	}
	want := []int{3, 2, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Backward() yielded %v; want %v", got, want)
	}
}

func TestRangeEach(t *testing.T) {
	var got []int
	New(1, 10).Each(func(v int) bool {
		got = append(got, v)
		return v < 3
	})
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Each() visited %v; want %v", got, want)
	}
}
