// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"github.com/gomlx/exceptions"
)

// Vector is a strided view of N logical elements over Data.
//
// For Inc > 0 the logical element i is Data[i*Inc]. For Inc < 0 the walk starts at the high
// end of the buffer: the logical element i is Data[(N-1-i)*|Inc|]. Inc == 0 is invalid.
//
// A Vector borrows Data: it never copies it, and Iamax never writes it.
type Vector[T any] struct {
	N    int
	Data []T
	Inc  int
}

// Dense returns the unit-stride Vector over all of data.
func Dense[T any](data []T) Vector[T] {
	return Vector[T]{N: len(data), Data: data, Inc: 1}
}

// start is the Data offset of the logical element 0.
func (v Vector[T]) start() int {
	if v.Inc > 0 || v.N <= 0 {
		return 0
	}
	return (1 - v.N) * v.Inc
}

// At returns the logical element i. It panics if i is out of [0, N).
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= v.N {
		exceptions.Panicf("blas: index %d out of range for vector of length %d", i, v.N)
	}
	return v.Data[v.start()+i*v.Inc]
}

// checkVector panics if the increment is zero or, when N > 0, if Data is too short to hold N
// elements at the given increment.
func checkVector[T any](op, name string, v Vector[T]) {
	if v.Inc == 0 {
		exceptions.Panicf("blas: %s: zero %s index increment", op, name)
	}
	if v.N <= 0 {
		return
	}
	inc := v.Inc
	if inc < 0 {
		inc = -inc
	}
	// Written as a division so that (N-1)*|Inc| can't overflow. inc < 0 here only for math.MinInt.
	if inc < 0 || len(v.Data) == 0 || v.N-1 > (len(v.Data)-1)/inc {
		exceptions.Panicf("blas: %s: short %s: %d elements with increment %d don't fit in a buffer of %d",
			op, name, v.N, v.Inc, len(v.Data))
	}
}
