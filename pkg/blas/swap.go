// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import "github.com/gomlx/exceptions"

// Swap exchanges the logical elements of x and y: x[i] <-> y[i] for i in [0, x.N).
//
// It panics if x.N != y.N, on a zero increment, or if a buffer is too short.
// Negative increments follow the Vector convention, so Swap(x, y) with y.Inc = -x.Inc
// reverses the pairing.
func Swap[T any](x, y Vector[T]) {
	if x.N != y.N {
		exceptions.Panicf("blas: Swap: length mismatch, x.N=%d and y.N=%d", x.N, y.N)
	}
	checkVector("Swap", "x", x)
	checkVector("Swap", "y", y)
	if x.N <= 0 {
		return
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < x.N; i++ {
		x.Data[ix], y.Data[iy] = y.Data[iy], x.Data[ix]
		ix += x.Inc
		iy += y.Inc
	}
}
