// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gblas/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/gblas/pkg/core/scalar"
	"github.com/x448/float16"
)

// invalidIndex marks "no candidate yet" during a scan.
const invalidIndex = math.MaxInt

// Iamax returns the index of the element of largest magnitude among the n elements
// x[0], x[incX], ..., x[(n-1)*incX], following the priority order documented in the package.
//
// It panics if incX <= 0, or if x is too short for n elements. It returns 0 if n <= 0.
//
// Example:
//
//	blas.Iamax(4, []float64{2, -5, 5, 1}, 1, blas.CheckNaN) // 1: the first of |-5| and |5|.
func Iamax[T scalar.Builtin](n int, x []T, incX int, mode Mode) int {
	switch xs := any(x).(type) {
	case []float32:
		return IamaxWith(scalar.Float32, n, xs, incX, mode)
	case []float64:
		return IamaxWith(scalar.Float64, n, xs, incX, mode)
	case []float16.Float16:
		return IamaxWith(scalar.Float16, n, xs, incX, mode)
	case []bfloat16.BFloat16:
		return IamaxWith(scalar.BFloat16, n, xs, incX, mode)
	case []complex64:
		return IamaxWith(scalar.Complex64, n, xs, incX, mode)
	case []complex128:
		return IamaxWith(scalar.Complex128, n, xs, incX, mode)
	}
	exceptions.Panicf("blas: Iamax: no capability for %T", x)
	panic(nil) // Quiet linter.
}

// IamaxWith is Iamax for any scalar type T, given its capability c.
func IamaxWith[T, R any](c scalar.Capability[T, R], n int, x []T, incX int, mode Mode) int {
	if incX <= 0 {
		exceptions.Panicf("blas: Iamax: increment must be positive, got incX=%d", incX)
	}
	v := Vector[T]{N: n, Data: x, Inc: incX}
	switch mode {
	case CheckNaN:
		return IamaxCheckNaN(c, v)
	case QuietNaN:
		return IamaxQuietNaN(c, v)
	}
	exceptions.Panicf("blas: Iamax: invalid mode %s", mode)
	panic(nil) // Quiet linter.
}

// IamaxQuietNaN is the Iamax variant that assumes x has no NaN: if it does, the result is
// some index in [0, x.N). Infinities are ranked as documented in the package.
//
// Negative increments are accepted, see Vector. It panics on a zero increment or a short buffer.
func IamaxQuietNaN[T, R any](c scalar.Capability[T, R], x Vector[T]) int {
	checkVector("IamaxQuietNaN", "x", x)
	if x.N <= 0 {
		return 0
	}
	s := newScanState(c)
	for i, ix := 0, x.start(); i < x.N; i, ix = i+1, ix+x.Inc {
		s.observe(i, x.Data[ix])
	}
	return s.result()
}

// IamaxCheckNaN is the Iamax variant that returns the index of the first NaN, if there is any,
// even when it comes after an infinity.
//
// Negative increments are accepted, see Vector. It panics on a zero increment or a short buffer.
func IamaxCheckNaN[T, R any](c scalar.Capability[T, R], x Vector[T]) int {
	checkVector("IamaxCheckNaN", "x", x)
	if x.N <= 0 {
		return 0
	}
	s := newScanState(c)
	i, ix := 0, x.start()
	for ; i < x.N; i, ix = i+1, ix+x.Inc {
		value := x.Data[ix]
		if c.IsNaN(value) {
			return i
		}
		if c.IsInf(value) {
			// The first infinity is the answer, unless a NaN shows up later:
			// stop tracking magnitudes.
			s.index = i
			i, ix = i+1, ix+x.Inc
			break
		}
		s.observe(i, value)
	}
	for ; i < x.N; i, ix = i+1, ix+x.Inc {
		if c.IsNaN(x.Data[ix]) {
			return i
		}
	}
	return s.result()
}

// scanState is the per-call state of an Iamax scan.
type scanState[T, R any] struct {
	c         scalar.Capability[T, R]
	isComplex bool

	// smax is the magnitude of the current best candidate, quarter-scaled once scaled is set.
	smax  R
	index int

	// scaled latches when a complex 1-norm overflowed: from then on every magnitude is
	// computed on 0.25·x. It is never reset.
	scaled bool
}

func newScanState[T, R any](c scalar.Capability[T, R]) scanState[T, R] {
	return scanState[T, R]{
		c:         c,
		isComplex: c.IsComplex(),
		smax:      c.NoMagnitude(),
		index:     invalidIndex,
	}
}

// observe offers the logical element i as a candidate. Ties keep the earlier index.
func (s *scanState[T, R]) observe(i int, value T) {
	var a R
	switch {
	case !s.isComplex:
		a = s.c.Abs1(value)
	case s.scaled:
		a = s.c.Abs1Quarter(value)
	default:
		a = s.c.Abs1(value)
		if s.c.IsInfMagnitude(a) {
			// Every earlier magnitude was finite, so this element is the new best.
			s.scaled = true
			s.smax = s.c.Abs1Quarter(value)
			s.index = i
			return
		}
	}
	if s.c.Greater(a, s.smax) {
		s.smax = a
		s.index = i
	}
}

func (s *scanState[T, R]) result() int {
	if s.index == invalidIndex {
		// Only reachable with NaNs in QuietNaN mode.
		return 0
	}
	return s.index
}
