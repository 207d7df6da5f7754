// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package scalar defines Capability, the set of numeric operations a scalar type must provide
// to be scanned by the gblas reduction kernels, and implements it for the scalar types listed
// in the dtypes package.
//
// A Capability decouples the kernels from the scalar representation: the kernels only ever
// call the capability methods and branch on IsComplex, never on concrete types. Supplying a
// Capability is the only integration point for a new scalar type (see package bigscalar for
// an arbitrary-precision example).
//
// Implementations are stateless values and safe for concurrent use.
package scalar

import (
	"github.com/gomlx/gblas/pkg/core/dtypes"
)

// Capability is the numeric contract for scalar type T, whose magnitudes are of the
// associated real type R.
type Capability[T, R any] interface {
	// DType of T, or dtypes.InvalidDType if T is not one of the enumerated types.
	DType() dtypes.DType

	// IsComplex is the real/complex classification of T. It is constant for a given T.
	IsComplex() bool

	// Abs1 is the 1-norm magnitude: |x| for real x, |Re(x)| + |Im(x)| for complex x.
	// For complex values the sum is computed in R and may saturate to infinity.
	Abs1(x T) R

	// Abs1Quarter is Abs1 of 0.25·x, where the scaling is applied to each component
	// before the sum.
	Abs1Quarter(x T) R

	// IsNaN reports whether x is NaN, or for complex x whether either component is NaN.
	IsNaN(x T) bool

	// IsInf reports whether x is ±Inf, or for complex x whether either component is ±Inf.
	IsInf(x T) bool

	// IsInfMagnitude reports whether a magnitude returned by Abs1 saturated to infinity.
	IsInfMagnitude(r R) bool

	// Greater is the strict a > b on magnitudes. It is false whenever a or b is NaN.
	Greater(a, b R) bool

	// NoMagnitude returns a negative value, which loses to any magnitude in Greater.
	NoMagnitude() R
}

// Builtin lists the scalar types that have a Capability in this package.
type Builtin interface {
	dtypes.Supported
}

// Capabilities for the builtin types.
var (
	Float32    = Real[float32]{}
	Float64    = Real[float64]{}
	Float16    = Float16Capability{}
	BFloat16   = BFloat16Capability{}
	Complex64  = Complex64Capability{}
	Complex128 = Complex128Capability{}
)

// Assert the builtin capabilities implement the contract.
var (
	_ Capability[float32, float32]    = Float32
	_ Capability[float64, float64]    = Float64
	_ Capability[complex64, float32]  = Complex64
	_ Capability[complex128, float64] = Complex128
)

// quarter is the scaling factor applied to complex values once their 1-norm overflowed.
const quarter = 0.25
