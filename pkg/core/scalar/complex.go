// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package scalar

import (
	"math"

	"github.com/gomlx/gblas/pkg/core/dtypes"
)

// Complex64Capability implements Capability for complex64, with float32 magnitudes.
//
// The 1-norm is summed in float32, so it saturates to +Inf as soon as |Re|+|Im| exceeds
// math.MaxFloat32, even though both components are finite.
type Complex64Capability struct{}

// DType implements Capability.
func (Complex64Capability) DType() dtypes.DType { return dtypes.Complex64 }

// IsComplex implements Capability.
func (Complex64Capability) IsComplex() bool { return true }

// Abs1 implements Capability.
func (Complex64Capability) Abs1(x complex64) float32 {
	return abs32(real(x)) + abs32(imag(x))
}

// Abs1Quarter implements Capability.
//
// Multiplying by complex(0.25, 0) would evaluate 0·Inf in the cross terms, so each
// component is scaled on its own.
func (Complex64Capability) Abs1Quarter(x complex64) float32 {
	return abs32(quarter*real(x)) + abs32(quarter*imag(x))
}

// IsNaN implements Capability.
func (Complex64Capability) IsNaN(x complex64) bool {
	re, im := real(x), imag(x)
	return re != re || im != im
}

// IsInf implements Capability.
func (Complex64Capability) IsInf(x complex64) bool {
	return math.IsInf(float64(real(x)), 0) || math.IsInf(float64(imag(x)), 0)
}

// IsInfMagnitude implements Capability.
func (Complex64Capability) IsInfMagnitude(r float32) bool { return math.IsInf(float64(r), 0) }

// Greater implements Capability.
func (Complex64Capability) Greater(a, b float32) bool { return a > b }

// NoMagnitude implements Capability.
func (Complex64Capability) NoMagnitude() float32 { return -1 }

// Complex128Capability implements Capability for complex128, with float64 magnitudes.
type Complex128Capability struct{}

// DType implements Capability.
func (Complex128Capability) DType() dtypes.DType { return dtypes.Complex128 }

// IsComplex implements Capability.
func (Complex128Capability) IsComplex() bool { return true }

// Abs1 implements Capability.
func (Complex128Capability) Abs1(x complex128) float64 {
	return math.Abs(real(x)) + math.Abs(imag(x))
}

// Abs1Quarter implements Capability. See Complex64Capability.Abs1Quarter.
func (Complex128Capability) Abs1Quarter(x complex128) float64 {
	return math.Abs(quarter*real(x)) + math.Abs(quarter*imag(x))
}

// IsNaN implements Capability.
func (Complex128Capability) IsNaN(x complex128) bool {
	return math.IsNaN(real(x)) || math.IsNaN(imag(x))
}

// IsInf implements Capability.
func (Complex128Capability) IsInf(x complex128) bool {
	return math.IsInf(real(x), 0) || math.IsInf(imag(x), 0)
}

// IsInfMagnitude implements Capability.
func (Complex128Capability) IsInfMagnitude(r float64) bool { return math.IsInf(r, 0) }

// Greater implements Capability.
func (Complex128Capability) Greater(a, b float64) bool { return a > b }

// NoMagnitude implements Capability.
func (Complex128Capability) NoMagnitude() float64 { return -1 }
