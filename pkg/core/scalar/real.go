// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package scalar

import (
	"math"

	"github.com/gomlx/gblas/pkg/core/dtypes"
	"github.com/gomlx/gblas/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// Real implements Capability for the native Go float types, with magnitudes of the same type.
type Real[T constraints.Float] struct{}

// DType implements Capability.
func (Real[T]) DType() dtypes.DType { return dtypes.FromAny(T(0)) }

// IsComplex implements Capability.
func (Real[T]) IsComplex() bool { return false }

// Abs1 implements Capability.
func (Real[T]) Abs1(x T) T { return T(math.Abs(float64(x))) }

// Abs1Quarter implements Capability.
func (Real[T]) Abs1Quarter(x T) T { return T(math.Abs(float64(x * quarter))) }

// IsNaN implements Capability.
func (Real[T]) IsNaN(x T) bool { return x != x }

// IsInf implements Capability.
func (Real[T]) IsInf(x T) bool { return math.IsInf(float64(x), 0) }

// IsInfMagnitude implements Capability.
func (Real[T]) IsInfMagnitude(r T) bool { return math.IsInf(float64(r), 0) }

// Greater implements Capability.
func (Real[T]) Greater(a, b T) bool { return a > b }

// NoMagnitude implements Capability.
func (Real[T]) NoMagnitude() T { return -1 }

// Float16Capability implements Capability for float16.Float16.
// Magnitudes are float32, which represents every float16 value exactly.
type Float16Capability struct{}

var _ Capability[float16.Float16, float32] = Float16Capability{}

// DType implements Capability.
func (Float16Capability) DType() dtypes.DType { return dtypes.Float16 }

// IsComplex implements Capability.
func (Float16Capability) IsComplex() bool { return false }

// Abs1 implements Capability.
func (Float16Capability) Abs1(x float16.Float16) float32 { return abs32(x.Float32()) }

// Abs1Quarter implements Capability.
func (Float16Capability) Abs1Quarter(x float16.Float16) float32 { return abs32(x.Float32() * quarter) }

// IsNaN implements Capability.
func (Float16Capability) IsNaN(x float16.Float16) bool { return x.IsNaN() }

// IsInf implements Capability.
func (Float16Capability) IsInf(x float16.Float16) bool { return x.IsInf(0) }

// IsInfMagnitude implements Capability.
func (Float16Capability) IsInfMagnitude(r float32) bool { return math.IsInf(float64(r), 0) }

// Greater implements Capability.
func (Float16Capability) Greater(a, b float32) bool { return a > b }

// NoMagnitude implements Capability.
func (Float16Capability) NoMagnitude() float32 { return -1 }

// BFloat16Capability implements Capability for bfloat16.BFloat16, with float32 magnitudes.
type BFloat16Capability struct{}

var _ Capability[bfloat16.BFloat16, float32] = BFloat16Capability{}

// DType implements Capability.
func (BFloat16Capability) DType() dtypes.DType { return dtypes.BFloat16 }

// IsComplex implements Capability.
func (BFloat16Capability) IsComplex() bool { return false }

// Abs1 implements Capability.
func (BFloat16Capability) Abs1(x bfloat16.BFloat16) float32 { return x.Abs().Float32() }

// Abs1Quarter implements Capability.
func (BFloat16Capability) Abs1Quarter(x bfloat16.BFloat16) float32 { return x.Abs().Float32() * quarter }

// IsNaN implements Capability.
func (BFloat16Capability) IsNaN(x bfloat16.BFloat16) bool { return x.IsNaN() }

// IsInf implements Capability.
func (BFloat16Capability) IsInf(x bfloat16.BFloat16) bool { return x.IsInf(0) }

// IsInfMagnitude implements Capability.
func (BFloat16Capability) IsInfMagnitude(r float32) bool { return math.IsInf(float64(r), 0) }

// Greater implements Capability.
func (BFloat16Capability) Greater(a, b float32) bool { return a > b }

// NoMagnitude implements Capability.
func (BFloat16Capability) NoMagnitude() float32 { return -1 }

func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
