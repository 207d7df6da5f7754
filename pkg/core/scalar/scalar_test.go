// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package scalar

import (
	"math"
	"testing"

	"github.com/gomlx/gblas/pkg/core/dtypes"
	"github.com/gomlx/gblas/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

var (
	nan   = math.NaN()
	inf   = math.Inf(1)
	nan32 = float32(math.NaN())
	inf32 = float32(math.Inf(1))
)

func TestRealCapability(t *testing.T) {
	assert.Equal(t, dtypes.Float64, Float64.DType())
	assert.Equal(t, dtypes.Float32, Float32.DType())
	assert.False(t, Float64.IsComplex())
	assert.Equal(t, 5.0, Float64.Abs1(-5))
	assert.Equal(t, 1.25, Float64.Abs1Quarter(-5))
	assert.True(t, Float64.IsNaN(nan))
	assert.False(t, Float64.IsInf(nan))
	assert.True(t, Float64.IsInf(-inf))
	assert.True(t, Float64.IsInfMagnitude(Float64.Abs1(-inf)))
	assert.True(t, Float64.Greater(1, Float64.NoMagnitude()))
	assert.True(t, Float64.Greater(0, Float64.NoMagnitude()))
	assert.False(t, Float64.Greater(nan, Float64.NoMagnitude()))
	assert.False(t, Float64.Greater(2, 2))
	assert.Equal(t, float32(3), Float32.Abs1(-3))
}

func TestComplexCapability(t *testing.T) {
	assert.True(t, Complex128.IsComplex())
	assert.Equal(t, dtypes.Complex128, Complex128.DType())
	assert.Equal(t, 2.0, Complex128.Abs1(complex(1, 1)))
	assert.Equal(t, 2.0, Complex128.Abs1(complex(0, -2)))
	assert.Equal(t, 0.75, Complex128.Abs1Quarter(complex(-1, 2)))

	// Either component decides the non-finite predicates.
	assert.True(t, Complex128.IsNaN(complex(0, nan)))
	assert.True(t, Complex128.IsNaN(complex(nan, inf)))
	assert.True(t, Complex128.IsInf(complex(1, -inf)))
	assert.False(t, Complex128.IsInf(complex(1, nan)))

	// Finite components whose 1-norm overflows.
	big := complex(math.MaxFloat64, math.MaxFloat64)
	assert.False(t, Complex128.IsInf(big))
	assert.True(t, Complex128.IsInfMagnitude(Complex128.Abs1(big)))
	assert.Equal(t, math.MaxFloat64/2, Complex128.Abs1Quarter(big))

	// Quarter scaling keeps an infinite component infinite, with no NaN from 0·Inf.
	assert.True(t, math.IsInf(Complex128.Abs1Quarter(complex(inf, 0)), 1))
	assert.True(t, math.IsInf(Complex128.Abs1Quarter(complex(0, -inf)), 1))

	assert.Equal(t, dtypes.Complex64, Complex64.DType())
	big64 := complex(float32(math.MaxFloat32), float32(math.MaxFloat32))
	assert.True(t, Complex64.IsInfMagnitude(Complex64.Abs1(big64)))
	assert.Equal(t, float32(math.MaxFloat32)/2, Complex64.Abs1Quarter(big64))
	assert.True(t, Complex64.IsNaN(complex(nan32, 0)))
	assert.True(t, Complex64.IsInf(complex(0, inf32)))
	assert.True(t, math.IsInf(float64(Complex64.Abs1Quarter(complex(inf32, 0))), 1))
	assert.False(t, Complex64.Greater(nan32, -1))
}

func TestHalfPrecisionCapabilities(t *testing.T) {
	assert.Equal(t, dtypes.Float16, Float16.DType())
	assert.Equal(t, float32(2.5), Float16.Abs1(float16.Fromfloat32(-2.5)))
	assert.True(t, Float16.IsNaN(float16.NaN()))
	assert.True(t, Float16.IsInf(float16.Inf(-1)))
	assert.False(t, Float16.IsInf(float16.Fromfloat32(65504)))
	assert.True(t, Float16.Greater(Float16.Abs1(float16.Fromfloat32(-3)), Float16.Abs1(float16.Fromfloat32(2))))

	assert.Equal(t, dtypes.BFloat16, BFloat16.DType())
	assert.Equal(t, float32(4), BFloat16.Abs1(bfloat16.FromFloat32(-4)))
	assert.Equal(t, float32(1), BFloat16.Abs1Quarter(bfloat16.FromFloat32(-4)))
	assert.True(t, BFloat16.IsNaN(bfloat16.NaN()))
	assert.True(t, BFloat16.IsInf(bfloat16.Inf(1)))
	assert.False(t, BFloat16.IsComplex())
}
