// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package bigscalar

import (
	"github.com/gomlx/gblas/pkg/core/dtypes"
	"github.com/gomlx/gblas/pkg/core/scalar"
)

// RealCapability implements scalar.Capability for Real.
type RealCapability struct{}

// ComplexCapability implements scalar.Capability for Complex, with Real magnitudes.
type ComplexCapability struct{}

var (
	_ scalar.Capability[Real, Real]    = RealCapability{}
	_ scalar.Capability[Complex, Real] = ComplexCapability{}
)

// DType implements scalar.Capability: arbitrary-precision values have no DType.
func (RealCapability) DType() dtypes.DType { return dtypes.InvalidDType }

// IsComplex implements scalar.Capability.
func (RealCapability) IsComplex() bool { return false }

// Abs1 implements scalar.Capability.
func (RealCapability) Abs1(x Real) Real { return x.Abs() }

// Abs1Quarter implements scalar.Capability.
func (RealCapability) Abs1Quarter(x Real) Real { return Mul(x, quarter).Abs() }

// IsNaN implements scalar.Capability.
func (RealCapability) IsNaN(x Real) bool { return x.IsNaN() }

// IsInf implements scalar.Capability.
func (RealCapability) IsInf(x Real) bool { return x.IsInf() }

// IsInfMagnitude implements scalar.Capability.
func (RealCapability) IsInfMagnitude(r Real) bool { return r.IsInf() }

// Greater implements scalar.Capability.
func (RealCapability) Greater(a, b Real) bool { return greater(a, b) }

// NoMagnitude implements scalar.Capability.
func (RealCapability) NoMagnitude() Real { return NewReal(-1) }

// DType implements scalar.Capability: arbitrary-precision values have no DType.
func (ComplexCapability) DType() dtypes.DType { return dtypes.InvalidDType }

// IsComplex implements scalar.Capability.
func (ComplexCapability) IsComplex() bool { return true }

// Abs1 implements scalar.Capability. A NaN component yields NaN, otherwise an
// infinite component yields +Inf.
func (ComplexCapability) Abs1(x Complex) Real {
	return Add(x.Re.Abs(), x.Im.Abs())
}

// Abs1Quarter implements scalar.Capability.
func (ComplexCapability) Abs1Quarter(x Complex) Real {
	return Add(Mul(x.Re, quarter).Abs(), Mul(x.Im, quarter).Abs())
}

// IsNaN implements scalar.Capability.
func (ComplexCapability) IsNaN(x Complex) bool { return x.IsNaN() }

// IsInf implements scalar.Capability.
func (ComplexCapability) IsInf(x Complex) bool { return x.IsInf() }

// IsInfMagnitude implements scalar.Capability.
func (ComplexCapability) IsInfMagnitude(r Real) bool { return r.IsInf() }

// Greater implements scalar.Capability.
func (ComplexCapability) Greater(a, b Real) bool { return greater(a, b) }

// NoMagnitude implements scalar.Capability.
func (ComplexCapability) NoMagnitude() Real { return NewReal(-1) }

func greater(a, b Real) bool {
	cmp, ok := Cmp(a, b)
	return ok && cmp > 0
}
