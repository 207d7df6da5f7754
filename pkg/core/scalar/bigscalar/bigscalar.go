// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package bigscalar adapts math/big floating-point numbers to the scalar.Capability contract,
// so arbitrary-precision vectors can be scanned by the gblas kernels.
//
// big.Float has infinities but no NaN, and its arithmetic panics with big.ErrNaN where IEEE 754
// would produce a NaN (e.g. Inf + -Inf, 0·Inf). Real carries an explicit NaN flag and every
// operation in this package propagates NaN and Inf the IEEE way, so the kernels see the same
// non-finite behavior as with native floats.
package bigscalar

import (
	"math"
	"math/big"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// DefaultPrecision is the mantissa precision, in bits, of values created by this package.
var DefaultPrecision uint = 256

// Real is an arbitrary-precision real number that can also be NaN.
//
// The zero value is 0. Values are immutable: operations return new values.
type Real struct {
	f   *big.Float // nil for NaN, and for the zero value.
	nan bool
}

// NewReal converts a float64, including NaN and ±Inf.
func NewReal(x float64) Real {
	if math.IsNaN(x) {
		return NaN()
	}
	return Real{f: newFloat().SetFloat64(x)}
}

// FromBig returns a Real holding a copy of f.
func FromBig(f *big.Float) Real {
	return Real{f: newFloat().Set(f)}
}

// Parse parses a decimal or "Inf"/"NaN" string.
func Parse(s string) (Real, error) {
	if s == "NaN" || s == "nan" {
		return NaN(), nil
	}
	f, _, err := big.ParseFloat(s, 10, DefaultPrecision, big.ToNearestEven)
	if err != nil {
		return Real{}, errors.Wrapf(err, "bigscalar: failed to parse %q", s)
	}
	return Real{f: f}, nil
}

// NaN returns a "not-a-number" Real.
func NaN() Real {
	return Real{nan: true}
}

// Inf returns +Inf for sign >= 0 and -Inf for sign < 0.
func Inf(sign int) Real {
	return Real{f: newFloat().SetInf(sign < 0)}
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(DefaultPrecision)
}

// float returns the underlying value, treating the zero Real as 0. It must not be called on NaN.
func (r Real) float() *big.Float {
	if r.f == nil {
		return newFloat()
	}
	return r.f
}

// IsNaN reports whether r is NaN.
func (r Real) IsNaN() bool { return r.nan }

// IsInf reports whether r is ±Inf.
func (r Real) IsInf() bool { return !r.nan && r.f != nil && r.f.IsInf() }

// Big returns a copy of the value as a *big.Float, or nil for NaN.
func (r Real) Big() *big.Float {
	if r.nan {
		return nil
	}
	return newFloat().Set(r.float())
}

// Float64 returns the nearest float64, NaN included.
func (r Real) Float64() float64 {
	if r.nan {
		return math.NaN()
	}
	f, _ := r.float().Float64()
	return f
}

// String implements fmt.Stringer.
func (r Real) String() string {
	if r.nan {
		return "NaN"
	}
	return r.float().Text('g', 10)
}

// Abs returns |r|. NaN stays NaN and ±Inf becomes +Inf.
func (r Real) Abs() Real {
	if r.nan {
		return r
	}
	return Real{f: newFloat().Abs(r.float())}
}

// Neg returns -r.
func (r Real) Neg() Real {
	if r.nan {
		return r
	}
	return Real{f: newFloat().Neg(r.float())}
}

// Add returns a + b. Inf + -Inf is NaN.
func Add(a, b Real) Real {
	if a.nan || b.nan {
		return NaN()
	}
	return guardNaN(func() *big.Float { return newFloat().Add(a.float(), b.float()) })
}

// Mul returns a · b. 0 · Inf is NaN.
func Mul(a, b Real) Real {
	if a.nan || b.nan {
		return NaN()
	}
	return guardNaN(func() *big.Float { return newFloat().Mul(a.float(), b.float()) })
}

// Cmp compares a and b and returns -1, 0 or +1. The comparison is unordered (ok is false)
// if either value is NaN.
func Cmp(a, b Real) (cmp int, ok bool) {
	if a.nan || b.nan {
		return 0, false
	}
	return a.float().Cmp(b.float()), true
}

// guardNaN runs a math/big operation, converting its big.ErrNaN panic into a NaN result.
// Any other panic is re-thrown.
func guardNaN(op func() *big.Float) Real {
	var f *big.Float
	err := exceptions.TryCatch[error](func() { f = op() })
	if err != nil {
		var errNaN big.ErrNaN
		if errors.As(err, &errNaN) {
			return NaN()
		}
		panic(err)
	}
	return Real{f: f}
}

// quarter is the exact scaling factor used by Abs1Quarter.
var quarter = NewReal(0.25)

// Complex is an arbitrary-precision complex number.
type Complex struct {
	Re, Im Real
}

// NewComplex converts a complex128, including NaN and ±Inf components.
func NewComplex(c complex128) Complex {
	return Complex{Re: NewReal(real(c)), Im: NewReal(imag(c))}
}

// IsNaN reports whether either component is NaN.
func (c Complex) IsNaN() bool { return c.Re.IsNaN() || c.Im.IsNaN() }

// IsInf reports whether either component is ±Inf.
func (c Complex) IsInf() bool { return c.Re.IsInf() || c.Im.IsInf() }

// Complex128 returns the nearest complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Re.Float64(), c.Im.Float64())
}

// String implements fmt.Stringer.
func (c Complex) String() string {
	return "(" + c.Re.String() + ", " + c.Im.String() + ")"
}
