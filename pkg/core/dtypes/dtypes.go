// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the scalar types accepted by the gblas kernels.
//
// It includes converters to/from Go native types (and reflect.Type), constants for the extreme
// finite values of each type, the real/complex classification used to pick the kernel code path,
// and the Supported constraint to be used with generics.
package dtypes

import (
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/gomlx/gblas/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code": arguments that break a documented contract.
// In principle, it should never happen -- the same way nil-pointer panics should never happen.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

func init() {
	// Add a mapping to the lower-case version of dtypes.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// FromName returns the DType for the given name or alias (case-insensitive), or an error.
func FromName(name string) (DType, error) {
	if dtype, found := MapOfNames[name]; found {
		return dtype, nil
	}
	if dtype, found := MapOfNames[strings.ToLower(name)]; found {
		return dtype, nil
	}
	return InvalidDType, errors.Errorf("unknown dtype %q", name)
}

// FromGenericsType returns the DType enum for the given type that this package knows about.
func FromGenericsType[T Supported]() DType {
	var t T
	switch (any(t)).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}
	return InvalidDType
}

// Pre-generate constant reflect.TypeOf for convenience.
var (
	float32Type    = reflect.TypeOf(float32(0))
	float64Type    = reflect.TypeOf(float64(0))
	float16Type    = reflect.TypeOf(float16.Float16(0))
	bfloat16Type   = reflect.TypeOf(bfloat16.BFloat16(0))
	complex64Type  = reflect.TypeOf(complex64(0))
	complex128Type = reflect.TypeOf(complex128(0))
)

// FromGoType returns the DType for the given "reflect.Type".
// Slices are looked through, so the type of []float32 maps to Float32.
// It returns InvalidDType for unknown types.
func FromGoType(t reflect.Type) DType {
	if t == nil {
		return InvalidDType
	}
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	switch t {
	case float16Type:
		return Float16
	case bfloat16Type:
		return BFloat16
	}
	switch t.Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Complex64:
		return Complex64
	case reflect.Complex128:
		return Complex128
	default:
		return InvalidDType
	}
}

// FromAny introspects the underlying type of any and returns the corresponding DType.
// Both scalars and slices of scalars are accepted. Unsupported types return an InvalidDType.
func FromAny(value any) DType {
	return FromGoType(reflect.TypeOf(value))
}

// GoType returns the Go `reflect.Type` corresponding to the DType.
func (dtype DType) GoType() reflect.Type {
	switch dtype {
	case Float16:
		return float16Type
	case BFloat16:
		return bfloat16Type
	case Float32:
		return float32Type
	case Float64:
		return float64Type
	case Complex64:
		return complex64Type
	case Complex128:
		return complex128Type
	default:
		panicf("unknown dtype %q (%d) in DType.GoType", dtype, int(dtype))
		panic(nil)
	}
}

// IsFloat returns whether dtype is a supported real float.
// It returns false for complex numbers.
func (dtype DType) IsFloat() bool {
	return dtype == Float32 || dtype == Float64 || dtype == Float16 || dtype == BFloat16
}

// IsComplex returns whether dtype is a supported complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// RealDType returns the real component of complex dtypes.
// For float dtypes, it returns itself.
//
// It returns InvalidDType for other dtypes.
func (dtype DType) RealDType() DType {
	if dtype.IsFloat() {
		return dtype
	}
	switch dtype {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return InvalidDType
	}
}

// MaxFiniteValue returns the largest finite value of the dtype, converted to the corresponding Go type.
// For complex dtypes it returns the value with both components set to the largest finite float.
func (dtype DType) MaxFiniteValue() any {
	switch dtype {
	case Float16:
		return float16.Float16(0x7bff) // 65504
	case BFloat16:
		return bfloat16.MaxFinite
	case Float32:
		return float32(math.MaxFloat32)
	case Float64:
		return math.MaxFloat64
	case Complex64:
		return complex(float32(math.MaxFloat32), float32(math.MaxFloat32))
	case Complex128:
		return complex(math.MaxFloat64, math.MaxFloat64)
	default:
		panicf("unknown dtype %q (%d) in DType.MaxFiniteValue", dtype, int(dtype))
		panic(nil)
	}
}

// Supported lists the Go types the kernels accept. Used as traits for generics.
type Supported interface {
	float16.Float16 | bfloat16.BFloat16 | float32 | float64 | complex64 | complex128
}
