// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import "strconv"

// DType enumerates the scalar types the gblas kernels know how to scan.
//
// Only floating-point and complex types are listed: integer vectors have no
// non-finite values and are better served by a plain argmax.
type DType int32

const (
	// InvalidDType is the zero value, used for types outside the enum (e.g. arbitrary-precision scalars).
	InvalidDType DType = 0

	// Float16 is the IEEE 754 half-precision type, github.com/x448/float16.Float16.
	Float16 DType = 1

	// BFloat16 is the truncated 16-bit "brain" float, bfloat16.BFloat16.
	BFloat16 DType = 2

	// Float32 is Go's float32.
	Float32 DType = 3

	// Float64 is Go's float64.
	Float64 DType = 4

	// Complex64 is Go's complex64: paired Float32 (real, imag).
	Complex64 DType = 5

	// Complex128 is Go's complex128: paired Float64 (real, imag).
	Complex128 DType = 6
)

// NumDTypes is one past the largest DType value, used to size dispatch tables.
const NumDTypes = int(Complex128) + 1

// MapOfNames to their dtypes. It includes also the short XLA/PJRT aliases (F32, C64, ...).
// It is also later initialized to include the lower-case version of the names.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"Float16":      Float16,
	"F16":          Float16,
	"BFloat16":     BFloat16,
	"BF16":         BFloat16,
	"Float32":      Float32,
	"F32":          Float32,
	"Float64":      Float64,
	"F64":          Float64,
	"Complex64":    Complex64,
	"C64":          Complex64,
	"Complex128":   Complex128,
	"C128":         Complex128,
}

var dtypeNames = [NumDTypes]string{
	InvalidDType: "InvalidDType",
	Float16:      "Float16",
	BFloat16:     "BFloat16",
	Float32:      "Float32",
	Float64:      "Float64",
	Complex64:    "Complex64",
	Complex128:   "Complex128",
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if dtype < 0 || int(dtype) >= NumDTypes {
		return "DType(" + strconv.Itoa(int(dtype)) + ")"
	}
	return dtypeNames[dtype]
}
