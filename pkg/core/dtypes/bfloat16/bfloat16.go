// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package bfloat16 is a trivial implementation for the bfloat16 type,
// based on https://github.com/x448/float16 and the pending issue in
// https://github.com/x448/float16/issues/22
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 (brain floating point)[1][2] floating-point format is a computer number format occupying 16 bits in
// computer memory; it represents a wide dynamic range of numeric values by using a floating radix point.
// This format is a shortened (16-bit) version of the 32-bit IEEE 754 single-precision floating-point format
// (binary32) with the intent of accelerating machine learning and near-sensor computing.
//
// Comparisons with the Go operators (<, >, ==) act on the bits and are meaningless: convert with
// Float32 first.
type BFloat16 uint16

const (
	signMask     = 0x8000
	exponentMask = 0x7f80
	mantissaMask = 0x007f
)

// Float32 converts the BFloat16 to a float32. The conversion is exact.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// FromFloat32 converts a float32 to a BFloat16, by truncation.
// NaNs are kept as (quiet) NaNs even when the truncated mantissa bits would read as an infinity.
func FromFloat32(x float32) BFloat16 {
	bits := math.Float32bits(x)
	b := BFloat16(bits >> 16)
	if x != x && b&mantissaMask == 0 {
		b |= 0x0040
	}
	return b
}

// FromFloat64 converts a float64 to a BFloat16.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits convert an uint16 to a BFloat16.
func FromBits(uint16 uint16) BFloat16 {
	return BFloat16(uint16)
}

// Bits convert BFloat16 to an uint16.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// String implements fmt.Stringer, and prints a float representation of the BFloat16.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}

// IsNaN reports whether f is a "not-a-number" value.
func (f BFloat16) IsNaN() bool {
	return f&exponentMask == exponentMask && f&mantissaMask != 0
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f BFloat16) IsInf(sign int) bool {
	if f&exponentMask != exponentMask || f&mantissaMask != 0 {
		return false
	}
	negative := f&signMask != 0
	return sign == 0 || (sign > 0 && !negative) || (sign < 0 && negative)
}

// Abs returns the absolute value of f, by clearing the sign bit.
func (f BFloat16) Abs() BFloat16 {
	return f &^ signMask
}

// Inf returns a BFloat16 with an infinity value with the specified sign.
// A sign >= returns positive infinity.
// A sign < 0 returns negative infinity.
func Inf(sign int) BFloat16 {
	return FromFloat32(float32(math.Inf(sign)))
}

// NaN returns a quiet "not-a-number" BFloat16.
func NaN() BFloat16 {
	return BFloat16(0x7fc0)
}

// MaxFinite is the largest finite BFloat16 value (3.3895314e+38).
const MaxFinite = BFloat16(0x7f7f)
