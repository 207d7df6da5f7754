// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package blas implements generic level-1 BLAS kernels over strided vectors: Iamax, the
// "index of absolute maximum" reduction used to select pivots in dense factorizations, and
// Swap.
//
// The kernels work for any scalar type with a scalar.Capability: the builtin float16,
// bfloat16, float32, float64, complex64 and complex128 through Iamax, and any other type
// (e.g. bigscalar's arbitrary-precision values) through IamaxWith. IamaxAny dispatches at
// runtime on the element type of a slice.
//
// Iamax returns, in priority order:
//
//  1. 0 if n <= 0;
//  2. with CheckNaN, the index of the first NaN (a complex value is NaN if either component is);
//  3. the index of the first element with an infinite component;
//  4. the index of the first element with the largest |Re(x)|+|Im(x)|.
//
// Contract violations (non-positive increments, short buffers, mismatched Swap lengths) panic,
// the same way an out-of-bounds slice access would. The kernels never allocate, lock or log,
// and never write their inputs: concurrent calls are safe as long as nobody writes the buffers.
package blas
