// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gblas/pkg/core/dtypes"
	"github.com/gomlx/gblas/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/gblas/pkg/core/scalar"
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"k8s.io/klog/v2"
)

// iamaxFn is the type-erased form of Iamax, registered per dtype.
type iamaxFn func(n int, x any, incX int, mode Mode) int

// dtypeDispatcher maps each dtype to the instantiation of a generic kernel that handles it.
// It is populated during init and read-only afterwards.
type dtypeDispatcher struct {
	name  string
	fnMap [dtypes.NumDTypes]iamaxFn
}

func newDTypeDispatcher(name string) *dtypeDispatcher {
	return &dtypeDispatcher{name: name}
}

// register a function to handle a specific dtype.
// This overwrites any previous setting for the same dtype.
func (d *dtypeDispatcher) register(dtype dtypes.DType, fn iamaxFn) {
	if dtype <= dtypes.InvalidDType || int(dtype) >= dtypes.NumDTypes {
		exceptions.Panicf("dtype %s not supported by %s", dtype, d.name)
	}
	d.fnMap[dtype] = fn
	klog.V(2).Infof("blas: %s registered for %s", d.name, dtype)
}

// lookup returns the function registered for dtype, or an error.
func (d *dtypeDispatcher) lookup(dtype dtypes.DType) (iamaxFn, error) {
	if dtype <= dtypes.InvalidDType || int(dtype) >= dtypes.NumDTypes || d.fnMap[dtype] == nil {
		return nil, errors.Errorf("dtype %s not supported by %s", dtype, d.name)
	}
	return d.fnMap[dtype], nil
}

var iamaxDispatcher = newDTypeDispatcher("Iamax")

func init() {
	registerIamax[float16.Float16, float32](iamaxDispatcher, scalar.Float16)
	registerIamax[bfloat16.BFloat16, float32](iamaxDispatcher, scalar.BFloat16)
	registerIamax[float32, float32](iamaxDispatcher, scalar.Float32)
	registerIamax[float64, float64](iamaxDispatcher, scalar.Float64)
	registerIamax[complex64, float32](iamaxDispatcher, scalar.Complex64)
	registerIamax[complex128, float64](iamaxDispatcher, scalar.Complex128)
}

// registerIamax registers IamaxWith(c, ...) for the dtype of T.
// It panics if c reports a different dtype than T's.
func registerIamax[T scalar.Builtin, R any](d *dtypeDispatcher, c scalar.Capability[T, R]) {
	dtype := dtypes.FromGenericsType[T]()
	if c.DType() != dtype {
		exceptions.Panicf("%s: capability for %s reports dtype %s", d.name, dtype, c.DType())
	}
	d.register(dtype, func(n int, x any, incX int, mode Mode) int {
		return IamaxWith(c, n, x.([]T), incX, mode)
	})
}

// IamaxAny is Iamax for a slice whose element type is only known at runtime: x must be a
// slice of one of the builtin scalar types (e.g. []complex64).
//
// It returns an error if x is not such a slice. Contract violations (incX <= 0, short
// buffer) panic as in Iamax.
func IamaxAny(n int, x any, incX int, mode Mode) (int, error) {
	dtype := dtypes.FromAny(x)
	if dtype == dtypes.InvalidDType || reflect.TypeOf(x) != reflect.SliceOf(dtype.GoType()) {
		return 0, errors.Errorf("blas: IamaxAny: unsupported vector type %T", x)
	}
	fn, err := iamaxDispatcher.lookup(dtype)
	if err != nil {
		return 0, errors.WithMessage(err, "blas: IamaxAny")
	}
	return fn(n, x, incX, mode), nil
}
