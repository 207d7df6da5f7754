// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas_test

import (
	"fmt"
	"math"

	"github.com/gomlx/gblas/pkg/blas"
	"github.com/gomlx/gblas/pkg/core/scalar"
)

func ExampleIamax() {
	x := []float64{2, -5, 5, 1}
	fmt.Println(blas.Iamax(len(x), x, 1, blas.CheckNaN))

	// Every other element: {2, 5}.
	fmt.Println(blas.Iamax(2, x, 2, blas.CheckNaN))

	// NaN wins over infinities in CheckNaN mode.
	y := []float64{1, math.Inf(-1), math.NaN()}
	fmt.Println(blas.Iamax(len(y), y, 1, blas.CheckNaN))

	// Complex values are ranked by |Re|+|Im|.
	z := []complex128{complex(5, 0), complex(3, -4)}
	fmt.Println(blas.Iamax(len(z), z, 1, blas.QuietNaN))

	// Output:
	// 1
	// 1
	// 2
	// 1
}

func ExampleIamaxCheckNaN() {
	// A negative increment visits the buffer from the end: the logical vector is {3, -8, 1}.
	v := blas.Vector[float32]{N: 3, Data: []float32{1, -8, 3}, Inc: -1}
	fmt.Println(blas.IamaxCheckNaN(scalar.Float32, v))

	// Output:
	// 1
}
