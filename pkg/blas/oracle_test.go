// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/gonum"
)

// On finite data, both modes must agree with the gonum reference implementation.
func TestIamax_GonumOracle(t *testing.T) {
	impl := gonum.Implementation{}
	rng := rand.New(rand.NewSource(1))
	value := func() float64 { return math.Round(rng.NormFloat64()*8) / 2 }
	for _, mode := range allModes {
		for _, inc := range []int{1, 2, 5} {
			for n := 1; n < 40; n++ {
				name := fmt.Sprintf("%s/inc=%d/n=%d", mode, inc, n)
				size := (n-1)*inc + 1
				d := make([]float64, size)
				s := make([]float32, size)
				z := make([]complex128, size)
				c := make([]complex64, size)
				for i := range d {
					d[i] = value()
					s[i] = float32(d[i])
					z[i] = complex(value(), value())
					c[i] = complex64(z[i])
				}
				require.Equal(t, impl.Idamax(n, d, inc), Iamax(n, d, inc, mode), name)
				require.Equal(t, impl.Isamax(n, s, inc), Iamax(n, s, inc, mode), name)
				require.Equal(t, impl.Izamax(n, z, inc), Iamax(n, z, inc, mode), name)
				require.Equal(t, impl.Icamax(n, c, inc), Iamax(n, c, inc, mode), name)
			}
		}
	}
}
