// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwap(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	Swap(Dense(x), Dense(y))
	assert.Equal(t, []float64{4, 5, 6}, x)
	assert.Equal(t, []float64{1, 2, 3}, y)

	// Mixed strides: y walks its buffer backwards, so logical y is {9, 8, 7}.
	x = []float64{1, 0, 2, 0, 3}
	y = []float64{7, 8, 9}
	Swap(Vector[float64]{N: 3, Data: x, Inc: 2}, Vector[float64]{N: 3, Data: y, Inc: -1})
	assert.Equal(t, []float64{9, 0, 8, 0, 7}, x)
	assert.Equal(t, []float64{3, 2, 1}, y)

	// Swapping twice restores both buffers.
	c1 := []complex64{1, 2i, 3}
	c2 := []complex64{-1, -2i, -3}
	for range 2 {
		Swap(Dense(c1), Dense(c2))
	}
	assert.Equal(t, []complex64{1, 2i, 3}, c1)
	assert.Equal(t, []complex64{-1, -2i, -3}, c2)

	// Empty vectors are a no-op, with any non-zero increment.
	Swap(Vector[float64]{Inc: -3}, Vector[float64]{Inc: 2})
}

func TestSwap_Preconditions(t *testing.T) {
	x := []float64{1, 2, 3}
	require.Panics(t, func() { Swap(Dense(x), Dense(x[:2])) })
	require.Panics(t, func() { Swap(Vector[float64]{N: 3, Data: x}, Dense(x)) })
	require.Panics(t, func() { Swap(Dense(x), Vector[float64]{N: 3, Data: x, Inc: 2}) })
	require.Panics(t, func() { Swap(Vector[float64]{N: 0, Data: x, Inc: 0}, Vector[float64]{Inc: 1}) })
	require.Panics(t, func() { Swap(Vector[float64]{N: 2, Data: x, Inc: math.MaxInt}, Dense(x[:2])) })
	require.Panics(t, func() { Swap(Dense(x[:2]), Vector[float64]{N: 2, Data: x, Inc: math.MinInt}) })
	assert.Equal(t, []float64{1, 2, 3}, x)
}
