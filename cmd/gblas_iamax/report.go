// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gblas/pkg/blas"
	"github.com/gomlx/gblas/pkg/core/dtypes"
	"github.com/gomlx/gblas/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/gblas/pkg/core/scalar"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// scanResult is the outcome of an Iamax scan over one input vector.
type scanResult struct {
	name      string
	dtype     dtypes.DType
	x         any // Converted vector, a slice of dtype.
	n         int // Number of logical elements at the configured stride.
	index     int
	value     string
	magnitude string
	numNaN    int
	numInf    int
}

// logicalLen is the number of elements visited in a buffer of the given length.
func logicalLen(length, inc int) int {
	if length <= 0 {
		return 0
	}
	return (length-1)/inc + 1
}

func scan(v namedVector, cfg *config) (*scanResult, error) {
	x, err := toDType(v, cfg.dtype)
	if err != nil {
		return nil, err
	}
	r := &scanResult{name: v.Name, dtype: cfg.dtype, x: x, n: logicalLen(v.Len(), cfg.inc)}

	// x is a supported slice and inc is positive: the dispatch can't fail.
	r.index = must.M1(blas.IamaxAny(r.n, x, cfg.inc, cfg.mode))

	// Statistics are taken on the converted values, which may have overflowed or lost precision.
	switch x := x.(type) {
	case []float16.Float16:
		summarize[float16.Float16, float32](r, scalar.Float16, x, cfg.inc)
	case []bfloat16.BFloat16:
		summarize[bfloat16.BFloat16, float32](r, scalar.BFloat16, x, cfg.inc)
	case []float32:
		summarize[float32, float32](r, scalar.Float32, x, cfg.inc)
	case []float64:
		summarize[float64, float64](r, scalar.Float64, x, cfg.inc)
	case []complex64:
		summarize[complex64, float32](r, scalar.Complex64, x, cfg.inc)
	case []complex128:
		summarize[complex128, float64](r, scalar.Complex128, x, cfg.inc)
	default:
		return nil, errors.Errorf("vector %q: no capability for %T", v.Name, x)
	}
	return r, nil
}

// summarize fills in the NaN and Inf counts and the selected element of r.
func summarize[T, R any](r *scanResult, c scalar.Capability[T, R], x []T, inc int) {
	for ii := 0; ii < r.n; ii++ {
		switch value := x[ii*inc]; {
		case c.IsNaN(value):
			r.numNaN++
		case c.IsInf(value):
			r.numInf++
		}
	}
	if r.n > 0 {
		element := x[r.index*inc]
		r.value = fmt.Sprintf("%v", element)
		r.magnitude = fmt.Sprintf("%v", c.Abs1(element))
	}
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

// reportRows are the (key, value) rows of the report of r.
func reportRows(r *scanResult) [][]string {
	rows := [][]string{
		{"vector", r.name},
		{"length", humanize.Comma(int64(r.n))},
	}
	if r.n == 0 {
		return append(rows, []string{"index", "0 (empty)"})
	}
	return append(rows,
		[]string{"index", humanize.Comma(int64(r.index))},
		[]string{"value", r.value},
		[]string{fmt.Sprintf("|re|+|im| (%s)", r.dtype.RealDType()), r.magnitude},
		[]string{"# NaN", humanize.Comma(int64(r.numNaN))},
		[]string{"# Inf", humanize.Comma(int64(r.numInf))},
	)
}

func reportTable(r *scanResult) *lgtable.Table {
	table := newPlainTable()
	for _, row := range reportRows(r) {
		table.Row(row...)
	}
	return table
}
