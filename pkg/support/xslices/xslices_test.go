// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package xslices

import (
	"flag"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	square := func(x int) int { return x * x }
	in := make([]int, 1000)
	for ii := range in {
		in[ii] = ii - 500
	}
	want := Map(in, square)
	assert.Equal(t, 250000, want[0])
	assert.Equal(t, want, MapParallel(in, square))
	assert.Empty(t, MapParallel([]int{}, square))
	assert.Equal(t, []int{9}, MapParallel([]int{3}, square))
}

func TestFlag(t *testing.T) {
	parser := func(s string) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		return v, errors.Wrapf(err, "invalid value %q", s)
	}
	values := Flag("test_xslices_ints", []int{1}, "test flag", parser)
	assert.Equal(t, []int{1}, *values)

	f := flag.Lookup("test_xslices_ints")
	require.NotNil(t, f)
	assert.Equal(t, "1", f.DefValue)
	require.NoError(t, f.Value.Set("3, 5,7"))
	assert.Equal(t, []int{3, 5, 7}, *values)
	assert.Equal(t, "3,5,7", f.Value.String())
	require.NoError(t, f.Value.Set(""))
	assert.Empty(t, *values)
	require.Error(t, f.Value.Set("1,x"))
}
