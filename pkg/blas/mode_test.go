// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	assert.Equal(t, CheckNaN, Mode(0))
	assert.Equal(t, "QuietNaN", QuietNaN.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
	assert.False(t, Mode(7).IsAMode())
	assert.Equal(t, []string{"CheckNaN", "QuietNaN"}, ModeStrings())

	for _, name := range []string{"QuietNaN", "quietnan", "QUIETNAN"} {
		mode, err := ModeString(name)
		require.NoError(t, err)
		assert.Equal(t, QuietNaN, mode)
	}
	_, err := ModeString("loud")
	require.Error(t, err)

	text, err := CheckNaN.MarshalText()
	require.NoError(t, err)
	var mode Mode
	require.NoError(t, mode.UnmarshalText(text))
	assert.Equal(t, CheckNaN, mode)
	require.Error(t, mode.UnmarshalText([]byte("?")))
}
