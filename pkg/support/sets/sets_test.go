// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := Make[string](10)
	assert.Len(t, s, 0)

	s.Insert("x", "y")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("x"))
	assert.False(t, s.Has("z"))

	s2 := Make[string]()
	s2.Insert("y", "y", "z")
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has("z"))

	delete(s2, "z")
	assert.False(t, s2.Has("z"))
}

func TestDuplicates(t *testing.T) {
	assert.Nil(t, Duplicates([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "a", "b"}, Duplicates([]string{"a", "b", "a", "a", "b", "c"}))
}
