// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.csv")
	exists, err := FileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("a\n1\n"), 0o644))
	exists, err = FileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReplaceTilde(t *testing.T) {
	got, err := ReplaceTilde("/tmp/x.mat")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.mat", got)

	usr, err := user.Current()
	if err != nil {
		t.Skipf("no current user: %v", err)
	}
	got, err = ReplaceTilde("~/data/x.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(usr.HomeDir, "data/x.csv"), got)
	got, err = ReplaceTilde("~")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(usr.HomeDir), got)

	_, err = ReplaceTilde("~no-such-user-gblas/x.csv")
	require.Error(t, err)
}
