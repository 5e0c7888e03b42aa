// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "./log/../run", "/data/run"},
		{"/data", "/var/log", "/var/log"},
		{"/data/", "/var//log/", "/var/log"},
	}
	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "item: %d", i)
	}
}

func TestEnsureDirectory(t *testing.T) {
	base := t.TempDir()

	nested := filepath.Join(base, "a", "b")
	require.NoError(t, util.EnsureDirectory(nested))
	assert.True(t, util.EnsureFileExists(nested))

	// already present is fine
	require.NoError(t, util.EnsureDirectory(nested))

	file := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	assert.Equal(t, fault.ErrNotADirectory, util.EnsureDirectory(file))

	assert.False(t, util.EnsureFileExists(filepath.Join(base, "missing")))
}
