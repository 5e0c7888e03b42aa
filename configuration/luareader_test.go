// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type workload struct {
	Rounds   int    `gluamapper:"rounds"`
	KeyRange int    `gluamapper:"key_range"`
	Label    string `gluamapper:"label"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Workload      workload          `gluamapper:"workload"`
	Levels        map[string]string `gluamapper:"levels"`
}

const script = `
local M = {}
M.data_directory = arg["dir"] or "."
M.workload = {
    rounds = 3,
    key_range = 10 * 1000,
    label = "from " .. arg[0],
}
M.levels = {
    main = "info",
    stress = "debug",
}
return M
`

func TestParseConfigurationFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(script), 0600))

	conf := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &conf, map[string]string{"dir": "/data"})
	require.NoError(t, err)

	assert.Equal(t, "/data", conf.DataDirectory)
	assert.Equal(t, 3, conf.Workload.Rounds)
	assert.Equal(t, 10000, conf.Workload.KeyRange)
	assert.Equal(t, "from "+fileName, conf.Workload.Label)
	assert.Equal(t, map[string]string{"main": "info", "stress": "debug"}, conf.Levels)
}

func TestParseConfigurationString(t *testing.T) {
	conf := testConfiguration{}
	err := configuration.ParseConfigurationString("inline", script, &conf, nil)
	require.NoError(t, err)

	assert.Equal(t, ".", conf.DataDirectory)
	assert.Equal(t, "from inline", conf.Workload.Label)
}

func TestParseConfigurationErrors(t *testing.T) {
	conf := testConfiguration{}

	err := configuration.ParseConfigurationString("bad", script, conf, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	var nilConf *testConfiguration
	err = configuration.ParseConfigurationString("bad", script, nilConf, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	n := 0
	err = configuration.ParseConfigurationString("bad", script, &n, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationString("bad", `x = 1`, &conf, nil)
	assert.Equal(t, fault.ErrNotFinalTable, err)

	err = configuration.ParseConfigurationString("bad", `return {`, &conf, nil)
	assert.Error(t, err, "syntax error not reported")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &conf, nil)
	assert.Error(t, err, "missing file not reported")
}
