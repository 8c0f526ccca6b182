// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

type logging struct {
	Directory string            `gluamapper:"directory"`
	Count     int               `gluamapper:"count"`
	Levels    map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	DataDirectory string   `gluamapper:"data_directory"`
	Database      string   `gluamapper:"database"`
	Scripts       []string `gluamapper:"scripts"`
	Watch         bool     `gluamapper:"watch"`
	Logging       logging  `gluamapper:"logging"`
}

func writeConfig(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err)
	fileName := filepath.Join(dir, "test.conf")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(text), 0600))
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeConfig(t, `
local M = {}
M.data_directory = "."
M.database = "tree-" .. "store"
M.scripts = { "a.txt", "b.txt" }
M.watch = true
M.logging = {
    directory = "log",
    levels = {
        DEFAULT = "info",
        replay = "debug",
    },
}
return M
`)
	defer cleanup()

	config := &testConfiguration{
		Database: "default",
		Logging: logging{
			Count: 10,
		},
	}
	err := configuration.ParseConfigurationFile(fileName, config)
	require.NoError(t, err)

	assert.Equal(t, ".", config.DataDirectory)
	assert.Equal(t, "tree-store", config.Database)
	assert.Equal(t, []string{"a.txt", "b.txt"}, config.Scripts)
	assert.True(t, config.Watch)
	assert.Equal(t, "log", config.Logging.Directory)
	assert.Equal(t, 10, config.Logging.Count, "default was not kept")
	assert.Equal(t, "debug", config.Logging.Levels["replay"])
}

func TestParseConfigurationArg(t *testing.T) {
	fileName, cleanup := writeConfig(t, `return { database = arg[0] }`)
	defer cleanup()

	config := &testConfiguration{}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, config))
	assert.Equal(t, fileName, config.Database)
}

func TestParseConfigurationErrors(t *testing.T) {
	fileName, cleanup := writeConfig(t, `return 42`)
	defer cleanup()

	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrConfigurationNotTable, err)

	err = configuration.ParseConfigurationFile(fileName, *config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	n := 3
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationFile(fileName+".missing", config)
	assert.Error(t, err)

	bad, cleanupBad := writeConfig(t, `return {`)
	defer cleanupBad()
	err = configuration.ParseConfigurationFile(bad, config)
	assert.Error(t, err)
}
