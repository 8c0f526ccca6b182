// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	watchTimeout = 5 * time.Second
)

func waitFor(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(watchTimeout):
		return false
	}
}

func TestFileWatcher(t *testing.T) {
	dir, cleanup := makeDirectory(t)
	defer cleanup()

	script := writeFile(t, dir, "script.txt", "insert a 1\n")
	other := writeFile(t, dir, "other.txt", "")

	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher([]string{script}, logger.New("test"), channels)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, ioutil.WriteFile(other, []byte("ignored"), 0600))
	require.NoError(t, ioutil.WriteFile(script, []byte("insert b 2\n"), 0600))
	assert.True(t, waitFor(channels.change), "no change event")

	require.NoError(t, os.Remove(script))
	assert.True(t, waitFor(channels.remove), "no remove event")
}

func TestFileWatcherMissingFile(t *testing.T) {
	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	_, err := newFileWatcher([]string{"/nonexistent/script.txt"}, logger.New("test"), channels)
	assert.Error(t, err)
}
