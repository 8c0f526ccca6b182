// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/storage/mocks"
)

const (
	logDirectory = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// open a store in a scratch directory
func setupStore(t *testing.T) (*Store, func()) {
	dir, err := ioutil.TempDir("", "storage")
	require.NoError(t, err, "temporary directory")

	s, err := Open(filepath.Join(dir, "test.leveldb"))
	require.NoError(t, err, "open")

	return s, func() {
		_ = s.Close()
		_ = os.RemoveAll(dir)
	}
}

func makeTree(data map[string]interface{}) *avl.Tree {
	tree := avl.New()
	for k, v := range data {
		tree.Insert(avl.StringKey(k), v)
	}
	return tree
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, teardown := setupStore(t)
	defer teardown()

	tree := makeTree(map[string]interface{}{
		"key-one":   "data-one",
		"key-two":   []byte("data-two"),
		"key-three": "data-three",
		"key-four":  "",
	})
	require.NoError(t, s.Save(tree))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, loaded.Check())

	assert.Equal(t, tree.Keys(), loaded.Keys(), "keys differ")
	for p := loaded.First(); nil != p; p = p.Next() {
		expected, err := toBytes(tree.Search(p.Key()).Value())
		require.NoError(t, err)
		assert.Equal(t, expected, p.Value(), "value of: %v", p.Key())
	}
}

func TestSaveRemovesStaleKeys(t *testing.T) {
	s, teardown := setupStore(t)
	defer teardown()

	tree := makeTree(map[string]interface{}{
		"a": "1",
		"b": "2",
		"c": "3",
		"d": "4",
	})
	require.NoError(t, s.Save(tree))

	_, found, err := s.Get("b")
	require.NoError(t, err)
	assert.True(t, found, "b before delete")

	_, ok := tree.Delete(avl.StringKey("b"))
	require.True(t, ok)
	_, ok = tree.Delete(avl.StringKey("d"))
	require.True(t, ok)
	tree.Insert(avl.StringKey("e"), "5")
	tree.Insert(avl.StringKey("a"), "one")
	require.NoError(t, s.Save(tree))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []avl.Item{avl.StringKey("a"), avl.StringKey("c"), avl.StringKey("e")}, loaded.Keys())

	value, found, err := s.Get("a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("one"), value, "overwritten value")

	_, found, err = s.Get("b")
	require.NoError(t, err)
	assert.False(t, found, "deleted key still present")

	_, found, err = s.Get("never")
	require.NoError(t, err)
	assert.False(t, found, "absent key")
}

func TestSaveEmptyTree(t *testing.T) {
	s, teardown := setupStore(t)
	defer teardown()

	require.NoError(t, s.Save(makeTree(map[string]interface{}{"x": "y"})))
	require.NoError(t, s.Save(avl.New()))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty(), "tree not empty")
}

func TestSaveRejectsInvalidNodes(t *testing.T) {
	s, teardown := setupStore(t)
	defer teardown()

	bad := makeTree(map[string]interface{}{
		"good": "value",
		"bad":  42,
	})
	err := s.Save(bad)
	assert.True(t, errors.Is(err, fault.ErrInvalidValueType), "actual: %v", err)

	ints := avl.New()
	ints.Insert(avl.IntKey(1), "one")
	err = s.Save(ints)
	assert.True(t, errors.Is(err, fault.ErrInvalidKeyType), "actual: %v", err)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty(), "partial save happened")
}

func TestSavedValueIsNotShared(t *testing.T) {
	s, teardown := setupStore(t)
	defer teardown()

	value := []byte("original")
	tree := avl.New()
	tree.Insert(avl.StringKey("k"), value)
	require.NoError(t, s.Save(tree))

	copy(value, "modified")
	cached, found, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("original"), cached, "cache aliases the tree value")

	cached[0] = 'X'
	again, _, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again, "cache aliases the returned value")
}

func TestSaveUpdatesCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockAccess := mocks.NewMockDataAccess(ctl)
	mockCache := mocks.NewMockCache(ctl)

	gomock.InOrder(
		mockAccess.EXPECT().Iterator(gomock.Nil()).Return(iterator.NewEmptyIterator(nil)),
		mockAccess.EXPECT().Begin(),
		mockAccess.EXPECT().Put([]byte("k1"), []byte("v1")),
		mockAccess.EXPECT().Write().Return(nil),
		mockCache.EXPECT().Put("k1", []byte("v1")),
	)

	s := newStore(nil, mockAccess, mockCache)
	assert.NoError(t, s.Save(makeTree(map[string]interface{}{"k1": "v1"})))
}

func TestClosedStore(t *testing.T) {
	s, teardown := setupStore(t)
	defer teardown()

	require.NoError(t, s.Close())
	assert.NoError(t, s.Close(), "second close")

	assert.Equal(t, fault.ErrDatabaseClosed, s.Save(avl.New()))

	_, err := s.Load()
	assert.Equal(t, fault.ErrDatabaseClosed, err)

	_, _, err = s.Get("x")
	assert.Equal(t, fault.ErrDatabaseClosed, err)
}

func TestGetServedFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockAccess := mocks.NewMockDataAccess(ctl)
	mockCache := mocks.NewMockCache(ctl)
	mockCache.EXPECT().Get("key").Return([]byte("cached"), true).Times(1)

	s := newStore(nil, mockAccess, mockCache)
	value, found, err := s.Get("key")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("cached"), value)
}

func TestGetMissFillsCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockAccess := mocks.NewMockDataAccess(ctl)
	mockCache := mocks.NewMockCache(ctl)

	gomock.InOrder(
		mockCache.EXPECT().Get("key").Return(nil, false),
		mockAccess.EXPECT().Get([]byte("key")).Return([]byte("stored"), nil),
		mockCache.EXPECT().Put("key", []byte("stored")),
	)

	s := newStore(nil, mockAccess, mockCache)
	value, found, err := s.Get("key")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("stored"), value)
}

func TestGetNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mockAccess := mocks.NewMockDataAccess(ctl)
	mockCache := mocks.NewMockCache(ctl)
	mockCache.EXPECT().Get("key").Return(nil, false)
	mockAccess.EXPECT().Get([]byte("key")).Return(nil, leveldb.ErrNotFound)

	s := newStore(nil, mockAccess, mockCache)
	value, found, err := s.Get("key")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestGetDatabaseError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failure := errors.New("disk failure")
	mockAccess := mocks.NewMockDataAccess(ctl)
	mockCache := mocks.NewMockCache(ctl)
	mockCache.EXPECT().Get("key").Return(nil, false)
	mockAccess.EXPECT().Get([]byte("key")).Return(nil, failure)

	s := newStore(nil, mockAccess, mockCache)
	_, found, err := s.Get("key")
	assert.Equal(t, failure, err)
	assert.False(t, found)
}

func TestSaveWriteFailureLeavesCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failure := errors.New("write failure")
	mockAccess := mocks.NewMockDataAccess(ctl)
	mockCache := mocks.NewMockCache(ctl)

	mockAccess.EXPECT().Iterator(gomock.Nil()).Return(iterator.NewEmptyIterator(nil))
	mockAccess.EXPECT().Begin()
	mockAccess.EXPECT().Put([]byte("k1"), []byte("v1"))
	mockAccess.EXPECT().Put([]byte("k2"), []byte("v2"))
	mockAccess.EXPECT().Write().Return(failure)
	mockCache.EXPECT().Put(gomock.Any(), gomock.Any()).Times(0)
	mockCache.EXPECT().Delete(gomock.Any()).Times(0)

	s := newStore(nil, mockAccess, mockCache)
	tree := makeTree(map[string]interface{}{"k1": "v1", "k2": []byte("v2")})
	assert.Equal(t, failure, s.Save(tree))
}

func TestSaveIteratorFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failure := errors.New("iterator failure")
	mockAccess := mocks.NewMockDataAccess(ctl)
	mockCache := mocks.NewMockCache(ctl)
	mockAccess.EXPECT().Iterator(gomock.Nil()).Return(iterator.NewEmptyIterator(failure))

	s := newStore(nil, mockAccess, mockCache)
	assert.Equal(t, failure, s.Save(makeTree(map[string]interface{}{"k": "v"})))

	mockAccess.EXPECT().Iterator(gomock.Nil()).Return(iterator.NewEmptyIterator(failure))
	tree, err := s.Load()
	assert.Equal(t, failure, err)
	assert.Nil(t, tree)
}
