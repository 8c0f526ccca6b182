// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// Store - a database holding the contents of one tree
type Store struct {
	sync.RWMutex

	log    *logger.L
	db     *leveldb.DB
	access DataAccess
	cache  Cache
	closed bool
}

// Open - open or create the named LevelDB database
func Open(name string) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	s := newStore(db, newDA(db), newCache())
	s.log.Infof("opened: %q", name)
	return s, nil
}

func newStore(db *leveldb.DB, access DataAccess, c Cache) *Store {
	return &Store{
		log:    logger.New("storage"),
		db:     db,
		access: access,
		cache:  c,
	}
}

// Close - release the database, the store cannot be used afterwards
func (s *Store) Close() error {
	s.Lock()
	defer s.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.cache.Flush()
	s.log.Info("closed")
	s.log.Flush()

	if nil == s.db {
		return nil
	}
	return s.db.Close()
}

type record struct {
	key   string
	value []byte
}

// Save - replace the database contents by the contents of the tree
//
// every key must be an avl.StringKey and every value a string or
// []byte; nothing is written if any node fails these checks
func (s *Store) Save(tree *avl.Tree) error {
	s.Lock()
	defer s.Unlock()

	if s.closed {
		return fault.ErrDatabaseClosed
	}

	current := make([]record, 0, tree.Count())
	var err error
	tree.Walk(func(n *avl.Node) bool {
		key, ok := n.Key().(avl.StringKey)
		if !ok {
			err = fmt.Errorf("key: %v: %w", n.Key(), fault.ErrInvalidKeyType)
			return false
		}
		value, e := toBytes(n.Value())
		if nil != e {
			err = fmt.Errorf("key: %q: %w", key, e)
			return false
		}
		current = append(current, record{key: string(key), value: value})
		return true
	})
	if nil != err {
		return err
	}

	stale := make([]string, 0)
	iter := s.access.Iterator(nil)
	for iter.Next() {
		key := string(iter.Key())
		if !tree.Has(avl.StringKey(key)) {
			stale = append(stale, key)
		}
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}

	s.access.Begin()
	for _, key := range stale {
		s.access.Delete([]byte(key))
	}
	for _, r := range current {
		s.access.Put([]byte(r.key), r.value)
	}
	if err := s.access.Write(); nil != err {
		s.log.Errorf("save failed: %s", err)
		return err
	}

	for _, key := range stale {
		s.cache.Delete(key)
	}
	for _, r := range current {
		s.cache.Put(r.key, r.value)
	}

	s.log.Infof("saved: %d  removed: %d", len(current), len(stale))
	return nil
}

// Load - build a new tree from the database contents
//
// values are returned as []byte
func (s *Store) Load() (*avl.Tree, error) {
	s.RLock()
	defer s.RUnlock()

	if s.closed {
		return nil, fault.ErrDatabaseClosed
	}

	tree := avl.New()
	iter := s.access.Iterator(nil)
	for iter.Next() {
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())
		tree.Insert(avl.StringKey(iter.Key()), value)
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		tree.Clear()
		return nil, err
	}

	s.log.Debugf("loaded: %d", tree.Count())
	return tree, nil
}

// Get - fetch a single value, true if the key was present
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.RLock()
	defer s.RUnlock()

	if s.closed {
		return nil, false, fault.ErrDatabaseClosed
	}

	if value, found := s.cache.Get(key); found {
		return value, true, nil
	}

	value, err := s.access.Get([]byte(key))
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	} else if nil != err {
		return nil, false, err
	}

	s.cache.Put(key, value)
	return value, true, nil
}

func toBytes(v interface{}) ([]byte, error) {
	switch value := v.(type) {
	case []byte:
		return value, nil
	case string:
		return []byte(value), nil
	default:
		return nil, fault.ErrInvalidValueType
	}
}
