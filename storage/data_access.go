// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

//go:generate mockgen -source=data_access.go -destination=mocks/data_access.go -package=mocks

// DataAccess - batched writes and direct reads on a database
type DataAccess interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Write() error
	Get([]byte) ([]byte, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

type dataAccessImpl struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func newDA(db *leveldb.DB) DataAccess {
	return &dataAccessImpl{
		db:    db,
		batch: new(leveldb.Batch),
	}
}

func (d *dataAccessImpl) Begin() {
	d.batch.Reset()
}

func (d *dataAccessImpl) Put(key []byte, value []byte) {
	d.batch.Put(key, value)
}

func (d *dataAccessImpl) Delete(key []byte) {
	d.batch.Delete(key)
}

// Write - commit the batch and start a new one
func (d *dataAccessImpl) Write() error {
	err := d.db.Write(d.batch, nil)
	d.Begin()
	return err
}

func (d *dataAccessImpl) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *dataAccessImpl) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
