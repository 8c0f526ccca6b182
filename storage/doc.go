// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk copy of a tree
//
// the contents of an AVL tree (not its shape) are kept in a LevelDB
// database, one record per node:
//
//   key   - the bytes of the avl.StringKey
//   value - the node value, which must be a string or []byte
//
// a save is a single batch write that removes every record whose key
// is no longer in the tree and puts every current key.  Load rebuilds
// a fresh tree by inserting the records in ascending key order.
//
// single key reads go through a go-cache read cache that is also
// refreshed by each save.
package storage
