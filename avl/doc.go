// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The package is in two layers.  bst.go holds the plain binary search
// tree primitives (descent, find, predecessor/successor, position
// swap) which never look at the balance field.  The AVL layer
// (insert.go, delete.go, rotate.go) uses those primitives and keeps
// each node's balance, height(left) - height(right), within -1…+1 by
// walking up the parent pointers after each change.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also delete does not
// copy data around so that nodes other than the deleted one keep
// their address and can be held across deletions.
package avl
