// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	return tree.find(key)
}

// Has - true if the key is present
func (tree *Tree) Has(key Item) bool {
	return nil != tree.find(key)
}
