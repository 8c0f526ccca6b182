// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return smallest(tree.root)
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return largest(tree.root)
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node) Next() *Node {
	return successor(p)
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node) Prev() *Node {
	return predecessor(p)
}

// Walk - call f for each node in ascending key order until f returns false
//
// f must not insert or delete
func (tree *Tree) Walk(f func(*Node) bool) {
	for p := tree.First(); nil != p; p = p.Next() {
		if !f(p) {
			return
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	tree.Walk(func(p *Node) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}
