// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value
// of an existing node with the same key
//
// returns true if a node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	match, parent, toLeft := tree.descend(key)
	if nil != match {
		match.value = value
		return false
	}

	p := newNode(key, value)
	p.up = parent
	tree.setChild(parent, toLeft, p)
	tree.count += 1

	tree.insertFixup(p)
	return true
}

// internal: walk up from a new leaf adjusting balances
//
// stops when a sub-tree did not grow, or after one rebalance, which
// always restores the sub-tree to its height before the insert
func (tree *Tree) insertFixup(p *Node) {
	for up := p.up; nil != up; p, up = up, up.up {
		if up.left == p {
			up.balance += 1
		} else {
			up.balance -= 1
		}
		switch up.balance {
		case 0:
			return
		case +1, -1:
			// this sub-tree grew, continue up
		default:
			tree.rebalance(up)
			return
		}
	}
}
