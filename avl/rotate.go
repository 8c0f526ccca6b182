// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// rotations only relink nodes, callers set the balance values

// internal: the right child takes the place of pivot, pivot becomes
// its left child; returns the new sub-tree root
func (tree *Tree) rotateLeft(pivot *Node) *Node {
	r := pivot.right
	if nil == r {
		fault.Panicf("rotate left: node %v has no right child", pivot.key)
	}

	pivot.right = r.left
	if nil != r.left {
		r.left.up = pivot
	}
	tree.replaceChild(pivot.up, pivot, r)
	r.left = pivot
	pivot.up = r

	return r
}

// internal: the left child takes the place of pivot, pivot becomes
// its right child; returns the new sub-tree root
func (tree *Tree) rotateRight(pivot *Node) *Node {
	l := pivot.left
	if nil == l {
		fault.Panicf("rotate right: node %v has no left child", pivot.key)
	}

	pivot.left = l.right
	if nil != l.right {
		l.right.up = pivot
	}
	tree.replaceChild(pivot.up, pivot, l)
	l.right = pivot
	pivot.up = l

	return l
}

// internal: repair a node whose balance has reached ±2
//
// returns the new root of the sub-tree and whether that sub-tree is
// now one level lower than it was before the balance reached ±2;
// after an insertion it always is, after a deletion it is not when the
// heavy child was itself balanced
func (tree *Tree) rebalance(p *Node) (*Node, bool) {
	switch p.balance {
	case +2: // left heavy
		p1 := p.left
		switch p1.balance {
		case +1:
			// single LL rotation
			tree.rotateRight(p)
			p.balance = 0
			p1.balance = 0
			return p1, true

		case 0:
			// single LL rotation, height unchanged
			tree.rotateRight(p)
			p.balance = +1
			p1.balance = -1
			return p1, false

		default:
			// double LR rotation
			p2 := p1.right
			tree.rotateLeft(p1)
			tree.rotateRight(p)
			if -1 == p2.balance {
				p1.balance = +1
			} else {
				p1.balance = 0
			}
			if +1 == p2.balance {
				p.balance = -1
			} else {
				p.balance = 0
			}
			p2.balance = 0
			return p2, true
		}

	case -2: // right heavy
		p1 := p.right
		switch p1.balance {
		case -1:
			// single RR rotation
			tree.rotateLeft(p)
			p.balance = 0
			p1.balance = 0
			return p1, true

		case 0:
			// single RR rotation, height unchanged
			tree.rotateLeft(p)
			p.balance = -1
			p1.balance = +1
			return p1, false

		default:
			// double RL rotation
			p2 := p1.left
			tree.rotateRight(p1)
			tree.rotateLeft(p)
			if +1 == p2.balance {
				p1.balance = -1
			} else {
				p1.balance = 0
			}
			if -1 == p2.balance {
				p.balance = +1
			} else {
				p.balance = 0
			}
			p2.balance = 0
			return p2, true
		}
	}

	fault.Panicf("rebalance: node %v has balance: %d", p.key, p.balance)
	return nil, false
}
