// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or nil and false if
// the key was not in the tree, in which case the tree is unchanged
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	q := tree.find(key)
	if nil == q {
		return nil, false
	}
	value := q.value // preserve the value part

	// move q to the position of its predecessor, which has no
	// right child, so q then has at most one child
	if nil != q.left && nil != q.right {
		tree.swapNodes(q, predecessor(q))
	}

	child := q.left
	if nil == child {
		child = q.right
	}
	parent := q.up
	fromLeft := nil != parent && parent.left == q
	tree.replaceChild(parent, q, child)
	tree.count -= 1
	freeNode(q) // return deleted node to pool

	tree.deleteFixup(parent, fromLeft)
	return value, true
}

// internal: position swap that keeps each balance with its position
func (tree *Tree) swapNodes(a *Node, b *Node) {
	tree.nodeSwap(a, b)
	a.balance, b.balance = b.balance, a.balance
}

// internal: walk up from the parent of a removed node
//
// fromLeft tells which side of p lost one level of height; a shrunk
// sub-tree may unbalance every ancestor up to the root
func (tree *Tree) deleteFixup(p *Node, fromLeft bool) {
	for nil != p {
		if fromLeft {
			p.balance -= 1
		} else {
			p.balance += 1
		}
		switch p.balance {
		case +1, -1:
			return
		case 0:
			// this sub-tree shrank, continue up
		default:
			root, shrunk := tree.rebalance(p)
			if !shrunk {
				return
			}
			p = root
		}
		up := p.up
		fromLeft = nil != up && up.left == p
		p = up
	}
}
