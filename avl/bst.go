// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// plain binary search tree primitives
//
// nothing in this file reads or writes the balance field

// internal: find the node holding key, nil if absent
func (tree *Tree) find(key Item) *Node {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: insertion descent
//
// returns the node already holding key, or else the node a new leaf
// should hang from (nil for an empty tree) and which side it goes on
func (tree *Tree) descend(key Item) (*Node, *Node, bool) {
	var parent *Node
	toLeft := false
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			parent, toLeft = p, true
			p = p.left
		case -1: // p.key < key
			parent, toLeft = p, false
			p = p.right
		default:
			return p, nil, false
		}
	}
	return nil, parent, toLeft
}

// internal: lowest node in a sub-tree
func smallest(p *Node) *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func largest(p *Node) *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order predecessor or nil
func predecessor(p *Node) *Node {
	if nil != p.left {
		return largest(p.left)
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if up.right == p {
			return up
		}
	}
	return nil
}

// internal: in-order successor or nil
func successor(p *Node) *Node {
	if nil != p.right {
		return smallest(p.right)
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if up.left == p {
			return up
		}
	}
	return nil
}

// internal: store n in the left or right slot of parent, or in the
// root slot when parent is nil; does not touch n.up
func (tree *Tree) setChild(parent *Node, toLeft bool, n *Node) {
	switch {
	case nil == parent:
		tree.root = n
	case toLeft:
		parent.left = n
	default:
		parent.right = n
	}
}

// internal: make the slot currently owning old own n instead
func (tree *Tree) replaceChild(parent *Node, old *Node, n *Node) {
	switch {
	case nil == parent:
		if tree.root != old {
			fault.Panicf("replace child: %v has no parent but is not the root", old.key)
		}
		tree.root = n
	case parent.left == old:
		parent.left = n
	case parent.right == old:
		parent.right = n
	default:
		fault.Panicf("replace child: %v is not a child of %v", old.key, parent.key)
	}
	if nil != n {
		n.up = parent
	}
}

// internal: exchange the tree positions of two distinct nodes
//
// every pointer into or out of either position is relinked, so any
// other holder of a *Node stays valid; keys, values and any extra
// per-node data stay with their node
func (tree *Tree) nodeSwap(a *Node, b *Node) {
	if a == b {
		return
	}
	// adjacent case is handled with a as the parent
	if b == a.up {
		a, b = b, a
	}

	aUp, aLeft, aRight := a.up, a.left, a.right
	bUp, bLeft, bRight := b.up, b.left, b.right
	aToLeft := nil != aUp && aUp.left == a
	bToLeft := nil != bUp && bUp.left == b

	if bUp == a {
		b.up = aUp
		if aLeft == b {
			b.left = a
			b.right = aRight
		} else {
			b.left = aLeft
			b.right = a
		}
		a.up = b
		a.left = bLeft
		a.right = bRight
		tree.setChild(aUp, aToLeft, b)
	} else {
		a.up, a.left, a.right = bUp, bLeft, bRight
		b.up, b.left, b.right = aUp, aLeft, aRight
		tree.setChild(bUp, bToLeft, a)
		tree.setChild(aUp, aToLeft, b)
	}

	for _, p := range []*Node{a, b} {
		if nil != p.left {
			p.left.up = p
		}
		if nil != p.right {
			p.right.up = p
		}
	}
}

// internal: release every node to the pool
func (tree *Tree) clear() {
	p := tree.root
	for nil != p {
		// descend to a leaf, then free it and climb
		switch {
		case nil != p.left:
			p = p.left
		case nil != p.right:
			p = p.right
		default:
			up := p.up
			if nil != up {
				if up.left == p {
					up.left = nil
				} else {
					up.right = nil
				}
			}
			freeNode(p)
			p = up
		}
	}
	tree.root = nil
	tree.count = 0
}
