// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
//
// left and right own their sub-trees; up is only a back reference
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int8        // height(left) - height(right): -1, 0, +1
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Balance - height of the left sub-tree minus height of the right
func (p *Node) Balance() int {
	return int(p.balance)
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}

// GetChildrenByDepth - returns all descendants at a specific depth
// below this node, in key order
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	if 0 == depth {
		return []*Node{p}
	}
	nodes := []*Node{}
	if nil != p.left {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
