// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equalpaths - check whether every leaf of a binary tree is at
// the same depth
package equalpaths

// Node - a plain binary tree node
type Node struct {
	Key   int
	Left  *Node
	Right *Node
}

// EqualPaths - true if all root to leaf paths have the same length
//
// an empty tree is trivially true
func EqualPaths(root *Node) bool {
	if nil == root {
		return true
	}
	leafDepth := -1
	return equalPaths(root, 0, &leafDepth)
}

// internal: leafDepth is set by the first leaf found
func equalPaths(p *Node, depth int, leafDepth *int) bool {
	if nil == p.Left && nil == p.Right {
		if -1 == *leafDepth {
			*leafDepth = depth
			return true
		}
		return depth == *leafDepth
	}
	if nil != p.Left && !equalPaths(p.Left, depth+1, leafDepth) {
		return false
	}
	if nil != p.Right && !equalPaths(p.Right, depth+1, leafDepth) {
		return false
	}
	return true
}
