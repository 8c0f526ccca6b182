// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avlmap/fault"
)

// global data for allocator, shared by all trees
var pool struct {
	sync.Mutex
	free       *Node // linked list of reclaimed nodes through the up field
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the free list
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}) *Node {
	pool.Lock()
	defer pool.Unlock()

	if nil == pool.free {
		if 0 != pool.freeNodes {
			fault.Panicf("node pool corrupt: free count: %d with empty list", pool.freeNodes)
		}
		pool.totalNodes += 1
		return &Node{
			key:   key,
			value: value,
		}
	}
	p := pool.free
	pool.free = p.up
	pool.freeNodes -= 1

	p.up = nil // ensure freelist pointer is cleared
	p.key = key
	p.value = value
	return p
}

// reclaim a node that is no longer linked into any tree
func freeNode(node *Node) {
	pool.Lock()
	defer pool.Unlock()

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.balance = 0

	node.up = pool.free // use as free list pointer
	pool.free = node
	pool.freeNodes += 1
}

// allocator counters: nodes ever created and nodes waiting for reuse
func poolStatistics() (int, int) {
	pool.Lock()
	defer pool.Unlock()
	return pool.totalNodes, pool.freeNodes
}
