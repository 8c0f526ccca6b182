// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/avlmap/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify every structural invariant of the tree
//
// key order, parent pointers, stored balance against measured
// heights, balance range and node count; the returned error wraps one
// of the fault.ErrXXX values
func (tree *Tree) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fmt.Errorf("root: %v  %w", tree.root.key, fault.ErrParentLink)
	}
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("nodes: %d  count: %d  %w", n, tree.count, fault.ErrCountMismatch)
	}
	return nil
}

// internal: returns node count and height of a sub-tree whose keys
// must lie strictly between low and high (nil for unbounded)
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, -1, nil
	}
	if nil != low && +1 != p.key.Compare(low) {
		return 0, 0, fmt.Errorf("key: %v  lower bound: %v  %w", p.key, low, fault.ErrOrderViolation)
	}
	if nil != high && -1 != p.key.Compare(high) {
		return 0, 0, fmt.Errorf("key: %v  upper bound: %v  %w", p.key, high, fault.ErrOrderViolation)
	}
	for _, c := range []*Node{p.left, p.right} {
		if nil != c && c.up != p {
			return 0, 0, fmt.Errorf("key: %v  child: %v  %w", p.key, c.key, fault.ErrParentLink)
		}
	}

	nl, hl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	if int(p.balance) != hl-hr {
		return 0, 0, fmt.Errorf("key: %v  balance: %d  heights: %d/%d  %w", p.key, p.balance, hl, hr, fault.ErrBalanceMismatch)
	}
	if p.balance < -1 || p.balance > +1 {
		return 0, 0, fmt.Errorf("key: %v  balance: %d  %w", p.key, p.balance, fault.ErrUnbalanced)
	}

	h := hl
	if hr > h {
		h = hr
	}
	return nl + nr + 1, h + 1, nil
}

// MaximumHeight - the greatest height (in edges) an AVL tree of n
// nodes can have: ⌊1.4405·log₂(n+2) − 0.3277⌋ levels
func MaximumHeight(n int) int {
	if n <= 0 {
		return -1
	}
	levels := math.Floor(1.4405*math.Log2(float64(n)+2) - 0.3277)
	return int(levels) - 1
}
