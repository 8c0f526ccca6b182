// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 when the receiver is less than, equal to
// or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// StringKey - a string key ordered byte-wise
type StringKey string

// Compare - string comparison for AVL interface
func (s StringKey) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringKey)))
}

// String - the key as a plain string
func (s StringKey) String() string {
	return string(s)
}

// IntKey - an integer key
type IntKey int

// Compare - integer comparison for AVL interface
func (i IntKey) Compare(x interface{}) int {
	j := x.(IntKey)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}
