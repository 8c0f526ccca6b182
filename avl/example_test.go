// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/avlmap/avl"
)

func Example() {
	tree := avl.New()
	for _, k := range []int{10, 20, 30} {
		tree.Insert(avl.IntKey(k), k*k)
	}
	tree.Insert(avl.IntKey(20), "twenty")

	fmt.Println("root:", tree.Root().Key(), "count:", tree.Count())
	for p := tree.First(); nil != p; p = p.Next() {
		fmt.Println(p.Key(), p.Value())
	}

	value, ok := tree.Delete(avl.IntKey(10))
	fmt.Println("deleted:", value, ok)
	_, ok = tree.Delete(avl.IntKey(10))
	fmt.Println("again:", ok)

	// Output:
	// root: 20 count: 3
	// 10 100
	// 20 twenty
	// 30 900
	// deleted: 100 true
	// again: false
}

func ExampleTree_Print() {
	tree := avl.New()
	for _, k := range []string{"b", "a", "c"} {
		tree.Insert(avl.StringKey(k), nil)
	}
	depth := tree.Print(os.Stdout, false)
	fmt.Println("depth:", depth)

	// Output:
	//        /------+ c ^b
	// |------+ b ^<nil>
	//        \------+ a ^b
	// depth: 2
}

func ExampleTree_Print_data() {
	tree := avl.New()
	for _, k := range []int{2, 1, 3, 4} {
		tree.Insert(avl.IntKey(k), 10*k)
	}
	depth := tree.Print(os.Stdout, true)
	fmt.Println("depth:", depth)

	// Output:
	//               /------+ 4 → 40 ^3 +0/[-1,-1]
	//        /------+ 3 → 30 ^2 -1/[-1,0]
	// |------+ 2 → 20 ^<nil> -1/[0,1]
	//        \------+ 1 → 10 ^2 +0/[-1,-1]
	// depth: 3
}
