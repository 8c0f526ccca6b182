// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// commands that only read the stored tree
func processTreeCommand(command string, store treeStore, out io.Writer, verbose bool) error {
	tree, err := store.Load()
	if nil != err {
		return err
	}
	defer tree.Clear()

	switch command {
	case "check":
		if !tree.CheckUp() {
			return fault.ErrParentLink
		}
		if err := tree.Check(); nil != err {
			return err
		}
		count := tree.Count()
		fmt.Fprintf(out, "ok  count: %d  height: %d  bound: %d\n", count, tree.Height(), avl.MaximumHeight(count))

	case "print":
		depth := tree.Print(out, verbose)
		if verbose {
			fmt.Fprintf(out, "depth: %d\n", depth)
		}

	case "dump":
		for p := tree.First(); nil != p; p = p.Next() {
			fmt.Fprintf(out, "%s: %q\n", p.Key(), p.Value())
		}

	default:
		return fmt.Errorf("%q: %w", command, fault.ErrInvalidCommand)
	}
	return nil
}

// class of an error for command-line messages
func errorClass(err error) string {
	switch {
	case fault.IsErrExists(err):
		return "exists"
	case fault.IsErrInvalid(err):
		return "invalid"
	case fault.IsErrNotFound(err):
		return "not found"
	case fault.IsErrProcess(err):
		return "process"
	default:
		return "system"
	}
}
