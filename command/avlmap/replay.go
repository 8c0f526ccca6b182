// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// the storage operations needed by a replay
type treeStore interface {
	Save(*avl.Tree) error
	Load() (*avl.Tree, error)
}

type replayer struct {
	log      *logger.L
	store    treeStore
	out      io.Writer
	tree     *avl.Tree
	verbose  bool
	quiet    bool
	validate bool
}

func newReplayer(store treeStore, out io.Writer, verbose bool, quiet bool, validate bool) *replayer {
	return &replayer{
		log:      logger.New("replay"),
		store:    store,
		out:      out,
		verbose:  verbose,
		quiet:    quiet,
		validate: validate,
	}
}

// load the starting tree and apply the scripts in order
func (r *replayer) replay(scripts []string) error {
	tree, err := r.store.Load()
	if nil != err {
		return err
	}
	if nil != r.tree {
		r.tree.Clear()
	}
	r.tree = tree
	r.log.Infof("start: %d nodes", tree.Count())

	for _, fileName := range scripts {
		instructions, err := readScript(fileName)
		if nil != err {
			r.log.Errorf("script: %q  error: %s", fileName, err)
			return err
		}
		if err := r.run(instructions); nil != err {
			return err
		}
	}
	r.log.Infof("finish: %d nodes  height: %d", r.tree.Count(), r.tree.Height())
	return nil
}

// apply a list of instructions to the current tree
func (r *replayer) run(instructions []instruction) error {
	if nil == r.tree {
		r.tree = avl.New()
	}

	for _, i := range instructions {
		if err := r.execute(i); nil != err {
			r.log.Errorf("%s: %s", i, err)
			return fmt.Errorf("%s: %w", i, err)
		}
	}
	return nil
}

func (r *replayer) execute(i instruction) error {
	key := avl.StringKey(i.key)

	switch i.op {
	case opInsert:
		if r.tree.Insert(key, i.value) {
			r.printf("insert: %s\n", key)
		} else {
			r.printf("replace: %s\n", key)
		}
		r.log.Debugf("%s: insert: %q → %q", i, key, i.value)

	case opDelete:
		if value, ok := r.tree.Delete(key); ok {
			r.printf("delete: %s → %v\n", key, value)
		} else {
			r.printf("delete: %s not found\n", key)
		}
		r.log.Debugf("%s: delete: %q", i, key)

	case opFind:
		if node := r.tree.Search(key); nil != node {
			r.printf("find: %s → %v\n", key, node.Value())
		} else {
			r.printf("find: %s not found\n", key)
		}
		return nil

	case opPrint:
		if !r.quiet {
			r.tree.Print(r.out, r.verbose)
		}
		return nil

	case opCheck:
		if err := r.tree.Check(); nil != err {
			return err
		}
		count := r.tree.Count()
		r.printf("check: ok  count: %d  height: %d  bound: %d\n", count, r.tree.Height(), avl.MaximumHeight(count))
		return nil

	case opSave:
		if err := r.store.Save(r.tree); nil != err {
			return err
		}
		r.printf("save: %d\n", r.tree.Count())
		return nil

	case opClear:
		r.tree.Clear()
		r.printf("clear\n")

	default:
		r.log.Criticalf("%s: unknown opcode: %d", i, i.op)
		return fault.ErrInvalidCommand
	}

	// only mutations reach here
	if r.validate {
		return r.tree.Check()
	}
	return nil
}

func (r *replayer) printf(format string, arguments ...interface{}) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, format, arguments...)
}
