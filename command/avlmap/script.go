// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

type opcode int

const (
	opInsert opcode = iota
	opDelete
	opFind
	opPrint
	opCheck
	opSave
	opClear
)

// argument limits for each script command, -1 is unlimited
var commands = map[string]struct {
	op      opcode
	minArgs int
	maxArgs int
}{
	"insert": {opInsert, 2, -1},
	"delete": {opDelete, 1, 1},
	"find":   {opFind, 1, 1},
	"print":  {opPrint, 0, 0},
	"check":  {opCheck, 0, 0},
	"save":   {opSave, 0, 0},
	"clear":  {opClear, 0, 0},
}

// one decoded script line
type instruction struct {
	source string
	line   int
	op     opcode
	key    string
	value  string
}

func (i instruction) String() string {
	return fmt.Sprintf("%s:%d", i.source, i.line)
}

// read a script file
func readScript(fileName string) ([]instruction, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return parseScript(fileName, f)
}

// decode every line of a script, stops at the first bad line
func parseScript(source string, r io.Reader) ([]instruction, error) {
	instructions := make([]instruction, 0, 64)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1

		text := strings.TrimSpace(scanner.Text())
		if "" == text || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		name := strings.ToLower(fields[0])
		arguments := fields[1:]

		c, ok := commands[name]
		if !ok {
			return nil, fmt.Errorf("%s:%d: %q: %w", source, line, fields[0], fault.ErrInvalidCommand)
		}
		if len(arguments) < c.minArgs || (c.maxArgs >= 0 && len(arguments) > c.maxArgs) {
			return nil, fmt.Errorf("%s:%d: %s: %w", source, line, name, fault.ErrInvalidArgumentCount)
		}

		i := instruction{
			source: source,
			line:   line,
			op:     c.op,
		}
		if len(arguments) > 0 {
			i.key = arguments[0]
		}
		if len(arguments) > 1 {
			i.value = strings.Join(arguments[1:], " ")
		}
		instructions = append(instructions, i)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return instructions, nil
}
