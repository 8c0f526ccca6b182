// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log writer to drain before panicking
const panicDelay = 100 * time.Millisecond

// hold a logger channel
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise; until then messages go to
// standard output
func Initialise() error {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	format, arguments = withCaller(2, format, arguments)
	internalCriticalf(format, arguments...)
}

// Panicf - log a critical message then panic
//
// used when a structural invariant is found broken; there is no
// recovery, the caller's data is already inconsistent
func Panicf(format string, arguments ...interface{}) {
	format, arguments = withCaller(2, format, arguments)
	message := fmt.Sprintf(format, arguments...)
	internalCriticalf("%s", message)
	time.Sleep(panicDelay)
	panic(message)
}

// prefix format with file:line of the selected stack frame
func withCaller(skip int, format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return format, arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	return "(%q:%d) " + format, append(a, arguments...)
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	m.Lock()
	defer m.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
