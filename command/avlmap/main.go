// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--quiet] --config-file=FILE [--watch] [replay|check|print|dump] [script...]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  %s error: %s", program, configurationFile, errorClass(err), err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with %s error: %s", program, errorClass(err), err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	command := "replay"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	store, err := storage.Open(masterConfiguration.Database)
	if nil != err {
		log.Criticalf("database: %q  error: %s", masterConfiguration.Database, err)
		exitwithstatus.Message("%s: open database: %q  error: %s", program, masterConfiguration.Database, err)
	}
	defer store.Close()

	if "replay" != command {
		if err := processTreeCommand(command, store, os.Stdout, verbose); nil != err {
			exitwithstatus.Message("%s: %s: %s error: %s", program, command, errorClass(err), err)
		}
		return
	}

	scripts := masterConfiguration.Scripts
	if len(arguments) > 0 {
		scripts = arguments
	}
	if 0 == len(scripts) {
		exitwithstatus.Message("%s: no scripts to replay", program)
	}

	r := newReplayer(store, os.Stdout, verbose, quiet, masterConfiguration.Validate)
	if err := r.replay(scripts); nil != err {
		exitwithstatus.Message("%s: replay: %s error: %s", program, errorClass(err), err)
	}

	if 0 == len(options["watch"]) && !masterConfiguration.Watch {
		return
	}

	channels := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(scripts, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	// wait for CTRL-C SIGINT or SIGTERM or a script removal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop
		case <-channels.remove:
			log.Warn("script removed, stop watching")
			break loop
		case <-channels.change:
			log.Info("script changed, replay")
			if err := r.replay(scripts); nil != err {
				log.Errorf("replay: %s error: %s", errorClass(err), err)
				fmt.Fprintf(os.Stderr, "%s: replay: %s error: %s\n", program, errorClass(err), err)
			}
		}
	}
}
