// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

// signals a change or removal of any of a set of script files
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channels watcherChannel
	files    map[string]struct{}
}

func newFileWatcher(targetFiles []string, log *logger.L, channels watcherChannel) (*fileWatcher, error) {
	files := make(map[string]struct{})
	for _, f := range targetFiles {
		filePath, err := filepath.Abs(filepath.Clean(f))
		if nil != err {
			log.Errorf("parse file %s error: %s", f, err)
			return nil, err
		}
		if _, err := os.Stat(filePath); nil != err {
			log.Errorf("file: %s  error: %s", filePath, err)
			return nil, err
		}
		files[filePath] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		channels: channels,
		files:    files,
	}, nil
}

// Start - begin watching, events are delivered until Stop
func (w *fileWatcher) Start() error {
	for f := range w.files {
		if err := w.watcher.Add(f); nil != err {
			w.log.Errorf("watcher add: %s  error: %s, abort", f, err)
			return err
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Infof("file event: %v", event)

				if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
					w.log.Infof("file %s not watched, discard event", event.Name)
					continue
				}

				if watcherEventFileRemove(event) {
					w.log.Errorf("file %s removed", event.Name)
					w.sendEvent(w.channels.remove, "remove")
					continue
				}

				if watcherEventFileChange(event) {
					w.log.Info("sending script change event…")
					w.sendEvent(w.channels.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the watcher
func (w *fileWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if len(ch) < cap(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
