// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reopens a config file whenever it changes.
type Watcher struct {

	// File is the config file watched.
	File string

	watcher *fsnotify.Watcher
}

// NewWatcher returns a new watcher for the given config file. The
// directory of the file is watched, so that editors that replace the
// file on save are seen.
func NewWatcher(file string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	file = filepath.Clean(file)
	if err := fw.Add(filepath.Dir(file)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{File: file, watcher: fw}, nil
}

// Run calls fun with the newly opened config, or the error opening it,
// on every write or replace of the file, until ctx is done. It closes
// the watcher before returning.
func (cw *Watcher) Run(ctx context.Context, fun func(cfg *Config, err error)) error {
	defer cw.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cw.File {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Open(cw.File)
			if err != nil {
				slog.Warn("config: reload failed", "file", cw.File, "err", err)
			}
			fun(cfg, err)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watch", "file", cw.File, "err", err)
		}
	}
}

// Close stops the watcher.
func (cw *Watcher) Close() error {
	return cw.watcher.Close()
}
