// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/tomlx"
	"github.com/pelletier/go-toml/v2"
)

// Open returns the default config overlaid with the given TOML file
// and the files it includes. Includes are opened first, deepest first,
// so that each includer overwrites the settings it includes.
func Open(file string) (*Config, error) {
	cfg := New()
	if err := cfg.Open(file); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Open overlays the config with the given TOML file and its includes.
func (cfg *Config) Open(file string) error {
	dir := filepath.Dir(file)
	if err := tomlx.Open(cfg, file); err != nil {
		return err
	}
	incs, err := cfg.includeStack(dir, file)
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for _, inc := range incs {
		if err := tomlx.OpenFiles(cfg, fsx.FindFilesOnPaths([]string{dir}, inc)...); err != nil {
			return err
		}
	}
	// reopen the original so that it wins
	if err := tomlx.Open(cfg, file); err != nil {
		return err
	}
	cfg.Includes = incs
	return nil
}

// includeStack returns the files included by cfg, directly or not, in the
// order they are applied: each file after the files it includes, and of
// the includes of one file the first listed last, so that it wins.
// A file included more than once is applied once. It fails on include
// cycles and on includes that cannot be found.
func (cfg *Config) includeStack(dir, file string) ([]string, error) {
	var stack []string
	done := make(map[string]bool)
	var visit func(incs, chain []string) error
	visit = func(incs, chain []string) error {
		for i := len(incs) - 1; i >= 0; i-- {
			inc := incs[i]
			path := filepath.Join(dir, inc)
			if slices.Contains(chain, path) {
				return fmt.Errorf("config: include cycle at %q", inc)
			}
			if done[path] {
				continue
			}
			if len(fsx.FindFilesOnPaths([]string{dir}, inc)) == 0 {
				return fmt.Errorf("config: include %q not found in %q", inc, dir)
			}
			sub := &Config{}
			if err := tomlx.Open(sub, path); err != nil {
				return err
			}
			if err := visit(sub.Includes, append(slices.Clip(chain), path)); err != nil {
				return err
			}
			done[path] = true
			stack = append(stack, inc)
		}
		return nil
	}
	err := visit(cfg.Includes, []string{filepath.Clean(file)})
	return stack, err
}

// Save saves the config to the given TOML file.
func (cfg *Config) Save(file string) error {
	return tomlx.Save(cfg, file)
}

// Write writes the config as TOML.
func (cfg *Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(cfg)
}
