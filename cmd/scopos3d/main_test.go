// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
name: KS-17
children:
  - name: "Группа АВО газа №9"
    children:
      - name: "3192-3193"
        mesh: {min: [0, 0, 0], max: [1, 1, 1]}
        materials:
          - {kind: standard, color: "#808080"}
      - name: "3194-3195"
        mesh: {min: [2, 0, 0], max: [3, 1, 1]}
        materials:
          - {kind: basic, color: "#808080"}
  - name: "forest*"
    mesh: {min: [0, -1, 0], max: [9, 0, 9]}
    materials:
      - {kind: basic, color: "#00ff00"}
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetErr(&b)
	rootCmd.SetArgs(args)
	cfgFile = ""
	logLevel = "warn"
	err := rootCmd.Execute()
	return b.String(), err
}

func TestInspect(t *testing.T) {
	scene := writeTemp(t, "scene.yaml", testScene)
	out, err := run(t, "inspect", "--names", scene)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes")
	assert.Regexp(t, `pipeline\s+2`, out)
	assert.Regexp(t, `background\s+1`, out)
	assert.Contains(t, out, "3194-3195\n")
}

func TestInspectMissing(t *testing.T) {
	_, err := run(t, "inspect", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	scene := writeTemp(t, "scene.yaml", testScene)
	out, err := run(t, "resolve", scene, "3192", "compressor")
	require.NoError(t, err)
	assert.Regexp(t, `3192\s+substring\s+/KS-17/Группа АВО газа №9/3192-3193\s+false`, out)
	assert.Regexp(t, `compressor\s+miss\s+-`, out)
}

func TestFilter(t *testing.T) {
	scene := writeTemp(t, "scene.yaml", testScene)
	out, err := run(t, "filter", "--codes", "3192-3193", scene, "overdue")
	require.NoError(t, err)
	assert.Regexp(t, `3192-3193\s+highlight`, out)
	assert.Regexp(t, `3194-3195\s+block`, out)
	assert.Regexp(t, `forest\*\s+block`, out)

	_, err = run(t, "filter", "--codes", "3192-3193", scene, "broken")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "[Highlight]")
	assert.Contains(t, out, "#ff6000")

	file := writeTemp(t, "scopos3d.toml", "[Highlight]\nHoverColor = \"#00ff00\"\n")
	out, err = run(t, "config", "--config", file)
	require.NoError(t, err)
	assert.Contains(t, out, "#00ff00")
}

func TestDetailsFallback(t *testing.T) {
	file := writeTemp(t, "scopos3d.toml", "[Registry]\nBaseURL = \"http://127.0.0.1:1\"\nRetryMax = 0\n")
	out, err := run(t, "details", "--config", file, "3192-3193")
	require.NoError(t, err)
	assert.Regexp(t, `model code\s+3192-3193`, out)
	assert.Regexp(t, `code\s+1001215593`, out)
	assert.Contains(t, out, "Группа АВО газа №9")
}

func TestWatchNeedsConfig(t *testing.T) {
	_, err := run(t, "watch")
	assert.ErrorContains(t, err, "--config")
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "config", "--loglevel", "loud")
	assert.Error(t, err)
	_, err = run(t, "config", "--loglevel", "warn")
	assert.NoError(t, err)
}
