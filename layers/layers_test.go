// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import (
	"testing"

	"github.com/scopos/scopos3d/xyz"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, xyz.LayerPipeline, Classify("3192-3193", false))
	assert.Equal(t, xyz.LayerPipeline, Classify("3192-3193", true))
	assert.Equal(t, xyz.LayerBackground, Classify("trees*", false))
	assert.Equal(t, xyz.LayerBackground, Classify("ground", true))
	assert.Equal(t, xyz.LayerOther, Classify("ground", false))
	assert.Equal(t, xyz.LayerOther, Classify("", false))
	assert.Equal(t, xyz.LayerBackground, Classify("", true))
}

func testTree() (root, bg, pipe, leaf, other *xyz.Node) {
	root = xyz.NewNode(nil, "model")
	bg = xyz.NewNode(root, "*site")
	pipe = xyz.NewNode(bg, "301-123")
	leaf = xyz.NewNode(pipe, "flange")
	other = xyz.NewNode(root, "building")
	xyz.NewNode(other, "")
	xyz.NewNode(root, "302-456")
	xyz.NewNode(root, " ")
	return
}

func TestAssign(t *testing.T) {
	root, bg, pipe, leaf, other := testTree()
	Assign(root)
	assert.True(t, root.Layers.Has(xyz.LayerOther))
	assert.True(t, bg.Layers.Has(xyz.LayerBackground))
	assert.True(t, pipe.Layers.Has(xyz.LayerPipeline))
	assert.False(t, pipe.Layers.Has(xyz.LayerBackground))
	assert.True(t, leaf.Layers.Has(xyz.LayerBackground))
	assert.True(t, other.Layers.Has(xyz.LayerOther))
	assert.Equal(t, [xyz.LayerN]int{2, 2, 4}, Counts(root))
}

func TestPipelineNames(t *testing.T) {
	root, _, _, _, _ := testTree()
	Assign(root)
	assert.Equal(t, []string{"301-123", "302-456"}, PipelineNames(root))
}

func TestMask(t *testing.T) {
	m := NewMask(true, true)
	assert.Equal(t, "pipeline", m.Layers.String())

	m.Apply(false, false)
	assert.Equal(t, "pipeline|other", m.Layers.String())
	m.Apply(false, true)
	assert.Equal(t, "pipeline|background|other", m.Layers.String())
	m.Apply(true, true)
	assert.Equal(t, "pipeline", m.Layers.String())

	root, bg, pipe, _, other := testTree()
	Assign(root)
	assert.True(t, m.Visible(pipe))
	assert.False(t, m.Visible(bg))
	assert.False(t, m.Visible(other))
}
