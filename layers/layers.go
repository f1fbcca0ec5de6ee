// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layers partitions the nodes of a plant model into the pipeline,
// background and other rendering layers, and controls which of them
// the camera shows.
package layers

import (
	"strings"
	"unicode"

	"github.com/scopos/scopos3d/xyz"
)

// BackgroundMarker in a node name puts the node and all of its
// descendants in the background.
const BackgroundMarker = "*"

// Classify returns the layer of a node with the given name: names starting
// with a digit are pipeline equipment, background is inherited or marked
// with [BackgroundMarker], and everything else is other.
func Classify(name string, inheritedBackground bool) xyz.Layer {
	if name != "" && unicode.IsDigit(rune(name[0])) {
		return xyz.LayerPipeline
	}
	if inheritedBackground || strings.Contains(name, BackgroundMarker) {
		return xyz.LayerBackground
	}
	return xyz.LayerOther
}

// Assign sets the layer of n and all of its descendants with [Classify].
// The background flag passed down is set by a marked name even on a
// pipeline node, so its descendants that are not pipeline equipment
// are background.
func Assign(n *xyz.Node) {
	assign(n, false)
}

func assign(n *xyz.Node, inheritedBackground bool) {
	n.Layers.Set(Classify(n.Name, inheritedBackground))
	bg := inheritedBackground || strings.Contains(n.Name, BackgroundMarker)
	for _, kid := range n.Children {
		assign(kid, bg)
	}
}

// PipelineNames returns the non-blank names of all nodes in the
// pipeline layer, in traversal order.
func PipelineNames(n *xyz.Node) []string {
	var names []string
	n.WalkDown(func(n *xyz.Node) bool {
		if n.Layers.Has(xyz.LayerPipeline) && strings.TrimSpace(n.Name) != "" {
			names = append(names, n.Name)
		}
		return xyz.Continue
	})
	return names
}

// Counts returns the number of nodes in each layer.
func Counts(n *xyz.Node) [xyz.LayerN]int {
	var counts [xyz.LayerN]int
	n.WalkDown(func(n *xyz.Node) bool {
		for ly := xyz.Layer(0); ly < xyz.LayerN; ly++ {
			if n.Layers.Has(ly) {
				counts[ly]++
			}
		}
		return xyz.Continue
	})
	return counts
}

// Mask is the set of layers the camera renders.
// Changing it never touches the nodes.
type Mask struct {
	Layers xyz.Layers
}

// NewMask returns the mask for the given modes.
func NewMask(pipelineMode, showBackground bool) *Mask {
	m := &Mask{}
	m.Apply(pipelineMode, showBackground)
	return m
}

// Apply sets the mask: pipeline mode shows only the pipeline layer,
// otherwise pipeline and other are shown, plus background when
// showBackground is set.
func (m *Mask) Apply(pipelineMode, showBackground bool) {
	m.Layers.Enable(xyz.LayerPipeline)
	if pipelineMode {
		m.Layers.Disable(xyz.LayerBackground)
		m.Layers.Disable(xyz.LayerOther)
		return
	}
	m.Layers.Enable(xyz.LayerOther)
	m.Layers.SetEnabled(xyz.LayerBackground, showBackground)
}

// Visible returns true if the node is in a layer of the mask.
func (m *Mask) Visible(n *xyz.Node) bool {
	return m.Layers.Intersects(n.Layers)
}
