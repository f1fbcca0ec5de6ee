// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "strings"

// Layer is one of the rendering categories a node can belong to.
type Layer int32 //enums:enum -trim-prefix Layer -transform lower

const (
	// LayerPipeline holds the pipeline equipment nodes, the only ones
	// that can be hovered and selected.
	LayerPipeline Layer = iota

	// LayerBackground holds the surroundings of the plant.
	LayerBackground

	// LayerOther holds everything else.
	LayerOther
)

// Layers is a bit set of [Layer] values. It is used both for the
// membership of a node and for the layers a camera renders.
type Layers uint32

// Has returns true if the given layer is in the set.
func (ls Layers) Has(ly Layer) bool {
	return ls&(1<<uint32(ly)) != 0
}

// Intersects returns true if the two sets share a layer.
func (ls Layers) Intersects(other Layers) bool {
	return ls&other != 0
}

// Set makes the given layer the only member of the set.
func (ls *Layers) Set(ly Layer) {
	*ls = 1 << uint32(ly)
}

// Enable adds the given layer to the set.
func (ls *Layers) Enable(ly Layer) {
	*ls |= 1 << uint32(ly)
}

// Disable removes the given layer from the set.
func (ls *Layers) Disable(ly Layer) {
	*ls &^= 1 << uint32(ly)
}

// SetEnabled enables or disables the given layer.
func (ls *Layers) SetEnabled(ly Layer, on bool) {
	if on {
		ls.Enable(ly)
	} else {
		ls.Disable(ly)
	}
}

func (ls Layers) String() string {
	var names []string
	for ly := Layer(0); ly < LayerN; ly++ {
		if ls.Has(ly) {
			names = append(names, ly.String())
		}
	}
	return strings.Join(names, "|")
}
