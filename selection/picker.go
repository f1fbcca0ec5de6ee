// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"cogentcore.org/core/math32"
	"github.com/scopos/scopos3d/events"
	"github.com/scopos/scopos3d/layers"
	"github.com/scopos/scopos3d/xyz"
)

// Picker returns the node under a pointer position, or nil.
type Picker interface {
	Pick(p events.Pointer) *xyz.Node
}

// Projector projects a surface position to a ray in world space.
type Projector interface {
	Ray(x, y float32) math32.Ray
}

// RayPicker picks along the ray of the pointer: of the meshes it crosses,
// from closest to furthest, the first one whose nearest named node is in
// the pipeline layer wins, and that named node is returned.
type RayPicker struct {

	// Projector gives the pointer ray.
	Projector Projector

	// Scene is the scene picked from.
	Scene *xyz.Scene

	// Mask, if set, skips the meshes the camera does not show.
	Mask *layers.Mask
}

func (rp *RayPicker) Pick(p events.Pointer) *xyz.Node {
	if rp.Scene == nil || rp.Projector == nil {
		return nil
	}
	ray := rp.Projector.Ray(p.Where.X, p.Where.Y)
	for _, np := range rp.Scene.RayIntersections(ray) {
		if rp.Mask != nil && !rp.Mask.Visible(np.Node) {
			continue
		}
		named := np.Node.FirstNamed()
		if named != nil && named.Layers.Has(xyz.LayerPipeline) {
			return named
		}
	}
	return nil
}

// PickerFunc is a function that implements [Picker].
type PickerFunc func(p events.Pointer) *xyz.Node

func (pf PickerFunc) Pick(p events.Pointer) *xyz.Node {
	return pf(p)
}
