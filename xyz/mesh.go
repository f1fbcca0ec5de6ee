// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/core/math32"

// Mesh is the renderable geometry of a mesh node as far as interaction
// is concerned. Vertex data stays with the renderer; the engine only
// needs the bounding box for picking and camera framing.
type Mesh struct {

	// Name is the name of the mesh in the loaded model.
	Name string

	// BBox is the bounding box of the mesh in scene coordinates.
	BBox math32.Box3
}
