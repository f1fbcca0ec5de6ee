// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is the model scenegraph the interaction engine works on:
// nodes with stable handles, materials, layer membership and bounding
// boxes, plus ray picking and decoding of scene descriptions.
package xyz

//go:generate core generate

import (
	"fmt"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
)

// Scene is a loaded model: the root of the node tree plus an index
// of nodes by handle. The tree must not be restructured while the
// engine runs; call [Scene.Reindex] after any structural change.
type Scene struct {

	// Root is the top-level node of the model.
	Root *Node

	// NeedsRender is set whenever something the renderer shows changed.
	NeedsRender bool

	byHandle map[uuid.UUID]*Node
}

// NewScene returns a new scene for the given root, with all nodes indexed.
func NewScene(root *Node) *Scene {
	sc := &Scene{Root: root}
	sc.Reindex()
	return sc
}

// Reindex rebuilds the handle index from the current tree.
// Nodes without a handle are given a new one.
func (sc *Scene) Reindex() {
	sc.byHandle = make(map[uuid.UUID]*Node)
	if sc.Root == nil {
		return
	}
	sc.Root.WalkDown(func(n *Node) bool {
		if n.Handle == uuid.Nil {
			n.Handle = uuid.New()
		}
		sc.byHandle[n.Handle] = n
		return Continue
	})
}

// NodeByHandle returns the node with the given handle, or nil.
func (sc *Scene) NodeByHandle(h uuid.UUID) *Node {
	return sc.byHandle[h]
}

// NumNodes returns the number of nodes in the scene.
func (sc *Scene) NumNodes() int {
	return len(sc.byHandle)
}

// WalkDown walks the whole scene from the root, see [Node.WalkDown].
func (sc *Scene) WalkDown(fun func(n *Node) bool) {
	if sc.Root == nil {
		return
	}
	sc.Root.WalkDown(fun)
}

// Meshes returns all mesh nodes in traversal order.
func (sc *Scene) Meshes() []*Node {
	var ms []*Node
	sc.WalkDown(func(n *Node) bool {
		if n.IsMesh() {
			ms = append(ms, n)
		}
		return Continue
	})
	return ms
}

// SetNeedsRender sets [Scene.NeedsRender] to true.
func (sc *Scene) SetNeedsRender() {
	sc.NeedsRender = true
}

// Validate checks the scene for structural problems:
// duplicate handles, broken parent links and mesh nodes without materials.
func (sc *Scene) Validate() error {
	if sc.Root == nil {
		return fmt.Errorf("xyz.Scene: no root node")
	}
	seen := make(map[uuid.UUID]bool)
	var err error
	sc.Root.WalkDown(func(n *Node) bool {
		if err != nil {
			return Break
		}
		if seen[n.Handle] {
			err = fmt.Errorf("xyz.Scene: duplicate handle %v at %s", n.Handle, n.Path())
			return Break
		}
		seen[n.Handle] = true
		for _, kid := range n.Children {
			if kid.Parent != n {
				err = fmt.Errorf("xyz.Scene: %s has wrong parent link", kid.Path())
				return Break
			}
		}
		if n.IsMesh() && !n.HasMaterial() {
			err = fmt.Errorf("xyz.Scene: mesh %s has no material", n.Path())
			return Break
		}
		return Continue
	})
	return err
}

// NodePoint contains a mesh node and the point on its bounding box
// where a ray hit it.
type NodePoint struct {
	Node  *Node
	Point math32.Vector3
}

// RayIntersections returns the mesh nodes whose bounding box
// intersects with the given ray, with the point of intersection.
// Results are sorted from closest to furthest; ties keep traversal order.
func (sc *Scene) RayIntersections(ray math32.Ray) []NodePoint {
	var np []NodePoint
	sc.WalkDown(func(n *Node) bool {
		if !n.IsMesh() {
			return Continue
		}
		pt, has := ray.IntersectBox(n.Mesh.BBox)
		if has {
			np = append(np, NodePoint{Node: n, Point: pt})
		}
		return Continue
	})
	sort.SliceStable(np, func(i, j int) bool {
		di := np[i].Point.Sub(ray.Origin).Length()
		dj := np[j].Point.Sub(ray.Origin).Length()
		return di < dj
	})
	return np
}
