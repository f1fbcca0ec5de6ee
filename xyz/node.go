// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"strings"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
)

// Walk return values for [Node.WalkDown].
const (
	// Continue continues the walk into the children of the current node.
	Continue = true

	// Break skips the children of the current node; the walk
	// continues with the next sibling.
	Break = false
)

// Node is one entry in the model scenegraph. The Name is the only link
// between a node and the equipment records of the plant: it can be empty,
// repeated across nodes, or carry several codes such as "3192-3193".
//
// Mesh nodes have a Mesh and one or more Materials; group nodes only
// collect children. The tree is owned from the root: a node's lifetime
// ends when the model it was loaded from is unloaded.
type Node struct {

	// Name is the name of the node as exported from the model.
	Name string

	// Handle is the stable identity of the node, independent of its
	// material and visibility state.
	Handle uuid.UUID `copier:"-"`

	// Parent is the node containing this one, nil for the root.
	Parent *Node `copier:"-"`

	// Children are the ordered child nodes, owned by this node.
	Children []*Node `copier:"-"`

	// Mesh is the renderable geometry; only present on mesh nodes.
	Mesh *Mesh

	// Materials are the current materials of a mesh node.
	Materials []*Material `copier:"-"`

	// MultiMaterial marks a node whose materials are an array,
	// even when the array has a single element.
	MultiMaterial bool

	// Layers is the set of rendering layers the node belongs to.
	Layers Layers
}

// NewNode returns a new node with the given name and a fresh handle.
// If parent is non-nil the node is added as its last child.
func NewNode(parent *Node, name string) *Node {
	n := &Node{Name: name, Handle: uuid.New()}
	n.Layers.Set(LayerPipeline)
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

// NewMeshNode returns a new mesh node with the given bounding box and
// materials, added to parent when non-nil.
func NewMeshNode(parent *Node, name string, box math32.Box3, mats ...*Material) *Node {
	n := NewNode(parent, name)
	n.Mesh = &Mesh{Name: name, BBox: box}
	n.Materials = mats
	return n
}

// AddChild adds kid as the last child of n, detaching it from
// any previous parent.
func (n *Node) AddChild(kid *Node) *Node {
	if kid.Parent != nil {
		kid.Parent.DeleteChild(kid)
	}
	kid.Parent = n
	n.Children = append(n.Children, kid)
	return kid
}

// DeleteChild removes kid from the children of n.
// It returns false if kid is not a child of n.
func (n *Node) DeleteChild(kid *Node) bool {
	for i, k := range n.Children {
		if k == kid {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			kid.Parent = nil
			return true
		}
	}
	return false
}

// IsMesh returns true if the node has renderable geometry.
func (n *Node) IsMesh() bool {
	return n.Mesh != nil
}

// HasMaterial returns true if the node has at least one material.
func (n *Node) HasMaterial() bool {
	return len(n.Materials) > 0
}

// Material returns the first material of the node, or nil.
func (n *Node) Material() *Material {
	if len(n.Materials) == 0 {
		return nil
	}
	return n.Materials[0]
}

// Path returns the slash separated names from the root to this node.
// Unnamed nodes show up as their handle.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent {
		nm := cur.Name
		if nm == "" {
			nm = cur.Handle.String()
		}
		parts = append(parts, nm)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// FirstNamed returns the node itself if it has a name, otherwise
// the nearest ancestor with a name, or nil.
func (n *Node) FirstNamed() *Node {
	cur := n
	for cur != nil && cur.Name == "" {
		cur = cur.Parent
	}
	return cur
}

// WalkDown calls fun on this node and all nodes below it,
// depth-first in pre-order. If fun returns [Break] the children
// of that node are skipped.
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(n) {
		return
	}
	for _, kid := range n.Children {
		kid.WalkDown(fun)
	}
}

// WorldBBox returns the bounding box of all meshes at or below this node.
// The box is empty if there are none.
func (n *Node) WorldBBox() math32.Box3 {
	bb := math32.B3Empty()
	n.WalkDown(func(k *Node) bool {
		if k.Mesh != nil && !k.Mesh.BBox.IsEmpty() {
			bb.ExpandByBox(k.Mesh.BBox)
		}
		return Continue
	})
	return bb
}

func (n *Node) String() string {
	return n.Path()
}
