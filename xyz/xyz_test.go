// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *Node {
	root := NewNode(nil, "root")
	g1 := NewNode(root, "")
	NewMeshNode(g1, "3192-3193", math32.B3(0, 0, 0, 1, 1, 1), NewBasicMaterial(color.RGBA{255, 255, 255, 255}))
	NewMeshNode(g1, "301-123", math32.B3(4, 0, -6, 5, 1, -4), NewBasicMaterial(color.RGBA{0, 0, 255, 255}))
	NewMeshNode(root, "tank*", math32.B3(-2, -2, -2, -1, -1, -1), NewStandardMaterial(color.RGBA{0, 255, 0, 255}))
	return root
}

func TestWalkDownOrder(t *testing.T) {
	root := testTree()
	var names []string
	root.WalkDown(func(n *Node) bool {
		names = append(names, n.Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "", "3192-3193", "301-123", "tank*"}, names)

	names = nil
	root.WalkDown(func(n *Node) bool {
		names = append(names, n.Name)
		if n.Name == "" {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "", "tank*"}, names)
}

func TestPathAndFirstNamed(t *testing.T) {
	root := testTree()
	group := root.Children[0]
	mesh := group.Children[0]
	assert.Equal(t, "/root/"+group.Handle.String()+"/3192-3193", mesh.Path())
	assert.Equal(t, mesh, mesh.FirstNamed())
	assert.Equal(t, root, group.FirstNamed())
	assert.Nil(t, NewNode(nil, "").FirstNamed())
}

func TestAddDeleteChild(t *testing.T) {
	root := testTree()
	other := NewNode(nil, "other")
	kid := root.Children[1]
	other.AddChild(kid)
	assert.Len(t, root.Children, 1)
	assert.Equal(t, other, kid.Parent)
	assert.False(t, root.DeleteChild(kid))
	assert.True(t, other.DeleteChild(kid))
	assert.Nil(t, kid.Parent)
}

func TestWorldBBox(t *testing.T) {
	root := testTree()
	bb := root.Children[0].WorldBBox()
	assert.Equal(t, math32.Vec3(0, 0, -6), bb.Min)
	assert.Equal(t, math32.Vec3(5, 1, 1), bb.Max)
	assert.True(t, NewNode(nil, "empty").WorldBBox().IsEmpty())
}

func TestSceneIndex(t *testing.T) {
	root := testTree()
	sc := NewScene(root)
	assert.Equal(t, 5, sc.NumNodes())
	mesh := root.Children[0].Children[1]
	assert.Equal(t, mesh, sc.NodeByHandle(mesh.Handle))
	assert.Len(t, sc.Meshes(), 3)
	require.NoError(t, sc.Validate())

	NewMeshNode(root, "bare", math32.B3(0, 0, 0, 1, 1, 1))
	sc.Reindex()
	assert.Error(t, sc.Validate())
}

func TestRayIntersections(t *testing.T) {
	sc := NewScene(testTree())
	ray := math32.Ray{Origin: math32.Vec3(0.5, 0.5, 10), Dir: math32.Vec3(0, 0, -1)}
	hits := sc.RayIntersections(ray)
	require.Len(t, hits, 1)
	assert.Equal(t, "3192-3193", hits[0].Node.Name)

	// two boxes on the same line: closest first
	NewMeshNode(sc.Root, "far", math32.B3(0, 0, -20, 1, 1, -19), NewBasicMaterial(color.RGBA{}))
	NewMeshNode(sc.Root, "near", math32.B3(0, 0, 5, 1, 1, 6), NewBasicMaterial(color.RGBA{}))
	sc.Reindex()
	hits = sc.RayIntersections(ray)
	require.Len(t, hits, 3)
	assert.Equal(t, "near", hits[0].Node.Name)
	assert.Equal(t, "3192-3193", hits[1].Node.Name)
	assert.Equal(t, "far", hits[2].Node.Name)
}

func TestMaterialCloneDispose(t *testing.T) {
	disposed := 0
	mt := NewStandardMaterial(color.RGBA{10, 20, 30, 255})
	mt.Roughness = 0.4
	mt.Transparent = true
	mt.Opacity = 0.5
	mt.OnDispose = func(*Material) { disposed++ }

	cl := mt.Clone()
	assert.NotSame(t, mt, cl)
	assert.Equal(t, KindStandard, cl.Kind)
	assert.Equal(t, float32(0.4), cl.Roughness)
	assert.True(t, cl.IsTransparent())
	cl.Color = color.RGBA{255, 0, 0, 255}
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, mt.Color)

	cl.Dispose()
	cl.Dispose()
	assert.Equal(t, 1, disposed)
	assert.True(t, cl.IsDisposed())
	assert.False(t, mt.IsDisposed())
}

func TestLayers(t *testing.T) {
	var ls Layers
	ls.Set(LayerBackground)
	assert.True(t, ls.Has(LayerBackground))
	assert.False(t, ls.Has(LayerPipeline))
	ls.Enable(LayerOther)
	assert.Equal(t, "background|other", ls.String())
	ls.SetEnabled(LayerBackground, false)
	assert.Equal(t, "other", ls.String())
	var cam Layers
	cam.Enable(LayerPipeline)
	assert.False(t, ls.Intersects(cam))
}

const testDesc = `
name: KS-17
children:
  - name: group
    children:
      - name: "3192-3193"
        mesh: {min: [0, 0, 0], max: [1, 2, 1]}
        materials:
          - {kind: standard, color: "#808080", roughness: 0.6}
      - name: "3194-3195"
        multi: true
        mesh: {min: [2, 0, 0], max: [3, 1, 1]}
        materials:
          - {kind: basic, color: "#ff0000"}
          - {kind: toon, color: "#00ff00", transparent: true, opacity: 0.5}
`

func TestDecode(t *testing.T) {
	sc, err := Decode(strings.NewReader(testDesc))
	require.NoError(t, err)
	require.NoError(t, sc.Validate())
	assert.Equal(t, "KS-17", sc.Root.Name)
	ms := sc.Meshes()
	require.Len(t, ms, 2)
	assert.Equal(t, KindStandard, ms[0].Material().Kind)
	assert.Equal(t, float32(0.6), ms[0].Material().Roughness)
	assert.Equal(t, math32.Vec3(1, 2, 1), ms[0].Mesh.BBox.Max)
	assert.True(t, ms[1].MultiMaterial)
	require.Len(t, ms[1].Materials, 2)
	assert.Equal(t, KindUnknown, ms[1].Materials[1].Kind)
	assert.Equal(t, float32(0.5), ms[1].Materials[1].Opacity)

	_, err = Decode(strings.NewReader("name: [broken"))
	assert.Error(t, err)
}
