// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/scopos/scopos3d/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hoverColor  = color.RGBA{0xff, 0x60, 0x00, 0xff}
	selectColor = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

func meshNode(name string, mats ...*xyz.Material) *xyz.Node {
	return xyz.NewMeshNode(nil, name, math32.B3(0, 0, 0, 1, 1, 1), mats...)
}

// trackDisposal returns a counter of dispose calls on m and on its clones.
func trackDisposal(m *xyz.Material) *int {
	n := new(int)
	m.OnDispose = func(*xyz.Material) { *n++ }
	return n
}

func TestApplyClearRoundTrip(t *testing.T) {
	for bk := Hover; bk < BucketsN; bk++ {
		orig := xyz.NewStandardMaterial(color.RGBA{10, 20, 30, 255})
		orig.Roughness = 0.4
		want := *orig
		n := meshNode("3192-3193", orig)
		tr := NewTracker()

		require.True(t, tr.Apply(n, hoverColor, bk))
		assert.True(t, tr.Has(n, bk))
		assert.NotSame(t, orig, n.Material())

		require.True(t, tr.Clear(n, bk))
		assert.Same(t, orig, n.Material())
		assert.Equal(t, want.Color, n.Material().Color)
		assert.Equal(t, want.Roughness, n.Material().Roughness)
		assert.False(t, tr.Has(n, bk))
		assert.Equal(t, 0, tr.Len(bk))
		assert.False(t, orig.IsDisposed())
	}
}

func TestApplyIdempotent(t *testing.T) {
	orig := xyz.NewBasicMaterial(color.RGBA{1, 2, 3, 255})
	n := meshNode("a", orig)
	tr := NewTracker()
	assert.True(t, tr.Apply(n, hoverColor, Hover))
	first := n.Material()
	v := tr.Version()
	assert.False(t, tr.Apply(n, selectColor, Hover))
	assert.Same(t, first, n.Material())
	assert.Equal(t, v, tr.Version())
	assert.Equal(t, []*xyz.Material{orig}, tr.Original(n, Hover))
	assert.Equal(t, 1, tr.Len(Hover))
}

func TestClearDisposesSynthesized(t *testing.T) {
	orig := xyz.NewBasicMaterial(color.RGBA{1, 2, 3, 255})
	disposed := trackDisposal(orig)
	n := meshNode("a", orig)
	tr := NewTracker()
	tr.Apply(n, hoverColor, Hover)
	synth := n.Material()
	tr.Clear(n, Hover)
	assert.True(t, synth.IsDisposed())
	assert.Equal(t, 1, *disposed)
	assert.False(t, orig.IsDisposed())

	// clearing again is a no-op
	assert.False(t, tr.Clear(n, Hover))
	assert.Equal(t, 1, *disposed)
}

func TestNoMaterials(t *testing.T) {
	n := meshNode("bare")
	tr := NewTracker()
	assert.False(t, tr.Apply(n, hoverColor, Hover))
	assert.False(t, tr.Has(n, Hover))
	assert.False(t, tr.Clear(n, Hover))
	assert.False(t, tr.Apply(nil, hoverColor, Hover))
}

func TestNilNode(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.Has(nil, Select))
	assert.False(t, tr.Clear(nil, Select))
	assert.Nil(t, tr.Original(nil, Select))
	assert.Nil(t, tr.Original(meshNode("none"), Select))
}

func TestTintKinds(t *testing.T) {
	basic := xyz.NewBasicMaterial(color.RGBA{1, 1, 1, 255})
	basic.Transparent = true
	basic.Opacity = 0.5
	tb := Tint(basic, hoverColor)
	assert.Equal(t, xyz.KindBasic, tb.Kind)
	assert.Equal(t, hoverColor, tb.Color)
	assert.True(t, tb.IsTransparent())
	assert.Equal(t, float32(0.5), tb.Opacity)

	std := xyz.NewStandardMaterial(color.RGBA{1, 1, 1, 255})
	std.Roughness = 0.25
	ts := Tint(std, color.RGBA{100, 200, 50, 255})
	assert.Equal(t, xyz.KindStandard, ts.Kind)
	assert.Equal(t, color.RGBA{30, 60, 15, 255}, ts.Emissive)
	assert.Equal(t, float32(TintEmissiveIntensity), ts.EmissiveIntensity)
	assert.Equal(t, float32(0.25), ts.Roughness)

	unk := &xyz.Material{Kind: xyz.KindUnknown}
	tu := Tint(unk, hoverColor)
	assert.Equal(t, xyz.KindBasic, tu.Kind)
	assert.Equal(t, float32(FallbackOpacity), tu.Opacity)
	assert.True(t, tu.Transparent)

	assert.Equal(t, hoverColor, Tint(nil, hoverColor).Color)
}

func TestMultiMaterial(t *testing.T) {
	m1 := xyz.NewBasicMaterial(color.RGBA{1, 0, 0, 255})
	m2 := &xyz.Material{Kind: xyz.KindUnknown}
	n := meshNode("multi", m1, m2)
	n.MultiMaterial = true
	tr := NewTracker()
	tr.Apply(n, selectColor, Select)
	require.Len(t, n.Materials, 2)
	s1, s2 := n.Materials[0], n.Materials[1]
	assert.Equal(t, selectColor, s1.Color)
	assert.Equal(t, selectColor, s2.Color)

	tr.Clear(n, Select)
	assert.Equal(t, []*xyz.Material{m1, m2}, n.Materials)
	assert.True(t, n.MultiMaterial)
	assert.True(t, s1.IsDisposed())
	assert.True(t, s2.IsDisposed())

	// single element arrays stay arrays
	single := meshNode("single", m1)
	single.MultiMaterial = true
	tr.Apply(single, selectColor, Select)
	tr.Clear(single, Select)
	assert.Equal(t, []*xyz.Material{m1}, single.Materials)
}

func TestFlat(t *testing.T) {
	orig := xyz.NewStandardMaterial(color.RGBA{1, 1, 1, 255})
	n := meshNode("301-123", orig)
	tr := NewTracker()
	tr.ApplyFlat(n, color.RGBA{0x44, 0x44, 0x44, 0xff}, 0.3, FilterBlock)
	assert.Equal(t, xyz.KindBasic, n.Material().Kind)
	assert.Equal(t, float32(0.3), n.Material().Opacity)
	tr.Clear(n, FilterBlock)
	assert.Same(t, orig, n.Material())
}

func TestStackedClearInOrder(t *testing.T) {
	orig := xyz.NewBasicMaterial(color.RGBA{1, 2, 3, 255})
	n := meshNode("a", orig)
	tr := NewTracker()
	tr.ApplyFlat(n, color.RGBA{0xff, 0, 0, 0xff}, 0.7, FilterHighlight)
	filt := n.Material()
	tr.Apply(n, selectColor, Select)
	assert.Equal(t, []*xyz.Material{filt}, tr.Original(n, Select))

	tr.Clear(n, Select)
	assert.Same(t, filt, n.Material())
	assert.False(t, filt.IsDisposed())
	tr.Clear(n, FilterHighlight)
	assert.Same(t, orig, n.Material())
	assert.True(t, filt.IsDisposed())
}

func TestStackedClearOutOfOrder(t *testing.T) {
	orig := xyz.NewBasicMaterial(color.RGBA{1, 2, 3, 255})
	n := meshNode("a", orig)
	tr := NewTracker()
	tr.ApplyFlat(n, color.RGBA{0x44, 0x44, 0x44, 0xff}, 0.3, FilterBlock)
	filt := n.Material()
	tr.Apply(n, hoverColor, Hover)
	hov := n.Material()

	// the lower override goes first: the hover stays visible
	tr.Clear(n, FilterBlock)
	assert.Same(t, hov, n.Material())
	assert.True(t, filt.IsDisposed())
	assert.Equal(t, []*xyz.Material{orig}, tr.Original(n, Hover))

	tr.Clear(n, Hover)
	assert.Same(t, orig, n.Material())
	assert.Equal(t, 0, tr.Total())
}

func TestClearAll(t *testing.T) {
	tr := NewTracker()
	var nodes []*xyz.Node
	var origs []*xyz.Material
	for _, name := range []string{"a", "b", "c", "d"} {
		m := xyz.NewBasicMaterial(color.RGBA{9, 9, 9, 255})
		origs = append(origs, m)
		nodes = append(nodes, meshNode(name, m))
	}
	tr.ApplyFlat(nodes[0], color.RGBA{}, 0.7, FilterHighlight)
	tr.ApplyFlat(nodes[1], color.RGBA{}, 0.3, FilterBlock)
	tr.Apply(nodes[1], hoverColor, Hover)
	tr.Apply(nodes[2], selectColor, Select)
	tr.ApplyFlat(nodes[3], color.RGBA{}, 0.3, FilterBlock)
	tr.Apply(nodes[3], selectColor, Select)
	assert.Equal(t, 6, tr.Total())
	assert.Len(t, tr.Nodes(FilterBlock), 2)

	tr.ClearBucket(FilterBlock)
	assert.Equal(t, 0, tr.Len(FilterBlock))
	assert.Equal(t, selectColor, nodes[3].Material().Color)

	tr.ClearAll()
	assert.Equal(t, 0, tr.Total())
	for i, n := range nodes {
		assert.Same(t, origs[i], n.Material())
	}
}

func TestBucketNames(t *testing.T) {
	assert.Equal(t, "filter-block", FilterBlock.String())
	assert.Equal(t, "9", Buckets(9).String())
}
