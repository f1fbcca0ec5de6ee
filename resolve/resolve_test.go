// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolve

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/scopos/scopos3d/xyz"
	"github.com/stretchr/testify/assert"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func testScene() *xyz.Scene {
	root := xyz.NewNode(nil, "model")
	grp := xyz.NewNode(root, "Группа АВО газа №9")
	bx := math32.B3(0, 0, 0, 1, 1, 1)
	mat := xyz.NewBasicMaterial(color.RGBA{200, 200, 200, 255})
	xyz.NewMeshNode(grp, "", bx, mat)
	xyz.NewMeshNode(grp, "3192-3193", bx, mat)
	xyz.NewMeshNode(grp, "3194-3195", bx, mat)
	xyz.NewMeshNode(root, "Pump", bx, mat)
	xyz.NewMeshNode(root, "pump", bx, mat)
	xyz.NewMeshNode(root, "tank_77_north", bx, mat)
	return xyz.NewScene(root)
}

func newTestResolver() (*Resolver, *clock) {
	rs := New(testScene())
	ck := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rs.Now = ck.Now
	return rs, ck
}

func TestSubstringComposite(t *testing.T) {
	rs, _ := newTestResolver()
	n, rule := rs.Lookup("3192")
	if assert.NotNil(t, n) {
		assert.Equal(t, "3192-3193", n.Name)
	}
	assert.Equal(t, Substring, rule)
}

func TestExactOutranksSubstring(t *testing.T) {
	rs, _ := newTestResolver()
	n, rule := rs.Lookup("PUMP")
	assert.Equal(t, Exact, rule)
	assert.Equal(t, "Pump", n.Name)

	// key contains name
	n, rule = rs.Lookup("unit 3194-3195 east")
	assert.Equal(t, Substring, rule)
	assert.Equal(t, "3194-3195", n.Name)
}

func TestNumericFragments(t *testing.T) {
	rs, _ := newTestResolver()
	n, rule := rs.Lookup("T-77")
	assert.Equal(t, Numeric, rule)
	assert.Equal(t, "tank_77_north", n.Name)

	// first digit run has no match, second does
	n, rule = rs.Lookup("x555/3195")
	assert.Equal(t, Numeric, rule)
	assert.Equal(t, "3194-3195", n.Name)
}

func TestMiss(t *testing.T) {
	rs, _ := newTestResolver()
	n, rule := rs.Lookup("compressor")
	assert.Nil(t, n)
	assert.Equal(t, Miss, rule)
	assert.Nil(t, rs.Resolve(""))
	assert.Equal(t, 1, rs.CacheLen())
}

func TestCacheTTL(t *testing.T) {
	rs, ck := newTestResolver()
	assert.Nil(t, rs.Resolve("compressor"))
	xyz.NewMeshNode(rs.Scene.Root, "compressor", math32.B3(0, 0, 0, 1, 1, 1), xyz.NewBasicMaterial(color.RGBA{}))

	// memoized miss within the TTL
	ck.now = ck.now.Add(30 * time.Second)
	assert.Nil(t, rs.Resolve("compressor"))

	ck.now = ck.now.Add(31 * time.Second)
	n := rs.Resolve("compressor")
	if assert.NotNil(t, n) {
		assert.Equal(t, "compressor", n.Name)
	}
}

func TestDeterministic(t *testing.T) {
	rs, _ := newTestResolver()
	first := rs.Resolve("319")
	for range 5 {
		assert.Same(t, first, rs.Resolve("319"))
	}
	rs.Reset()
	assert.Equal(t, 0, rs.CacheLen())
	assert.Same(t, first, rs.Resolve("319"))
}

func TestSetScene(t *testing.T) {
	rs, _ := newTestResolver()
	assert.NotNil(t, rs.Resolve("3192"))
	rs.SetScene(xyz.NewScene(xyz.NewNode(nil, "empty")))
	assert.Nil(t, rs.Resolve("3192"))
}

func TestAmbiguous(t *testing.T) {
	rs, _ := newTestResolver()
	assert.True(t, rs.Ambiguous("319"))
	assert.False(t, rs.Ambiguous("3192"))
	assert.False(t, rs.Ambiguous("compressor"))
	assert.True(t, rs.Ambiguous("pump"))
	assert.False(t, rs.Ambiguous("tank_77_north"))
}
