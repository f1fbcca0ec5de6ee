// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight overrides the materials of scene nodes to show hover,
// selection and filter state, and restores the original materials exactly.
//
// The [Tracker] is the sole owner of every material it synthesizes:
// each path that removes an override disposes the synthesized materials.
package highlight

//go:generate core generate

import (
	"image/color"
	"log/slog"

	"github.com/google/uuid"
	"github.com/scopos/scopos3d/metrics"
	"github.com/scopos/scopos3d/xyz"
)

// Buckets are the independent concerns that can override a material.
type Buckets int32 //enums:enum -transform kebab

const (
	// Hover is the override of the node under the pointer.
	Hover Buckets = iota

	// Select is the override of selected nodes.
	Select

	// FilterHighlight is the override of nodes matched by the active filter.
	FilterHighlight

	// FilterBlock is the override of nodes not matched by the active filter.
	FilterBlock
)

const (
	// TintEmissiveScale is the factor applied to the tint color to get
	// the emissive color of a tinted standard material.
	TintEmissiveScale = 0.3

	// TintEmissiveIntensity is the emissive intensity of a tinted
	// standard material.
	TintEmissiveIntensity = 0.3

	// FallbackOpacity is the opacity of the flat material that replaces
	// materials of unknown kind.
	FallbackOpacity = 0.7
)

// entry is one override of one node.
type entry struct {
	bucket   Buckets
	original []*xyz.Material
	synth    []*xyz.Material
}

// Tracker records the materials nodes held before an override.
// An override applied on top of another stores the material the node
// had at that moment, so overrides stack and can be cleared in any order.
// It must be used on the frame.
type Tracker struct {

	// Logger is used for debug messages.
	Logger *slog.Logger

	nodes   map[uuid.UUID]*stack
	counts  [BucketsN]int
	version uint64
}

// stack is the overrides of one node in application order.
type stack struct {
	node    *xyz.Node
	entries []*entry
}

// NewTracker returns a new empty tracker.
func NewTracker() *Tracker {
	return &Tracker{Logger: slog.Default(), nodes: make(map[uuid.UUID]*stack)}
}

// Apply overrides the materials of n in bucket bk with tinted variants of
// its current materials. It does nothing and returns false if n has no
// materials or already has an override in bk.
func (tr *Tracker) Apply(n *xyz.Node, clr color.RGBA, bk Buckets) bool {
	return tr.apply(n, bk, func(orig *xyz.Material) *xyz.Material {
		return Tint(orig, clr)
	})
}

// ApplyFlat is like [Tracker.Apply] but replaces each material with
// a flat material of the given color and opacity.
func (tr *Tracker) ApplyFlat(n *xyz.Node, clr color.RGBA, opacity float32, bk Buckets) bool {
	return tr.apply(n, bk, func(orig *xyz.Material) *xyz.Material {
		return xyz.NewFlatMaterial(clr, opacity)
	})
}

func (tr *Tracker) apply(n *xyz.Node, bk Buckets, synth func(orig *xyz.Material) *xyz.Material) bool {
	if n == nil || !n.HasMaterial() || tr.Has(n, bk) {
		return false
	}
	en := &entry{bucket: bk, original: n.Materials, synth: make([]*xyz.Material, len(n.Materials))}
	for i, orig := range n.Materials {
		en.synth[i] = synth(orig)
	}
	st := tr.nodes[n.Handle]
	if st == nil {
		st = &stack{node: n}
		tr.nodes[n.Handle] = st
	}
	st.entries = append(st.entries, en)
	tr.counts[bk]++
	tr.version++
	n.Materials = append([]*xyz.Material(nil), en.synth...)
	metrics.HighlightOverrides.WithLabelValues(bk.String()).Inc()
	return true
}

// Clear removes the override of n in bucket bk, restoring the materials
// n held before it, and disposes the synthesized materials. It returns
// false if there was no such override.
func (tr *Tracker) Clear(n *xyz.Node, bk Buckets) bool {
	if n == nil {
		return false
	}
	st := tr.nodes[n.Handle]
	if st == nil {
		return false
	}
	idx := st.find(bk)
	if idx < 0 {
		return false
	}
	en := st.entries[idx]
	if idx == len(st.entries)-1 {
		n.Materials = append([]*xyz.Material(nil), en.original...)
	} else {
		// the override above stores ours as its original: hand it ours
		above := st.entries[idx+1]
		for i, m := range above.original {
			for j, s := range en.synth {
				if m == s && j < len(en.original) {
					above.original[i] = en.original[j]
				}
			}
		}
	}
	tr.dispose(en)
	st.entries = append(st.entries[:idx], st.entries[idx+1:]...)
	if len(st.entries) == 0 {
		delete(tr.nodes, n.Handle)
	}
	tr.counts[bk]--
	tr.version++
	return true
}

func (tr *Tracker) dispose(en *entry) {
	for _, s := range en.synth {
		if s == nil || contains(en.original, s) {
			continue
		}
		s.Dispose()
		metrics.MaterialsDisposed.Inc()
	}
}

func contains(mats []*xyz.Material, m *xyz.Material) bool {
	for _, o := range mats {
		if o == m {
			return true
		}
	}
	return false
}

func (st *stack) find(bk Buckets) int {
	for i, en := range st.entries {
		if en.bucket == bk {
			return i
		}
	}
	return -1
}

// ClearBucket clears all overrides in bucket bk.
func (tr *Tracker) ClearBucket(bk Buckets) {
	for _, n := range tr.Nodes(bk) {
		tr.Clear(n, bk)
	}
}

// ClearAll clears every override in every bucket, restoring all nodes
// to their original materials.
func (tr *Tracker) ClearAll() {
	for bk := BucketsN - 1; bk >= 0; bk-- {
		tr.ClearBucket(bk)
	}
}

// Has returns true if n has an override in bucket bk.
func (tr *Tracker) Has(n *xyz.Node, bk Buckets) bool {
	if n == nil {
		return false
	}
	st := tr.nodes[n.Handle]
	return st != nil && st.find(bk) >= 0
}

// Len returns the number of nodes with an override in bucket bk.
func (tr *Tracker) Len(bk Buckets) int {
	return tr.counts[bk]
}

// Version returns a number that changes whenever an override is
// applied or cleared.
func (tr *Tracker) Version() uint64 {
	return tr.version
}

// Total returns the number of overrides in all buckets.
func (tr *Tracker) Total() int {
	n := 0
	for _, c := range tr.counts {
		n += c
	}
	return n
}

// Nodes returns the nodes with an override in bucket bk.
func (tr *Tracker) Nodes(bk Buckets) []*xyz.Node {
	var ns []*xyz.Node
	for _, st := range tr.nodes {
		if st.find(bk) >= 0 {
			ns = append(ns, st.node)
		}
	}
	return ns
}

// Original returns the materials n held before its override in bucket bk,
// or nil if there is none.
func (tr *Tracker) Original(n *xyz.Node, bk Buckets) []*xyz.Material {
	if n == nil {
		return nil
	}
	st := tr.nodes[n.Handle]
	if st == nil {
		return nil
	}
	if idx := st.find(bk); idx >= 0 {
		return st.entries[idx].original
	}
	return nil
}
