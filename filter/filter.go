// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter shows which scene nodes belong to a set of equipment
// codes, such as the equipment with overdue maintenance, by overriding
// the materials of matched and unmatched nodes.
package filter

//go:generate core generate

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"regexp"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/scopos/scopos3d/frame"
	"github.com/scopos/scopos3d/highlight"
	"github.com/scopos/scopos3d/metrics"
	"github.com/scopos/scopos3d/xyz"
)

// ErrFetch wraps the failure to fetch the code set of a mode.
var ErrFetch = errors.New("filter: fetching codes failed")

// Modes are the filter modes.
type Modes int32 //enums:enum -transform lower

const (
	// None is no filter.
	None Modes = iota

	// Overdue shows equipment with overdue maintenance.
	Overdue

	// Defective shows equipment with open defect notifications.
	Defective
)

// ModeFromString returns the mode with the given name.
func ModeFromString(s string) (Modes, error) {
	var md Modes
	if err := md.SetString(s); err != nil {
		return None, fmt.Errorf("filter: %w", err)
	}
	return md, nil
}

// Policies are the ways unmatched nodes are shown while a filter is active.
type Policies int32 //enums:enum -transform lower

const (
	// Blocked makes unmatched nodes nearly invisible.
	Blocked Policies = iota

	// Dimmed keeps unmatched nodes faintly visible.
	Dimmed
)

// PolicyFromString returns the policy with the given name:
// "dim" or "dimmed" is [Dimmed] and anything else is [Blocked].
func PolicyFromString(s string) Policies {
	if s == "dim" {
		return Dimmed
	}
	var pl Policies
	if pl.SetString(s) != nil {
		return Blocked
	}
	return pl
}

// CodeSource provides the code sets of the modes.
type CodeSource interface {
	OverdueCodes(ctx context.Context) ([]string, error)
	DefectiveCodes(ctx context.Context) ([]string, error)
}

// State is a snapshot of the filter state.
type State struct {

	// Mode is the active mode.
	Mode Modes

	// Codes is the sorted code set of the mode. It is empty
	// whenever Mode is [None].
	Codes []string

	// Loading is set while the code set is being fetched.
	Loading bool

	// Err is the error of the last failed fetch.
	Err error
}

// Engine applies the filter mode to a scene.
//
// [Engine.SetMode] blocks on the network and must be called from outside
// the frame; it hands every scene change to the frame with [frame.Loop.Do],
// so each pass over the scene is applied whole between two ticks.
// The other methods are safe to call anywhere.
type Engine struct {

	// Scene is the scene filtered. It must only be changed on the frame.
	Scene *xyz.Scene

	// OverdueColor is the color of nodes matched by [Overdue].
	OverdueColor color.RGBA

	// DefectiveColor is the color of nodes matched by [Defective].
	DefectiveColor color.RGBA

	// HighlightOpacity is the opacity of matched nodes.
	HighlightOpacity float32

	// Unmatched is the policy for unmatched nodes.
	Unmatched Policies

	// BlockColor and BlockOpacity are used for unmatched nodes
	// with the [Blocked] policy.
	BlockColor   color.RGBA
	BlockOpacity float32

	// DimColor and DimOpacity are used for unmatched nodes
	// with the [Dimmed] policy.
	DimColor   color.RGBA
	DimOpacity float32

	// OnChange, if set, is called on the frame each time a mode takes
	// effect or is dropped, before the new pass is applied.
	OnChange func(md Modes)

	// Logger is used for filter messages.
	Logger *slog.Logger

	source  CodeSource
	loop    *frame.Loop
	tracker *highlight.Tracker

	mu    sync.Mutex
	state State
	codes map[string]bool
	gen   uint64
}

// NewEngine returns a new engine.
func NewEngine(src CodeSource, lp *frame.Loop, tr *highlight.Tracker) *Engine {
	en := &Engine{source: src, loop: lp, tracker: tr}
	en.Defaults()
	return en
}

func (en *Engine) Defaults() {
	en.OverdueColor = color.RGBA{0xff, 0x00, 0x00, 0xff}
	en.DefectiveColor = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	en.HighlightOpacity = 0.7
	en.Unmatched = Blocked
	en.BlockColor = color.RGBA{0x44, 0x44, 0x44, 0xff}
	en.BlockOpacity = 0.3
	en.DimColor = color.RGBA{0x88, 0x88, 0x88, 0xff}
	en.DimOpacity = 0.1
	en.Logger = slog.Default()
}

// State returns a snapshot of the filter state.
func (en *Engine) State() State {
	en.mu.Lock()
	defer en.mu.Unlock()
	st := en.state
	st.Codes = slices.Clone(st.Codes)
	return st
}

// SetMode sets the filter mode. Setting the active mode again, or [None],
// turns the filter off. Otherwise the code set of the mode is fetched and
// every named mesh of the scene is classified in one pass. If the fetch
// fails the filter is turned off and the error, wrapping [ErrFetch], is
// returned. If another SetMode was called in the meantime the result is
// dropped and nil is returned: the latest call wins.
func (en *Engine) SetMode(ctx context.Context, md Modes) error {
	en.mu.Lock()
	en.gen++
	gen := en.gen
	if md == None || md == en.state.Mode {
		en.state = State{}
		en.codes = nil
		en.mu.Unlock()
		en.loop.Do(func() {
			en.revert()
			en.changed(None)
		})
		return nil
	}
	en.state = State{Mode: md, Loading: true}
	en.codes = nil
	en.mu.Unlock()
	en.loop.Do(en.revert)

	codes, err := en.fetch(ctx, md)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrFetch, md, err)
	}
	var result error
	en.loop.Do(func() {
		en.mu.Lock()
		if gen != en.gen {
			en.mu.Unlock()
			metrics.FilterResults.WithLabelValues("stale").Inc()
			en.Logger.Debug("filter: dropping stale result", "mode", md)
			return
		}
		if err != nil {
			en.state = State{Err: err}
			en.codes = nil
			en.mu.Unlock()
			metrics.FilterResults.WithLabelValues("error").Inc()
			en.Logger.Error("filter: could not load codes", "mode", md, "err", err)
			result = err
			en.revert()
			en.changed(None)
			return
		}
		set := make(map[string]bool, len(codes))
		for _, c := range codes {
			set[c] = true
		}
		en.codes = set
		en.state.Codes = sortedKeys(set)
		en.state.Loading = false
		en.mu.Unlock()
		metrics.FilterResults.WithLabelValues("ok").Inc()
		en.changed(md)
		en.apply(md, set)
	})
	return result
}

// Clear turns the filter off.
func (en *Engine) Clear() {
	errors.Log(en.SetMode(context.Background(), None))
}

// SetScene moves the filter onto a newly loaded scene: overrides on the
// previous scene are reverted and the active code set, if any, is applied
// to the new one. It must be called on the frame.
func (en *Engine) SetScene(sc *xyz.Scene) {
	en.revert()
	en.Scene = sc
	en.mu.Lock()
	md, set := en.state.Mode, en.codes
	en.mu.Unlock()
	if md != None {
		en.apply(md, set)
	}
}

func (en *Engine) fetch(ctx context.Context, md Modes) ([]string, error) {
	if en.source == nil {
		return nil, errors.New("no code source")
	}
	switch md {
	case Overdue:
		return en.source.OverdueCodes(ctx)
	case Defective:
		return en.source.DefectiveCodes(ctx)
	}
	return nil, fmt.Errorf("unknown mode %d", md)
}

func (en *Engine) changed(md Modes) {
	if en.OnChange != nil {
		en.OnChange(md)
	}
}

// revert clears every filter override.
func (en *Engine) revert() {
	en.tracker.ClearBucket(highlight.FilterHighlight)
	en.tracker.ClearBucket(highlight.FilterBlock)
	if en.Scene != nil {
		en.Scene.SetNeedsRender()
	}
}

// apply classifies every named mesh of the scene. An empty code set
// leaves the scene as is.
func (en *Engine) apply(md Modes, codes map[string]bool) {
	if en.Scene == nil || len(codes) == 0 {
		return
	}
	hl := en.OverdueColor
	if md == Defective {
		hl = en.DefectiveColor
	}
	unClr, unOp := en.BlockColor, en.BlockOpacity
	if en.Unmatched == Dimmed {
		unClr, unOp = en.DimColor, en.DimOpacity
	}
	matched, unmatched := 0, 0
	en.Scene.WalkDown(func(n *xyz.Node) bool {
		if !n.IsMesh() || n.Name == "" {
			return xyz.Continue
		}
		if matchCodes(codes, n.Name) {
			en.tracker.ApplyFlat(n, hl, en.HighlightOpacity, highlight.FilterHighlight)
			matched++
		} else {
			en.tracker.ApplyFlat(n, unClr, unOp, highlight.FilterBlock)
			unmatched++
		}
		return xyz.Continue
	})
	en.Scene.SetNeedsRender()
	metrics.FilterPasses.WithLabelValues(md.String()).Inc()
	en.Logger.Info("filter: applied", "mode", md, "codes", len(codes), "matched", matched, "unmatched", unmatched)
}

// Matches returns true if the node name matches the active code set.
func (en *Engine) Matches(name string) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.matches(name)
}

func (en *Engine) matches(name string) bool {
	return matchCodes(en.codes, name)
}

func matchCodes(codes map[string]bool, name string) bool {
	if len(codes) == 0 {
		return false
	}
	for _, c := range Candidates(name) {
		if codes[c] {
			return true
		}
	}
	return false
}

// Selectable returns true if the named node can be selected:
// any node can when no filter is active or its code set is empty,
// otherwise only matched ones.
func (en *Engine) Selectable(name string) bool {
	en.mu.Lock()
	defer en.mu.Unlock()
	if en.state.Mode == None || len(en.codes) == 0 {
		return true
	}
	return en.matches(name)
}

var codeSeparators = regexp.MustCompile(`[^0-9a-zA-Z-]+`)

// Candidates returns the codes a node name may stand for: each fragment
// between runs of characters other than ASCII letters, digits and '-',
// followed by the whole name.
func Candidates(name string) []string {
	var cs []string
	for _, f := range codeSeparators.Split(name, -1) {
		if f != "" {
			cs = append(cs, f)
		}
	}
	return append(cs, name)
}

func sortedKeys(m map[string]bool) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}
