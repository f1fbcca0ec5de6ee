// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection turns pointer input into hover and selection state,
// shown with material overrides, and answers selection requests from the
// interaction bus.
package selection

import (
	"image/color"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/scopos/scopos3d/events"
	"github.com/scopos/scopos3d/frame"
	"github.com/scopos/scopos3d/highlight"
	"github.com/scopos/scopos3d/metrics"
	"github.com/scopos/scopos3d/resolve"
	"github.com/scopos/scopos3d/xyz"
	"golang.org/x/time/rate"
)

// HitInterval is the minimum time between two hit tests for pointer moves.
const HitInterval = 16 * time.Millisecond

// State is a snapshot of the selection state.
type State struct {

	// Selected is the handles of the selected nodes, in selection order.
	Selected []uuid.UUID

	// Hovered is the handle of the hovered node, or [uuid.Nil].
	// It is never in Selected.
	Hovered uuid.UUID
}

// IsSelected returns true if the handle is in Selected.
func (st State) IsSelected(h uuid.UUID) bool {
	return slices.Contains(st.Selected, h)
}

// Manager tracks the hovered and selected nodes of one viewer.
// All methods must be called on the frame.
type Manager struct {

	// HoverColor is the tint of the hovered node.
	HoverColor color.RGBA

	// SelectColor is the tint of selected nodes.
	SelectColor color.RGBA

	// HoverDelay is how long the pointer must rest on a node
	// before it is hovered.
	HoverDelay time.Duration

	// MoveThreshold is the distance in pixels between pointer down and
	// up beyond which the gesture is a drag and not a click.
	MoveThreshold float32

	// Selectable, if set, must return true for a node name for the
	// node to be hovered or selected by pointer.
	Selectable func(name string) bool

	// Logger is used for selection messages.
	Logger *slog.Logger

	loop     *frame.Loop
	tracker  *highlight.Tracker
	bus      *events.Bus
	picker   Picker
	resolver *resolve.Resolver
	limiter  *rate.Limiter
	subs     events.Group

	hoverTimer *frame.Timer
	trailTimer *frame.Timer
	trailing   events.Pointer
	hovered    *xyz.Node
	selected   []*xyz.Node
	down       events.Pointer
}

// NewManager returns a new manager listening on the bus for selection
// requests. The picker finds the node under the pointer, and the
// resolver finds nodes named in requests.
func NewManager(lp *frame.Loop, tr *highlight.Tracker, bus *events.Bus, pk Picker, rs *resolve.Resolver) *Manager {
	sm := &Manager{loop: lp, tracker: tr, bus: bus, picker: pk, resolver: rs}
	sm.Defaults()
	sm.limiter = rate.NewLimiter(rate.Every(HitInterval), 1)
	sm.subs.Add(
		events.On(bus, func(ev events.SelectObjectEvent) { sm.SelectByName(ev.ObjectName) }),
		events.On(bus, func(ev events.SelectAndFocusObjectEvent) {
			if sm.SelectByName(ev.ObjectName) {
				bus.Emit(events.FocusOnObjectEvent{ObjectName: ev.ObjectName})
			}
		}),
		events.On(bus, func(events.ClearSelectionsEvent) { sm.ClearAll() }),
		events.On(bus, func(events.ResetCameraEvent) { sm.ClearAll() }),
	)
	return sm
}

func (sm *Manager) Defaults() {
	sm.HoverColor = color.RGBA{0xff, 0x60, 0x00, 0xff}
	sm.SelectColor = color.RGBA{0xff, 0x00, 0x00, 0xff}
	sm.HoverDelay = 100 * time.Millisecond
	sm.MoveThreshold = 5
	sm.Logger = slog.Default()
}

// SetPicker sets the picker, as when a new scene is loaded.
func (sm *Manager) SetPicker(pk Picker) {
	sm.picker = pk
}

// State returns a snapshot of the selection state.
func (sm *Manager) State() State {
	st := State{}
	for _, n := range sm.selected {
		st.Selected = append(st.Selected, n.Handle)
	}
	if sm.hovered != nil {
		st.Hovered = sm.hovered.Handle
	}
	return st
}

// Selected returns the selected nodes in selection order.
func (sm *Manager) Selected() []*xyz.Node {
	return slices.Clone(sm.selected)
}

// Hovered returns the hovered node, or nil.
func (sm *Manager) Hovered() *xyz.Node {
	return sm.hovered
}

// IsSelected returns true if n is selected.
func (sm *Manager) IsSelected(n *xyz.Node) bool {
	return slices.Contains(sm.selected, n)
}

// HoverPending returns true while a hover or a deferred hit test
// is scheduled.
func (sm *Manager) HoverPending() bool {
	return sm.hoverTimer.Pending() || sm.trailTimer.Pending()
}

func (sm *Manager) pick(p events.Pointer) *xyz.Node {
	if sm.picker == nil {
		return nil
	}
	hit := sm.picker.Pick(p)
	if hit == nil || (sm.Selectable != nil && !sm.Selectable(hit.Name)) {
		return nil
	}
	return hit
}

// PointerMove cancels any scheduled or shown hover, and schedules a hover
// of the node under the pointer after [Manager.HoverDelay]. Hit tests
// are made at most once per [HitInterval] of frame time; a throttled move
// is tested on the next tick instead, so the last position of a gesture
// is always tested. It returns the node under the pointer, if tested now
// and found.
func (sm *Manager) PointerMove(p events.Pointer) *xyz.Node {
	sm.clearHover()
	if !sm.limiter.AllowN(sm.loop.Now(), 1) {
		sm.trailing = p
		if !sm.trailTimer.Pending() {
			sm.trailTimer = sm.loop.After(0, func() {
				sm.trailTimer = nil
				sm.hoverAt(sm.trailing)
			})
		}
		return nil
	}
	sm.trailTimer.Stop()
	sm.trailTimer = nil
	return sm.hoverAt(p)
}

// hoverAt hit tests p and schedules the hover of the node found.
func (sm *Manager) hoverAt(p events.Pointer) *xyz.Node {
	hit := sm.pick(p)
	if hit == nil || sm.IsSelected(hit) {
		return hit
	}
	sm.hoverTimer = sm.loop.After(sm.HoverDelay, func() {
		sm.hoverTimer = nil
		if sm.IsSelected(hit) {
			return
		}
		if sm.tracker.Apply(hit, sm.HoverColor, highlight.Hover) {
			sm.hovered = hit
		}
	})
	return hit
}

// PointerDown records where a click gesture starts.
func (sm *Manager) PointerDown(p events.Pointer) {
	sm.down = p
}

// PointerUp ends a click gesture, unless the pointer moved more than
// [Manager.MoveThreshold] since [Manager.PointerDown]. Clicking a selected
// node deselects it. Clicking another node selects it, replacing the
// selection unless the multi-select modifier is held, and asks for its
// details and for the camera to focus on it. Clicking empty space
// clears the selection unless the modifier is held.
func (sm *Manager) PointerUp(p events.Pointer) {
	if p.DistanceTo(sm.down) > sm.MoveThreshold {
		return
	}
	hit := sm.pick(p)
	sm.clearHover()
	if hit == nil {
		if !p.Multi {
			sm.clearSelection()
		}
		return
	}
	if sm.IsSelected(hit) {
		sm.deselect(hit)
		return
	}
	if !p.Multi {
		sm.clearSelection()
	}
	sm.selectNode(hit)
	if hit.Name != "" {
		sm.bus.Emit(events.OpenEquipmentDetailsEvent{Code: hit.Name})
		sm.bus.Emit(events.FocusOnObjectEvent{ObjectName: hit.Name})
	}
}

// SelectByName replaces the selection with the node the name resolves to.
// It returns false, leaving the selection as is, if there is none.
func (sm *Manager) SelectByName(name string) bool {
	n := sm.resolver.Resolve(name)
	if n == nil {
		sm.Logger.Warn("selection: object not found", "name", name)
		return false
	}
	sm.clearSelection()
	if sm.hovered == n {
		sm.clearHover()
	}
	sm.selectNode(n)
	return true
}

// ClearAll clears the selection and the hover, and cancels any
// scheduled hover.
func (sm *Manager) ClearAll() {
	sm.trailTimer.Stop()
	sm.trailTimer = nil
	sm.clearHover()
	sm.clearSelection()
}

// Close stops listening on the bus and clears all state.
func (sm *Manager) Close() {
	sm.subs.Cancel()
	sm.ClearAll()
}

func (sm *Manager) selectNode(n *xyz.Node) {
	sm.tracker.Apply(n, sm.SelectColor, highlight.Select)
	sm.selected = append(sm.selected, n)
	metrics.Selections.Inc()
}

func (sm *Manager) deselect(n *xyz.Node) {
	sm.tracker.Clear(n, highlight.Select)
	sm.selected = slices.DeleteFunc(sm.selected, func(s *xyz.Node) bool { return s == n })
	metrics.Selections.Inc()
}

func (sm *Manager) clearSelection() {
	if len(sm.selected) == 0 {
		return
	}
	for _, n := range sm.selected {
		sm.tracker.Clear(n, highlight.Select)
	}
	sm.selected = nil
	metrics.Selections.Inc()
}

func (sm *Manager) clearHover() {
	sm.hoverTimer.Stop()
	sm.hoverTimer = nil
	if sm.hovered != nil {
		sm.tracker.Clear(sm.hovered, highlight.Hover)
		sm.hovered = nil
	}
}
