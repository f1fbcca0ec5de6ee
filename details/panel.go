// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package details holds the equipment details panel state of a viewer:
// the equipment list, and the passport of the equipment last asked for
// on the interaction bus.
package details

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/scopos/scopos3d/equipment"
	"github.com/scopos/scopos3d/events"
)

// State is a snapshot of the panel state.
type State struct {

	// List is the equipment list, once loaded.
	List []equipment.Summary

	// Code is the code of the equipment shown or being loaded.
	Code string

	// Detail is the passport shown, or nil for the list view.
	Detail *equipment.Detail

	// Loading is set while a passport fetch is in flight.
	Loading bool

	// Err is the error of the last fetch, if it failed.
	Err error
}

// Panel loads equipment records in answer to details requests on the bus.
// Fetches run off the frame; a result is applied only if no other request
// or clear came after it. Methods are safe to call from any goroutine.
type Panel struct {

	// Logger is used for fetch failures.
	Logger *slog.Logger

	// OnChange, if set, is called after every state change,
	// outside of the panel lock.
	OnChange func(st State)

	source equipment.Source
	bus    *events.Bus
	subs   events.Group
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	state State
	gen   uint64
}

// NewPanel returns a new panel reading from src and listening on bus.
func NewPanel(src equipment.Source, bus *events.Bus) *Panel {
	pn := &Panel{Logger: slog.Default(), source: src, bus: bus}
	pn.ctx, pn.cancel = context.WithCancel(context.Background())
	pn.subs.Add(
		events.On(bus, func(ev events.OpenEquipmentDetailsEvent) { pn.Open(ev.Code) }),
		events.On(bus, func(events.ResetCameraEvent) { pn.Clear() }),
	)
	return pn
}

// State returns a snapshot of the panel state.
func (pn *Panel) State() State {
	pn.mu.Lock()
	defer pn.mu.Unlock()
	st := pn.state
	st.List = slices.Clone(st.List)
	return st
}

// LoadList fetches the equipment list. On failure the previous list is kept.
func (pn *Panel) LoadList(ctx context.Context) error {
	list, err := pn.source.List(ctx)
	pn.update(func(st *State) {
		if err != nil {
			st.Err = err
			return
		}
		st.List = list
		st.Err = nil
	})
	if err != nil {
		pn.Logger.Error("details: equipment list", "err", err)
	}
	return err
}

// Open starts loading the passport for code in the background.
// Of several Opens, the last one called wins.
func (pn *Panel) Open(code string) {
	gen := pn.begin(code)
	pn.wg.Add(1)
	go func() {
		defer pn.wg.Done()
		pn.fetch(pn.ctx, code, gen)
	}()
}

// Show loads the passport for code. If the code has no record the panel
// returns to the list view. Other failures keep the passport shown before.
// A result that was overtaken by a later request or clear is dropped.
func (pn *Panel) Show(ctx context.Context, code string) error {
	return pn.fetch(ctx, code, pn.begin(code))
}

func (pn *Panel) begin(code string) uint64 {
	pn.mu.Lock()
	pn.gen++
	gen := pn.gen
	pn.state.Code = code
	pn.state.Loading = true
	st := pn.state
	pn.mu.Unlock()
	pn.changed(st)
	return gen
}

func (pn *Panel) fetch(ctx context.Context, code string, gen uint64) error {
	dt, err := pn.source.Detail(ctx, code)

	pn.mu.Lock()
	if gen != pn.gen {
		pn.mu.Unlock()
		return nil
	}
	pn.state.Loading = false
	switch {
	case err == nil:
		pn.state.Detail = dt
		pn.state.Err = nil
	case errors.Is(err, equipment.ErrNotFound):
		pn.state.Detail = nil
		pn.state.Err = err
	default:
		pn.state.Err = err
	}
	st := pn.state
	pn.mu.Unlock()
	pn.changed(st)

	if err != nil {
		pn.Logger.Info("details: no data", "code", code, "err", err)
	}
	return err
}

// Clear returns the panel to the list view and drops any fetch in flight.
func (pn *Panel) Clear() {
	pn.mu.Lock()
	pn.gen++
	pn.state = State{List: pn.state.List}
	st := pn.state
	pn.mu.Unlock()
	pn.changed(st)
}

// Back returns to the list view and asks for the selections to be cleared.
func (pn *Panel) Back() {
	pn.Clear()
	pn.bus.Emit(events.ClearSelectionsEvent{})
}

// Rows returns the list entries whose model code or code is in codes.
// All entries are returned when codes is empty.
func (pn *Panel) Rows(codes []string) []equipment.Summary {
	st := pn.State()
	if len(codes) == 0 {
		return st.List
	}
	return slices.DeleteFunc(st.List, func(sm equipment.Summary) bool {
		code := sm.ModelCode
		if code == "" {
			code = sm.Code
		}
		return !slices.Contains(codes, code)
	})
}

// Wait waits for all background fetches to finish.
func (pn *Panel) Wait() {
	pn.wg.Wait()
}

// Close stops listening on the bus, cancels fetches in flight and
// waits for them to finish.
func (pn *Panel) Close() {
	pn.subs.Cancel()
	pn.cancel()
	pn.Clear()
	pn.wg.Wait()
}

func (pn *Panel) update(fun func(st *State)) {
	pn.mu.Lock()
	fun(&pn.state)
	st := pn.state
	pn.mu.Unlock()
	pn.changed(st)
}

func (pn *Panel) changed(st State) {
	if pn.OnChange != nil {
		pn.OnChange(st)
	}
}
