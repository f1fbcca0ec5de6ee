// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package details

import (
	"context"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/scopos/scopos3d/equipment"
	"github.com/scopos/scopos3d/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedSource blocks Detail calls for one code until released.
type gatedSource struct {
	*equipment.Memory
	gated   string
	started chan struct{}
	release chan struct{}
}

func (gs *gatedSource) Detail(ctx context.Context, modelCode string) (*equipment.Detail, error) {
	if modelCode == gs.gated {
		close(gs.started)
		<-gs.release
	}
	return gs.Memory.Detail(ctx, modelCode)
}

func TestShow(t *testing.T) {
	bus := events.NewBus()
	pn := NewPanel(equipment.NewFallbackMemory(), bus)
	defer pn.Close()

	require.NoError(t, pn.Show(context.Background(), "3192-3193"))
	st := pn.State()
	require.NotNil(t, st.Detail)
	assert.Equal(t, "1001218362", st.Detail.Code)
	assert.Equal(t, "3192-3193", st.Code)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
}

func TestOpenFromBus(t *testing.T) {
	bus := events.NewBus()
	pn := NewPanel(equipment.NewFallbackMemory(), bus)
	defer pn.Close()

	bus.Emit(events.OpenEquipmentDetailsEvent{Code: "3194-3195"})
	pn.Wait()
	st := pn.State()
	require.NotNil(t, st.Detail)
	assert.Equal(t, "3194-3195", st.Detail.ModelCode)

	bus.Emit(events.ResetCameraEvent{})
	assert.Nil(t, pn.State().Detail)
}

func TestShowNotFound(t *testing.T) {
	pn := NewPanel(equipment.NewFallbackMemory(), events.NewBus())
	defer pn.Close()

	require.NoError(t, pn.Show(context.Background(), "3192-3193"))
	err := pn.Show(context.Background(), "9999")
	assert.ErrorIs(t, err, equipment.ErrNotFound)
	st := pn.State()
	assert.Nil(t, st.Detail)
	assert.ErrorIs(t, st.Err, equipment.ErrNotFound)
}

func TestShowFailureKeepsDetail(t *testing.T) {
	mm := equipment.NewFallbackMemory()
	pn := NewPanel(mm, events.NewBus())
	defer pn.Close()

	require.NoError(t, pn.Show(context.Background(), "3192-3193"))
	mm.Err = errors.New("connection refused")
	assert.Error(t, pn.Show(context.Background(), "3194-3195"))
	st := pn.State()
	require.NotNil(t, st.Detail)
	assert.Equal(t, "3192-3193", st.Detail.ModelCode)
	assert.Error(t, st.Err)
}

func TestStaleDetailDropped(t *testing.T) {
	gs := &gatedSource{Memory: equipment.NewFallbackMemory(), gated: "3192-3193",
		started: make(chan struct{}), release: make(chan struct{})}
	pn := NewPanel(gs, events.NewBus())
	defer pn.Close()

	pn.Open("3192-3193")
	<-gs.started
	require.NoError(t, pn.Show(context.Background(), "3196-3197"))
	close(gs.release)
	pn.Wait()

	st := pn.State()
	require.NotNil(t, st.Detail)
	assert.Equal(t, "3196-3197", st.Detail.ModelCode)
	assert.Equal(t, "3196-3197", st.Code)
}

func TestClearDropsFetch(t *testing.T) {
	gs := &gatedSource{Memory: equipment.NewFallbackMemory(), gated: "3192-3193",
		started: make(chan struct{}), release: make(chan struct{})}
	pn := NewPanel(gs, events.NewBus())
	defer pn.Close()

	pn.Open("3192-3193")
	<-gs.started
	pn.Clear()
	close(gs.release)
	pn.Wait()
	st := pn.State()
	assert.Nil(t, st.Detail)
	assert.False(t, st.Loading)
}

func TestListAndRows(t *testing.T) {
	pn := NewPanel(equipment.NewFallbackMemory(), events.NewBus())
	defer pn.Close()

	require.NoError(t, pn.LoadList(context.Background()))
	assert.Len(t, pn.Rows(nil), 3)
	rows := pn.Rows([]string{"3194-3195", "777"})
	require.Len(t, rows, 1)
	assert.Equal(t, "3194-3195", rows[0].ModelCode)
	assert.Len(t, pn.State().List, 3)
}

func TestBack(t *testing.T) {
	bus := events.NewBus()
	pn := NewPanel(equipment.NewFallbackMemory(), bus)
	defer pn.Close()
	cleared := 0
	events.On(bus, func(events.ClearSelectionsEvent) { cleared++ })

	require.NoError(t, pn.Show(context.Background(), "3192-3193"))
	pn.Back()
	assert.Nil(t, pn.State().Detail)
	assert.Equal(t, 1, cleared)
}

func TestOnChange(t *testing.T) {
	pn := NewPanel(equipment.NewFallbackMemory(), events.NewBus())
	defer pn.Close()
	var loading []bool
	pn.OnChange = func(st State) { loading = append(loading, st.Loading) }
	require.NoError(t, pn.Show(context.Background(), "3192-3193"))
	assert.Equal(t, []bool{true, false}, loading)
}

func TestCloseStopsListening(t *testing.T) {
	bus := events.NewBus()
	pn := NewPanel(equipment.NewFallbackMemory(), bus)
	pn.Close()
	assert.Equal(t, 0, bus.NumListeners(events.OpenEquipmentDetails))
	assert.Equal(t, 0, bus.NumListeners(events.ResetCamera))
}
