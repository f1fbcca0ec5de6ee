// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package focus

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/scopos/scopos3d/camera"
	"github.com/scopos/scopos3d/events"
	"github.com/scopos/scopos3d/frame"
	"github.com/scopos/scopos3d/resolve"
	"github.com/scopos/scopos3d/xyz"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	loop *frame.Loop
	bus  *events.Bus
	rig  *camera.Basic
	ctrl *camera.Controller
	fc   *Focuser
}

// newFixture has a 2x2x2 pump centered at (10, 0, 0) and an empty group.
func newFixture() *fixture {
	root := xyz.NewNode(nil, "model")
	xyz.NewMeshNode(root, "3192-3193", math32.B3(9, -1, -1, 11, 1, 1), xyz.NewBasicMaterial(color.RGBA{1, 1, 1, 255}))
	xyz.NewNode(root, "empty group")
	sc := xyz.NewScene(root)

	fx := &fixture{}
	fx.loop = frame.NewLoop(t0)
	fx.bus = events.NewBus()
	fx.rig = camera.NewBasic(camera.Pose{Position: math32.Vec3(10, 0, 20)})
	fx.ctrl = camera.NewController(fx.loop, nil)
	fx.fc = NewFocuser(fx.bus, fx.ctrl, resolve.New(sc))
	return fx
}

func (fx *fixture) ready() {
	fx.bus.Emit(events.ControlsReadyEvent{Controls: fx.rig})
}

func TestFocusBeforeControls(t *testing.T) {
	fx := newFixture()
	assert.False(t, fx.fc.FocusOn("3192", false, 0))
	assert.Equal(t, 0, fx.rig.Updates)
}

func TestFocusInstant(t *testing.T) {
	fx := newFixture()
	fx.ready()
	fx.bus.Emit(events.FocusOnObjectEvent{ObjectName: "3192", Instant: true})
	ps := fx.rig.Pose()
	assert.Equal(t, math32.Vec3(10, 0, 0), ps.Target)
	assert.InDelta(t, 5, ps.Position.Z, 1e-4)
	assert.InDelta(t, 10, ps.Position.X, 1e-4)
	assert.False(t, fx.ctrl.Animating())
}

func TestFocusAnimated(t *testing.T) {
	fx := newFixture()
	fx.ready()
	fx.bus.Emit(events.FocusOnObjectEvent{ObjectName: "3192", Duration: 400 * time.Millisecond})
	assert.True(t, fx.ctrl.Animating())

	fx.loop.Tick(t0.Add(200 * time.Millisecond))
	mid := fx.rig.Pose()
	assert.InDelta(t, 12.5, mid.Position.Z, 1e-3)

	fx.loop.Tick(t0.Add(400 * time.Millisecond))
	end := fx.rig.Pose()
	assert.Equal(t, math32.Vec3(10, 0, 0), end.Target)
	assert.InDelta(t, 5, end.Position.Z, 1e-4)
	assert.False(t, fx.ctrl.Animating())
}

func TestFocusDefaultDuration(t *testing.T) {
	fx := newFixture()
	fx.ready()
	assert.True(t, fx.fc.FocusOn("3192", false, 0))
	fx.loop.Tick(t0.Add(400 * time.Millisecond))
	assert.True(t, fx.ctrl.Animating())
	fx.loop.Tick(t0.Add(fx.fc.Duration))
	assert.False(t, fx.ctrl.Animating())
}

func TestFocusMisses(t *testing.T) {
	fx := newFixture()
	fx.ready()
	assert.False(t, fx.fc.FocusOn("compressor", false, 0))
	assert.False(t, fx.fc.FocusOn("empty group", false, 0))
	assert.Equal(t, 0, fx.rig.Updates)
}

func TestFocusDroppedWhileAnimating(t *testing.T) {
	fx := newFixture()
	fx.ready()
	assert.True(t, fx.fc.FocusOn("3192", false, 0))
	assert.False(t, fx.fc.FocusOn("3192", false, 0))
}

func TestReset(t *testing.T) {
	fx := newFixture()
	fx.ready()
	assert.True(t, fx.fc.FocusOn("3192", false, 0))
	fx.bus.Emit(events.ResetCameraEvent{})
	assert.True(t, fx.ctrl.Animating())
	fx.loop.Tick(t0.Add(fx.fc.Duration))
	assert.Equal(t, fx.fc.Home, fx.rig.Pose())
}

func TestClose(t *testing.T) {
	fx := newFixture()
	fx.ready()
	assert.True(t, fx.fc.FocusOn("3192", false, 0))
	fx.fc.Close()
	assert.False(t, fx.ctrl.Animating())
	assert.Equal(t, 0, fx.bus.NumListeners(events.FocusOnObject))
	assert.Equal(t, 0, fx.bus.NumListeners(events.ResetCamera))
	assert.Equal(t, 0, fx.bus.NumListeners(events.ControlsReady))
}
