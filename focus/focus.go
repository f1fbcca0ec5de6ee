// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package focus moves the camera of a viewer in answer to focus and
// reset requests on the interaction bus.
package focus

import (
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"github.com/scopos/scopos3d/camera"
	"github.com/scopos/scopos3d/events"
	"github.com/scopos/scopos3d/resolve"
)

// Focuser frames named objects with the camera, and returns the camera
// to its home pose on reset. All methods must be called on the frame.
type Focuser struct {

	// Duration is the default length of a camera animation.
	Duration time.Duration

	// MinDistance is the closest the camera gets to a focused object.
	MinDistance float32

	// MaxDistance is the farthest the camera gets from a focused object.
	MaxDistance float32

	// Home is the pose the camera returns to on reset.
	Home camera.Pose

	// Logger is used for focus requests that cannot be served.
	Logger *slog.Logger

	ctrl     *camera.Controller
	resolver *resolve.Resolver
	subs     events.Group
}

// NewFocuser returns a new focuser that listens on the bus for focus,
// reset and controls signals, and moves the camera with ctrl.
func NewFocuser(bus *events.Bus, ctrl *camera.Controller, rs *resolve.Resolver) *Focuser {
	fc := &Focuser{ctrl: ctrl, resolver: rs}
	fc.Defaults()
	fc.subs.Add(
		events.On(bus, func(ev events.FocusOnObjectEvent) { fc.FocusOn(ev.ObjectName, ev.Instant, ev.Duration) }),
		events.On(bus, func(events.ResetCameraEvent) { fc.Reset() }),
		events.On(bus, func(ev events.ControlsReadyEvent) { fc.ctrl.SetRig(ev.Controls) }),
	)
	return fc
}

func (fc *Focuser) Defaults() {
	fc.Duration = 800 * time.Millisecond
	fc.MinDistance = 1
	fc.MaxDistance = 200
	fc.Home = camera.Pose{Position: math32.Vec3(11, 40, -33), Target: math32.Vec3(36, 14, 0.2)}
	fc.Logger = slog.Default()
}

// FocusOn frames the object the name resolves to. A zero dur uses
// [Focuser.Duration]. It returns false if there are no camera controls,
// the name does not resolve to an object with geometry, or an animation
// is already in flight.
func (fc *Focuser) FocusOn(name string, instant bool, dur time.Duration) bool {
	rig := fc.ctrl.Rig()
	if rig == nil {
		fc.Logger.Warn("focus: camera controls not ready", "name", name)
		return false
	}
	n := fc.resolver.Resolve(name)
	if n == nil {
		fc.Logger.Debug("focus: object not found", "name", name)
		return false
	}
	bb := n.WorldBBox()
	if bb.IsEmpty() {
		fc.Logger.Debug("focus: object has no geometry", "name", name, "node", n.Path())
		return false
	}
	to := camera.FocusPose(rig.Pose(), bb, fc.MinDistance, fc.MaxDistance)
	if instant {
		fc.ctrl.InstantTo(to.Position, to.Target)
		return true
	}
	if dur == 0 {
		dur = fc.Duration
	}
	return fc.ctrl.AnimateFrom(to, dur)
}

// Reset animates the camera to [Focuser.Home]. A running animation
// is cancelled first.
func (fc *Focuser) Reset() bool {
	fc.ctrl.Cancel()
	return fc.ctrl.AnimateFrom(fc.Home, fc.Duration)
}

// Close stops listening on the bus and cancels any running animation.
func (fc *Focuser) Close() {
	fc.subs.Cancel()
	fc.ctrl.Cancel()
}
