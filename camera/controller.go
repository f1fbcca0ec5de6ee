// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"github.com/scopos/scopos3d/frame"
	"github.com/scopos/scopos3d/metrics"
)

// Controller moves the camera of one viewer. At most one animation is in
// flight at a time. All methods must be called on the frame.
type Controller struct {

	// Logger is used for dropped requests.
	Logger *slog.Logger

	loop    *frame.Loop
	rig     Rig
	anim    *animation
	version uint64
}

// animation is a trajectory in flight.
type animation struct {
	start    time.Time
	dur      time.Duration
	from, to Pose
	remove   func()
}

// NewController returns a new controller driven by the given loop.
// The rig may be nil until the controls are ready.
func NewController(lp *frame.Loop, rig Rig) *Controller {
	return &Controller{Logger: slog.Default(), loop: lp, rig: rig}
}

// SetRig sets the camera controls handle. Any running animation is cancelled.
func (cc *Controller) SetRig(rig Rig) {
	cc.Cancel()
	cc.rig = rig
}

// Rig returns the camera controls handle, which may be nil.
func (cc *Controller) Rig() Rig {
	return cc.rig
}

// Version returns a number that changes whenever the controller
// writes a pose to the rig.
func (cc *Controller) Version() uint64 {
	return cc.version
}

// setPose writes ps to the rig.
func (cc *Controller) setPose(ps Pose) {
	cc.rig.SetPose(ps)
	cc.version++
}

// Animating returns true while an animation is in flight.
func (cc *Controller) Animating() bool {
	return cc.anim != nil
}

// AnimateTo starts an eased animation of position and target over dur.
// It returns false and leaves the running animation untouched if one
// is already in flight, or if there is no rig. A non-positive duration
// moves the camera at once.
func (cc *Controller) AnimateTo(startPos, endPos, startTarget, endTarget math32.Vector3, dur time.Duration) bool {
	if cc.rig == nil {
		cc.Logger.Warn("camera: no controls for animation")
		metrics.CameraAnimations.WithLabelValues("dropped").Inc()
		return false
	}
	if cc.anim != nil {
		metrics.CameraAnimations.WithLabelValues("dropped").Inc()
		return false
	}
	to := Pose{Position: endPos, Target: endTarget}
	if dur <= 0 {
		cc.setPose(to)
		metrics.CameraAnimations.WithLabelValues("instant").Inc()
		return true
	}
	an := &animation{start: cc.loop.Now(), dur: dur, from: Pose{Position: startPos, Target: startTarget}, to: to}
	cc.anim = an
	an.remove = cc.loop.OnTick(func(now time.Time) { cc.step(an, now) })
	metrics.CameraAnimations.WithLabelValues("started").Inc()
	return true
}

// AnimateFrom animates from the current rig pose to the given pose.
func (cc *Controller) AnimateFrom(to Pose, dur time.Duration) bool {
	if cc.rig == nil {
		return cc.AnimateTo(math32.Vector3{}, to.Position, math32.Vector3{}, to.Target, dur)
	}
	cur := cc.rig.Pose()
	return cc.AnimateTo(cur.Position, to.Position, cur.Target, to.Target, dur)
}

// InstantTo sets the pose at once, cancelling any running animation.
func (cc *Controller) InstantTo(pos, target math32.Vector3) {
	cc.Cancel()
	if cc.rig == nil {
		cc.Logger.Warn("camera: no controls for instant move")
		return
	}
	cc.setPose(Pose{Position: pos, Target: target})
}

// Cancel stops the running animation, leaving the camera where it is.
func (cc *Controller) Cancel() {
	if cc.anim == nil {
		return
	}
	cc.anim.remove()
	cc.anim = nil
}

func (cc *Controller) step(an *animation, now time.Time) {
	if cc.anim != an {
		return
	}
	progress := float32(now.Sub(an.start)) / float32(an.dur)
	if progress >= 1 {
		cc.setPose(an.to)
		cc.Cancel()
		return
	}
	if progress < 0 {
		progress = 0
	}
	cc.setPose(an.from.Lerp(an.to, Ease(progress)))
}

// Ease is the quadratic ease-in-out curve on [0, 1].
func Ease(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
