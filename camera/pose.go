// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides smooth camera motion toward a target pose:
// eased animations driven by the frame loop, instant moves, and the
// computation of a pose that frames a bounding box.
package camera

import (
	"fmt"
	"sync"

	"cogentcore.org/core/math32"
)

// Pose is the position of the camera and the point it looks at.
type Pose struct {
	Position math32.Vector3
	Target   math32.Vector3
}

func (ps Pose) String() string {
	return fmt.Sprintf("pos: %v target: %v", ps.Position, ps.Target)
}

// Lerp returns the pose interpolated toward other by alpha,
// component-wise on both position and target.
func (ps Pose) Lerp(other Pose, alpha float32) Pose {
	return Pose{Position: ps.Position.Lerp(other.Position, alpha), Target: ps.Target.Lerp(other.Target, alpha)}
}

// ViewVector is the vector between the camera position and target.
func (ps Pose) ViewVector() math32.Vector3 {
	return ps.Position.Sub(ps.Target)
}

// Rig is the camera controls handle of a rendering surface.
// The controller reads and writes poses through it.
type Rig interface {
	Pose() Pose
	SetPose(ps Pose)
}

// Basic is an in-memory [Rig], used by headless viewers and tests.
type Basic struct {
	mu   sync.Mutex
	pose Pose

	// Updates is the number of SetPose calls.
	Updates int
}

// NewBasic returns a new basic rig at the given pose.
func NewBasic(ps Pose) *Basic {
	return &Basic{pose: ps}
}

func (bs *Basic) Pose() Pose {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return bs.pose
}

func (bs *Basic) SetPose(ps Pose) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.pose = ps
	bs.Updates++
}
