// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import "cogentcore.org/core/math32"

// FocusDistanceScale is the multiple of the largest box dimension
// at which [FocusPose] places the camera.
const FocusDistanceScale = 2.5

// DefaultDirection is the camera direction used when the current
// view direction is degenerate.
var DefaultDirection = math32.Vec3(0, 0.3, 1)

// FocusPose returns the pose that frames box: looking at its center from
// a distance of its largest dimension times [FocusDistanceScale], clamped
// to [minDist, maxDist]. The direction from the center to the camera is
// kept from the current pose, unless the camera is within 0.1 of the
// center, in which case [DefaultDirection] is used.
func FocusPose(current Pose, box math32.Box3, minDist, maxDist float32) Pose {
	center := box.Center()
	sz := box.Size()
	maxDim := math32.Max(sz.X, math32.Max(sz.Y, sz.Z))
	dist := math32.Min(math32.Max(maxDim*FocusDistanceScale, minDist), maxDist)

	dir := current.Position.Sub(center)
	if dir.Length() < 0.1 {
		dir = DefaultDirection
	}
	dir = dir.Normal()
	return Pose{Position: center.Add(dir.MulScalar(dist)), Target: center}
}
