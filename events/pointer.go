// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "cogentcore.org/core/math32"

// Pointer is a pointer input event on the rendering surface.
type Pointer struct {

	// Where is the position in surface pixels.
	Where math32.Vector2

	// Multi is set when the multi-select modifier (Control or Meta)
	// is held down.
	Multi bool
}

// NewPointer returns a pointer event at the given position.
func NewPointer(x, y float32) Pointer {
	return Pointer{Where: math32.Vec2(x, y)}
}

// DistanceTo returns the distance in pixels between two pointer positions.
func (p Pointer) DistanceTo(other Pointer) float32 {
	return p.Where.Sub(other.Where).Length()
}
