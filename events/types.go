// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events is the interaction signal bus of a viewer and the
// pointer input events that feed it. The vocabulary of signals is closed:
// every signal is one of the event types declared here.
package events

//go:generate core generate

import (
	"time"

	"github.com/scopos/scopos3d/camera"
	"github.com/scopos/scopos3d/xyz"
)

// Types is the type of a signal on the [Bus].
type Types int32 //enums:enum -transform kebab

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// ClearSelections asks every selection holder to drop its selection
	// and hover state.
	ClearSelections

	// ResetCamera asks for the camera to return to the default view.
	// Selections are cleared as well.
	ResetCamera

	// OpenEquipmentDetails asks the details panel to show the
	// equipment record with the given code.
	OpenEquipmentDetails

	// FocusOnObject asks the camera to frame the named object.
	FocusOnObject

	// SelectObject asks for the named object to become the selection.
	SelectObject

	// SelectAndFocusObject selects the named object and then focuses on it.
	SelectAndFocusObject

	// ControlsReady announces the camera controls handle.
	ControlsReady

	// SceneReady announces a newly loaded scene.
	SceneReady
)

// Event is a signal carried by the [Bus].
type Event interface {
	// Type returns the type of the signal.
	Type() Types
}

// ClearSelectionsEvent is the [ClearSelections] signal.
type ClearSelectionsEvent struct{}

// ResetCameraEvent is the [ResetCamera] signal.
type ResetCameraEvent struct{}

// OpenEquipmentDetailsEvent is the [OpenEquipmentDetails] signal.
type OpenEquipmentDetailsEvent struct {
	// Code is the equipment model code, usually a node name.
	Code string
}

// FocusOnObjectEvent is the [FocusOnObject] signal.
type FocusOnObjectEvent struct {
	// ObjectName is resolved against the scene.
	ObjectName string

	// Instant moves the camera without animation.
	Instant bool

	// Duration overrides the configured animation duration when non-zero.
	Duration time.Duration
}

// SelectObjectEvent is the [SelectObject] signal.
type SelectObjectEvent struct {
	ObjectName string
}

// SelectAndFocusObjectEvent is the [SelectAndFocusObject] signal.
type SelectAndFocusObjectEvent struct {
	ObjectName string
}

// ControlsReadyEvent is the [ControlsReady] signal.
type ControlsReadyEvent struct {
	// Controls is the camera controls handle.
	Controls camera.Rig
}

// SceneReadyEvent is the [SceneReady] signal.
type SceneReadyEvent struct {
	Scene *xyz.Scene
}

func (ClearSelectionsEvent) Type() Types      { return ClearSelections }
func (ResetCameraEvent) Type() Types          { return ResetCamera }
func (OpenEquipmentDetailsEvent) Type() Types { return OpenEquipmentDetails }
func (FocusOnObjectEvent) Type() Types        { return FocusOnObject }
func (SelectObjectEvent) Type() Types         { return SelectObject }
func (SelectAndFocusObjectEvent) Type() Types { return SelectAndFocusObject }
func (ControlsReadyEvent) Type() Types        { return ControlsReady }
func (SceneReadyEvent) Type() Types           { return SceneReady }
