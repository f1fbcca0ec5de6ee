// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer assembles the interaction engine of one scene view:
// the frame loop, the bus and every component listening on it, attached
// to a rendering surface and an equipment data source.
//
// A Viewer is driven from two sides. The surface calls [Viewer.Tick] once
// per display frame and forwards pointer input; the application calls the
// remaining methods from any goroutine. Everything that touches the scene
// is handed to the frame loop.
package viewer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/scopos/scopos3d/camera"
	"github.com/scopos/scopos3d/config"
	"github.com/scopos/scopos3d/details"
	"github.com/scopos/scopos3d/equipment"
	"github.com/scopos/scopos3d/events"
	"github.com/scopos/scopos3d/filter"
	"github.com/scopos/scopos3d/focus"
	"github.com/scopos/scopos3d/frame"
	"github.com/scopos/scopos3d/highlight"
	"github.com/scopos/scopos3d/layers"
	"github.com/scopos/scopos3d/resolve"
	"github.com/scopos/scopos3d/selection"
	"github.com/scopos/scopos3d/xyz"
)

// Surface is the rendering surface a viewer is attached to.
type Surface interface {
	selection.Projector

	// RequestRender asks for a new frame to be drawn.
	RequestRender()
}

// Viewer is the interaction engine of one scene view.
type Viewer struct {

	// Config is the configuration the viewer was made with.
	Config *config.Config

	// Logger is used for viewer messages.
	Logger *slog.Logger

	Loop      *frame.Loop
	Bus       *events.Bus
	Tracker   *highlight.Tracker
	Resolver  *resolve.Resolver
	Camera    *camera.Controller
	Filter    *filter.Engine
	Selection *selection.Manager
	Focus     *focus.Focuser
	Details   *details.Panel
	Mask      *layers.Mask

	surface Surface
	picker  *selection.RayPicker
	scene      *xyz.Scene
	version    uint64
	camVersion uint64

	mu             sync.Mutex
	pipelineMode   bool
	showBackground bool
	closed         bool
}

// New returns a new viewer on the given surface, reading equipment data
// from src. A nil cfg uses the default configuration.
func New(cfg *config.Config, src equipment.Source, sf Surface) *Viewer {
	if cfg == nil {
		cfg = config.New()
	}
	vw := &Viewer{Config: cfg, Logger: slog.Default(), surface: sf}
	vw.pipelineMode = cfg.Layers.PipelineMode
	vw.showBackground = cfg.Layers.ShowBackground

	vw.Loop = frame.NewLoop(time.Now())
	vw.Bus = events.NewBus()
	vw.Tracker = highlight.NewTracker()
	vw.Resolver = resolve.New(nil)
	vw.Mask = layers.NewMask(vw.pipelineMode, vw.showBackground)
	vw.picker = &selection.RayPicker{Projector: sf, Mask: vw.Mask}

	vw.Camera = camera.NewController(vw.Loop, nil)
	vw.Focus = focus.NewFocuser(vw.Bus, vw.Camera, vw.Resolver)
	vw.Focus.Duration = config.Millis(cfg.Camera.Duration)
	vw.Focus.MinDistance = cfg.Camera.MinDistance
	vw.Focus.MaxDistance = cfg.Camera.MaxDistance
	vw.Focus.Home = camera.Pose{Position: cfg.Camera.Position, Target: cfg.Camera.Target}

	vw.Filter = filter.NewEngine(src, vw.Loop, vw.Tracker)
	fc := &cfg.Filter
	vw.Filter.OverdueColor = config.Color(fc.OverdueColor)
	vw.Filter.DefectiveColor = config.Color(fc.DefectiveColor)
	vw.Filter.HighlightOpacity = fc.Opacity
	vw.Filter.Unmatched = filter.PolicyFromString(fc.UnmatchedPolicy)
	vw.Filter.BlockColor = config.Color(fc.BlockColor)
	vw.Filter.BlockOpacity = fc.BlockOpacity
	vw.Filter.DimColor = config.Color(fc.DimColor)
	vw.Filter.DimOpacity = fc.DimOpacity
	vw.Filter.OnChange = vw.filterChanged

	vw.Selection = selection.NewManager(vw.Loop, vw.Tracker, vw.Bus, vw.picker, vw.Resolver)
	hc := &cfg.Highlight
	vw.Selection.HoverColor = config.Color(hc.HoverColor)
	vw.Selection.SelectColor = config.Color(hc.SelectColor)
	vw.Selection.HoverDelay = config.Millis(hc.HoverDelay)
	vw.Selection.MoveThreshold = hc.MoveThreshold
	vw.Selection.Selectable = vw.Filter.Selectable

	vw.Details = details.NewPanel(src, vw.Bus)
	return vw
}

// NewFromConfig returns a new viewer whose equipment source is the
// registry client of cfg, with the fallback dataset outside production.
func NewFromConfig(cfg *config.Config, sf Surface) *Viewer {
	rc := &cfg.Registry
	cl := equipment.NewClient(rc.BaseURL, config.Millis(rc.Timeout), rc.RetryMax)
	return New(cfg, equipment.WithFallback(cl, rc.Production), sf)
}

// Tick advances the frame loop to now, and asks the surface for a new
// frame if anything shown changed: a material override, a camera pose
// or the scene. The surface calls it once per frame.
func (vw *Viewer) Tick(now time.Time) {
	vw.Loop.Tick(now)
	vw.Loop.Do(vw.flush)
}

func (vw *Viewer) flush() {
	changed := vw.Tracker.Version() != vw.version || vw.Camera.Version() != vw.camVersion
	vw.version = vw.Tracker.Version()
	vw.camVersion = vw.Camera.Version()
	if vw.scene != nil && vw.scene.NeedsRender {
		vw.scene.NeedsRender = false
		changed = true
	}
	if changed && vw.surface != nil {
		vw.surface.RequestRender()
	}
}

// Scene returns the current scene, or nil. It must be called on the frame.
func (vw *Viewer) Scene() *xyz.Scene {
	return vw.scene
}

// Load decodes a scene description and shows it, see [Viewer.SetScene].
// On error the current scene is kept.
func (vw *Viewer) Load(r io.Reader) error {
	sc, err := xyz.Decode(r)
	if err != nil {
		return err
	}
	vw.SetScene(sc)
	return nil
}

// LoadFile opens a scene description file and shows it.
// On error the current scene is kept.
func (vw *Viewer) LoadFile(filename string) error {
	sc, err := xyz.Open(filename)
	if err != nil {
		vw.Logger.Error("viewer: loading scene", "file", filename, "err", err)
		return err
	}
	vw.SetScene(sc)
	return nil
}

// SetScene replaces the scene: every override on the previous scene is
// reverted, the nodes of the new one are assigned to layers, the active
// filter is applied to it, and [events.SceneReady] is emitted.
func (vw *Viewer) SetScene(sc *xyz.Scene) {
	vw.Loop.Do(func() {
		vw.Camera.Cancel()
		vw.Selection.ClearAll()
		vw.Tracker.ClearAll()
		if sc.Root != nil {
			layers.Assign(sc.Root)
		}
		vw.scene = sc
		vw.picker.Scene = sc
		vw.Resolver.SetScene(sc)
		vw.Filter.SetScene(sc)
		sc.SetNeedsRender()
		vw.Logger.Info("viewer: scene ready", "nodes", sc.NumNodes())
		vw.Bus.Emit(events.SceneReadyEvent{Scene: sc})
	})
}

// ControlsReady attaches the camera controls of the surface.
func (vw *Viewer) ControlsReady(rig camera.Rig) {
	vw.Emit(events.ControlsReadyEvent{Controls: rig})
}

// Emit emits ev on the bus, on the frame.
func (vw *Viewer) Emit(ev events.Event) {
	vw.Loop.Do(func() { vw.Bus.Emit(ev) })
}

// ResetCamera clears the selections and the details panel and returns
// the camera to its home pose.
func (vw *Viewer) ResetCamera() {
	vw.Loop.Do(func() {
		vw.Bus.Emit(events.ResetCameraEvent{})
		vw.Bus.Emit(events.ClearSelectionsEvent{})
	})
}

// SetFilter sets the equipment filter mode, see [filter.Engine.SetMode].
// It blocks while the code set is fetched.
func (vw *Viewer) SetFilter(ctx context.Context, md filter.Modes) error {
	return vw.Filter.SetMode(ctx, md)
}

// filterChanged is called on the frame when the filter mode changes.
func (vw *Viewer) filterChanged(md filter.Modes) {
	vw.Bus.Emit(events.ClearSelectionsEvent{})
	vw.Details.Clear()
}

// SetPipelineMode shows only pipeline objects when on. Turning it on
// clears the selections and the details panel.
func (vw *Viewer) SetPipelineMode(on bool) {
	vw.mu.Lock()
	vw.pipelineMode = on
	bg := vw.showBackground
	vw.mu.Unlock()
	vw.Loop.Do(func() {
		vw.Mask.Apply(on, bg)
		if on {
			vw.Bus.Emit(events.ClearSelectionsEvent{})
			vw.Details.Clear()
		}
		vw.needsRender()
	})
}

// SetShowBackground shows or hides background objects. It has no effect
// in pipeline mode.
func (vw *Viewer) SetShowBackground(show bool) {
	vw.mu.Lock()
	if vw.pipelineMode {
		vw.mu.Unlock()
		return
	}
	vw.showBackground = show
	vw.mu.Unlock()
	vw.Loop.Do(func() {
		vw.Mask.Apply(false, show)
		vw.needsRender()
	})
}

// PipelineMode returns whether only pipeline objects are shown.
func (vw *Viewer) PipelineMode() bool {
	vw.mu.Lock()
	defer vw.mu.Unlock()
	return vw.pipelineMode
}

// PipelineNames returns the names of the pipeline objects of the scene.
func (vw *Viewer) PipelineNames() []string {
	var names []string
	vw.Loop.Do(func() {
		if vw.scene != nil && vw.scene.Root != nil {
			names = layers.PipelineNames(vw.scene.Root)
		}
	})
	return names
}

func (vw *Viewer) needsRender() {
	if vw.scene != nil {
		vw.scene.SetNeedsRender()
	}
}

// PointerMove forwards a pointer move from the surface.
func (vw *Viewer) PointerMove(p events.Pointer) {
	vw.Loop.Do(func() { vw.Selection.PointerMove(p) })
}

// PointerDown forwards a pointer press from the surface.
func (vw *Viewer) PointerDown(p events.Pointer) {
	vw.Loop.Do(func() { vw.Selection.PointerDown(p) })
}

// PointerUp forwards a pointer release from the surface.
func (vw *Viewer) PointerUp(p events.Pointer) {
	vw.Loop.Do(func() { vw.Selection.PointerUp(p) })
}

// Close tears the viewer down: the filter is turned off, fetches in
// flight are dropped, every bus registration, timer and animation is
// cancelled and every material override is reverted. It is safe to call
// more than once, but must not be called on the frame.
func (vw *Viewer) Close() {
	vw.mu.Lock()
	if vw.closed {
		vw.mu.Unlock()
		return
	}
	vw.closed = true
	vw.mu.Unlock()

	vw.Filter.Clear()
	vw.Details.Close()
	vw.Loop.Do(func() {
		vw.Selection.Close()
		vw.Focus.Close()
		vw.Tracker.ClearAll()
		vw.needsRender()
	})
}
