// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of a viewer: highlight
// colors and timings, filter appearance, camera limits and the home
// pose, and the equipment registry connection.
package config

import (
	"fmt"
	"image/color"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Config is the main config struct of a viewer.
type Config struct {

	// Includes are other config files, opened before this one so that
	// this file overrides them. Paths are relative to this file.
	Includes []string

	// Registry is the equipment registry connection.
	Registry Registry

	// Highlight is the hover and selection appearance.
	Highlight Highlight

	// Filter is the equipment filter appearance.
	Filter Filter

	// Camera is the camera motion configuration.
	Camera Camera

	// Layers is the initial layer visibility.
	Layers Layers
}

type Registry struct {

	// BaseURL is the URL of the equipment registry server.
	BaseURL string `default:"http://localhost:8080"`

	// Production disables the fallback dataset: registry failures
	// are reported as they are.
	Production bool

	// Timeout is the request timeout in milliseconds.
	Timeout int `default:"30000"`

	// RetryMax is the maximum number of retries of a failed request.
	RetryMax int `default:"2"`
}

type Highlight struct {

	// HoverColor is the tint of the hovered object.
	HoverColor string `default:"#ff6000"`

	// SelectColor is the tint of selected objects.
	SelectColor string `default:"#ff0000"`

	// HoverDelay is how long in milliseconds the pointer must rest on
	// an object before it is hovered.
	HoverDelay int `default:"100"`

	// MoveThreshold is the pointer travel in pixels that turns a click
	// into a drag.
	MoveThreshold float32 `default:"5"`
}

type Filter struct {

	// OverdueColor is the color of matched objects in overdue mode.
	OverdueColor string `default:"#ff0000"`

	// DefectiveColor is the color of matched objects in defective mode.
	DefectiveColor string `default:"#ffa500"`

	// Opacity is the opacity of matched objects.
	Opacity float32 `default:"0.7"`

	// UnmatchedPolicy is how unmatched objects are shown: block or dim.
	UnmatchedPolicy string `default:"block"`

	BlockColor   string  `default:"#444444"`
	BlockOpacity float32 `default:"0.3"`
	DimColor     string  `default:"#888888"`
	DimOpacity   float32 `default:"0.1"`
}

type Camera struct {

	// Position is the home position of the camera.
	Position math32.Vector3

	// Target is the home target of the camera.
	Target math32.Vector3

	// Duration is the length of camera animations in milliseconds.
	Duration int `default:"800"`

	// MinDistance is the closest the camera gets to a focused object.
	MinDistance float32 `default:"1"`

	// MaxDistance is the farthest the camera gets from a focused object.
	MaxDistance float32 `default:"200"`
}

type Layers struct {

	// PipelineMode shows only pipeline objects.
	PipelineMode bool

	// ShowBackground shows background objects outside of pipeline mode.
	ShowBackground bool `default:"true"`
}

// New returns a new config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Defaults sets all fields to their default values.
func (cfg *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	cfg.Camera.Position = math32.Vec3(11, 40, -33)
	cfg.Camera.Target = math32.Vec3(36, 14, 0.2)
}

// Validate checks that colors parse and that numeric settings are in range.
func (cfg *Config) Validate() error {
	var errs []error
	for _, hex := range []string{cfg.Highlight.HoverColor, cfg.Highlight.SelectColor,
		cfg.Filter.OverdueColor, cfg.Filter.DefectiveColor, cfg.Filter.BlockColor, cfg.Filter.DimColor} {
		if _, err := colors.FromHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("config: color %q: %w", hex, err))
		}
	}
	if cfg.Camera.MinDistance <= 0 || cfg.Camera.MaxDistance < cfg.Camera.MinDistance {
		errs = append(errs, fmt.Errorf("config: camera distance range [%g, %g] is invalid", cfg.Camera.MinDistance, cfg.Camera.MaxDistance))
	}
	switch cfg.Filter.UnmatchedPolicy {
	case "block", "dim":
	default:
		errs = append(errs, fmt.Errorf("config: unmatched policy %q is not block or dim", cfg.Filter.UnmatchedPolicy))
	}
	return errors.Join(errs...)
}

// Color returns the color for a hex string, logging an error and
// returning opaque black if it does not parse.
func Color(hex string) color.RGBA {
	c, err := colors.FromHex(hex)
	if errors.Log(err) != nil {
		return color.RGBA{A: 255}
	}
	return c
}

// Millis returns the duration for a number of milliseconds.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
