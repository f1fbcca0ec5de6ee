// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"github.com/jinzhu/copier"
)

// MaterialKinds is the closed set of material variants the engine
// knows how to tint. Anything a loader cannot map is [KindUnknown].
type MaterialKinds int32 //enums:enum -trim-prefix Kind -transform lower

const (
	// KindUnknown is any material that is not recognized;
	// highlights replace it with a flat translucent material.
	KindUnknown MaterialKinds = iota

	// KindBasic is an unlit flat-colored material.
	KindBasic

	// KindStandard is a lit physically based material with
	// roughness, metalness and emissive color.
	KindStandard
)

// MaterialKindFromString returns the kind with the given name,
// [KindUnknown] for anything else.
func MaterialKindFromString(s string) MaterialKinds {
	var k MaterialKinds
	if k.SetString(s) != nil {
		return KindUnknown
	}
	return k
}

// Material describes the surface properties of a mesh node.
// A material may hold GPU resources: [Material.Dispose] releases them
// and must be called exactly by whoever created the material.
type Material struct {

	// Name is an optional name from the loaded model.
	Name string

	// Kind is the variant of the material, resolved once when the
	// material is created or decoded.
	Kind MaterialKinds

	// Color is the main color of the surface.
	Color color.RGBA

	// Opacity is the overall opacity in [0,1], used when Transparent.
	Opacity float32

	// Transparent enables blending with Opacity.
	Transparent bool

	// Emissive is the color the surface emits independent of lighting.
	// Only used by [KindStandard].
	Emissive color.RGBA

	// EmissiveIntensity scales Emissive.
	EmissiveIntensity float32

	// Roughness of a [KindStandard] surface.
	Roughness float32

	// Metalness of a [KindStandard] surface.
	Metalness float32

	// DepthWrite enables writing to the depth buffer.
	DepthWrite bool

	// OnDispose is called once when the material is disposed,
	// to release renderer resources bound to it.
	OnDispose func(mt *Material) `copier:"-"`

	disposed bool
}

// Defaults sets default material parameters.
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Opacity = 1
	mt.Roughness = 1
	mt.DepthWrite = true
}

// NewBasicMaterial returns a new [KindBasic] material with the given color.
func NewBasicMaterial(clr color.RGBA) *Material {
	mt := &Material{Kind: KindBasic}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// NewStandardMaterial returns a new [KindStandard] material with the given color.
func NewStandardMaterial(clr color.RGBA) *Material {
	mt := &Material{Kind: KindStandard}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// NewFlatMaterial returns a flat translucent [KindBasic] material,
// as used for highlights.
func NewFlatMaterial(clr color.RGBA, opacity float32) *Material {
	mt := NewBasicMaterial(clr)
	mt.Transparent = true
	mt.Opacity = opacity
	return mt
}

// Clone returns a new material with the same parameters and
// the same dispose hook. The clone is not disposed.
func (mt *Material) Clone() *Material {
	cl := &Material{}
	errors.Log(copier.Copy(cl, mt))
	cl.OnDispose = mt.OnDispose
	return cl
}

// Dispose releases the resources of the material. It is safe to call
// more than once; the hook only runs the first time.
func (mt *Material) Dispose() {
	if mt.disposed {
		return
	}
	mt.disposed = true
	if mt.OnDispose != nil {
		mt.OnDispose(mt)
	}
}

// IsDisposed returns true after [Material.Dispose] has been called.
func (mt *Material) IsDisposed() bool {
	return mt.disposed
}

// IsTransparent returns true if the material blends with what is behind it.
func (mt *Material) IsTransparent() bool {
	return mt.Transparent && mt.Opacity < 1
}

func (mt *Material) String() string {
	return fmt.Sprintf("%s{Color: %v, Opacity: %g}", mt.Kind, mt.Color, mt.Opacity)
}
