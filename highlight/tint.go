// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"image/color"

	"github.com/scopos/scopos3d/xyz"
)

// Tint returns a new material showing clr in place of orig, by the kind
// of orig: a basic material is cloned with the new color, a standard
// material also glows with a fraction of it, and anything else is
// replaced by a flat translucent material. The clone keeps transparency
// and roughness of the original.
func Tint(orig *xyz.Material, clr color.RGBA) *xyz.Material {
	kind := xyz.KindUnknown
	if orig != nil {
		kind = orig.Kind
	}
	switch kind {
	case xyz.KindBasic:
		mt := orig.Clone()
		mt.Color = clr
		return mt
	case xyz.KindStandard:
		mt := orig.Clone()
		mt.Color = clr
		mt.Emissive = scaleColor(clr, TintEmissiveScale)
		mt.EmissiveIntensity = TintEmissiveIntensity
		return mt
	default:
		return xyz.NewFlatMaterial(clr, FallbackOpacity)
	}
}

func scaleColor(clr color.RGBA, f float32) color.RGBA {
	return color.RGBA{R: uint8(float32(clr.R) * f), G: uint8(float32(clr.G) * f), B: uint8(float32(clr.B) * f), A: clr.A}
}
