// Copyright (c) 2026, The Scopos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
)

// A scene description is the YAML (or JSON) form of a decoded model,
// as produced by the external model loader:
//
//	name: KS-17
//	children:
//	  - name: "3192-3193"
//	    mesh: {min: [0, 0, 0], max: [1, 2, 1]}
//	    materials:
//	      - {kind: standard, color: "#808080", roughness: 0.6}
type nodeDesc struct {
	Name      string         `yaml:"name"`
	Mesh      *meshDesc      `yaml:"mesh,omitempty"`
	Materials []materialDesc `yaml:"materials,omitempty"`
	Multi     bool           `yaml:"multi,omitempty"`
	Children  []nodeDesc     `yaml:"children,omitempty"`
}

type meshDesc struct {
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

type materialDesc struct {
	Name              string   `yaml:"name,omitempty"`
	Kind              string   `yaml:"kind"`
	Color             string   `yaml:"color,omitempty"`
	Opacity           *float32 `yaml:"opacity,omitempty"`
	Transparent       bool     `yaml:"transparent,omitempty"`
	Emissive          string   `yaml:"emissive,omitempty"`
	EmissiveIntensity float32  `yaml:"emissiveIntensity,omitempty"`
	Roughness         *float32 `yaml:"roughness,omitempty"`
	Metalness         float32  `yaml:"metalness,omitempty"`
}

// Decode reads a scene description from r and returns the scene.
func Decode(r io.Reader) (*Scene, error) {
	var desc nodeDesc
	if err := yaml.NewDecoder(r).Decode(&desc); err != nil {
		return nil, fmt.Errorf("xyz.Decode: %w", err)
	}
	root, err := desc.build(nil)
	if err != nil {
		return nil, err
	}
	return NewScene(root), nil
}

// Open reads the scene description in the given file.
func Open(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

func (nd *nodeDesc) build(parent *Node) (*Node, error) {
	n := NewNode(parent, nd.Name)
	n.MultiMaterial = nd.Multi
	if nd.Mesh != nil {
		mn, mx := nd.Mesh.Min, nd.Mesh.Max
		if len(mn) != 3 || len(mx) != 3 {
			return nil, fmt.Errorf("node %q: mesh min and max need 3 coordinates", nd.Name)
		}
		n.Mesh = &Mesh{Name: nd.Name, BBox: math32.B3(mn[0], mn[1], mn[2], mx[0], mx[1], mx[2])}
	}
	for i := range nd.Materials {
		mt, err := nd.Materials[i].build()
		if err != nil {
			return nil, fmt.Errorf("node %q material %d: %w", nd.Name, i, err)
		}
		n.Materials = append(n.Materials, mt)
	}
	for i := range nd.Children {
		if _, err := nd.Children[i].build(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (md *materialDesc) build() (*Material, error) {
	mt := &Material{Name: md.Name, Kind: MaterialKindFromString(md.Kind)}
	mt.Defaults()
	if md.Color != "" {
		c, err := colors.FromHex(md.Color)
		if err != nil {
			return nil, err
		}
		mt.Color = c
	}
	if md.Emissive != "" {
		c, err := colors.FromHex(md.Emissive)
		if err != nil {
			return nil, err
		}
		mt.Emissive = c
	}
	if md.Opacity != nil {
		mt.Opacity = *md.Opacity
	}
	if md.Roughness != nil {
		mt.Roughness = *md.Roughness
	}
	mt.Transparent = md.Transparent
	mt.EmissiveIntensity = md.EmissiveIntensity
	mt.Metalness = md.Metalness
	return mt, nil
}
