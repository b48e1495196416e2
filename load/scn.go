// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// scn.go reads a yaml scene description from disk. Scene descriptions
// pair the render settings with a primitive list; the yaml is string
// based so that it is easy to read and write by hand:
//
//	render:
//	  res: 720p
//	  camera: perspective
//	  fov: 60
//	  samples: 16
//	  output: out/gallery.png
//	shapes:
//	  - type: sphere
//	    radius: 0.5
//	    rotate: [90, 0, 0]
//	    at: [-5, 0.8, 7]
//	  - type: cylinder
//	    radius: 0.5
//	    height: 1
//	    phi: 180
//	    at: [-3, 0.8, 7]

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SceneData is a complete scene description: the render settings plus
// the primitives to build.
type SceneData struct {
	Render RenderData  `yaml:"render"`
	Shapes []ShapeData `yaml:"shapes"`
	Meshes []MeshRef   `yaml:"meshes"`
}

// RenderData mirrors the CLI configuration surface.
type RenderData struct {
	Res     string  `yaml:"res"`
	Filter  string  `yaml:"filter"`
	Camera  string  `yaml:"camera"`
	Fov     float64 `yaml:"fov"`
	Scale   float64 `yaml:"scale"`
	LensR   float64 `yaml:"lensRadius"`
	FocalD  float64 `yaml:"focalDistance"`
	Samples int     `yaml:"samples"`
	Seed    int64   `yaml:"seed"`
	Workers int     `yaml:"workers"`
	Output  string  `yaml:"output"`
}

// ShapeData describes one primitive. Type selects the primitive and
// decides which parameters apply; angles are in degrees. Zero values
// select each primitive's unit form. The transform applies scale, then
// rotation, then translation.
type ShapeData struct {
	Type string `yaml:"type"` // sphere cylinder cone paraboloid disc plane triangle prism.

	Radius float64 `yaml:"radius"`
	Inner  float64 `yaml:"inner"`  // disc inner radius.
	Height float64 `yaml:"height"` // cylinder, cone, paraboloid.
	Width  float64 `yaml:"width"`  // plane, prism.
	Depth  float64 `yaml:"depth"`  // prism.
	ZMin   float64 `yaml:"zmin"`   // partial extent window.
	ZMax   float64 `yaml:"zmax"`
	Phi    float64 `yaml:"phi"` // partial azimuth in degrees.

	Points [][3]float64 `yaml:"points"` // triangle corners.

	Scale  []float64 `yaml:"scale"`  // [sx sy sz].
	Rotate []float64 `yaml:"rotate"` // [pitch yaw roll] degrees.
	At     []float64 `yaml:"at"`     // [x y z] translation.
}

// MeshRef points at a binary glTF file to import as triangles.
type MeshRef struct {
	File   string    `yaml:"file"`
	Scale  []float64 `yaml:"scale"`
	Rotate []float64 `yaml:"rotate"`
	At     []float64 `yaml:"at"`
}

// Scn parses a yaml scene description.
func Scn(data []byte) (*SceneData, error) {
	sd := &SceneData{}
	if err := yaml.Unmarshal(data, sd); err != nil {
		return nil, fmt.Errorf("Scn: yaml %w", err)
	}
	for i, s := range sd.Shapes {
		if s.Type == "" {
			return nil, fmt.Errorf("Scn: shape %d missing type", i)
		}
	}
	for i, m := range sd.Meshes {
		if m.File == "" {
			return nil, fmt.Errorf("Scn: mesh %d missing file", i)
		}
	}
	return sd, nil
}
