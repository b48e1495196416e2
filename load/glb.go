// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// glb.go imports triangle geometry from a subset of the GLTF
// specification.

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// MeshData is an indexed triangle soup: every three indices form one
// triangle over the position list.
type MeshData struct {
	Positions [][3]float64
	Indices   []uint32
}

// Triangles returns the number of triangles in the mesh.
func (m *MeshData) Triangles() int { return len(m.Indices) / 3 }

// Glb reads a binary gltf.Document holding a single mesh model and
// returns its triangles. The single model limitation is enforced as
// follows:
//   - one Mesh
//   - triangle primitives only
//
// These conform to a single model exported from Blender. Materials,
// textures, and the node hierarchy are ignored: only geometry matters
// to an intersection test.
func Glb(r io.Reader) (*MeshData, error) {
	doc := &gltf.Document{}
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("Glb: decode %w", err)
	}
	if len(doc.Meshes) != 1 {
		return nil, fmt.Errorf("Glb: expecting one gltf Mesh, have %d", len(doc.Meshes))
	}

	mesh := doc.Meshes[0]
	md := &MeshData{}
	for _, prim := range mesh.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			return nil, fmt.Errorf("Glb: expecting triangle primitives")
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return nil, fmt.Errorf("Glb: primitive missing positions")
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("Glb: positions %w", err)
		}
		base := uint32(len(md.Positions))
		for _, p := range positions {
			md.Positions = append(md.Positions,
				[3]float64{float64(p[0]), float64(p[1]), float64(p[2])})
		}

		if prim.Indices == nil {
			// unindexed: positions come in triangle order.
			for i := 0; i < len(positions); i++ {
				md.Indices = append(md.Indices, base+uint32(i))
			}
			continue
		}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("Glb: indices %w", err)
		}
		for _, ix := range indices {
			md.Indices = append(md.Indices, base+ix)
		}
	}
	if md.Triangles() == 0 {
		return nil, fmt.Errorf("Glb: mesh has no triangles")
	}
	return md, nil
}
