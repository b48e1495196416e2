// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

// scene.go turns scene descriptions into placed primitives: the yaml
// records from load.Scn, triangle meshes from load.Glb, and the
// built-in gallery scene used when no description is given.

import (
	"fmt"
	"os"

	"github.com/gazed/trace"
	"github.com/gazed/trace/load"
	"github.com/gazed/trace/math/lin"
	"github.com/gazed/trace/shape"
)

// loadScene reads a yaml scene description, folds its render settings
// into cfg (explicit command line flags win where both are set), and
// adds its primitives to the scene.
func loadScene(path string, cfg *trace.Config, scn *trace.Scene) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}
	sd, err := load.Scn(data)
	if err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}
	mergeConfig(cfg, &sd.Render)

	for i, rec := range sd.Shapes {
		s, err := buildShape(&rec)
		if err != nil {
			return fmt.Errorf("scene %s shape %d: %w", path, i, err)
		}
		scn.Add(s)
	}
	for _, m := range sd.Meshes {
		placement := placeTransform(m.Scale, m.Rotate, m.At)
		if err := loadMesh(m.File, placement, scn); err != nil {
			return fmt.Errorf("scene %s: %w", path, err)
		}
	}
	return nil
}

// loadMesh imports a glb triangle mesh into the scene under the given
// placement (nil places at the origin).
func loadMesh(path string, placement *lin.T, scn *trace.Scene) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("mesh %s: %w", path, err)
	}
	defer in.Close()
	md, err := load.Glb(in)
	if err != nil {
		return fmt.Errorf("mesh %s: %w", path, err)
	}

	for i := 0; i+2 < len(md.Indices); i += 3 {
		a := md.Positions[md.Indices[i]]
		b := md.Positions[md.Indices[i+1]]
		c := md.Positions[md.Indices[i+2]]
		tri, err := shape.NewTriangle(
			&lin.V3{X: a[0], Y: a[1], Z: a[2]},
			&lin.V3{X: b[0], Y: b[1], Z: b[2]},
			&lin.V3{X: c[0], Y: c[1], Z: c[2]})
		if err != nil {
			continue // skip degenerate triangles quietly.
		}
		if placement != nil {
			tri.TransformSelf(placement)
		}
		scn.Add(tri)
	}
	return nil
}

// mergeConfig folds the scene file settings into cfg. Flags given
// explicitly on the command line keep their values.
func mergeConfig(cfg *trace.Config, rd *load.RenderData) {
	if rd.Res != "" && !flagSet("res") {
		cfg.Res = rd.Res
	}
	if rd.Filter != "" && !flagSet("filter") {
		cfg.Filter = rd.Filter
	}
	if rd.Camera != "" && !flagSet("camera") {
		cfg.Camera = rd.Camera
	}
	if rd.Fov != 0 && !flagSet("fov") {
		cfg.Fov = rd.Fov
	}
	if rd.Scale != 0 && !flagSet("scale") {
		cfg.Scale = rd.Scale
	}
	if rd.LensR != 0 && !flagSet("lens-radius") {
		cfg.LensR = rd.LensR
	}
	if rd.FocalD != 0 && !flagSet("focal-distance") {
		cfg.FocalD = rd.FocalD
	}
	if rd.Samples != 0 && !flagSet("samples") {
		cfg.Samples = rd.Samples
	}
	if rd.Seed != 0 && !flagSet("seed") {
		cfg.Seed = rd.Seed
	}
	if rd.Workers != 0 && !flagSet("workers") {
		cfg.Workers = rd.Workers
	}
	if rd.Output != "" && !flagSet("output") {
		cfg.Output = rd.Output
	}
}

// buildShape turns one yaml record into a placed primitive.
func buildShape(rec *load.ShapeData) (shape.Shape, error) {
	var s shape.Shape
	var err error

	phimax := lin.PIx2
	if rec.Phi != 0 {
		phimax = lin.Rad(rec.Phi)
	}

	switch rec.Type {
	case "sphere":
		radius := defaultTo(rec.Radius, 0.5)
		zmin, zmax := -radius, radius
		if rec.ZMin != 0 || rec.ZMax != 0 {
			zmin, zmax = rec.ZMin, rec.ZMax
		}
		s, err = shape.NewPartialSphere(radius, zmin, zmax, phimax)
	case "cylinder":
		s, err = shape.NewPartialCylinder(defaultTo(rec.Radius, 0.5), defaultTo(rec.Height, 1), phimax)
	case "cone":
		height := defaultTo(rec.Height, 1)
		zmin, zmax := 0.0, height
		if rec.ZMin != 0 || rec.ZMax != 0 {
			zmin, zmax = rec.ZMin, rec.ZMax
		}
		s, err = shape.NewPartialCone(defaultTo(rec.Radius, 0.5), height, zmin, zmax, phimax)
	case "paraboloid":
		height := defaultTo(rec.Height, 1)
		zmin, zmax := 0.0, height
		if rec.ZMin != 0 || rec.ZMax != 0 {
			zmin, zmax = rec.ZMin, rec.ZMax
		}
		s, err = shape.NewPartialParaboloid(defaultTo(rec.Radius, 0.5), height, zmin, zmax, phimax)
	case "disc":
		s, err = shape.NewPartialAnnulus(rec.Inner, defaultTo(rec.Radius, 1), phimax)
	case "plane":
		s, err = shape.NewPlane(defaultTo(rec.Width, 1)/2, defaultTo(rec.Height, 1)/2)
	case "triangle":
		if len(rec.Points) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, has %d", len(rec.Points))
		}
		s, err = shape.NewTriangle(
			&lin.V3{X: rec.Points[0][0], Y: rec.Points[0][1], Z: rec.Points[0][2]},
			&lin.V3{X: rec.Points[1][0], Y: rec.Points[1][1], Z: rec.Points[1][2]},
			&lin.V3{X: rec.Points[2][0], Y: rec.Points[2][1], Z: rec.Points[2][2]})
	case "prism":
		s, err = shape.NewPrism(defaultTo(rec.Width, 1), defaultTo(rec.Height, 1), defaultTo(rec.Depth, 1))
	default:
		return nil, fmt.Errorf("unknown shape type %q", rec.Type)
	}
	if err != nil {
		return nil, err
	}
	if placement := placeTransform(rec.Scale, rec.Rotate, rec.At); placement != nil {
		s.TransformSelf(placement)
	}
	return s, nil
}

// placeTransform builds scale, then rotation, then translation from the
// optional yaml vectors. Nil when no placement was given.
func placeTransform(scale, rotate, at []float64) *lin.T {
	placement := lin.NewT()
	placed := false
	if len(scale) == 3 {
		placement.Mult(placement, lin.NewT().SetScale(scale[0], scale[1], scale[2]))
		placed = true
	}
	if len(rotate) == 3 {
		placement.Mult(placement, lin.NewT().SetPyr(
			lin.Rad(rotate[0]), lin.Rad(rotate[1]), lin.Rad(rotate[2])))
		placed = true
	}
	if len(at) == 3 {
		placement.Mult(placement, lin.NewT().SetTranslate(at[0], at[1], at[2]))
		placed = true
	}
	if !placed {
		return nil
	}
	return placement
}

// defaultTo substitutes a default for unset (zero) yaml values.
func defaultTo(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// gallery builds the default demonstration scene: full and partial
// versions of every quadric lined up at z=7.
func gallery(scn *trace.Scene) {
	add := func(s shape.Shape, err error, moves ...*lin.T) {
		if err != nil {
			return
		}
		for _, m := range moves {
			s.TransformSelf(m)
		}
		scn.Add(s)
	}
	rotX := func(angle float64) *lin.T { return lin.NewT().SetAa(1, 0, 0, angle) }
	rotZ := func(angle float64) *lin.T { return lin.NewT().SetAa(0, 0, 1, angle) }
	at := func(x, y, z float64) *lin.T { return lin.NewT().SetTranslate(x, y, z) }

	sph, err := shape.NewSphere(0.5)
	add(sph, err, at(-5, 0.8, 7))
	psph, err := shape.NewPartialSphere(0.5, -0.3, 0.3, lin.PI)
	add(psph, err, rotX(lin.HalfPi), at(-5, -0.8, 7))

	add(shape.UnitCylinder(), nil, rotX(lin.HalfPi), at(-3, 0.8, 7))
	cyl, err := shape.NewPartialCylinder(0.5, 1, lin.PI)
	add(cyl, err, rotX(lin.HalfPi), at(-3, -0.8, 7))

	ann, err := shape.NewAnnulus(0.1, 0.5)
	add(ann, err, at(-1, 0.8, 7))
	pann, err := shape.NewPartialAnnulus(0.1, 0.5, lin.PI*1.5)
	add(pann, err, rotX(lin.PI/3), at(-1, -0.8, 7))

	add(shape.UnitPlane(), nil, at(1, 0.8, 7))
	pl, err := shape.NewPlane(0.5, 0.5)
	add(pl, err, rotX(lin.PI/3), at(1, -0.8, 7))

	add(shape.UnitCone(), nil, rotX(-lin.HalfPi), at(3, 0.3, 7))
	cone, err := shape.NewPartialCone(0.5, 1, 0.2, 0.8, lin.PI*1.5)
	add(cone, err, rotZ(lin.PI), rotX(-lin.HalfPi), at(3, -1.3, 7))

	add(shape.UnitParaboloid(), nil, rotX(-lin.HalfPi), at(5, 0.3, 7))
	par, err := shape.NewPartialParaboloid(0.5, 1, 0.2, 0.8, lin.PI*1.5)
	add(par, err, rotZ(lin.PI), rotX(-lin.HalfPi), at(5, -1.3, 7))

	pr, err := shape.NewPrism(1, 1, 1)
	add(pr, err, rotX(lin.PI/5), at(0, 0, 7))
}
