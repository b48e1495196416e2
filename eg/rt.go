// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"log"

	"github.com/gazed/trace"
	"github.com/gazed/trace/camera"
	"github.com/gazed/trace/filter"
	"github.com/gazed/trace/math/lin"
	"github.com/gazed/trace/sample"
	"github.com/gazed/trace/shape"
)

// rt ray traces a small gallery at VGA with the production defaults.
// Expected output: a row of checkered quadrics against a black
// background, each silhouette matching its primitive, the checker
// squares following each surface's curvature.
func rt() {
	scn := trace.NewScene()
	rotX := func(angle float64) *lin.T { return lin.NewT().SetAa(1, 0, 0, angle) }
	at := func(x, y, z float64) *lin.T { return lin.NewT().SetTranslate(x, y, z) }
	add := func(s shape.Shape, err error, moves ...*lin.T) {
		if err != nil {
			log.Fatalf("rt: %s", err)
		}
		for _, m := range moves {
			s.TransformSelf(m)
		}
		scn.Add(s)
	}

	sph, err := shape.NewSphere(0.5)
	add(sph, err, at(-2.4, 0.6, 7))
	psph, err := shape.NewPartialSphere(0.5, -0.3, 0.3, lin.PI)
	add(psph, err, rotX(lin.HalfPi), at(-2.4, -1.2, 7))
	cyl, err := shape.NewCylinder(0.5, 1)
	add(cyl, err, rotX(lin.HalfPi), at(-0.8, 0.6, 7))
	ann, err := shape.NewAnnulus(0.1, 0.5)
	add(ann, err, at(0.8, 0.6, 7))
	cone, err := shape.NewCone(0.5, 1)
	add(cone, err, rotX(-lin.HalfPi), at(2.4, 0.1, 7))
	par, err := shape.NewParaboloid(0.5, 1)
	add(par, err, rotX(-lin.HalfPi), at(0, -1.2, 7))

	film := trace.NewFilmVGA()
	cam, err := camera.NewPerspective(lin.Rad(60), float64(film.W)/float64(film.H))
	if err != nil {
		log.Fatalf("rt: %s", err)
	}
	filt := filter.NewCaching(filter.NewGaussian(1.4, 1.4, 0.25))

	r := trace.NewRenderer(film, cam, filt, sample.NewFactory(16, 0), scn)
	r.Render()
	if err := film.Save("out/rt.png"); err != nil {
		log.Fatalf("rt: %s", err)
	}
	log.Printf("rt: wrote out/rt.png")
}
