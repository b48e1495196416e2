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

// cm renders the same two-sphere scene through each camera model.
// Expected output: perspective shows the near sphere larger, ortho
// shows both the same size, the lens camera blurs the sphere off the
// focal plane, and the hemisphere and sphere cameras bend the scene
// into their angular mappings.
func cm() {
	cams := map[string]func() camera.Camera{
		"perspective": func() camera.Camera {
			c, _ := camera.NewPerspective(lin.Rad(60), 4.0/3)
			return c
		},
		"ortho": func() camera.Camera {
			c, _ := camera.NewOrthographic(2, 4.0/3)
			return c
		},
		"lens": func() camera.Camera {
			c, _ := camera.NewPerspectiveLens(lin.Rad(60), 4.0/3, 0.3, 5)
			return c
		},
		"hemisphere": func() camera.Camera { return camera.NewHemisphere() },
		"sphere":     func() camera.Camera { return camera.NewSphere() },
	}

	for name, build := range cams {
		scn := trace.NewScene()
		near, _ := shape.NewSphere(0.5)
		near.TransformSelf(lin.NewT().SetTranslate(-0.8, 0, 5))
		far, _ := shape.NewSphere(0.5)
		far.TransformSelf(lin.NewT().SetTranslate(0.8, 0, 9))
		scn.Add(near)
		scn.Add(far)

		film := trace.NewFilm(320, 240)
		filt := filter.NewCaching(filter.NewGaussian(1.4, 1.4, 0.25))
		r := trace.NewRenderer(film, build(), filt, sample.NewFactory(16, 1), scn)
		r.Render()

		path := "out/camera_" + name + ".png"
		if err := film.Save(path); err != nil {
			log.Fatalf("cm: %s", err)
		}
		log.Printf("cm: wrote %s", path)
	}
}
