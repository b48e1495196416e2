// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package trace is an offline CPU ray tracer: it intersects camera rays
// with analytically defined primitives and reconstructs a grayscale
// image through a sampling filter. Scenes are built procedurally from
// the shape package, viewed through a camera, sampled by the sample
// package, and accumulated on a Film which exports the finished image.
//
// The render is tile parallel: a fixed worker pool shares the immutable
// camera, filter, and scene while the film arbitrates concurrent pixel
// splats. A minimal render is:
//
//	film := trace.NewFilmVGA()
//	cam, _ := camera.NewPerspective(lin.Rad(60), 4.0/3)
//	filt := filter.NewCaching(filter.NewGaussian(1.4, 1.4, 0.25))
//	scn := trace.NewScene()
//	sph, _ := shape.NewSphere(0.5)
//	sph.TransformSelf(lin.NewT().SetTranslate(0, 0, 5))
//	scn.Add(sph)
//	trace.NewRenderer(film, cam, filt, sample.NewFactory(16, 0), scn).Render()
//	film.Save("out/sphere.png")
//
// Package trace supports the trace command in cmd/trace and the
// examples in eg.
package trace
