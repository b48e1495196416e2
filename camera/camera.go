// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package camera generates the primary rays that sample a scene. Every
// camera maps a normalized film coordinate (x,y) in [-1,1]² to a world
// space ray: (0,0) is the film center, +x right, +y up. Cameras carry a
// transform placing them in the world; rays are cast in camera space and
// then pushed through the forward transform.
//
// Package camera is provided as part of the trace (ray trace) renderer.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/gazed/trace/math/lin"
)

// ErrSetup is wrapped by camera constructors handed unusable parameters,
// eg. a field of view outside (0, π).
var ErrSetup = errors.New("bad camera setup")

// Camera turns normalized film coordinates into world space rays.
// Implementations must return a finite ray with a non-zero direction.
// Cameras are safe for concurrent Cast calls once placed.
type Camera interface {

	// Cast fills r with the world space ray for normalized film
	// coordinate (x, y) in [-1,1]². The filled ray r is returned.
	Cast(x, y float64, r *lin.Ray) *lin.Ray

	// Transform exposes the camera placement. Read-only: compose
	// updates through TransformSelf.
	Transform() *lin.T

	// TransformSelf moves the camera by applying transform t after its
	// existing placement.
	TransformSelf(t *lin.T)
}

// pose is the placement shared by every camera.
type pose struct {
	tr lin.T
}

// Transform exposes the camera placement.
func (p *pose) Transform() *lin.T { return &p.tr }

// TransformSelf composes t after the current placement.
func (p *pose) TransformSelf(t *lin.T) { p.tr.Mult(&p.tr, t) }

// ============================================================================
// Perspective

// Perspective casts rays from a single eye point through a virtual film
// plane at z=1: the pinhole camera. Directions are normalized.
type Perspective struct {
	pose
	fovY    float64 // vertical field of view in radians.
	fovXTan float64 // precomputed half angle tangents.
	fovYTan float64
}

// NewPerspective creates a pinhole camera with the given vertical field
// of view in radians and film aspect ratio (width over height).
func NewPerspective(fovY, aspect float64) (*Perspective, error) {
	if fovY <= 0 || fovY >= lin.PI {
		return nil, fmt.Errorf("perspective fov %g: %w", fovY, ErrSetup)
	}
	if aspect <= 0 {
		return nil, fmt.Errorf("perspective aspect %g: %w", aspect, ErrSetup)
	}
	c := &Perspective{fovY: fovY}
	c.fovYTan = math.Tan(fovY / 2)
	c.fovXTan = c.fovYTan * aspect
	c.tr.SetI()
	return c, nil
}

// Cast returns the normalized eye ray through film coordinate (x, y).
func (c *Perspective) Cast(x, y float64, r *lin.Ray) *lin.Ray {
	r.Orig.SetS(0, 0, 0)
	r.Dir.SetS(x*c.fovXTan, y*c.fovYTan, 1)
	r.Dir.Unit()
	return c.tr.AppRay(r)
}

// ============================================================================
// Orthographic

// Orthographic casts parallel +z rays from a scaled film rectangle:
// no perspective foreshortening.
type Orthographic struct {
	pose
	scale  float64 // world height of half the film.
	aspect float64
}

// NewOrthographic creates a parallel projection camera. Scale is half
// the world space height covered by the film.
func NewOrthographic(scale, aspect float64) (*Orthographic, error) {
	if scale <= 0 || aspect <= 0 {
		return nil, fmt.Errorf("orthographic scale %g aspect %g: %w", scale, aspect, ErrSetup)
	}
	c := &Orthographic{scale: scale, aspect: aspect}
	c.tr.SetI()
	return c, nil
}

// Cast returns the parallel ray through film coordinate (x, y).
func (c *Orthographic) Cast(x, y float64, r *lin.Ray) *lin.Ray {
	r.Orig.SetS(x*c.scale*c.aspect, y*c.scale, 0)
	r.Dir.SetS(0, 0, 1)
	return c.tr.AppRay(r)
}

// ============================================================================
// Hemisphere and Sphere

// Hemisphere maps the film square onto the forward hemisphere:
// x sweeps ±90° of azimuth and y ±90° of elevation.
//
//	[-1,-1] -> (0,-1,0)   [0,0] -> (0,0,1)   [1,1] -> (0,1,0)
type Hemisphere struct {
	pose
}

// NewHemisphere creates a hemispherical camera.
func NewHemisphere() *Hemisphere {
	c := &Hemisphere{}
	c.tr.SetI()
	return c
}

// Cast returns the hemisphere ray for film coordinate (x, y).
func (c *Hemisphere) Cast(x, y float64, r *lin.Ray) *lin.Ray {
	h := x * lin.HalfPi
	v := y * lin.HalfPi
	r.Orig.SetS(0, 0, 0)
	r.Dir.SetS(math.Sin(h)*math.Cos(v), math.Sin(v), math.Cos(h)*math.Cos(v))
	return c.tr.AppRay(r)
}

// Sphere maps the film square onto the full sphere: x sweeps ±180° of
// azimuth and y ±90° of elevation, an equirectangular panorama.
type Sphere struct {
	pose
}

// NewSphere creates a spherical panorama camera.
func NewSphere() *Sphere {
	c := &Sphere{}
	c.tr.SetI()
	return c
}

// Cast returns the panorama ray for film coordinate (x, y).
func (c *Sphere) Cast(x, y float64, r *lin.Ray) *lin.Ray {
	h := x * lin.PI
	v := y * lin.HalfPi
	r.Orig.SetS(0, 0, 0)
	r.Dir.SetS(math.Sin(h)*math.Cos(v), math.Sin(v), math.Cos(h)*math.Cos(v))
	return c.tr.AppRay(r)
}
