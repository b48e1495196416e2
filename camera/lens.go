// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/gazed/trace/math/lin"
	"github.com/gazed/trace/sample"
)

// PerspectiveLens is a perspective camera with a thin lens: each cast
// jitters the ray origin over a disc of the lens radius and re-aims it
// through the focal plane, so geometry away from the focal distance
// blurs. A zero lens radius degrades to the pinhole camera.
type PerspectiveLens struct {
	pose
	fovY    float64
	fovXTan float64
	fovYTan float64
	radius  float64 // lens disc radius.
	focal   float64 // distance to the plane in perfect focus.
	mu      sync.Mutex
	lens    sample.Sampler2D // private uniform sampler for the lens.
}

// NewPerspectiveLens creates a thin lens camera. Fov is the vertical
// field of view in radians, radius the lens disc radius, and focal the
// distance to the plane of perfect focus.
func NewPerspectiveLens(fovY, aspect, radius, focal float64) (*PerspectiveLens, error) {
	switch {
	case fovY <= 0 || fovY >= lin.PI:
		return nil, fmt.Errorf("lens fov %g: %w", fovY, ErrSetup)
	case aspect <= 0:
		return nil, fmt.Errorf("lens aspect %g: %w", aspect, ErrSetup)
	case radius < 0:
		return nil, fmt.Errorf("lens radius %g: %w", radius, ErrSetup)
	case focal <= 0:
		return nil, fmt.Errorf("lens focal distance %g: %w", focal, ErrSetup)
	}
	c := &PerspectiveLens{fovY: fovY, radius: radius, focal: focal}
	c.fovYTan = math.Tan(fovY / 2)
	c.fovXTan = c.fovYTan * aspect
	c.lens = sample.NewUniform2D(1, rand.Int63())
	c.tr.SetI()
	return c, nil
}

// Cast returns the lens ray through film coordinate (x, y): the center
// ray perturbed to a concentric disc sample of the lens and re-aimed at
// the focal point. Safe for concurrent use: the lens sampler is guarded.
func (c *PerspectiveLens) Cast(x, y float64, r *lin.Ray) *lin.Ray {
	r.Orig.SetS(0, 0, 0)
	r.Dir.SetS(x*c.fovXTan, y*c.fovYTan, 1)
	r.Dir.Unit()
	if c.radius <= 0 {
		return c.tr.AppRay(r)
	}

	c.mu.Lock()
	s := c.lens.Samples()[0]
	c.mu.Unlock()
	u, v := sample.ToDiscConcentric(s)
	u *= c.radius
	v *= c.radius

	// where the center ray crosses the focal plane stays in focus.
	focalPoint := lin.V3{}
	r.At(c.focal/r.Dir.Z, &focalPoint)

	r.Orig.SetS(u, v, 0)
	r.Dir.Sub(&focalPoint, &r.Orig)
	r.Dir.Unit()
	return c.tr.AppRay(r)
}
