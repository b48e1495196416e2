// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"github.com/gazed/trace/math/lin"
)

// Plane is a finite rectangle in the object space z=0 plane spanning
// |x| <= dx and |y| <= dy.
type Plane struct {
	pose
	dx float64
	dy float64
}

// NewPlane creates a rectangle with the given half extents.
func NewPlane(dx, dy float64) (*Plane, error) {
	if dx <= 0 || dy <= 0 {
		return nil, fmt.Errorf("plane extents [%g,%g]: %w", dx, dy, ErrGeometry)
	}
	p := &Plane{dx: dx, dy: dy}
	p.tr.SetI()
	return p, nil
}

// UnitPlane creates a 1x1 rectangle centered on the origin.
func UnitPlane() *Plane {
	p, _ := NewPlane(0.5, 0.5)
	return p
}

// Bound fills b with the object space bound of the rectangle.
func (p *Plane) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(
		&lin.V3{X: -p.dx, Y: -p.dy, Z: 0},
		&lin.V3{X: p.dx, Y: p.dy, Z: 0})
}

// WorldBound fills b with the world space bound of the rectangle.
func (p *Plane) WorldBound(b *lin.Box) *lin.Box { return p.worldBound(b, p) }

// SurfaceArea returns the rectangle area.
func (p *Plane) SurfaceArea() float64 { return 4 * p.dx * p.dy }

// Intersect returns the first rectangle hit of world space ray wr.
func (p *Plane) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	p.tr.InvRay(ray.Set(wr))

	if math.Abs(ray.Dir.Z) < planarEpsilon {
		return hit, false
	}
	thit := -ray.Orig.Z / ray.Dir.Z
	if thit < 0 {
		return hit, false
	}

	phit := lin.V3{}
	ray.At(thit, &phit)
	if math.Abs(phit.X) > p.dx || math.Abs(phit.Y) > p.dy {
		return hit, false
	}

	sf := &hit.Surface
	sf.P = phit
	sf.U = (phit.X + p.dx) / (2 * p.dx)
	sf.V = (phit.Y + p.dy) / (2 * p.dy)

	sf.DPDU.SetS(2*p.dx, 0, 0)
	sf.DPDV.SetS(0, 2*p.dy, 0)
	sf.N.SetS(0, 0, 1)
	sf.N.FaceFwd(&sf.N, &ray.Dir)

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
