// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"

	"github.com/gazed/trace/math/lin"
)

// Cylinder is the quadric x²+y² = r² running along the object space z
// axis between zmin and zmax. Partial cylinders also restrict the
// azimuth to [0, phimax]. The cylinder is open: there are no end caps.
type Cylinder struct {
	pose
	radius float64
	zmin   float64
	zmax   float64
	phimax float64
}

// NewCylinder creates a full cylinder of the given radius and height
// centered on the origin.
func NewCylinder(radius, height float64) (*Cylinder, error) {
	return NewPartialCylinder(radius, height, lin.PIx2)
}

// NewPartialCylinder creates a cylinder restricted to azimuth [0, phimax].
func NewPartialCylinder(radius, height, phimax float64) (*Cylinder, error) {
	switch {
	case radius <= 0:
		return nil, fmt.Errorf("cylinder radius %g: %w", radius, ErrGeometry)
	case height <= 0:
		return nil, fmt.Errorf("cylinder height %g: %w", height, ErrGeometry)
	case phimax <= 0 || phimax > lin.PIx2+lin.Epsilon:
		return nil, fmt.Errorf("cylinder phi %g: %w", phimax, ErrGeometry)
	}
	c := &Cylinder{radius: radius, zmin: -height / 2, zmax: height / 2, phimax: phimax}
	c.tr.SetI()
	return c, nil
}

// UnitCylinder creates a cylinder of diameter 1 and height 1.
func UnitCylinder() *Cylinder {
	c, _ := NewCylinder(0.5, 1)
	return c
}

// Bound fills b with the object space bound of the cylinder.
func (c *Cylinder) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(
		&lin.V3{X: -c.radius, Y: -c.radius, Z: c.zmin},
		&lin.V3{X: c.radius, Y: c.radius, Z: c.zmax})
}

// WorldBound fills b with the world space bound of the cylinder.
func (c *Cylinder) WorldBound(b *lin.Box) *lin.Box { return c.worldBound(b, c) }

// SurfaceArea returns the lateral area of the cylinder.
func (c *Cylinder) SurfaceArea() float64 {
	return c.phimax * c.radius * (c.zmax - c.zmin)
}

// Intersect returns the first cylinder hit of world space ray wr.
func (c *Cylinder) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	c.tr.InvRay(ray.Set(wr))

	a := ray.Dir.X*ray.Dir.X + ray.Dir.Y*ray.Dir.Y
	b := 2 * (ray.Dir.X*ray.Orig.X + ray.Dir.Y*ray.Orig.Y)
	cc := ray.Orig.X*ray.Orig.X + ray.Orig.Y*ray.Orig.Y - c.radius*c.radius
	t0, t1, roots := lin.Quadratic(a, b, cc)
	if !roots {
		return hit, false
	}

	thit := t0
	if thit < 0 {
		thit = t1
	}
	if thit < 0 {
		return hit, false
	}

	phit, phi := lin.V3{}, 0.0
	for {
		ray.At(thit, &phit)
		phi = phiAt(&phit, c.radius)
		if phit.Z >= c.zmin && phit.Z <= c.zmax && phi <= c.phimax {
			break
		}
		if thit == t1 {
			return hit, false
		}
		thit = t1
		if thit < 0 {
			return hit, false
		}
	}

	sf := &hit.Surface
	sf.P = phit
	sf.U = phi / c.phimax
	sf.V = (phit.Z - c.zmin) / (c.zmax - c.zmin)

	sf.DPDU.SetS(-c.phimax*phit.Y, c.phimax*phit.X, 0)
	sf.DPDV.SetS(0, 0, c.zmax-c.zmin)

	d2uu := lin.V3{X: phit.X, Y: phit.Y}
	d2uu.Scale(&d2uu, -c.phimax*c.phimax)
	d2uv, d2vv := lin.V3{}, lin.V3{}
	weingarten(sf, &d2uu, &d2uv, &d2vv)
	sf.N.FaceFwd(&sf.N, &ray.Dir)

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
