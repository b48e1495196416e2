// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"github.com/gazed/trace/math/lin"
)

// Cone is the quadric (h²(x²+y²))/r² = (z−h)²: apex at z=h on the
// object space z axis, base circle of the given radius at z=0. Partial
// cones restrict hits to z in [zmin, zmax] and azimuth in [0, phimax].
type Cone struct {
	pose
	radius float64
	height float64
	zmin   float64
	zmax   float64
	phimax float64
}

// NewCone creates a full cone of the given base radius and height.
func NewCone(radius, height float64) (*Cone, error) {
	return NewPartialCone(radius, height, 0, height, lin.PIx2)
}

// NewPartialCone creates a cone restricted to z in [zmin, zmax] and
// azimuth in [0, phimax].
func NewPartialCone(radius, height, zmin, zmax, phimax float64) (*Cone, error) {
	switch {
	case radius <= 0:
		return nil, fmt.Errorf("cone radius %g: %w", radius, ErrGeometry)
	case height <= 0:
		return nil, fmt.Errorf("cone height %g: %w", height, ErrGeometry)
	case zmin >= zmax:
		return nil, fmt.Errorf("cone z range [%g,%g]: %w", zmin, zmax, ErrGeometry)
	case phimax <= 0 || phimax > lin.PIx2+lin.Epsilon:
		return nil, fmt.Errorf("cone phi %g: %w", phimax, ErrGeometry)
	}
	c := &Cone{
		radius: radius,
		height: height,
		zmin:   math.Max(zmin, 0),
		zmax:   math.Min(zmax, height),
		phimax: phimax,
	}
	c.tr.SetI()
	return c, nil
}

// UnitCone creates a cone of base diameter 1 and height 1.
func UnitCone() *Cone {
	c, _ := NewCone(0.5, 1)
	return c
}

// Bound fills b with the object space bound of the cone.
func (c *Cone) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(
		&lin.V3{X: -c.radius, Y: -c.radius, Z: c.zmin},
		&lin.V3{X: c.radius, Y: c.radius, Z: c.zmax})
}

// WorldBound fills b with the world space bound of the cone.
func (c *Cone) WorldBound(b *lin.Box) *lin.Box { return c.worldBound(b, c) }

// SurfaceArea returns the lateral area of the cone between zmin and zmax.
func (c *Cone) SurfaceArea() float64 {
	slant := math.Sqrt(c.height*c.height+c.radius*c.radius) / c.height
	dz := c.zmax - c.zmin
	dz2 := (c.zmax*c.zmax - c.zmin*c.zmin) / (2 * c.height)
	return c.phimax * c.radius * slant * (dz - dz2)
}

// Intersect returns the first cone hit of world space ray wr.
func (c *Cone) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	c.tr.InvRay(ray.Set(wr))
	o, d := &ray.Orig, &ray.Dir

	m := (c.height * c.height) / (c.radius * c.radius)
	a := m*(d.X*d.X+d.Y*d.Y) - d.Z*d.Z
	b := 2 * (m*(o.X*d.X+o.Y*d.Y) - o.Z*d.Z + d.Z*c.height)
	cc := m*(o.X*o.X+o.Y*o.Y) - o.Z*o.Z + 2*o.Z*c.height - c.height*c.height
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
	sf.DPDV.SetS(-phit.X/(1-sf.V), -phit.Y/(1-sf.V), c.zmax-c.zmin)

	d2uu := lin.V3{X: phit.X, Y: phit.Y}
	d2uu.Scale(&d2uu, -c.phimax*c.phimax)
	d2uv := lin.V3{X: phit.Y, Y: -phit.X}
	d2uv.Scale(&d2uv, c.phimax/(1-sf.V))
	d2vv := lin.V3{}
	weingarten(sf, &d2uu, &d2uv, &d2vv)
	sf.N.FaceFwd(&sf.N, &ray.Dir)

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
