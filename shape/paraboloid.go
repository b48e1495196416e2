// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"github.com/gazed/trace/math/lin"
)

// Paraboloid is the quadric z = h(x²+y²)/r²: a bowl opening towards +z
// with its vertex at the object space origin, reaching radius r at
// height h. Partial paraboloids restrict hits to z in [zmin, zmax] and
// azimuth in [0, phimax].
type Paraboloid struct {
	pose
	radius float64
	height float64
	zmin   float64
	zmax   float64
	phimax float64
}

// NewParaboloid creates a full paraboloid of the given rim radius and height.
func NewParaboloid(radius, height float64) (*Paraboloid, error) {
	return NewPartialParaboloid(radius, height, 0, height, lin.PIx2)
}

// NewPartialParaboloid creates a paraboloid restricted to z in
// [zmin, zmax] and azimuth in [0, phimax].
func NewPartialParaboloid(radius, height, zmin, zmax, phimax float64) (*Paraboloid, error) {
	switch {
	case radius <= 0:
		return nil, fmt.Errorf("paraboloid radius %g: %w", radius, ErrGeometry)
	case height <= 0:
		return nil, fmt.Errorf("paraboloid height %g: %w", height, ErrGeometry)
	case zmin >= zmax:
		return nil, fmt.Errorf("paraboloid z range [%g,%g]: %w", zmin, zmax, ErrGeometry)
	case phimax <= 0 || phimax > lin.PIx2+lin.Epsilon:
		return nil, fmt.Errorf("paraboloid phi %g: %w", phimax, ErrGeometry)
	}
	p := &Paraboloid{
		radius: radius,
		height: height,
		zmin:   math.Max(zmin, 0),
		zmax:   math.Min(zmax, height),
		phimax: phimax,
	}
	p.tr.SetI()
	return p, nil
}

// UnitParaboloid creates a paraboloid of rim diameter 1 and height 1.
func UnitParaboloid() *Paraboloid {
	p, _ := NewParaboloid(0.5, 1)
	return p
}

// Bound fills b with the object space bound of the paraboloid.
func (p *Paraboloid) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(
		&lin.V3{X: -p.radius, Y: -p.radius, Z: p.zmin},
		&lin.V3{X: p.radius, Y: p.radius, Z: p.zmax})
}

// WorldBound fills b with the world space bound of the paraboloid.
func (p *Paraboloid) WorldBound(b *lin.Box) *lin.Box { return p.worldBound(b, p) }

// SurfaceArea returns the lateral area of the paraboloid between zmin
// and zmax: the surface of revolution integral in closed form.
func (p *Paraboloid) SurfaceArea() float64 {
	k := p.radius * p.radius / p.height // 4hz+r² terms use r² = k*h.
	lo := math.Pow(4*p.height*p.zmin+k*p.height, 1.5)
	hi := math.Pow(4*p.height*p.zmax+k*p.height, 1.5)
	return p.phimax * p.radius * (hi - lo) / (12 * p.height * p.height)
}

// Intersect returns the first paraboloid hit of world space ray wr.
func (p *Paraboloid) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	p.tr.InvRay(ray.Set(wr))
	o, d := &ray.Orig, &ray.Dir

	m := p.height / (p.radius * p.radius)
	a := m * (d.X*d.X + d.Y*d.Y)
	b := 2*m*(o.X*d.X+o.Y*d.Y) - d.Z
	cc := m*(o.X*o.X+o.Y*o.Y) - o.Z
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
		phi = phiAt(&phit, p.radius)
		if phit.Z >= p.zmin && phit.Z <= p.zmax && phi <= p.phimax {
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
	sf.U = phi / p.phimax
	sf.V = (phit.Z - p.zmin) / (p.zmax - p.zmin)

	dz := p.zmax - p.zmin
	sf.DPDU.SetS(-p.phimax*phit.Y, p.phimax*phit.X, 0)
	sf.DPDV.SetS(phit.X/(2*phit.Z), phit.Y/(2*phit.Z), 1)
	sf.DPDV.Scale(&sf.DPDV, dz)

	d2uu := lin.V3{X: phit.X, Y: phit.Y}
	d2uu.Scale(&d2uu, -p.phimax*p.phimax)
	d2uv := lin.V3{X: -phit.Y / (2 * phit.Z), Y: phit.X / (2 * phit.Z)}
	d2uv.Scale(&d2uv, p.phimax*dz)
	d2vv := lin.V3{X: phit.X / (4 * phit.Z * phit.Z), Y: phit.Y / (4 * phit.Z * phit.Z)}
	d2vv.Scale(&d2vv, -dz*dz)
	weingarten(sf, &d2uu, &d2uv, &d2vv)
	sf.N.FaceFwd(&sf.N, &ray.Dir)

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
