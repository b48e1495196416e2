// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"github.com/gazed/trace/math/lin"
)

// Sphere is the quadric x²+y²+z² = r² centered on the object space
// origin. Partial spheres restrict the hit window to z in [zmin, zmax]
// and azimuth in [0, phimax], yielding zones and wedges.
type Sphere struct {
	pose
	radius   float64
	zmin     float64
	zmax     float64
	phimax   float64
	thetamin float64 // polar angle at zmax: v=0 at the top of the zone.
	thetamax float64 // polar angle at zmin: v=1 at the bottom.
}

// NewSphere creates a full sphere of the given radius.
func NewSphere(radius float64) (*Sphere, error) {
	return NewPartialSphere(radius, -radius, radius, lin.PIx2)
}

// NewPartialSphere creates a sphere restricted to z in [zmin, zmax] and
// azimuth in [0, phimax].
func NewPartialSphere(radius, zmin, zmax, phimax float64) (*Sphere, error) {
	switch {
	case radius <= 0:
		return nil, fmt.Errorf("sphere radius %g: %w", radius, ErrGeometry)
	case zmin >= zmax:
		return nil, fmt.Errorf("sphere z range [%g,%g]: %w", zmin, zmax, ErrGeometry)
	case phimax <= 0 || phimax > lin.PIx2+lin.Epsilon:
		return nil, fmt.Errorf("sphere phi %g: %w", phimax, ErrGeometry)
	}
	s := &Sphere{
		radius: radius,
		zmin:   math.Max(zmin, -radius),
		zmax:   math.Min(zmax, radius),
		phimax: phimax,
	}
	s.thetamin = math.Acos(lin.Clamp(s.zmax/radius, -1, 1))
	s.thetamax = math.Acos(lin.Clamp(s.zmin/radius, -1, 1))
	s.tr.SetI()
	return s, nil
}

// UnitSphere creates a sphere of diameter 1.
func UnitSphere() *Sphere {
	s, _ := NewSphere(0.5)
	return s
}

// Bound fills b with the object space bound of the sphere.
func (s *Sphere) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(
		&lin.V3{X: -s.radius, Y: -s.radius, Z: s.zmin},
		&lin.V3{X: s.radius, Y: s.radius, Z: s.zmax})
}

// WorldBound fills b with the world space bound of the sphere.
func (s *Sphere) WorldBound(b *lin.Box) *lin.Box { return s.worldBound(b, s) }

// SurfaceArea returns the area of the spherical zone wedge. For a full
// sphere this reduces to 4πr².
func (s *Sphere) SurfaceArea() float64 {
	return s.phimax * s.radius * (s.zmax - s.zmin)
}

// Intersect returns the first sphere hit of world space ray wr.
func (s *Sphere) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	s.tr.InvRay(ray.Set(wr))

	a := ray.Dir.LenSqr()
	b := 2 * ray.Dir.Dot(&ray.Orig)
	c := ray.Orig.LenSqr() - s.radius*s.radius
	t0, t1, roots := lin.Quadratic(a, b, c)
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
		phi = phiAt(&phit, s.radius)
		if phit.Z >= s.zmin && phit.Z <= s.zmax && phi <= s.phimax {
			break
		}
		// outside the partial window: retry the far root exactly once.
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
	sf.U = phi / s.phimax
	theta := math.Acos(lin.Clamp(phit.Z/s.radius, -1, 1))
	dtheta := s.thetamax - s.thetamin
	sf.V = (theta - s.thetamin) / dtheta

	// cos and sin of phi from the hit point, off the poles.
	zradius := math.Sqrt(phit.X*phit.X + phit.Y*phit.Y)
	cosphi, sinphi := 1.0, 0.0
	if zradius != 0 {
		cosphi, sinphi = phit.X/zradius, phit.Y/zradius
	}

	sf.DPDU.SetS(-s.phimax*phit.Y, s.phimax*phit.X, 0)
	sintheta := math.Sin(theta)
	sf.DPDV.SetS(phit.Z*cosphi, phit.Z*sinphi, -s.radius*sintheta)
	sf.DPDV.Scale(&sf.DPDV, dtheta)

	d2uu := lin.V3{X: phit.X, Y: phit.Y}
	d2uu.Scale(&d2uu, -s.phimax*s.phimax)
	d2uv := lin.V3{X: -sinphi, Y: cosphi}
	d2uv.Scale(&d2uv, dtheta*phit.Z*s.phimax)
	d2vv := lin.V3{}
	d2vv.Scale(&phit, -dtheta*dtheta)
	weingarten(sf, &d2uu, &d2uv, &d2vv)
	sf.N.FaceFwd(&sf.N, &ray.Dir)
	ray.At(thit, &sf.P) // the exact ray point: phiAt may have nudged phit.

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
