// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"github.com/gazed/trace/math/lin"
)

// Disc is a flat ring in the object space z=0 plane: points with radius
// in [rin, rout] and azimuth in [0, phimax]. A zero inner radius makes a
// solid disc, a nonzero one an annulus, and a partial azimuth a sector.
type Disc struct {
	pose
	rin    float64
	rout   float64
	phimax float64
}

// NewDisc creates a solid disc of the given radius.
func NewDisc(radius float64) (*Disc, error) {
	return NewPartialAnnulus(0, radius, lin.PIx2)
}

// NewAnnulus creates a ring between the two given radii.
func NewAnnulus(inner, outer float64) (*Disc, error) {
	return NewPartialAnnulus(inner, outer, lin.PIx2)
}

// NewPartialAnnulus creates a ring sector between the two given radii
// restricted to azimuth [0, phimax].
func NewPartialAnnulus(inner, outer, phimax float64) (*Disc, error) {
	switch {
	case inner < 0 || outer <= inner:
		return nil, fmt.Errorf("disc radii [%g,%g]: %w", inner, outer, ErrGeometry)
	case phimax <= 0 || phimax > lin.PIx2+lin.Epsilon:
		return nil, fmt.Errorf("disc phi %g: %w", phimax, ErrGeometry)
	}
	d := &Disc{rin: inner, rout: outer, phimax: phimax}
	d.tr.SetI()
	return d, nil
}

// UnitDisc creates a solid disc of radius 1.
func UnitDisc() *Disc {
	d, _ := NewDisc(1)
	return d
}

// Bound fills b with the object space bound of the disc.
func (d *Disc) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(
		&lin.V3{X: -d.rout, Y: -d.rout, Z: 0},
		&lin.V3{X: d.rout, Y: d.rout, Z: 0})
}

// WorldBound fills b with the world space bound of the disc.
func (d *Disc) WorldBound(b *lin.Box) *lin.Box { return d.worldBound(b, d) }

// SurfaceArea returns the area of the ring sector.
func (d *Disc) SurfaceArea() float64 {
	return (d.rout*d.rout - d.rin*d.rin) * d.phimax / 2
}

// Intersect returns the first disc hit of world space ray wr.
func (d *Disc) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	d.tr.InvRay(ray.Set(wr))

	// rays running parallel to the disc plane miss.
	if math.Abs(ray.Dir.Z) < planarEpsilon {
		return hit, false
	}
	thit := -ray.Orig.Z / ray.Dir.Z
	if thit < 0 {
		return hit, false
	}

	phit := lin.V3{}
	ray.At(thit, &phit)
	phi := phiAt(&phit, d.rout) // nudges dead-center hits off the seam.
	dist2 := phit.X*phit.X + phit.Y*phit.Y
	if dist2 > d.rout*d.rout || dist2 < d.rin*d.rin {
		return hit, false
	}
	if phi > d.phimax {
		return hit, false
	}

	sf := &hit.Surface
	sf.P = phit
	sf.U = phi / d.phimax
	dist := math.Sqrt(dist2)
	sf.V = 1 - (dist-d.rin)/(d.rout-d.rin)

	sf.DPDU.SetS(-d.phimax*phit.Y, d.phimax*phit.X, 0)
	sf.DPDV.SetS(phit.X/dist, phit.Y/dist, 0)
	sf.DPDV.Scale(&sf.DPDV, -(d.rout - d.rin))

	sf.N.Cross(&sf.DPDU, &sf.DPDV)
	sf.N.Unit()
	sf.N.FaceFwd(&sf.N, &ray.Dir)

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
