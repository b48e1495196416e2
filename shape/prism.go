// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"

	"github.com/gazed/trace/math/lin"
)

// Prism is an axis aligned rectangular box centered on the object space
// origin with the given half extents. Intersection is the per-axis slab
// test, the same fold used by the bounding box ray test. A ray starting
// inside the prism hits the exit face: the nearest non-negative of the
// entry and exit times wins.
type Prism struct {
	pose
	hw float64 // half width: x extent.
	hh float64 // half height: y extent.
	hd float64 // half depth: z extent.
}

// NewPrism creates a prism of the given full width, height, and depth.
func NewPrism(width, height, depth float64) (*Prism, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("prism size [%g,%g,%g]: %w", width, height, depth, ErrGeometry)
	}
	p := &Prism{hw: width / 2, hh: height / 2, hd: depth / 2}
	p.tr.SetI()
	return p, nil
}

// UnitPrism creates a 1x1x1 cube centered on the origin.
func UnitPrism() *Prism {
	p, _ := NewPrism(1, 1, 1)
	return p
}

// Bound fills b with the object space bound of the prism.
func (p *Prism) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(
		&lin.V3{X: -p.hw, Y: -p.hh, Z: -p.hd},
		&lin.V3{X: p.hw, Y: p.hh, Z: p.hd})
}

// WorldBound fills b with the world space bound of the prism.
func (p *Prism) WorldBound(b *lin.Box) *lin.Box { return p.worldBound(b, p) }

// SurfaceArea returns the total area of the six faces.
func (p *Prism) SurfaceArea() float64 {
	return 8 * (p.hd*p.hw + p.hd*p.hh + p.hw*p.hh)
}

// Intersect returns the first prism hit of world space ray wr.
func (p *Prism) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	p.tr.InvRay(ray.Set(wr))
	o, d := &ray.Orig, &ray.Dir

	// per-axis entry/exit, swapped into order. Zero direction elements
	// produce infinities that fold correctly below.
	tx1, tx2 := (-p.hw-o.X)/d.X, (p.hw-o.X)/d.X
	if tx1 > tx2 {
		tx1, tx2 = tx2, tx1
	}
	ty1, ty2 := (-p.hh-o.Y)/d.Y, (p.hh-o.Y)/d.Y
	if ty1 > ty2 {
		ty1, ty2 = ty2, ty1
	}
	tz1, tz2 := (-p.hd-o.Z)/d.Z, (p.hd-o.Z)/d.Z
	if tz1 > tz2 {
		tz1, tz2 = tz2, tz1
	}
	t0 := lin.Max3(tx1, ty1, tz1)
	t1 := lin.Min3(tx2, ty2, tz2)
	if t0 > t1 {
		return hit, false
	}

	// nearest non-negative: the entry face, or the exit face when the
	// ray starts inside.
	thit := t0
	if thit < 0 {
		thit = t1
	}
	if thit < 0 {
		return hit, false
	}

	phit := lin.V3{}
	ray.At(thit, &phit)

	sf := &hit.Surface
	sf.P = phit

	// the face is the axis whose slab produced the hit time. Parameterize
	// the face by the remaining two axes.
	switch {
	case thit == tx1 || thit == tx2:
		sf.N.SetS(1, 0, 0)
		sf.U = (phit.Y + p.hh) / (2 * p.hh)
		sf.V = (phit.Z + p.hd) / (2 * p.hd)
		sf.DPDU.SetS(0, 2*p.hh, 0)
		sf.DPDV.SetS(0, 0, 2*p.hd)
	case thit == ty1 || thit == ty2:
		sf.N.SetS(0, 1, 0)
		sf.U = (phit.X + p.hw) / (2 * p.hw)
		sf.V = (phit.Z + p.hd) / (2 * p.hd)
		sf.DPDU.SetS(2*p.hw, 0, 0)
		sf.DPDV.SetS(0, 0, 2*p.hd)
	default:
		sf.N.SetS(0, 0, 1)
		sf.U = (phit.X + p.hw) / (2 * p.hw)
		sf.V = (phit.Y + p.hh) / (2 * p.hh)
		sf.DPDU.SetS(2*p.hw, 0, 0)
		sf.DPDV.SetS(0, 2*p.hh, 0)
	}
	sf.N.FaceFwd(&sf.N, &ray.Dir)
	sf.U = lin.Clamp(sf.U, 0, 1)
	sf.V = lin.Clamp(sf.V, 0, 1)

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
