// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"fmt"

	"github.com/gazed/trace/math/lin"
)

// Triangle is three object space points intersected with the
// Möller–Trumbore algorithm. The surface parameters (u,v) are the
// barycentric coordinates over the edges b-a and c-a.
type Triangle struct {
	pose
	a lin.V3
	b lin.V3
	c lin.V3
}

// NewTriangle creates a triangle from three corner points.
func NewTriangle(a, b, c *lin.V3) (*Triangle, error) {
	e1, e2, n := lin.V3{}, lin.V3{}, lin.V3{}
	e1.Sub(b, a)
	e2.Sub(c, a)
	if n.Cross(&e1, &e2).AeqZ() {
		return nil, fmt.Errorf("triangle with collinear corners: %w", ErrGeometry)
	}
	t := &Triangle{a: *a, b: *b, c: *c}
	t.tr.SetI()
	return t, nil
}

// UnitTriangle creates a triangle with unit length base and height
// centered on the origin of the z=0 plane.
func UnitTriangle() *Triangle {
	t, _ := NewTriangle(
		&lin.V3{X: -0.5, Y: -0.5},
		&lin.V3{X: 0.5, Y: -0.5},
		&lin.V3{Y: 0.5})
	return t
}

// Bound fills b with the object space bound of the triangle.
func (t *Triangle) Bound(b *lin.Box) *lin.Box {
	b.Reset()
	return b.AddPoints(&t.a, &t.b, &t.c)
}

// WorldBound fills b with the world space bound of the triangle.
func (t *Triangle) WorldBound(b *lin.Box) *lin.Box { return t.worldBound(b, t) }

// SurfaceArea returns the triangle area: half the edge cross product.
func (t *Triangle) SurfaceArea() float64 {
	e1, e2, n := lin.V3{}, lin.V3{}, lin.V3{}
	e1.Sub(&t.b, &t.a)
	e2.Sub(&t.c, &t.a)
	return 0.5 * n.Cross(&e1, &e2).Len()
}

// Intersect returns the first triangle hit of world space ray wr.
func (t *Triangle) Intersect(wr *lin.Ray) (hit Intersection, ok bool) {
	ray := lin.Ray{}
	t.tr.InvRay(ray.Set(wr))

	e1, e2 := lin.V3{}, lin.V3{}
	e1.Sub(&t.b, &t.a)
	e2.Sub(&t.c, &t.a)

	h := lin.V3{}
	h.Cross(&ray.Dir, &e2)
	a := e1.Dot(&h)
	if lin.AeqZ(a) { // ray parallel to the triangle plane.
		return hit, false
	}
	f := 1 / a

	s := lin.V3{}
	s.Sub(&ray.Orig, &t.a)
	u := f * s.Dot(&h)
	if u < 0 || u > 1 {
		return hit, false
	}

	q := lin.V3{}
	q.Cross(&s, &e1)
	v := f * ray.Dir.Dot(&q)
	if v < 0 || u+v > 1 {
		return hit, false
	}

	thit := f * e2.Dot(&q)
	if thit < 0 {
		return hit, false
	}

	sf := &hit.Surface
	ray.At(thit, &sf.P)
	sf.U, sf.V = u, v
	sf.DPDU.Set(&e1)
	sf.DPDV.Set(&e2)
	sf.N.Cross(&e1, &e2)
	sf.N.Unit()
	sf.N.FaceFwd(&sf.N, &ray.Dir)

	hit.Ray.Set(wr)
	hit.T = thit
	return hit, true
}
