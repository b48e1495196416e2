// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"errors"
	"testing"

	"github.com/gazed/trace/math/lin"
)

// Every shape reachable by the ray down +z from the origin, each placed
// 10 units out. The intersection contract checks below run over all of
// them: hit time positive, hit point on the ray, normal unit length and
// facing the ray, parameters in range.
func testShapes(t *testing.T) map[string]Shape {
	t.Helper()
	place := func(s Shape, err error) Shape {
		if err != nil {
			t.Fatal(err)
		}
		s.TransformSelf(lin.NewT().SetTranslate(0, 0, 10))
		return s
	}
	tilt := lin.NewT().SetAa(1, 0, 0, lin.HalfPi)
	cyl := UnitCylinder()
	cyl.TransformSelf(tilt) // rotate so the ray hits the wall, not the open end.
	cyl.TransformSelf(lin.NewT().SetTranslate(0, 0, 10))
	cone := UnitCone()
	cone.TransformSelf(lin.NewT().SetAa(1, 0, 0, -lin.HalfPi))
	cone.TransformSelf(lin.NewT().SetTranslate(0, -0.2, 10))
	par := UnitParaboloid()
	par.TransformSelf(lin.NewT().SetAa(1, 0, 0, -lin.HalfPi))
	par.TransformSelf(lin.NewT().SetTranslate(0, -0.2, 10))
	// offset the flat rings so the test ray lands off their center seam
	// and outside the annulus hole.
	disc, _ := NewDisc(0.5)
	disc.TransformSelf(lin.NewT().SetTranslate(0.3, 0, 10))
	ann, _ := NewAnnulus(0.1, 0.6)
	ann.TransformSelf(lin.NewT().SetTranslate(0.3, 0, 10))
	return map[string]Shape{
		"sphere":   place(NewSphere(0.5)),
		"cylinder": cyl,
		"cone":     cone,
		"disc":     disc,
		"annulus":  ann,
		"par":      par,
		"plane":    place(NewPlane(0.5, 0.5)),
		"triangle": place(NewTriangle(&lin.V3{X: -1, Y: -1}, &lin.V3{X: 1, Y: -1}, &lin.V3{Y: 1})),
		"prism":    place(NewPrism(1, 1, 1)),
	}
}

// aeq3 compares points with the loose 1e-3 tolerance: seam nudged hit
// points may drift up to 1e-5 of the shape radius off the exact ray.
func aeq3(a, b *lin.V3) bool {
	const tol = 0.001
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx < tol && dx > -tol && dy < tol && dy > -tol && dz < tol && dz > -tol
}

func TestIntersectionContract(t *testing.T) {
	ray := lin.NewRayS(0, 0, 0, 0, 0, 1)
	for name, s := range testShapes(t) {
		hit, ok := s.Intersect(ray)
		if !ok {
			t.Error(name, "should be hit by the axis ray")
			continue
		}
		if hit.T < 0 {
			t.Error(name, "hit time must not be negative", hit.T)
		}

		// the object space hit point must be the object space ray at T.
		obj := lin.Ray{}
		s.Transform().InvRay(obj.Set(ray))
		p := lin.V3{}
		if !aeq3(obj.At(hit.T, &p), &hit.P) {
			t.Error(name, "hit point should lie on the ray", p.Dump(), hit.P.Dump())
		}

		if !lin.Aeq(hit.N.Len(), 1) {
			t.Error(name, "normal should be unit length", hit.N.Dump())
		}
		if hit.N.Dot(&obj.Dir) > 0 {
			t.Error(name, "normal should face the incoming ray")
		}
		if hit.U < -lin.Epsilon || hit.U > 1+lin.Epsilon ||
			hit.V < -lin.Epsilon || hit.V > 1+lin.Epsilon {
			t.Error(name, "surface parameters out of range", hit.U, hit.V)
		}

		// the world bound must contain the world space hit point.
		wp, wb := lin.V3{}, lin.NewBox()
		wp.Set(&hit.P)
		s.Transform().AppPt(&wp)
		s.WorldBound(wb)
		grown := lin.NewBox().AddPoints(
			(&lin.V3{}).SetS(wb.Min.X-0.001, wb.Min.Y-0.001, wb.Min.Z-0.001),
			(&lin.V3{}).SetS(wb.Max.X+0.001, wb.Max.Y+0.001, wb.Max.Z+0.001))
		if !grown.Contains(&wp) {
			t.Error(name, "world bound should contain the hit point", wp.Dump())
		}
	}
}

func TestMissBehind(t *testing.T) {
	// all the shapes sit around z=10: a ray pointing away sees nothing.
	ray := lin.NewRayS(0, 0, 0, 0, 0, -1)
	for name, s := range testShapes(t) {
		if _, ok := s.Intersect(ray); ok {
			t.Error(name, "should not be hit behind the ray origin")
		}
	}
}

func TestDegenerateConstruction(t *testing.T) {
	cases := map[string]error{}
	_, cases["sphere radius"] = NewSphere(-1)
	_, cases["sphere z"] = NewPartialSphere(1, 0.5, -0.5, lin.PI)
	_, cases["cylinder radius"] = NewCylinder(0, 1)
	_, cases["cone height"] = NewCone(1, 0)
	_, cases["paraboloid phi"] = NewPartialParaboloid(1, 1, 0, 1, -2)
	_, cases["disc radii"] = NewAnnulus(0.5, 0.2)
	_, cases["plane extents"] = NewPlane(1, 0)
	_, cases["triangle"] = NewTriangle(&lin.V3{}, &lin.V3{X: 1}, &lin.V3{X: 2})
	_, cases["prism"] = NewPrism(1, -1, 1)
	for name, err := range cases {
		if !errors.Is(err, ErrGeometry) {
			t.Error(name, "should report degenerate geometry, got", err)
		}
	}
}

func TestSurfaceAreas(t *testing.T) {
	s, _ := NewSphere(0.5)
	if !lin.Aeq(s.SurfaceArea(), 4*lin.PI*0.25) {
		t.Error("sphere area", s.SurfaceArea())
	}
	c, _ := NewCylinder(0.5, 2)
	if !lin.Aeq(c.SurfaceArea(), lin.PIx2*0.5*2) {
		t.Error("cylinder area", c.SurfaceArea())
	}
	d, _ := NewAnnulus(1, 2)
	if !lin.Aeq(d.SurfaceArea(), 3*lin.PI) {
		t.Error("annulus area", d.SurfaceArea())
	}
	p, _ := NewPlane(1, 2)
	if p.SurfaceArea() != 8 {
		t.Error("plane area", p.SurfaceArea())
	}
	tri, _ := NewTriangle(&lin.V3{}, &lin.V3{X: 2}, &lin.V3{Y: 2})
	if !lin.Aeq(tri.SurfaceArea(), 2) {
		t.Error("triangle area", tri.SurfaceArea())
	}
	pr, _ := NewPrism(1, 2, 3)
	if pr.SurfaceArea() != 22 {
		t.Error("prism area", pr.SurfaceArea())
	}
}

// ============================================================================
// Benchmarking

// Intersection cost drives render times. Run 'go test -bench=Intersect
// -benchmem': the intersectors are expected to stay allocation free
// apart from the returned context.
func BenchmarkIntersectSphere(b *testing.B) {
	s, _ := NewSphere(0.5)
	s.TransformSelf(lin.NewT().SetTranslate(0, 0, 10))
	ray := lin.NewRayS(0, 0, 0, 0, 0, 1)
	for n := 0; n < b.N; n++ {
		if _, ok := s.Intersect(ray); !ok {
			b.Fatal("benchmark ray should hit")
		}
	}
}

func BenchmarkIntersectTriangle(b *testing.B) {
	tri, _ := NewTriangle(&lin.V3{X: -1, Y: -1, Z: 10}, &lin.V3{X: 1, Y: -1, Z: 10}, &lin.V3{Y: 1, Z: 10})
	ray := lin.NewRayS(0, 0, 0, 0, 0, 1)
	for n := 0; n < b.N; n++ {
		if _, ok := tri.Intersect(ray); !ok {
			b.Fatal("benchmark ray should hit")
		}
	}
}

// Moving a shape moves its world bound but not its object bound.
func TestTransformSelf(t *testing.T) {
	s, _ := NewSphere(1)
	s.TransformSelf(lin.NewT().SetTranslate(5, 0, 0))
	ob, wb := lin.NewBox(), lin.NewBox()
	s.Bound(ob)
	s.WorldBound(wb)
	if !ob.Contains(&lin.V3{X: 0.5}) {
		t.Error("object bound should stay canonical")
	}
	if !wb.Contains(&lin.V3{X: 5.5}) || wb.Contains(&lin.V3{X: 0}) {
		t.Error("world bound should move with the shape")
	}
}
