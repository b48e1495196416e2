// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/gazed/trace/math/lin"
)

// A ray down -z onto the top of a unit sphere hits the v=0 pole.
func TestSphereTopUV(t *testing.T) {
	s, _ := NewSphere(1)
	ray := lin.NewRayS(0, 0, 5, 0, 0, -1)
	hit, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("axis ray should hit the sphere")
	}
	if !lin.Aeq(hit.T, 4) {
		t.Error("hit time should be the near surface", hit.T)
	}
	if hit.V > 0.001 {
		t.Error("top of the sphere should have v near 0", hit.V)
	}
}

func TestSphereEquatorUV(t *testing.T) {
	s, _ := NewSphere(1)
	ray := lin.NewRayS(5, 0, 0, -1, 0, 0)
	hit, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("equator ray should hit")
	}
	if !lin.Aeq(hit.V, 0.5) {
		t.Error("equator should have v of one half", hit.V)
	}
	if !lin.AeqZ(hit.U) {
		t.Error("hit on the +x seam should have u of zero", hit.U)
	}
}

// A ray from inside uses the far root.
func TestSphereInside(t *testing.T) {
	s, _ := NewSphere(1)
	ray := lin.NewRayS(0, 0, 0, 0, 0, 1)
	hit, ok := s.Intersect(ray)
	if !ok || !lin.Aeq(hit.T, 1) {
		t.Error("inside origin should hit the far surface", hit.T, ok)
	}
}

// A partial sphere rejects hits outside its z window, falling through to
// the far root when that one is inside.
func TestPartialSphereWindow(t *testing.T) {
	s, _ := NewPartialSphere(1, -0.3, 0.3, lin.PIx2)

	// through the middle: the near surface is inside the window.
	side := lin.NewRayS(5, 0, 0, -1, 0, 0)
	if hit, ok := s.Intersect(side); !ok || !lin.Aeq(hit.T, 4) {
		t.Error("window should accept the near equator hit")
	}

	// down the pole: both roots have |z| == 1, outside the window.
	top := lin.NewRayS(0, 0, 5, 0, 0, -1)
	if _, ok := s.Intersect(top); ok {
		t.Error("window should reject polar hits")
	}
}

// A half sphere rejects azimuths beyond phimax.
func TestPartialSpherePhi(t *testing.T) {
	s, _ := NewPartialSphere(1, -1, 1, lin.PI)

	// phi of the -x..+y quadrant is within [0, pi].
	front := lin.NewRayS(0, 5, 0, 0, -1, 0)
	if _, ok := s.Intersect(front); !ok {
		t.Error("phi inside the wedge should hit")
	}

	// a hit at -y has phi of 3pi/2: the near AND far surfaces both fail
	// for a ray grazing only the removed wedge.
	miss := lin.NewRayS(-5, -0.5, 0, 1, 0, 0)
	if hit, ok := s.Intersect(miss); ok {
		// both roots lie at y = -0.5 (phi 7pi/6 near, 11pi/6 far), so
		// no hit is expected; any hit reported must not be in the removed half.
		p := hit.P
		if p.Y < -lin.Epsilon && p.X > lin.Epsilon {
			t.Error("hit reported inside the removed wedge", p.Dump())
		}
	}
}

func TestSphereTangentMiss(t *testing.T) {
	s, _ := NewSphere(1)
	// ray with no direction through the sphere: degenerate quadratic.
	ray := lin.NewRayS(5, 0, 0, 0, 0, 0)
	if _, ok := s.Intersect(ray); ok {
		t.Error("zero direction should miss")
	}
	// ray well off to the side.
	ray = lin.NewRayS(5, 5, 0, 0, 0, 1)
	if _, ok := s.Intersect(ray); ok {
		t.Error("offset ray should miss")
	}
}

func TestTransformedSphere(t *testing.T) {
	s, _ := NewSphere(0.5)
	s.TransformSelf(lin.NewT().SetTranslate(0, 0, 2))
	ray := lin.NewRayS(0, 0, 0, 0, 0, 1)
	hit, ok := s.Intersect(ray)
	if !ok || !lin.Aeq(hit.T, 1.5) {
		t.Error("translated sphere near surface at t=1.5", hit.T, ok)
	}

	// the hit point is reported in object space: near surface -z pole.
	if !hit.P.Aeq(&lin.V3{Z: -0.5}) {
		t.Error("object space hit point", hit.P.Dump())
	}
}
