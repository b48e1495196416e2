// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/gazed/trace/math/lin"
)

func TestPerspectiveCenter(t *testing.T) {
	c, _ := NewPerspective(lin.PI/3, 4.0/3)
	r := lin.NewRay()
	c.Cast(0, 0, r)
	if !r.Orig.Eq(&lin.V3{}) || !r.Dir.Aeq(&lin.V3{Z: 1}) {
		t.Error("center ray should look straight down +z", r.Dump())
	}
}

// the corner ray spreads by the half angle tangents and stays unit length.
func TestPerspectiveCorner(t *testing.T) {
	fov, aspect := lin.PI/2, 2.0
	c, _ := NewPerspective(fov, aspect)
	r := lin.NewRay()
	c.Cast(1, 1, r)
	if !lin.Aeq(r.Dir.Len(), 1) {
		t.Error("perspective directions must be normalized", r.Dir.Len())
	}
	// tan(45) == 1: direction before normalizing is (2, 1, 1).
	want := (&lin.V3{X: 2, Y: 1, Z: 1}).Unit()
	if !r.Dir.Aeq(want) {
		t.Errorf("corner ray direction\ngot %s\nwanted %s", r.Dir.Dump(), want.Dump())
	}
}

func TestOrthographicParallel(t *testing.T) {
	c, _ := NewOrthographic(0.5, 1)
	r1, r2 := lin.NewRay(), lin.NewRay()
	c.Cast(-1, -1, r1)
	c.Cast(1, 1, r2)
	unitz := &lin.V3{Z: 1}
	if !r1.Dir.Eq(unitz) || !r2.Dir.Eq(unitz) {
		t.Error("orthographic rays must be unit +z")
	}
	if !r1.Orig.Aeq(&lin.V3{X: -0.5, Y: -0.5}) || !r2.Orig.Aeq(&lin.V3{X: 0.5, Y: 0.5}) {
		t.Error("orthographic origins should span the scaled film",
			r1.Orig.Dump(), r2.Orig.Dump())
	}
}

// the hemisphere camera fans from -y through +z to +y vertically and
// -x through +z to +x horizontally, always unit length.
func TestHemisphereMapping(t *testing.T) {
	c := NewHemisphere()
	r := lin.NewRay()
	cases := map[[2]float64]lin.V3{
		{0, 0}:  {Z: 1},
		{0, 1}:  {Y: 1},
		{0, -1}: {Y: -1},
		{1, 0}:  {X: 1},
		{-1, 0}: {X: -1},
	}
	for in, want := range cases {
		c.Cast(in[0], in[1], r)
		if !r.Dir.Aeq(&want) {
			t.Error("hemisphere", in, r.Dir.Dump())
		}
	}
}

// the sphere camera wraps a full turn: x of ±1 both look backwards.
func TestSphereMapping(t *testing.T) {
	c := NewSphere()
	r := lin.NewRay()
	c.Cast(1, 0, r)
	if !r.Dir.Aeq(&lin.V3{Z: -1}) {
		t.Error("sphere x=1 should look down -z", r.Dir.Dump())
	}
	c.Cast(0.5, 0, r)
	if !r.Dir.Aeq(&lin.V3{X: 1}) {
		t.Error("sphere x=0.5 should look down +x", r.Dir.Dump())
	}
}

// a transformed camera casts transformed rays.
func TestCameraTransform(t *testing.T) {
	c, _ := NewPerspective(lin.PI/3, 1)
	c.TransformSelf(lin.NewT().SetTranslate(0, 0, 5))
	r := lin.NewRay()
	c.Cast(0, 0, r)
	if !r.Orig.Aeq(&lin.V3{Z: 5}) {
		t.Error("camera translation should move the ray origin", r.Orig.Dump())
	}
	if !r.Dir.Aeq(&lin.V3{Z: 1}) {
		t.Error("translation should not bend the ray", r.Dir.Dump())
	}
}

// a zero lens radius is exactly the pinhole camera.
func TestLensDegradesToPinhole(t *testing.T) {
	pin, _ := NewPerspective(lin.PI/3, 1)
	lens, _ := NewPerspectiveLens(lin.PI/3, 1, 0, 10)
	r1, r2 := lin.NewRay(), lin.NewRay()
	pin.Cast(0.3, -0.7, r1)
	lens.Cast(0.3, -0.7, r2)
	if !r1.Aeq(r2) {
		t.Error("zero radius lens should match the pinhole camera")
	}
}

// lens rays always pass through the focal point of the center ray.
func TestLensFocalPoint(t *testing.T) {
	focal := 6.0
	lens, _ := NewPerspectiveLens(lin.PI/3, 1, 0.5, focal)
	center, r := lin.NewRay(), lin.NewRay()
	pin, _ := NewPerspective(lin.PI/3, 1)
	pin.Cast(0.2, 0.4, center)
	focalPoint := lin.V3{}
	center.At(focal/center.Dir.Z, &focalPoint)

	for i := 0; i < 8; i++ {
		lens.Cast(0.2, 0.4, r)
		if !lin.Aeq(r.Dir.Len(), 1) {
			t.Error("lens directions must be normalized")
		}
		// origin is on the lens disc.
		if math.Hypot(r.Orig.X, r.Orig.Y) > 0.5+lin.Epsilon || r.Orig.Z != 0 {
			t.Error("lens origin should stay on the lens disc", r.Orig.Dump())
		}
		// the focal point lies on the ray: (focal - orig) x dir == 0.
		tofp, crossed := lin.V3{}, lin.V3{}
		tofp.Sub(&focalPoint, &r.Orig)
		if !crossed.Cross(&tofp, &r.Dir).AeqZ() {
			t.Error("lens ray should aim through the focal point")
		}
	}
}

func TestCameraSetupErrors(t *testing.T) {
	cases := map[string]error{}
	_, cases["fov low"] = NewPerspective(0, 1)
	_, cases["fov high"] = NewPerspective(lin.PI, 1)
	_, cases["aspect"] = NewPerspective(1, 0)
	_, cases["ortho scale"] = NewOrthographic(0, 1)
	_, cases["lens radius"] = NewPerspectiveLens(1, 1, -1, 5)
	_, cases["lens focal"] = NewPerspectiveLens(1, 1, 1, 0)
	for name, err := range cases {
		if !errors.Is(err, ErrSetup) {
			t.Error(name, "should report bad setup, got", err)
		}
	}
}
