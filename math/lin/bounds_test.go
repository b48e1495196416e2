// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestBoxEmpty(t *testing.T) {
	b := NewBox()
	if !b.Empty() || b.SurfaceArea() != 0 || b.Volume() != 0 {
		t.Error("zero value box should be empty with no area or volume")
	}
	if b.Contains(&V3{0, 0, 0}) {
		t.Error("empty box contains nothing")
	}
}

// Growing a box around points must contain each of them.
func TestBoxAddPoints(t *testing.T) {
	points := []*V3{{1, 2, 3}, {-4, 0, 2}, {0.5, 8, -1}, {0, 0, 0}}
	b := NewBox().AddPoints(points...)
	for _, p := range points {
		if !b.Contains(p) {
			t.Error("box should contain", p.Dump())
		}
	}
}

func TestBoxAddBox(t *testing.T) {
	b := NewBoxS(0, 0, 0, 1, 1, 1)
	b.AddBox(NewBoxS(2, 2, 2, 3, 3, 3))
	want := NewBoxS(0, 0, 0, 3, 3, 3)
	if !b.Eq(want) {
		t.Error("union should span both boxes")
	}

	// unioning an empty box changes nothing.
	b.AddBox(NewBox())
	if !b.Eq(want) {
		t.Error("union with empty box should be a no-op")
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := NewBoxS(0, 0, 0, 2, 2, 2)
	b := NewBoxS(1, 1, 1, 3, 3, 3)
	c := NewBoxS(5, 5, 5, 6, 6, 6)
	if !a.Overlaps(b) || a.Overlaps(c) {
		t.Error("Overlaps")
	}
	if a.Overlaps(NewBox()) {
		t.Error("nothing overlaps an empty box")
	}
}

func TestBoxMeasures(t *testing.T) {
	b := NewBoxS(0, 0, 0, 1, 2, 3)
	if b.SurfaceArea() != 22 {
		t.Error("SurfaceArea", b.SurfaceArea())
	}
	if b.Volume() != 6 {
		t.Error("Volume", b.Volume())
	}
}

func TestBoxIntersects(t *testing.T) {
	b := NewBoxS(-1, -1, 4, 1, 1, 6)
	hit := NewRayS(0, 0, 0, 0, 0, 1)
	miss := NewRayS(0, 0, 0, 0, 1, 0)
	behind := NewRayS(0, 0, 10, 0, 0, 1)
	if !b.Intersects(hit) {
		t.Error("ray through the box should hit")
	}
	if b.Intersects(miss) {
		t.Error("perpendicular ray should miss")
	}
	if b.Intersects(behind) {
		t.Error("box behind the ray origin should miss")
	}
	if NewBox().Intersects(hit) {
		t.Error("empty box should never intersect")
	}
}

// Axis aligned rays divide by zero direction elements: the resulting
// infinities must fold correctly instead of poisoning the test.
func TestBoxIntersectsAxisRay(t *testing.T) {
	b := NewBoxS(-1, -1, -1, 1, 1, 1)
	r := NewRayS(0.5, 0.5, -5, 0, 0, 1)
	if !b.Intersects(r) {
		t.Error("axis aligned ray should hit")
	}
	r = NewRayS(2.5, 0.5, -5, 0, 0, 1)
	if b.Intersects(r) {
		t.Error("offset axis aligned ray should miss")
	}
}

// A transformed box bounds the transformed corners of the original.
func TestBoxTransform(t *testing.T) {
	b := NewBoxS(-1, -1, -1, 1, 1, 1)
	tr := NewT().SetAa(0, 0, 1, HalfPi/2) // 45 degrees about z.
	b.AppBox(tr, b)
	if !Aeq(b.Max.X, Sqrt2) || !Aeq(b.Min.X, -Sqrt2) {
		t.Error("rotated box should grow to the diagonal", b.Max.Dump())
	}
	if !Aeq(b.Max.Z, 1) {
		t.Error("rotation about z should not change z", b.Max.Dump())
	}
}
