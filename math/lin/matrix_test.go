// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestSetM4(t *testing.T) {
	m, a := &M4{}, &M4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16}
	if !m.Set(a).Eq(a) {
		t.Errorf(format, m.Dump(), a.Dump())
	}
}

func TestSetIM4(t *testing.T) {
	m := &M4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if !m.SetI().Eq(M4I) {
		t.Errorf(format, m.Dump(), M4I.Dump())
	}
}

func TestTransposeM4(t *testing.T) {
	m := &M4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16}
	want := &M4{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16}
	if !m.Transpose(m).Eq(want) {
		t.Errorf(format, m.Dump(), want.Dump())
	}
}

func TestAddSubM4(t *testing.T) {
	m := &M4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	a := &M4{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	orig := &M4{}
	orig.Set(m)
	if !m.Add(m, a).Sub(m, a).Eq(orig) {
		t.Errorf(format, m.Dump(), orig.Dump())
	}
}

func TestScaleDivM4(t *testing.T) {
	m := &M4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	orig := &M4{}
	orig.Set(m)
	if !m.Scale(4).Div(4).Eq(orig) {
		t.Errorf(format, m.Dump(), orig.Dump())
	}
}

func TestMultIdentityM4(t *testing.T) {
	m := &M4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	orig := &M4{}
	orig.Set(m)
	if !m.Mult(m, M4I).Eq(orig) {
		t.Errorf(format, m.Dump(), orig.Dump())
	}
	if !m.Mult(M4I, m).Eq(orig) {
		t.Errorf(format, m.Dump(), orig.Dump())
	}
}

// Composing a transform matrix and applying it is the same as applying
// each matrix in turn: row vectors compose left to right.
func TestMultComposesM4(t *testing.T) {
	ma := NewM4().SetTranslate(1, 2, 3)
	mb := NewM4().SetAa(0, 0, 1, HalfPi)
	m := NewM4().Mult(ma, mb)

	v1 := (&V3{5, 0, 0}).MultpM(&V3{5, 0, 0}, ma)
	v1.MultpM(v1, mb)
	v2 := (&V3{5, 0, 0}).MultpM(&V3{5, 0, 0}, m)
	if !v1.Aeq(v2) {
		t.Errorf(format, v2.Dump(), v1.Dump())
	}
}

func TestSetAaM4(t *testing.T) {
	m := NewM4().SetAa(0, 0, 1, HalfPi)
	v, want := &V3{1, 0, 0}, &V3{0, 1, 0}
	if !v.MultvM(v, m).Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

// A rotation matrix composed with its transpose is identity.
func TestRotationTransposeM4(t *testing.T) {
	m := NewM4().SetAa(1, -1, 2, 1.2)
	mt := NewM4().Transpose(m)
	if !m.Mult(m, mt).Aeq(M4I) {
		t.Errorf(format, m.Dump(), M4I.Dump())
	}
}

// Perspective matrix times its closed-form inverse is identity.
func TestPerspInvM4(t *testing.T) {
	fov, aspect, near, far := 60.0, 1.6, 0.1, 100.0
	m := NewM4().Persp(fov, aspect, near, far)
	mi := NewM4().PerspInv(fov, aspect, near, far)
	if !m.Mult(m, mi).Aeq(M4I) {
		t.Errorf(format, m.Dump(), M4I.Dump())
	}
}

func TestFrustumMatchesPerspM4(t *testing.T) {
	// A symmetric frustum is the same as the perspective shortcut.
	fov, aspect, near, far := 90.0, 1.0, 1.0, 10.0
	p := NewM4().Persp(fov, aspect, near, far)
	top := near // tan(45) == 1
	f := NewM4().SetFrustum(-top*aspect, top*aspect, -top, top, near, far)
	if !p.Aeq(f) {
		t.Errorf(format, f.Dump(), p.Dump())
	}
}

func TestOrthoM4(t *testing.T) {
	m := NewM4().Ortho(-2, 2, -1, 1, 0, 10)
	v := &V3{2, 1, 0}
	want := &V3{1, 1, -1}
	if !v.MultpM(v, m).Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}
