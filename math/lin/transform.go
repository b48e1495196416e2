// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "log"

// T is an affine 3D transform that carries both its forward matrix and
// its inverse. The inverse is always maintained in lockstep with the
// forward matrix and is produced closed-form by each constructor:
// translations negate, scales reciprocate, and rotations conjugate the
// quaternion. A 4x4 matrix is never inverted numerically.
//
// Keeping the pair means inverting a transform is a constant time swap
// and mapping entities in and out of shape local space is always exact.
type T struct {
	Fwd M4 // maps object space to world space.
	Inv M4 // maps world space to object space.
}

// Eq (==) returns true if both matrices of transform t have the same values
// as the corresponding matrices of transform a.
func (t *T) Eq(a *T) bool { return t.Fwd.Eq(&a.Fwd) && t.Inv.Eq(&a.Inv) }

// Aeq (~=) almost-equals returns true if both matrices of transform t have
// essentially the same values as the corresponding matrices of transform a.
func (t *T) Aeq(a *T) bool { return t.Fwd.Aeq(&a.Fwd) && t.Inv.Aeq(&a.Inv) }

// Set (=, copy, clone) assigns the matrices of transform a to transform t.
// The updated transform t is returned.
func (t *T) Set(a *T) *T {
	t.Fwd.Set(&a.Fwd)
	t.Inv.Set(&a.Inv)
	return t
}

// SetI updates transform t to be the identity transform.
// The updated transform t is returned.
func (t *T) SetI() *T {
	t.Fwd.SetI()
	t.Inv.SetI()
	return t
}

// SetTranslate updates t to be the transform moving points by x, y, z.
// The inverse moves points back by the same amounts.
// The updated transform t is returned.
func (t *T) SetTranslate(x, y, z float64) *T {
	t.Fwd.SetTranslate(x, y, z)
	t.Inv.SetTranslate(-x, -y, -z)
	return t
}

// SetScale updates t to be the transform scaling by x, y, z along the
// coordinate axes. The inverse scales by the reciprocals. Zero scale
// factors are degenerate and logged as developer errors.
// The updated transform t is returned.
func (t *T) SetScale(x, y, z float64) *T {
	if x == 0 || y == 0 || z == 0 {
		log.Printf("Dev error. lin.T:SetScale zero scale factor.")
	}
	t.Fwd.SetScale(x, y, z)
	t.Inv.SetScale(1/x, 1/y, 1/z)
	return t
}

// SetAa updates t to be the rotation of angle radians about the axis
// (ax, ay, az). The inverse rotates by the conjugate.
// The updated transform t is returned.
func (t *T) SetAa(ax, ay, az, angle float64) *T {
	q := Q{}
	return t.SetQ(q.SetAa(ax, ay, az, angle))
}

// SetPyr updates t to be the combined rotation of the given pitch, yaw,
// and roll angles in radians. The updated transform t is returned.
func (t *T) SetPyr(pitch, yaw, roll float64) *T {
	q := Q{}
	return t.SetQ(q.SetPyr(pitch, yaw, roll))
}

// SetQ updates t to be the rotation of unit quaternion q. The inverse
// is the rotation of the conjugate quaternion.
// The updated transform t is returned.
func (t *T) SetQ(q *Q) *T {
	t.Fwd.SetQ(q)
	c := Q{}
	t.Inv.SetQ(c.Inv(q))
	return t
}

// Invert swaps the forward and inverse matrices of transform t,
// in constant time. The updated transform t is returned.
func (t *T) Invert() *T {
	t.Fwd, t.Inv = t.Inv, t.Fwd
	return t
}

// Mult updates t to be the composition of transforms a and b, applying
// a first and then b. The forward matrices compose left to right while
// the inverses compose right to left:
//
//	Fwd = a.Fwd * b.Fwd
//	Inv = b.Inv * a.Inv
//
// It is safe to use the calling transform t as one or both parameters.
// The updated transform t is returned.
func (t *T) Mult(a, b *T) *T {
	t.Fwd.Mult(&a.Fwd, &b.Fwd)
	t.Inv.Mult(&b.Inv, &a.Inv)
	return t
}

// transform construction
// ============================================================================
// transform application: App* maps object space entities into world space
// using the forward matrix, Inv* maps world space entities into object
// space using the inverse matrix.

// AppPt applies transform t to point p: rotation, scale, and translation
// all apply. The updated point p is returned.
func (t *T) AppPt(p *V3) *V3 { return p.MultpM(p, &t.Fwd) }

// InvPt applies the inverse of transform t to point p.
// The updated point p is returned.
func (t *T) InvPt(p *V3) *V3 { return p.MultpM(p, &t.Inv) }

// AppV applies transform t to direction vector v: only the linear part
// applies, translation is ignored. The updated vector v is returned.
func (t *T) AppV(v *V3) *V3 { return v.MultvM(v, &t.Fwd) }

// InvV applies the inverse of transform t to direction vector v.
// The updated vector v is returned.
func (t *T) InvV(v *V3) *V3 { return v.MultvM(v, &t.Inv) }

// AppN applies transform t to surface normal n. Normals transform by the
// inverse-transpose of the linear part, which falls out of the stored
// inverse matrix without further work. The result is not normalized.
// The updated normal n is returned.
func (t *T) AppN(n *V3) *V3 { return n.MultnM(n, &t.Inv) }

// InvN applies the inverse of transform t to surface normal n, ie. the
// transpose of the forward linear part. The updated normal n is returned.
func (t *T) InvN(n *V3) *V3 { return n.MultnM(n, &t.Fwd) }

// AppRay applies transform t to ray r: the origin transforms as a point
// and the direction as a vector. The updated ray r is returned.
func (t *T) AppRay(r *Ray) *Ray {
	t.AppPt(&r.Orig)
	t.AppV(&r.Dir)
	return r
}

// InvRay applies the inverse of transform t to ray r.
// The updated ray r is returned.
func (t *T) InvRay(r *Ray) *Ray {
	t.InvPt(&r.Orig)
	t.InvV(&r.Dir)
	return r
}

// AppBox updates box b to be the axis aligned bound of box a under
// transform t: the eight corners of a are transformed as points and the
// box is rebuilt around them. Box b may be the input box a.
// The updated box b is returned.
func (b *Box) AppBox(t *T, a *Box) *Box {
	if a.Empty() {
		return b.Reset()
	}
	minp, maxp := a.Min, a.Max // copy before reset in case b == a.
	b.Reset()
	p := V3{}
	for i := 0; i < 8; i++ {
		p.X = pick(i&1 == 0, minp.X, maxp.X)
		p.Y = pick(i&2 == 0, minp.Y, maxp.Y)
		p.Z = pick(i&4 == 0, minp.Z, maxp.Z)
		b.AddPoint(t.AppPt(&p))
	}
	return b
}

func pick(first bool, a, b float64) float64 {
	if first {
		return a
	}
	return b
}

// ============================================================================
// convenience functions for allocating transforms. Nothing else should allocate.

// NewT creates a new identity transform.
func NewT() *T {
	t := &T{}
	return t.SetI()
}
