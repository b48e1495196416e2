// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Matrix functions deal with the 4x4 matrices used to position shapes
// and cameras in a scene and to map rays back into shape local space.
//
// Row or Column Major order? No matter the convention, the end result of a
// vector point (x, y, z, 1) multiplied with a transform matrix must be:
//	x' = x*Xx + y*Yx + z*Zx + Wx
//	y' = x*Xy + y*Yy + z*Zy + Wy
//	z' = x*Xz + y*Yz + z*Zz + Wz
// Where x, y, z is the original vector and X, Y, Z are the three axes of
// the coordinate system. This matrix implementation uses explicitly
// indexed, Row-Major, matrix members as follows:
//	[Xx, Xy, Xz, Xw]  X-Axis
//	[Yx, Yy, Yz, Yw]  Y-Axis
//	[Zx, Zy, Zz, Zw]  Z-Axis
//	[Wx, Wy, Wz, Ww]  Translation vector, Ww == 1.
// Vectors multiply as rows on the left, so composing transforms reads
// left to right: v*(A*B) applies A first, then B.

import (
	"log"
	"math"
)

// M4 is a 4x4 matrix where the matrix elements are individually addressable.
type M4 struct {
	Xx, Xy, Xz, Xw float64 // indices 0, 1, 2, 3  [00, 01, 02, 03] X-Axis
	Yx, Yy, Yz, Yw float64 // indices 4, 5, 6, 7  [10, 11, 12, 13] Y-Axis
	Zx, Zy, Zz, Zw float64 // indices 8, 9, a, b  [20, 21, 22, 23] Z-Axis
	Wx, Wy, Wz, Ww float64 // indices c, d, e, f  [30, 31, 32, 33]
}

// M4I provides a reference identity matrix that can be used
// in calculations. It should never be changed.
var M4I = &M4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1}

// Eq (==) returns true if all the elements in matrix m have the same value
// as the corresponding elements in matrix a.
func (m *M4) Eq(a *M4) bool {
	return true &&
		m.Xx == a.Xx && m.Xy == a.Xy && m.Xz == a.Xz && m.Xw == a.Xw &&
		m.Yx == a.Yx && m.Yy == a.Yy && m.Yz == a.Yz && m.Yw == a.Yw &&
		m.Zx == a.Zx && m.Zy == a.Zy && m.Zz == a.Zz && m.Zw == a.Zw &&
		m.Wx == a.Wx && m.Wy == a.Wy && m.Wz == a.Wz && m.Ww == a.Ww
}

// Aeq (~=) almost equals returns true if all the elements in matrix m have
// essentially the same value as the corresponding elements in matrix a.
// Used where equals is unlikely to return true due to float precision.
func (m *M4) Aeq(a *M4) bool {
	return true &&
		Aeq(m.Xx, a.Xx) && Aeq(m.Xy, a.Xy) && Aeq(m.Xz, a.Xz) && Aeq(m.Xw, a.Xw) &&
		Aeq(m.Yx, a.Yx) && Aeq(m.Yy, a.Yy) && Aeq(m.Yz, a.Yz) && Aeq(m.Yw, a.Yw) &&
		Aeq(m.Zx, a.Zx) && Aeq(m.Zy, a.Zy) && Aeq(m.Zz, a.Zz) && Aeq(m.Zw, a.Zw) &&
		Aeq(m.Wx, a.Wx) && Aeq(m.Wy, a.Wy) && Aeq(m.Wz, a.Wz) && Aeq(m.Ww, a.Ww)
}

// Set (=, copy, clone) assigns all the elements values from matrix a to the
// corresponding element values in matrix m. The updated matrix m is returned.
func (m *M4) Set(a *M4) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx, a.Xy, a.Xz, a.Xw
	m.Yx, m.Yy, m.Yz, m.Yw = a.Yx, a.Yy, a.Yz, a.Yw
	m.Zx, m.Zy, m.Zz, m.Zw = a.Zx, a.Zy, a.Zz, a.Zw
	m.Wx, m.Wy, m.Wz, m.Ww = a.Wx, a.Wy, a.Wz, a.Ww
	return m
}

// SetI updates matrix m to be the identity matrix.
// The updated matrix m is returned.
func (m *M4) SetI() *M4 { return m.Set(M4I) }

// Transpose updates matrix m to be the reflection of matrix a about its
// diagonal. Matrix m may be used as the input parameter.
// The updated matrix m is returned.
func (m *M4) Transpose(a *M4) *M4 {
	xy, xz, xw := a.Yx, a.Zx, a.Wx
	yx, yz, yw := a.Xy, a.Zy, a.Wy
	zx, zy, zw := a.Xz, a.Yz, a.Wz
	wx, wy, wz := a.Xw, a.Yw, a.Zw
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx, xy, xz, xw
	m.Yx, m.Yy, m.Yz, m.Yw = yx, a.Yy, yz, yw
	m.Zx, m.Zy, m.Zz, m.Zw = zx, zy, a.Zz, zw
	m.Wx, m.Wy, m.Wz, m.Ww = wx, wy, wz, a.Ww
	return m
}

// Add (+) adds matrices a and b storing the results in m.
// Matrix m may be used as one or both of the parameters.
// The updated matrix m is returned.
func (m *M4) Add(a, b *M4) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx+b.Xx, a.Xy+b.Xy, a.Xz+b.Xz, a.Xw+b.Xw
	m.Yx, m.Yy, m.Yz, m.Yw = a.Yx+b.Yx, a.Yy+b.Yy, a.Yz+b.Yz, a.Yw+b.Yw
	m.Zx, m.Zy, m.Zz, m.Zw = a.Zx+b.Zx, a.Zy+b.Zy, a.Zz+b.Zz, a.Zw+b.Zw
	m.Wx, m.Wy, m.Wz, m.Ww = a.Wx+b.Wx, a.Wy+b.Wy, a.Wz+b.Wz, a.Ww+b.Ww
	return m
}

// Sub (-) subtracts matrix b from matrix a storing the results in m.
// Matrix m may be used as one or both of the parameters.
// The updated matrix m is returned.
func (m *M4) Sub(a, b *M4) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx-b.Xx, a.Xy-b.Xy, a.Xz-b.Xz, a.Xw-b.Xw
	m.Yx, m.Yy, m.Yz, m.Yw = a.Yx-b.Yx, a.Yy-b.Yy, a.Yz-b.Yz, a.Yw-b.Yw
	m.Zx, m.Zy, m.Zz, m.Zw = a.Zx-b.Zx, a.Zy-b.Zy, a.Zz-b.Zz, a.Zw-b.Zw
	m.Wx, m.Wy, m.Wz, m.Ww = a.Wx-b.Wx, a.Wy-b.Wy, a.Wz-b.Wz, a.Ww-b.Ww
	return m
}

// Scale (*=) multiplies each element of matrix m by the given scalar.
// The updated matrix m is returned.
func (m *M4) Scale(s float64) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = m.Xx*s, m.Xy*s, m.Xz*s, m.Xw*s
	m.Yx, m.Yy, m.Yz, m.Yw = m.Yx*s, m.Yy*s, m.Yz*s, m.Yw*s
	m.Zx, m.Zy, m.Zz, m.Zw = m.Zx*s, m.Zy*s, m.Zz*s, m.Zw*s
	m.Wx, m.Wy, m.Wz, m.Ww = m.Wx*s, m.Wy*s, m.Wz*s, m.Ww*s
	return m
}

// Div (/=) divides each element of matrix m by the given scalar.
// Matrix m is unchanged if the scalar is zero.
// The updated matrix m is returned.
func (m *M4) Div(s float64) *M4 {
	if s != 0 {
		return m.Scale(1 / s)
	}
	return m
}

// Mult updates matrix m to be the product of matrices l and r. With row
// vectors this composes the transforms so that l applies first, then r.
// It is safe to use the calling matrix m as one or both of the parameters.
// The updated matrix m is returned.
func (m *M4) Mult(l, r *M4) *M4 {
	xx := l.Xx*r.Xx + l.Xy*r.Yx + l.Xz*r.Zx + l.Xw*r.Wx
	xy := l.Xx*r.Xy + l.Xy*r.Yy + l.Xz*r.Zy + l.Xw*r.Wy
	xz := l.Xx*r.Xz + l.Xy*r.Yz + l.Xz*r.Zz + l.Xw*r.Wz
	xw := l.Xx*r.Xw + l.Xy*r.Yw + l.Xz*r.Zw + l.Xw*r.Ww
	yx := l.Yx*r.Xx + l.Yy*r.Yx + l.Yz*r.Zx + l.Yw*r.Wx
	yy := l.Yx*r.Xy + l.Yy*r.Yy + l.Yz*r.Zy + l.Yw*r.Wy
	yz := l.Yx*r.Xz + l.Yy*r.Yz + l.Yz*r.Zz + l.Yw*r.Wz
	yw := l.Yx*r.Xw + l.Yy*r.Yw + l.Yz*r.Zw + l.Yw*r.Ww
	zx := l.Zx*r.Xx + l.Zy*r.Yx + l.Zz*r.Zx + l.Zw*r.Wx
	zy := l.Zx*r.Xy + l.Zy*r.Yy + l.Zz*r.Zy + l.Zw*r.Wy
	zz := l.Zx*r.Xz + l.Zy*r.Yz + l.Zz*r.Zz + l.Zw*r.Wz
	zw := l.Zx*r.Xw + l.Zy*r.Yw + l.Zz*r.Zw + l.Zw*r.Ww
	wx := l.Wx*r.Xx + l.Wy*r.Yx + l.Wz*r.Zx + l.Ww*r.Wx
	wy := l.Wx*r.Xy + l.Wy*r.Yy + l.Wz*r.Zy + l.Ww*r.Wy
	wz := l.Wx*r.Xz + l.Wy*r.Yz + l.Wz*r.Zz + l.Ww*r.Wz
	ww := l.Wx*r.Xw + l.Wy*r.Yw + l.Wz*r.Zw + l.Ww*r.Ww
	m.Xx, m.Xy, m.Xz, m.Xw = xx, xy, xz, xw
	m.Yx, m.Yy, m.Yz, m.Yw = yx, yy, yz, yw
	m.Zx, m.Zy, m.Zz, m.Zw = zx, zy, zz, zw
	m.Wx, m.Wy, m.Wz, m.Ww = wx, wy, wz, ww
	return m
}

// SetTranslate updates m to be the translation matrix moving points by
// x, y, z. The updated matrix m is returned.
//
//	[ 1 0 0 0 ]    [ Xx Xy Xz Xw ]
//	[ 0 1 0 0 ] => [ Yx Yy Yz Yw ]
//	[ 0 0 1 0 ]    [ Zx Zy Zz Zw ]
//	[ x y z 1 ]    [ Wx Wy Wz Ww ]
func (m *M4) SetTranslate(x, y, z float64) *M4 {
	m.SetI()
	m.Wx, m.Wy, m.Wz = x, y, z
	return m
}

// SetScale updates m to be the matrix scaling points by x, y, z along
// the coordinate axes. The updated matrix m is returned.
func (m *M4) SetScale(x, y, z float64) *M4 {
	m.SetI()
	m.Xx, m.Yy, m.Zz = x, y, z
	return m
}

// SetAa, set axis-angle, updates m to be a rotation matrix from the
// given axis (ax, ay, az) and angle (in radians). See:
//
//	http://en.wikipedia.org/wiki/Rotation_matrix#Rotation_matrix_from_axis_and_angle
//
// The updated matrix m is returned.
func (m *M4) SetAa(ax, ay, az, ang float64) *M4 {
	alenSqr := ax*ax + ay*ay + az*az
	if alenSqr == 0 {
		log.Printf("Dev error. lin.M4:SetAa zero length axis.")
		return m
	}

	// ensure normalized unit vector.
	ilen := 1 / math.Sqrt(alenSqr)
	ax, ay, az = ax*ilen, ay*ilen, az*ilen

	// now set the rotation. Terms are arranged so that row vectors
	// multiplying on the left rotate the same way as Q.SetAa.
	rcos, rsin := math.Cos(ang), math.Sin(ang)
	m.Xx = rcos + ax*ax*(1-rcos)
	m.Xy = az*rsin + ay*ax*(1-rcos)
	m.Xz = -ay*rsin + az*ax*(1-rcos)
	m.Xw = 0
	m.Yx = -az*rsin + ax*ay*(1-rcos)
	m.Yy = rcos + ay*ay*(1-rcos)
	m.Yz = ax*rsin + az*ay*(1-rcos)
	m.Yw = 0
	m.Zx = ay*rsin + ax*az*(1-rcos)
	m.Zy = -ax*rsin + ay*az*(1-rcos)
	m.Zz = rcos + az*az*(1-rcos)
	m.Zw = 0
	m.Wx, m.Wy, m.Wz, m.Ww = 0, 0, 0, 1
	return m
}

// SetQ converts a quaternion rotation representation to a matrix
// rotation representation. SetQ updates matrix m to be the rotation
// matrix representing the rotation described by unit-quaternion q.
//
//	                   [ mXx mXy mXz 0 ]
//	[ qx qy qz qw ] => [ mYx mYy mYz 0 ]
//	                   [ mZx mZy mZz 0 ]
//	                   [  0   0   0  1 ]
//
// The parameter q is unchanged. The updated matrix m is returned.
// Terms are arranged so that row vectors multiplying on the left rotate
// the same way as V3.MultvQ.
func (m *M4) SetQ(q *Q) *M4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	m.Xx, m.Xy, m.Xz, m.Xw = 1-2*(yy+zz), 2*(xy+wz), 2*(xz-wy), 0
	m.Yx, m.Yy, m.Yz, m.Yw = 2*(xy-wz), 1-2*(xx+zz), 2*(yz+wx), 0
	m.Zx, m.Zy, m.Zz, m.Zw = 2*(xz+wy), 2*(yz-wx), 1-2*(xx+yy), 0
	m.Wx, m.Wy, m.Wz, m.Ww = 0, 0, 0, 1
	return m
}

// SetFrustum updates m to be the general perspective projection of the
// viewing frustum bounded by the given clipping planes.
//
//	left, right:  Vertical clipping planes.
//	bottom, top:  Horizontal clipping planes.
//	near, far  :  Depth clipping planes.
//
// The updated matrix m is returned.
func (m *M4) SetFrustum(left, right, bottom, top, near, far float64) *M4 {
	m.Xx = 2 * near / (right - left)
	m.Xy, m.Xz, m.Xw = 0, 0, 0
	m.Yx = 0
	m.Yy = 2 * near / (top - bottom)
	m.Yz, m.Yw = 0, 0
	m.Zx = (right + left) / (right - left)
	m.Zy = (top + bottom) / (top - bottom)
	m.Zz = -(far + near) / (far - near)
	m.Zw = -1
	m.Wx, m.Wy = 0, 0
	m.Wz = -2 * far * near / (far - near)
	m.Ww = 0
	return m
}

// Ortho sets matrix m with projection values needed to
// transform a 3 dimensional model to a 2 dimensional plane.
// Orthographic projection ignores depth. The input arguments are:
//
//	left, right:  Vertical clipping planes.
//	bottom, top:  Horizontal clipping planes.
//	near, far  :  Depth clipping planes. The depth values are
//	              negative if the plane is to be behind the viewer
//
// An orthographic matrix fills the following matrix locations:
//
//	[ a 0 0 0 ]    [ Xx Xy Xz Xw ]
//	[ 0 b 0 0 ] => [ Yx Yy Yz Yw ]
//	[ 0 0 c 0 ]    [ Zx Zy Zz Zw ]
//	[ d e f 1 ]    [ Wx Wy Wz Ww ]
func (m *M4) Ortho(left, right, bottom, top, near, far float64) *M4 {
	m.Xx = 2 / (right - left)
	m.Xy, m.Xz, m.Xw = 0, 0, 0
	m.Yx = 0
	m.Yy = 2 / (top - bottom)
	m.Yz, m.Yw = 0, 0
	m.Zx, m.Zy = 0, 0
	m.Zz = -2 / (far - near)
	m.Zw = 0
	m.Wx = -(right + left) / (right - left)
	m.Wy = -(top + bottom) / (top - bottom)
	m.Wz = -(far + near) / (far - near)
	m.Ww = 1
	return m
}

// Persp sets matrix m with projection values needed to
// transform a 3 dimensional model to a 2 dimensional plane.
// Objects that are further away from the viewer will appear smaller.
// The input arguments are:
//
//	fov        An amount in degrees indicating how much of the
//	           scene is visible.
//	aspect     The ratio of width to height of the model.
//	near, far  The depth clipping planes.
//
// A perspective projection matrix fills the following matrix locations:
//
//	[ a 0 0 0 ]    [ Xx Xy Xz Xw ]
//	[ 0 b 0 0 ] => [ Yx Yy Yz Yw ]
//	[ 0 0 c d ]    [ Zx Zy Zz Zw ]
//	[ 0 0 e 0 ]    [ Wx Wy Wz Ww ]
func (m *M4) Persp(fov, aspect, near, far float64) *M4 {
	f := 1 / math.Tan(Rad(fov)*0.5)
	m.Xx = f / aspect
	m.Xy, m.Xz, m.Xw = 0, 0, 0
	m.Yx = 0
	m.Yy = f
	m.Yz, m.Yw = 0, 0
	m.Zx, m.Zy = 0, 0
	m.Zz = (far + near) / (near - far)
	m.Zw = -1
	m.Wx, m.Wy = 0, 0
	m.Wz = 2 * far * near / (near - far)
	m.Ww = 0
	return m
}

// PerspInv sets matrix m to be a new inverse matrix of the given
// perspective matrix values (see Persp()).
//
//	[ a' 0  0  0 ] where a' = 1/a     d' = 1/e    [ Xx Xy Xz Xw ]
//	[ 0  b' 0  0 ]       b' = 1/b     e' = 1/d => [ Yx Yy Yz Yw ]
//	[ 0  0  0  d']       c' = -(c/de)             [ Zx Zy Zz Zw ]
//	[ 0  0  e' c']                                [ Wx Wy Wz Ww ]
//
// This is used when going from screen x,y coordinates to 3D coordinates.
func (m *M4) PerspInv(fov, aspect, near, far float64) *M4 {
	f := math.Tan(Rad(fov) * 0.5)
	c := 2 * far * near / (near - far)
	m.Xx = f * aspect
	m.Xy, m.Xz, m.Xw = 0, 0, 0
	m.Yx = 0
	m.Yy = f
	m.Yz, m.Yw = 0, 0
	m.Zx, m.Zy, m.Zz = 0, 0, 0
	m.Zw = 1 / c
	m.Wx, m.Wy = 0, 0
	m.Wz = -1
	m.Ww = -((far + near) / (near - far) / (-1 * c))
	return m
}

// methods above do not allocate memory.
// ============================================================================
// convenience functions for allocating matrices. Nothing else should allocate.

// NewM4 creates a new, all zero, 4x4 matrix.
func NewM4() *M4 { return &M4{} }

// NewM4I creates a new 4x4 identity matrix.
//
//	[ 1 0 0 0 ]    [ Xx Xy Xz Xw ]
//	[ 0 1 0 0 ] => [ Yx Yy Yz Yw ]
//	[ 0 0 1 0 ]    [ Zx Zy Zz Zw ]
//	[ 0 0 0 1 ]    [ Wx Wy Wz Ww ]
func NewM4I() *M4 { return &M4{Xx: 1, Yy: 1, Zz: 1, Ww: 1} }
