// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "fmt"

// Dump helps debugging by printing the matrix in rows.
func (m *M4) Dump() (str string) {
	str += fmt.Sprintf("%2.9f %2.9f %2.9f %2.9f\n", m.Xx, m.Xy, m.Xz, m.Xw)
	str += fmt.Sprintf("%2.9f %2.9f %2.9f %2.9f\n", m.Yx, m.Yy, m.Yz, m.Yw)
	str += fmt.Sprintf("%2.9f %2.9f %2.9f %2.9f\n", m.Zx, m.Zy, m.Zz, m.Zw)
	str += fmt.Sprintf("%2.9f %2.9f %2.9f %2.9f\n", m.Wx, m.Wy, m.Wz, m.Ww)
	return str
}

func (v *V3) Dump() string  { return fmt.Sprintf("%2.9f", *v) }
func (q *Q) Dump() string   { return fmt.Sprintf("%2.9f", *q) }
func (r *Ray) Dump() string { return fmt.Sprintf("%2.9f->%2.9f", r.Orig, r.Dir) }
