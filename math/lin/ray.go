// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Ray is a half-line used to query a scene: an origin point and a
// direction vector. The direction is not required to be unit length.
// A ray exists in two spaces at once: world space as cast by a camera,
// and object space as consumed by a shape. T.InvRay maps world to object
// and T.AppRay maps object back to world.
type Ray struct {
	Orig V3 // ray starting location.
	Dir  V3 // ray direction away from origin.
}

// Eq (==) returns true if ray r has the same origin and direction as ray a.
func (r *Ray) Eq(a *Ray) bool { return r.Orig.Eq(&a.Orig) && r.Dir.Eq(&a.Dir) }

// Aeq (~=) almost-equals returns true if the origin and direction of r are
// essentially the same as those of ray a.
func (r *Ray) Aeq(a *Ray) bool { return r.Orig.Aeq(&a.Orig) && r.Dir.Aeq(&a.Dir) }

// SetS (=) sets the ray origin and direction from the given scalars.
// The updated ray r is returned.
func (r *Ray) SetS(ox, oy, oz, dx, dy, dz float64) *Ray {
	r.Orig.SetS(ox, oy, oz)
	r.Dir.SetS(dx, dy, dz)
	return r
}

// Set (=, copy, clone) sets ray r to have the same origin and direction
// as ray a. The updated ray r is returned.
func (r *Ray) Set(a *Ray) *Ray {
	r.Orig.Set(&a.Orig)
	r.Dir.Set(&a.Dir)
	return r
}

// At updates point p to be the ray position at parameter t, ie.
// origin + t*direction. The updated point p is returned.
func (r *Ray) At(t float64, p *V3) *V3 {
	return p.Scale(&r.Dir, t).Add(p, &r.Orig)
}

// ============================================================================
// convenience functions for allocating rays. Nothing else should allocate.

// NewRay creates a new ray at the origin with no direction.
func NewRay() *Ray { return &Ray{} }

// NewRayS creates a new ray from the given origin and direction scalars.
func NewRayS(ox, oy, oz, dx, dy, dz float64) *Ray {
	return &Ray{V3{ox, oy, oz}, V3{dx, dy, dz}}
}
