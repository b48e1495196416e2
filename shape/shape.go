// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package shape provides analytic ray intersection for the quadric and
// planar primitive family: sphere, cylinder, cone, paraboloid, disc,
// plane, triangle, and rectangular prism. Each primitive is defined in
// its own canonical object space and carries an affine transform placing
// it in the world. An intersection reports the full local differential
// geometry: hit point, forward facing unit normal, (u,v) surface
// parameters, and the position and normal partial derivatives.
//
// Package shape is provided as part of the trace (ray trace) renderer.
package shape

import (
	"errors"
	"math"

	"github.com/gazed/trace/math/lin"
)

// ErrGeometry is wrapped by shape constructors handed degenerate
// parameters, eg. a negative radius or an inverted z range. Intersection
// behaviour of a degenerate shape is undefined, so construction is the
// place the problem surfaces.
var ErrGeometry = errors.New("degenerate geometry")

// Surface is the local differential geometry at a hit point.
// All members are in the shape's object space: the renderer maps them
// to world space lazily using the shape transform.
type Surface struct {
	P lin.V3 // hit point.
	N lin.V3 // unit surface normal, face-forwarded against the ray.

	// parameterization of the hit point, nominally in [0,1]x[0,1].
	U, V float64

	DPDU lin.V3 // position change per unit u.
	DPDV lin.V3 // position change per unit v.
	DNDU lin.V3 // normal change per unit u.
	DNDV lin.V3 // normal change per unit v.
}

// Intersection is the first hit of a world space ray against a shape.
type Intersection struct {
	Ray     lin.Ray // the world space ray that was cast.
	T       float64 // parametric hit time along the ray, always >= 0.
	Surface         // object space differential geometry.
}

// Shape is an analytic primitive that can be placed in a scene.
// Implementations are not safe for concurrent mutation: position shapes
// during scene construction, then share them read-only between render
// workers.
type Shape interface {

	// Bound fills b with the shape's object space axis aligned bound.
	// The filled box b is returned.
	Bound(b *lin.Box) *lin.Box

	// WorldBound fills b with the object space bound transformed
	// into world space. The filled box b is returned.
	WorldBound(b *lin.Box) *lin.Box

	// SurfaceArea returns the analytic area of the shape surface.
	SurfaceArea() float64

	// Intersect returns the first hit of world space ray r with time
	// >= 0, or ok false when the ray misses.
	Intersect(r *lin.Ray) (hit Intersection, ok bool)

	// Transform exposes the shape's placement. Read-only: compose
	// updates through TransformSelf.
	Transform() *lin.T

	// TransformSelf moves the shape by applying transform t after its
	// existing placement, ie. t moves the shape in world space.
	TransformSelf(t *lin.T)
}

// pose is the placement shared by every primitive. Embedding it supplies
// the Transform and TransformSelf half of the Shape interface.
type pose struct {
	tr lin.T // object to world placement.
}

// Transform exposes the shape's placement.
func (p *pose) Transform() *lin.T { return &p.tr }

// TransformSelf composes t after the current placement.
func (p *pose) TransformSelf(t *lin.T) { p.tr.Mult(&p.tr, t) }

// worldBound is the shared WorldBound implementation: the object bound
// mapped through the pose.
func (p *pose) worldBound(b *lin.Box, s Shape) *lin.Box {
	return b.AppBox(&p.tr, s.Bound(b))
}

// ============================================================================
// helpers shared by the quadric intersectors.

// phiAt returns the azimuth of object space point p in [0, 2π). Points
// on the z axis seam are nudged off it so atan2 stays finite; radius
// scales the nudge to the shape size.
func phiAt(p *lin.V3, radius float64) float64 {
	if p.X == 0 && p.Y == 0 {
		p.X = 1e-5 * radius
	}
	phi := math.Atan2(p.Y, p.X)
	if phi < 0 {
		phi += lin.PIx2
	}
	return phi
}

// weingarten derives the unit surface normal and the normal partial
// derivatives from the position partials and second partials via the
// first (E,F,G) and second (e,f,g) fundamental forms. The returned
// normal is not yet face-forwarded. A degenerate parameterization
// (E*G == F*F) leaves the normal derivatives zero.
func weingarten(sf *Surface, d2uu, d2uv, d2vv *lin.V3) {
	bigE := sf.DPDU.Dot(&sf.DPDU)
	bigF := sf.DPDU.Dot(&sf.DPDV)
	bigG := sf.DPDV.Dot(&sf.DPDV)
	sf.N.Cross(&sf.DPDU, &sf.DPDV)
	sf.N.Unit()
	e := sf.N.Dot(d2uu)
	f := sf.N.Dot(d2uv)
	g := sf.N.Dot(d2vv)

	egf := bigE*bigG - bigF*bigF
	if egf == 0 {
		sf.DNDU.SetS(0, 0, 0)
		sf.DNDV.SetS(0, 0, 0)
		return
	}
	inv := 1 / egf
	tmp := lin.V3{}
	sf.DNDU.Scale(&sf.DPDU, (f*bigF-e*bigG)*inv)
	sf.DNDU.Add(&sf.DNDU, tmp.Scale(&sf.DPDV, (e*bigF-f*bigE)*inv))
	sf.DNDV.Scale(&sf.DPDU, (g*bigF-f*bigG)*inv)
	sf.DNDV.Add(&sf.DNDV, tmp.Scale(&sf.DPDV, (f*bigF-g*bigE)*inv))
}

// planar ray directions below this are treated as parallel misses.
const planarEpsilon = 1e-7
