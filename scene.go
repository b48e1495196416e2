// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"github.com/gazed/trace/math/lin"
	"github.com/gazed/trace/shape"
)

// Scene owns the primitives to be rendered. Each primitive's world
// bound is cached when it is added, and the scene keeps the union of
// all of them: ray queries reject on the scene bound first and on the
// per-primitive bounds second, so most rays never reach the quadric
// math. Build the scene up front, then share it read-only between
// render workers.
type Scene struct {
	prims  []prim
	bounds lin.Box // union of primitive world bounds.
}

// prim pairs a shape with its cached world bound.
type prim struct {
	bound lin.Box
	shape shape.Shape
}

// Hit is the closest scene intersection and the shape that produced it.
type Hit struct {
	Shape shape.Shape
	shape.Intersection
}

// NewScene creates an empty scene.
func NewScene() *Scene { return &Scene{} }

// Add takes ownership of shape s, caching its world bound. Shapes must
// be fully placed before they are added.
func (s *Scene) Add(sh shape.Shape) {
	p := prim{shape: sh}
	sh.WorldBound(&p.bound)
	s.prims = append(s.prims, p)
	s.bounds.AddBox(&p.bound)
}

// Len returns the number of primitives in the scene.
func (s *Scene) Len() int { return len(s.prims) }

// Bounds fills b with the union of the world bounds of every primitive.
// The filled box b is returned.
func (s *Scene) Bounds(b *lin.Box) *lin.Box { return b.Set(&s.bounds) }

// Intersect returns the closest hit of world space ray r against the
// scene, or ok false. The scene-wide bound short circuits rays that
// miss everything without evaluating any primitive.
func (s *Scene) Intersect(r *lin.Ray) (h Hit, ok bool) {
	if !s.bounds.Intersects(r) {
		return h, false
	}
	for i := range s.prims {
		p := &s.prims[i]
		if !p.bound.Intersects(r) {
			continue
		}
		hit, hitOk := p.shape.Intersect(r)
		if !hitOk {
			continue
		}
		if !ok || hit.T < h.T {
			h.Shape = p.shape
			h.Intersection = hit
			ok = true
		}
	}
	return h, ok
}
