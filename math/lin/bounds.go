// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Box is an axis aligned bounding box used to cheaply reject rays before
// running full intersection math. A zero value Box is empty: it contains
// no points, unions as a no-op, and never intersects anything.
type Box struct {
	Min V3   // smallest corner.
	Max V3   // largest corner.
	ok  bool // false while the box is empty.
}

// Empty returns true if the box contains no points.
func (b *Box) Empty() bool { return !b.ok }

// Reset empties the box. The updated box b is returned.
func (b *Box) Reset() *Box {
	b.Min.SetS(0, 0, 0)
	b.Max.SetS(0, 0, 0)
	b.ok = false
	return b
}

// Eq (==) returns true if boxes b and a are both empty or have
// equal corners.
func (b *Box) Eq(a *Box) bool {
	if !b.ok || !a.ok {
		return b.ok == a.ok
	}
	return b.Min.Eq(&a.Min) && b.Max.Eq(&a.Max)
}

// Aeq (~=) almost-equals returns true if boxes b and a are both empty
// or have essentially equal corners.
func (b *Box) Aeq(a *Box) bool {
	if !b.ok || !a.ok {
		return b.ok == a.ok
	}
	return b.Min.Aeq(&a.Min) && b.Max.Aeq(&a.Max)
}

// Set (=, copy, clone) sets box b to have the same extents as box a.
// The updated box b is returned.
func (b *Box) Set(a *Box) *Box {
	b.Min.Set(&a.Min)
	b.Max.Set(&a.Max)
	b.ok = a.ok
	return b
}

// AddPoint grows box b the least amount needed to contain point p.
// The updated box b is returned.
func (b *Box) AddPoint(p *V3) *Box {
	if !b.ok {
		b.Min.Set(p)
		b.Max.Set(p)
		b.ok = true
		return b
	}
	b.Min.Min(&b.Min, p)
	b.Max.Max(&b.Max, p)
	return b
}

// AddPoints grows box b the least amount needed to contain each of the
// given points. The updated box b is returned.
func (b *Box) AddPoints(points ...*V3) *Box {
	for _, p := range points {
		b.AddPoint(p)
	}
	return b
}

// AddBox grows box b to be the union of itself and box a.
// The updated box b is returned.
func (b *Box) AddBox(a *Box) *Box {
	if !a.ok {
		return b
	}
	return b.AddPoint(&a.Min).AddPoint(&a.Max)
}

// Contains returns true if point p is inside or on the boundary of box b.
// Empty boxes contain nothing.
func (b *Box) Contains(p *V3) bool {
	if !b.ok {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps returns true if boxes b and a share any volume.
// Empty boxes overlap nothing.
func (b *Box) Overlaps(a *Box) bool {
	if !b.ok || !a.ok {
		return false
	}
	return b.Min.X <= a.Max.X && b.Max.X >= a.Min.X &&
		b.Min.Y <= a.Max.Y && b.Max.Y >= a.Min.Y &&
		b.Min.Z <= a.Max.Z && b.Max.Z >= a.Min.Z
}

// SurfaceArea returns the total area of the six box faces.
// Empty boxes have zero surface area.
func (b *Box) SurfaceArea() float64 {
	if !b.ok {
		return 0
	}
	dx, dy, dz := b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z
	return 2 * (dx*dy + dx*dz + dy*dz)
}

// Volume returns the box volume. Empty boxes have zero volume.
func (b *Box) Volume() float64 {
	if !b.ok {
		return 0
	}
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y) * (b.Max.Z - b.Min.Z)
}

// Intersects returns true if ray r enters box b ahead of its origin.
// The standard slab test: per-axis entry and exit parameters are swapped
// into order and folded together; the ray hits when the largest entry is
// no later than the smallest exit and the entry is not behind the ray
// origin. Empty boxes reject immediately.
func (b *Box) Intersects(r *Ray) bool {
	if !b.ok {
		return false
	}
	tmin, tmax := -Large, Large
	o, d := &r.Orig, &r.Dir

	// division by a zero direction element yields ±Inf which the
	// min/max folding handles correctly.
	t1, t2 := (b.Min.X-o.X)/d.X, (b.Max.X-o.X)/d.X
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tmin, tmax = max2(tmin, t1), min2(tmax, t2)

	t1, t2 = (b.Min.Y-o.Y)/d.Y, (b.Max.Y-o.Y)/d.Y
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tmin, tmax = max2(tmin, t1), min2(tmax, t2)

	t1, t2 = (b.Min.Z-o.Z)/d.Z, (b.Max.Z-o.Z)/d.Z
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tmin, tmax = max2(tmin, t1), min2(tmax, t2)
	return tmax >= tmin && tmin >= 0
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ============================================================================
// convenience functions for allocating boxes. Nothing else should allocate.

// NewBox creates a new empty bounding box.
func NewBox() *Box { return &Box{} }

// NewBoxS creates a bounding box spanning the two given corners.
func NewBoxS(minx, miny, minz, maxx, maxy, maxz float64) *Box {
	b := &Box{}
	return b.AddPoints(&V3{minx, miny, minz}, &V3{maxx, maxy, maxz})
}
