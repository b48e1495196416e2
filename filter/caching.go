// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package filter

import "math"

// lutSize is the cached resolution per axis: weights are sampled on a
// 16x16 grid over the first quadrant of the filter support.
const lutSize = 16

// Caching wraps any filter with a first-quadrant lookup table built at
// construction. Lookup takes absolute offsets, so the wrapped filter is
// assumed symmetric about both axes; every filter in this package is.
// Filter evaluation dominates splatting, and for the gaussian and
// Mitchell filters the table is roughly an order of magnitude faster
// than re-evaluating the transcendentals per sample.
type Caching struct {
	w, h   float64
	cache  [lutSize * lutSize]float64
	xscale float64 // precomputed offset to table index factors.
	yscale float64
}

// NewCaching builds the lookup table for filter f and returns the
// caching wrapper.
func NewCaching(f Filter) *Caching {
	w, h := f.Extent()
	c := &Caching{
		w: w, h: h,
		xscale: (lutSize - 1) / w,
		yscale: (lutSize - 1) / h,
	}
	for y := 0; y < lutSize; y++ {
		sy := float64(y) / (lutSize - 1) * h
		for x := 0; x < lutSize; x++ {
			sx := float64(x) / (lutSize - 1) * w
			c.cache[y*lutSize+x] = f.Weight(sx, sy)
		}
	}
	return c
}

// Extent returns the wrapped filter's support.
func (c *Caching) Extent() (ex, ey float64) { return c.w, c.h }

// Weight returns the cached weight for offset (dx, dy): the table cell
// found by scaled integer truncation of the absolute offsets.
func (c *Caching) Weight(dx, dy float64) float64 {
	dx, dy = math.Abs(dx), math.Abs(dy)
	if dx > c.w || dy > c.h {
		return 0
	}
	sx := int(dx * c.xscale)
	sy := int(dy * c.yscale)
	if sx >= lutSize {
		sx = lutSize - 1
	}
	if sy >= lutSize {
		sy = lutSize - 1
	}
	return c.cache[sy*lutSize+sx]
}
