// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package filter provides the reconstruction filters that weight film
// samples by their distance from the pixel center: box, triangle,
// gaussian, Mitchell-Netravali, and Lanczos windowed sinc, plus a
// caching wrapper that trades a small lookup table for the per-sample
// transcendentals.
//
// A filter has a finite extent (ex, ey): its weight is zero whenever
// |dx| > ex or |dy| > ey, and finite and non-negative inside.
//
// Package filter is provided as part of the trace (ray trace) renderer.
package filter

import "math"

// Filter weights a sample offset (dx, dy) from a pixel center.
// Implementations are immutable after construction and safe for
// concurrent use.
type Filter interface {

	// Extent returns the half width and half height of the filter's
	// non-zero support.
	Extent() (ex, ey float64)

	// Weight returns the filter value at offset (dx, dy): finite,
	// non-negative, and zero outside the extent.
	Weight(dx, dy float64) float64
}

// ============================================================================
// Box

// Box weighs every sample inside its extent equally: the cheapest and
// blurriest reconstruction.
type Box struct {
	w, h float64
}

// NewBox creates a box filter with the given half extents.
func NewBox(w, h float64) *Box { return &Box{w: w, h: h} }

// Extent returns the box support.
func (f *Box) Extent() (ex, ey float64) { return f.w, f.h }

// Weight returns 1 inside the extent and 0 outside.
func (f *Box) Weight(dx, dy float64) float64 {
	if math.Abs(dx) > f.w || math.Abs(dy) > f.h {
		return 0
	}
	return 1
}

// ============================================================================
// Triangle

// Triangle weighs samples by the product of two tents falling linearly
// from the pixel center to the extent.
type Triangle struct {
	w, h float64
}

// NewTriangle creates a tent filter with the given half extents.
func NewTriangle(w, h float64) *Triangle { return &Triangle{w: w, h: h} }

// Extent returns the tent support.
func (f *Triangle) Extent() (ex, ey float64) { return f.w, f.h }

// Weight returns the tent product.
func (f *Triangle) Weight(dx, dy float64) float64 {
	if math.Abs(dx) > f.w || math.Abs(dy) > f.h {
		return 0
	}
	tx := 1 - math.Abs(dx/f.w)
	ty := 1 - math.Abs(dy/f.h)
	return math.Max(tx, 0) * math.Max(ty, 0)
}

// ============================================================================
// Gaussian

// Gaussian weighs samples with a falling exponential, shifted down by
// its edge value so the filter reaches exactly zero at the extent
// rather than clipping there.
type Gaussian struct {
	w, h  float64
	alpha float64 // falloff rate: larger is sharper.
	baseX float64 // edge values subtracted for C0 continuity.
	baseY float64
}

// NewGaussian creates a gaussian filter with the given half extents
// and falloff rate alpha.
func NewGaussian(w, h, alpha float64) *Gaussian {
	return &Gaussian{
		w: w, h: h, alpha: alpha,
		baseX: math.Exp(-alpha * w * w),
		baseY: math.Exp(-alpha * h * h),
	}
}

// Extent returns the gaussian support.
func (f *Gaussian) Extent() (ex, ey float64) { return f.w, f.h }

// Weight returns the edge-shifted gaussian product.
func (f *Gaussian) Weight(dx, dy float64) float64 {
	if math.Abs(dx) > f.w || math.Abs(dy) > f.h {
		return 0
	}
	gx := math.Exp(-f.alpha*dx*dx) - f.baseX
	gy := math.Exp(-f.alpha*dy*dy) - f.baseY
	return math.Max(gx, 0) * math.Max(gy, 0)
}

// ============================================================================
// Mitchell

// Mitchell is the Mitchell-Netravali piecewise cubic: parameters B and
// C trade blur against ringing, with B + 2C = 1 the recommended family
// (B=1/3, C=1/3 the classic choice).
type Mitchell struct {
	w, h float64
	b, c float64
}

// NewMitchell creates a Mitchell filter with the given half extents and
// cubic parameters.
func NewMitchell(w, h, b, c float64) *Mitchell {
	return &Mitchell{w: w, h: h, b: b, c: c}
}

// Extent returns the cubic support.
func (f *Mitchell) Extent() (ex, ey float64) { return f.w, f.h }

// Weight returns the separable cubic product over the normalized
// offsets. The cubic's negative lobes are clamped to zero: splatting
// requires non-negative weights.
func (f *Mitchell) Weight(dx, dy float64) float64 {
	if math.Abs(dx) > f.w || math.Abs(dy) > f.h {
		return 0
	}
	return math.Max(0, f.cubic(dx/f.w)*f.cubic(dy/f.h))
}

// cubic evaluates the two-branch Mitchell polynomial over [-1,1],
// rescaled so the two pieces split at |x| = 0.5.
func (f *Mitchell) cubic(x float64) float64 {
	x2 := math.Abs(2 * x)
	if x2 > 1 {
		return ((-f.b-6*f.c)*x2*x2*x2 +
			(6*f.b+30*f.c)*x2*x2 +
			(-12*f.b-48*f.c)*x2 +
			(8*f.b + 24*f.c)) / 6
	}
	return ((12-9*f.b-6*f.c)*x2*x2*x2 +
		(-18+12*f.b+6*f.c)*x2*x2 +
		(6 - 2*f.b)) / 6
}

// ============================================================================
// Lanczos windowed sinc

// Sinc is the Lanczos windowed sinc: sinc(πxτ) damped by the central
// sinc lobe. Tau controls how many lobes fit inside the window.
type Sinc struct {
	w, h float64
	tau  float64
}

// NewSinc creates a windowed sinc filter with the given half extents
// and lobe count tau.
func NewSinc(w, h, tau float64) *Sinc { return &Sinc{w: w, h: h, tau: tau} }

// Extent returns the sinc support.
func (f *Sinc) Extent() (ex, ey float64) { return f.w, f.h }

// Weight returns the windowed sinc product over the normalized
// offsets. Negative lobes are clamped to zero: splatting requires
// non-negative weights.
func (f *Sinc) Weight(dx, dy float64) float64 {
	if math.Abs(dx) > f.w || math.Abs(dy) > f.h {
		return 0
	}
	return math.Max(0, f.windowed(math.Abs(dx/f.w))*f.windowed(math.Abs(dy/f.h)))
}

// windowed evaluates the Lanczos window over [0,1]: exactly 1 at the
// origin, 0 beyond the window.
func (f *Sinc) windowed(x float64) float64 {
	if x < 0.00001 {
		return 1
	}
	if x > 1 {
		return 0
	}
	xp := x * math.Pi
	xpt := xp * f.tau
	sinc := math.Sin(xpt) / xpt
	lanczos := math.Sin(xp) / xp
	return sinc * lanczos
}
