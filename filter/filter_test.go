// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func filters() map[string]Filter {
	return map[string]Filter{
		"box":      NewBox(0.5, 0.5),
		"triangle": NewTriangle(2, 2),
		"gaussian": NewGaussian(1.4, 1.4, 0.25),
		"mitchell": NewMitchell(2, 2, 1.0/3, 1.0/3),
		"sinc":     NewSinc(3, 3, 3),
	}
}

// every filter is finite and non-negative inside its extent and exactly
// zero outside it.
func TestWeightContract(t *testing.T) {
	for name, f := range filters() {
		ex, ey := f.Extent()
		require.Greater(t, ex, 0.0, name)
		require.Greater(t, ey, 0.0, name)
		for iy := -20; iy <= 20; iy++ {
			for ix := -20; ix <= 20; ix++ {
				dx := float64(ix) / 20 * ex * 1.5
				dy := float64(iy) / 20 * ey * 1.5
				w := f.Weight(dx, dy)
				require.False(t, math.IsNaN(w) || math.IsInf(w, 0), name)
				require.GreaterOrEqual(t, w, 0.0, "%s at (%g,%g)", name, dx, dy)
				if math.Abs(dx) > ex || math.Abs(dy) > ey {
					require.Zero(t, w, "%s outside extent at (%g,%g)", name, dx, dy)
				}
			}
		}
	}
}

// every filter peaks at the pixel center.
func TestWeightPeaksAtCenter(t *testing.T) {
	for name, f := range filters() {
		center := f.Weight(0, 0)
		require.Greater(t, center, 0.0, name)
		ex, ey := f.Extent()
		require.GreaterOrEqual(t, center, f.Weight(ex*0.9, 0), name)
		require.GreaterOrEqual(t, center, f.Weight(0, ey*0.9), name)
	}
}

func TestBoxUniform(t *testing.T) {
	f := NewBox(0.5, 0.5)
	require.Equal(t, 1.0, f.Weight(0.4, -0.4))
	require.Equal(t, 0.0, f.Weight(0.6, 0))
}

func TestTriangleTent(t *testing.T) {
	f := NewTriangle(2, 2)
	require.InDelta(t, 1.0, f.Weight(0, 0), 1e-12)
	require.InDelta(t, 0.25, f.Weight(1, 1), 1e-12) // 0.5 * 0.5
	require.InDelta(t, 0.0, f.Weight(2, 0), 1e-12)
}

// the gaussian reaches exactly zero at its extent instead of clipping.
func TestGaussianEdge(t *testing.T) {
	f := NewGaussian(1.4, 1.4, 0.25)
	require.InDelta(t, 0.0, f.Weight(1.4, 0), 1e-12)
	require.Greater(t, f.Weight(1.3, 0), 0.0)
}

func TestSincOrigin(t *testing.T) {
	f := NewSinc(3, 3, 3)
	require.Equal(t, 1.0, f.Weight(0, 0))
}

// the caching wrapper reproduces the wrapped filter on its own grid
// points. Offsets are nudged a hair into each cell so the truncating
// lookup cannot straddle a cell edge over float rounding.
func TestCachingMatchesOnGrid(t *testing.T) {
	for name, f := range filters() {
		c := NewCaching(f)
		ex, ey := f.Extent()
		for y := 0; y < 15; y++ {
			for x := 0; x < 15; x++ {
				gx := float64(x) / 15 * ex
				gy := float64(y) / 15 * ey
				dx := (float64(x) + 0.01) / 15 * ex
				dy := (float64(y) + 0.01) / 15 * ey
				require.InDelta(t, f.Weight(gx, gy), c.Weight(dx, dy), 1e-6,
					"%s at grid (%d,%d)", name, x, y)
			}
		}
	}
}

// the cache is symmetric in all four quadrants by construction.
func TestCachingSymmetry(t *testing.T) {
	c := NewCaching(NewGaussian(1.4, 1.4, 0.25))
	w := c.Weight(0.7, 0.35)
	require.Equal(t, w, c.Weight(-0.7, 0.35))
	require.Equal(t, w, c.Weight(0.7, -0.35))
	require.Equal(t, w, c.Weight(-0.7, -0.35))
}

func TestCachingExtent(t *testing.T) {
	c := NewCaching(NewBox(0.5, 0.25))
	ex, ey := c.Extent()
	require.Equal(t, 0.5, ex)
	require.Equal(t, 0.25, ey)
	require.Zero(t, c.Weight(0.51, 0))
	require.Zero(t, c.Weight(0, 0.26))
}
