// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// every sampler must return its fixed count of samples with each
// component in [0,1).
func TestSamplerContract2D(t *testing.T) {
	samplers := map[string]struct {
		s Sampler2D
		n int
	}{
		"centers":       {NewCenters2D(), 1},
		"uniform":       {NewUniform2D(64, 7), 64},
		"strata":        {NewStrata2D(4, 8, 7), 32},
		"strataCenters": {NewStrataCenters2D(5, 5), 25},
		"halton":        {NewHalton2D(50), 50},
		"hammersley":    {NewHammersley2D(50), 50},
		"latin":         {NewLatin2D(33, 7), 33},
		"s02":           {NewS02(0xdeadbeef, 0x8badf00d, 64), 64},
	}
	for name, tc := range samplers {
		for round := 0; round < 3; round++ {
			got := tc.s.Samples()
			require.Len(t, got, tc.n, name)
			for _, uv := range got {
				require.GreaterOrEqual(t, uv.U, 0.0, name)
				require.Less(t, uv.U, 1.0, name)
				require.GreaterOrEqual(t, uv.V, 0.0, name)
				require.Less(t, uv.V, 1.0, name)
			}
		}
	}
}

func TestSamplerContract1D(t *testing.T) {
	samplers := map[string]struct {
		s Sampler1D
		n int
	}{
		"centers":       {NewCenters1D(), 1},
		"uniform":       {NewUniform1D(64, 7), 64},
		"strata":        {NewStrata1D(16, 7), 16},
		"strataCenters": {NewStrataCenters1D(16), 16},
		"halton":        {NewHalton1D(50), 50},
		"hammersley":    {NewHammersley1D(50), 50},
	}
	for name, tc := range samplers {
		got := tc.s.Samples()
		require.Len(t, got, tc.n, name)
		for _, u := range got {
			require.GreaterOrEqual(t, u, 0.0, name)
			require.Less(t, u, 1.0, name)
		}
	}
}

// stratified sampling puts exactly one sample in every grid cell.
func TestStrataCoverage(t *testing.T) {
	w, h := 4, 8
	s := NewStrata2D(w, h, 11)
	counts := make([]int, w*h)
	for _, uv := range s.Samples() {
		cx := int(uv.U * float64(w))
		cy := int(uv.V * float64(h))
		counts[cy*w+cx]++
	}
	for cell, n := range counts {
		require.Equal(t, 1, n, "cell %d", cell)
	}
}

// the latin hypercube projects to exactly one sample per 1/n bin on
// both axes.
func TestLatinProjections(t *testing.T) {
	n := 31
	s := NewLatin2D(n, 11)
	ubins, vbins := make([]int, n), make([]int, n)
	for _, uv := range s.Samples() {
		ubins[int(uv.U*float64(n))]++
		vbins[int(uv.V*float64(n))]++
	}
	for i := 0; i < n; i++ {
		require.Equal(t, 1, ubins[i], "u bin %d", i)
		require.Equal(t, 1, vbins[i], "v bin %d", i)
	}
}

// low discrepancy sequences are deterministic.
func TestSequencesRepeat(t *testing.T) {
	h := NewHalton2D(20)
	require.Equal(t, h.Samples(), h.Samples())
	s := NewS02(123, 456, 20)
	require.Equal(t, s.Samples(), s.Samples())
}

func TestRadicalInverse(t *testing.T) {
	// base 2: 1 -> 0.1b, 2 -> 0.01b, 3 -> 0.11b.
	require.Equal(t, 0.0, RadicalInverse(0, 2))
	require.Equal(t, 0.5, RadicalInverse(1, 2))
	require.Equal(t, 0.25, RadicalInverse(2, 2))
	require.Equal(t, 0.75, RadicalInverse(3, 2))

	// base 3: 1 -> 1/3, 3 -> 1/9.
	require.InDelta(t, 1.0/3, RadicalInverse(1, 3), 1e-12)
	require.InDelta(t, 1.0/9, RadicalInverse(3, 3), 1e-12)
}

// unscrambled van der Corput is the base-2 radical inverse.
func TestVanDerCorputMatchesRadicalInverse(t *testing.T) {
	for i := uint32(0); i < 64; i++ {
		require.InDelta(t, RadicalInverse(i, 2), VanDerCorput(i, 0), 1e-9, "i=%d", i)
	}
}

// the first power-of-two block of a (0,2) pair is perfectly stratified.
func TestS02Stratified(t *testing.T) {
	n := 16
	s := NewS02(0, 0, n)
	cells := make([]int, n)
	for _, uv := range s.Samples() {
		cx := int(uv.U * 4)
		cy := int(uv.V * 4)
		cells[cy*4+cx]++
	}
	for cell, c := range cells {
		require.Equal(t, 1, c, "cell %d", cell)
	}
}

// the factory keys sampler seeds by stream: the same stream replays
// the same samples regardless of the order streams are asked for.
func TestFactoryDeterminism(t *testing.T) {
	f1 := NewFactory(16, 42)
	f2 := NewFactory(16, 42)
	for i := int64(3); i >= 0; i-- {
		require.Equal(t, f1.NewSampler(i).Samples(), f2.NewSampler(i).Samples())
	}
	require.NotEqual(t, f1.NewSampler(0).Samples(), f1.NewSampler(1).Samples())

	// sampler count of one short circuits to the pixel center.
	f := NewFactory(1, 42)
	require.Equal(t, []UV{{0.5, 0.5}}, f.NewSampler(0).Samples())
}

func TestDiscConcentric(t *testing.T) {
	// the square center maps to the disc center.
	x, y := ToDiscConcentric(UV{0.5, 0.5})
	require.Equal(t, 0.0, x)
	require.Equal(t, 0.0, y)

	// square corners and edge midpoints land on the circle boundary.
	for _, uv := range []UV{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {1, 0.5}, {0.5, 1}} {
		x, y := ToDiscConcentric(uv)
		require.InDelta(t, 1.0, math.Hypot(x, y), 1e-9, "uv=%v", uv)
	}

	// (1, 0.5) is the +x axis, (0, 0.5) the -x axis.
	x, y = ToDiscConcentric(UV{1, 0.5})
	require.InDelta(t, 1.0, x, 1e-9)
	require.InDelta(t, 0.0, y, 1e-9)
	x, y = ToDiscConcentric(UV{0, 0.5})
	require.InDelta(t, -1.0, x, 1e-9)
	require.InDelta(t, 0.0, y, 1e-9)
}

// both warps stay inside the closed unit disc.
func TestDiscWarpsInRange(t *testing.T) {
	s := NewUniform2D(500, 99)
	for _, uv := range s.Samples() {
		x, y := ToDiscUniform(uv)
		require.LessOrEqual(t, math.Hypot(x, y), 1.0+1e-9)
		x, y = ToDiscConcentric(uv)
		require.LessOrEqual(t, math.Hypot(x, y), 1.0+1e-9)
	}
}
