// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sample generates the well distributed points in [0,1) that
// drive anti-aliasing and lens blur: independent uniforms, stratified
// and latin hypercube patterns, and the Halton, Hammersley and (0,2)
// low discrepancy sequences, plus warps from the unit square onto the
// unit disc.
//
// Samplers are cheap stateful generators. Each render worker gets its
// own sampler from a Factory2D so no random state is ever shared
// between goroutines.
//
// Package sample is provided as part of the trace (ray trace) renderer.
package sample

import "math/rand"

// UV is one 2D sample in the unit square [0,1)x[0,1).
type UV struct {
	U, V float64
}

// Sampler1D produces fixed length vectors of 1D samples. The length is
// decided at construction; repeated calls return fresh sample sets.
// Samplers are not safe for concurrent use: see Factory2D.
type Sampler1D interface {
	Samples() []float64
}

// Sampler2D produces fixed length vectors of 2D samples. The length is
// decided at construction; repeated calls return fresh sample sets.
type Sampler2D interface {
	Samples() []UV
}

// Factory2D hands out private samplers, one per render tile, so each
// worker owns its random stream. The stream number keys the sampler's
// seed: ask with the same stream and base seed and the sampler replays
// the same samples, no matter which goroutine asks or in what order.
// Factories are safe for concurrent use.
type Factory2D interface {
	NewSampler(stream int64) Sampler2D
}

// Factory derives deterministically seeded samplers from a base seed
// and the caller's stream number, making renders reproducible. A zero
// base seed picks a random one.
type Factory struct {
	n    int   // samples per pixel.
	seed int64 // base seed.
}

// NewFactory creates a sampler factory producing n samples per pixel:
// a single centered sample when n is 1, otherwise a latin hypercube
// pattern of n samples.
func NewFactory(n int, seed int64) *Factory {
	if n < 1 {
		n = 1
	}
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Factory{n: n, seed: seed}
}

// NewSampler returns the deterministically seeded sampler for the
// given stream.
func (f *Factory) NewSampler(stream int64) Sampler2D {
	if f.n == 1 {
		return NewCenters2D()
	}
	return NewLatin2D(f.n, f.seed+(stream+1)*0x9e3779b9)
}

// ============================================================================
// trivial samplers

// Centers1D returns the single midpoint sample 0.5.
type Centers1D struct{}

// NewCenters1D creates the 1D midpoint sampler.
func NewCenters1D() *Centers1D { return &Centers1D{} }

// Samples returns the single midpoint.
func (s *Centers1D) Samples() []float64 { return []float64{0.5} }

// Centers2D returns the single midpoint sample (0.5, 0.5).
type Centers2D struct{}

// NewCenters2D creates the 2D midpoint sampler.
func NewCenters2D() *Centers2D { return &Centers2D{} }

// Samples returns the single midpoint.
func (s *Centers2D) Samples() []UV { return []UV{{0.5, 0.5}} }

// ============================================================================
// independent uniform samplers

// Uniform1D returns n independent uniforms per call.
type Uniform1D struct {
	n   int
	rng *rand.Rand
}

// NewUniform1D creates a sampler of n independent uniforms.
func NewUniform1D(n int, seed int64) *Uniform1D {
	return &Uniform1D{n: n, rng: rand.New(rand.NewSource(seed))}
}

// Samples returns n fresh independent uniforms.
func (s *Uniform1D) Samples() []float64 {
	v := make([]float64, s.n)
	for i := range v {
		v[i] = s.rng.Float64()
	}
	return v
}

// Uniform2D returns n independent uniform pairs per call.
type Uniform2D struct {
	n   int
	rng *rand.Rand
}

// NewUniform2D creates a sampler of n independent uniform pairs.
func NewUniform2D(n int, seed int64) *Uniform2D {
	return &Uniform2D{n: n, rng: rand.New(rand.NewSource(seed))}
}

// Samples returns n fresh independent pairs.
func (s *Uniform2D) Samples() []UV {
	v := make([]UV, s.n)
	for i := range v {
		v[i] = UV{s.rng.Float64(), s.rng.Float64()}
	}
	return v
}

// ============================================================================
// stratified samplers

// Strata1D jitters one sample inside each of n equal bins.
type Strata1D struct {
	n   int
	rng *rand.Rand
}

// NewStrata1D creates a stratified sampler over n bins.
func NewStrata1D(n int, seed int64) *Strata1D {
	return &Strata1D{n: n, rng: rand.New(rand.NewSource(seed))}
}

// Samples returns one jittered sample per bin, in bin order.
func (s *Strata1D) Samples() []float64 {
	ns := 1 / float64(s.n)
	v := make([]float64, s.n)
	for i := range v {
		v[i] = ns * (float64(i) + s.rng.Float64())
	}
	return v
}

// Strata2D jitters one sample inside each cell of a w by h grid.
type Strata2D struct {
	w, h int
	rng  *rand.Rand
}

// NewStrata2D creates a stratified sampler over a w by h grid,
// producing w*h samples per call.
func NewStrata2D(w, h int, seed int64) *Strata2D {
	return &Strata2D{w: w, h: h, rng: rand.New(rand.NewSource(seed))}
}

// Samples returns one jittered sample per grid cell, column major.
func (s *Strata2D) Samples() []UV {
	ws, hs := 1/float64(s.w), 1/float64(s.h)
	v := make([]UV, 0, s.w*s.h)
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			v = append(v, UV{
				ws * (float64(x) + s.rng.Float64()),
				hs * (float64(y) + s.rng.Float64()),
			})
		}
	}
	return v
}

// StrataCenters1D returns the n bin centers: a regular grid.
type StrataCenters1D struct {
	n int
}

// NewStrataCenters1D creates the regular 1D grid sampler.
func NewStrataCenters1D(n int) *StrataCenters1D { return &StrataCenters1D{n: n} }

// Samples returns the bin centers in order.
func (s *StrataCenters1D) Samples() []float64 {
	ns := 1 / float64(s.n)
	v := make([]float64, s.n)
	for i := range v {
		v[i] = ns*float64(i) + ns/2
	}
	return v
}

// StrataCenters2D returns the w*h cell centers: a regular grid.
type StrataCenters2D struct {
	w, h int
}

// NewStrataCenters2D creates the regular 2D grid sampler.
func NewStrataCenters2D(w, h int) *StrataCenters2D { return &StrataCenters2D{w: w, h: h} }

// Samples returns the cell centers, column major.
func (s *StrataCenters2D) Samples() []UV {
	ws, hs := 1/float64(s.w), 1/float64(s.h)
	v := make([]UV, 0, s.w*s.h)
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			v = append(v, UV{ws*float64(x) + ws/2, hs*float64(y) + hs/2})
		}
	}
	return v
}

// ============================================================================
// latin hypercube

// Latin2D produces n samples stratified independently on both axes: a
// latin hypercube. Both 1D projections land exactly one sample in each
// 1/n bin, which stratifies better than a w by h grid when n is not a
// perfect square.
type Latin2D struct {
	s   *Strata1D
	rng *rand.Rand
}

// NewLatin2D creates a latin hypercube sampler of n samples.
func NewLatin2D(n int, seed int64) *Latin2D {
	return &Latin2D{
		s:   NewStrata1D(n, seed),
		rng: rand.New(rand.NewSource(seed + 1)),
	}
}

// Samples returns n samples: stratified xs paired with shuffled
// stratified ys.
func (s *Latin2D) Samples() []UV {
	xs := s.s.Samples()
	ys := s.s.Samples()
	s.rng.Shuffle(len(ys), func(i, j int) { ys[i], ys[j] = ys[j], ys[i] })
	v := make([]UV, len(xs))
	for i := range v {
		v[i] = UV{xs[i], ys[i]}
	}
	return v
}
