// Copyright © 2025 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sample

// lowdisc.go holds the low discrepancy sequence kernels and the
// samplers built from them. The sequences are deterministic: sample i
// is the same on every call, so these samplers need no random state
// (the (0,2) sequence takes scramble words instead).

// RadicalInverse reflects the base-b digits of n about the decimal
// point: the workhorse of the Halton and Hammersley sequences.
func RadicalInverse(n, base uint32) float64 {
	inv := 1 / float64(base)
	value, f := 0.0, inv
	for n > 0 {
		value += float64(n%base) * f
		n /= base
		f *= inv
	}
	return value
}

// VanDerCorput returns element n of the base-2 radical inverse sequence
// with the given scramble word XORed in. The bit reversal runs in five
// swaps rather than a digit loop.
func VanDerCorput(n, scramble uint32) float64 {
	n = (n << 16) | (n >> 16)
	n = ((n & 0x00ff00ff) << 8) | ((n & 0xff00ff00) >> 8)
	n = ((n & 0x0f0f0f0f) << 4) | ((n & 0xf0f0f0f0) >> 4)
	n = ((n & 0x33333333) << 2) | ((n & 0xcccccccc) >> 2)
	n = ((n & 0x55555555) << 1) | ((n & 0xaaaaaaaa) >> 1)
	n ^= scramble
	return float64(n) / 4294967296.0
}

// Sobol returns element n of the second dimension of the Sobol′
// sequence with the given scramble word XORed in. Together with
// VanDerCorput it forms a (0,2)-sequence: any power of two run of
// samples is perfectly stratified over every elementary interval.
func Sobol(n, scramble uint32) float64 {
	v := uint32(1 << 31)
	for ; n != 0; n >>= 1 {
		if n&1 != 0 {
			scramble ^= v
		}
		v ^= v >> 1
	}
	return float64(scramble) / 4294967296.0
}

// ============================================================================
// samplers built on the sequences.

// Halton1D returns the first n elements of the base-2 Halton sequence.
type Halton1D struct {
	n int
}

// NewHalton1D creates a Halton sampler of n samples.
func NewHalton1D(n int) *Halton1D { return &Halton1D{n: n} }

// Samples returns the sequence prefix. Identical on every call.
func (s *Halton1D) Samples() []float64 {
	v := make([]float64, s.n)
	for i := range v {
		v[i] = RadicalInverse(uint32(i), 2)
	}
	return v
}

// Halton2D pairs the base-2 and base-3 Halton sequences.
type Halton2D struct {
	n int
}

// NewHalton2D creates a 2D Halton sampler of n samples.
func NewHalton2D(n int) *Halton2D { return &Halton2D{n: n} }

// Samples returns the sequence prefix. Identical on every call.
func (s *Halton2D) Samples() []UV {
	v := make([]UV, s.n)
	for i := range v {
		v[i] = UV{RadicalInverse(uint32(i), 2), RadicalInverse(uint32(i), 3)}
	}
	return v
}

// Hammersley1D returns the regular sequence i/n.
type Hammersley1D struct {
	n int
}

// NewHammersley1D creates a Hammersley sampler of n samples.
func NewHammersley1D(n int) *Hammersley1D { return &Hammersley1D{n: n} }

// Samples returns i/n for i in [0,n).
func (s *Hammersley1D) Samples() []float64 {
	v := make([]float64, s.n)
	for i := range v {
		v[i] = float64(i) / float64(s.n)
	}
	return v
}

// Hammersley2D pairs the base-2 radical inverse with i/n. Unlike Halton
// the point count must be fixed up front, in exchange for slightly
// better distribution.
type Hammersley2D struct {
	n int
}

// NewHammersley2D creates a 2D Hammersley sampler of n samples.
func NewHammersley2D(n int) *Hammersley2D { return &Hammersley2D{n: n} }

// Samples returns the point set. Identical on every call.
func (s *Hammersley2D) Samples() []UV {
	v := make([]UV, s.n)
	for i := range v {
		v[i] = UV{RadicalInverse(uint32(i), 2), float64(i) / float64(s.n)}
	}
	return v
}

// S02 is the scrambled (0,2)-sequence: van der Corput crossed with
// Sobol′, each XOR scrambled by its own word.
type S02 struct {
	s1, s2 uint32
	n      int
}

// NewS02 creates a (0,2)-sequence sampler of n samples with the given
// scramble words.
func NewS02(s1, s2 uint32, n int) *S02 { return &S02{s1: s1, s2: s2, n: n} }

// Samples returns the scrambled point set. Identical on every call.
func (s *S02) Samples() []UV {
	v := make([]UV, s.n)
	for i := range v {
		v[i] = UV{VanDerCorput(uint32(i), s.s1), Sobol(uint32(i), s.s2)}
	}
	return v
}
