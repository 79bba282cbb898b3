// SPDX-License-Identifier: MIT
// Package: noisegen/noise
//
// sampler.go - Irwin-Hall sample generator.
//
// Contract:
//   - Sample(resolution, center, width) draws uniform values in [0,1),
//     sums them, subtracts resolution/2, scales by width, shifts by center.
//   - resolution < 1 ⇒ ErrInvalidParameter (no negative-length draw loop).
//   - Deterministic per (seed, call sequence); no global RNG state.
//   - O(resolution) time, O(1) memory per sample.

package noise

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws Irwin-Hall samples from a single random source.
// It is not safe for concurrent use.
type Sampler struct {
	uniform distuv.Uniform
	mode    DrawMode
}

// NewSampler returns a Sampler configured by opts.
// Without options it uses DefaultSeed and DrawExact.
func NewSampler(opts ...Option) *Sampler {
	cfg := newSamplerConfig(opts...)

	return &Sampler{
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: cfg.src},
		mode:    cfg.mode,
	}
}

// Mode reports the draw mode the sampler was built with.
func (s *Sampler) Mode() DrawMode {
	return s.mode
}

// Sample returns one value: (Σ u_k − resolution/2)·width + center.
//
// In DrawLegacy mode resolution−1 uniforms are summed, so resolution=1
// yields the constant center − width/2.
//
// Errors:
//   - ErrInvalidParameter if resolution < 1.
func (s *Sampler) Sample(resolution int, center, width float64) (float64, error) {
	if err := validateMin(methodSample, "resolution", resolution, MinResolution); err != nil {
		return 0, err
	}

	return s.sample(resolution, center, width), nil
}

// sample is Sample without validation; resolution must already be ≥1.
func (s *Sampler) sample(resolution int, center, width float64) float64 {
	var sum float64
	for k, n := 0, s.mode.draws(resolution); k < n; k++ {
		sum += s.uniform.Rand()
	}

	// Recentre the Irwin-Hall sum on zero, then apply width and center.
	sum -= float64(resolution) / 2

	return sum*width + center
}
