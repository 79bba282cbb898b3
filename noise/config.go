// SPDX-License-Identifier: MIT
// Package: noisegen/noise
//
// config.go - internal sampler configuration and deterministic defaults.
//
// Deterministic defaults:
//   - src  = PCG(DefaultSeed) (same stream on every run unless seeded)
//   - mode = DrawExact

package noise

import "math/rand/v2"

// DefaultSeed seeds the sampler when no WithSeed/WithSource option is given.
const DefaultSeed uint64 = 0x5eed

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// samplerConfig aggregates all knobs used by NewSampler.
type samplerConfig struct {
	src  rand.Source
	mode DrawMode
}

// newSamplerConfig applies options in order over the defaults (last wins).
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		src:  rand.NewPCG(DefaultSeed, DefaultSeed^pcgStream),
		mode: DrawExact,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
