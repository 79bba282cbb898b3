// SPDX-License-Identifier: MIT
// Package: noisegen/noise
//
// options.go - functional options for NewSampler.
//
// Contract:
//   - Options are functional (type Option func(*samplerConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Sampling itself never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithSource.

package noise

import (
	"fmt"
	"math/rand/v2"
)

// Option customizes a Sampler before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*samplerConfig)

// WithSeed seeds a PCG source with the given value.
// Use this in tests and for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(c *samplerConfig) {
		c.src = rand.NewPCG(seed, seed^pcgStream)
	}
}

// WithSource provides an explicit random source. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("noise: WithSource(nil)")
	}
	return func(c *samplerConfig) {
		c.src = src
	}
}

// WithDrawMode selects DrawExact or DrawLegacy. Panics on unknown modes.
func WithDrawMode(m DrawMode) Option {
	if m != DrawExact && m != DrawLegacy {
		panic(fmt.Sprintf("noise: WithDrawMode(%d)", int(m)))
	}
	return func(c *samplerConfig) {
		c.mode = m
	}
}
