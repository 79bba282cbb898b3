// SPDX-License-Identifier: MIT
// Package: noisegen/noise
//
// types.go - generation parameters and draw modes.

package noise

import "fmt"

// Domain minimums for Params.
const (
	MinResolution = 1 // at least one uniform draw per sample
	MinCount      = 0 // an empty buffer is a valid request
)

// Params bundles the knobs of one generation run.
type Params struct {
	Resolution int     `json:"resolution"` // uniform draws summed per sample (≥1)
	Center     float64 `json:"center"`     // target mean
	Width      float64 `json:"width"`      // scale factor applied after recentring
	Count      int     `json:"count"`      // number of samples to generate (≥0)
}

// Validate checks Resolution and Count against their minimums.
// Center and Width are unconstrained.
func (p Params) Validate() error {
	if err := validateMin(methodParams, "resolution", p.Resolution, MinResolution); err != nil {
		return err
	}

	return validateMin(methodParams, "count", p.Count, MinCount)
}

// DrawMode selects how many uniform draws make up one sample.
//
//   - DrawExact  - draws exactly `resolution` values. The recentring term
//     resolution/2 matches the sum's mean, so samples are centred on Center.
//   - DrawLegacy - draws `resolution-1` values but still subtracts
//     resolution/2. Samples are centred on Center − Width/2. Kept to
//     reproduce histograms from earlier releases.
type DrawMode int

const (
	// DrawExact draws resolution values per sample.
	DrawExact DrawMode = iota

	// DrawLegacy draws resolution-1 values per sample.
	DrawLegacy
)

// String returns the mode name.
func (m DrawMode) String() string {
	switch m {
	case DrawExact:
		return "exact"
	case DrawLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// draws returns the number of uniform draws for the given resolution.
func (m DrawMode) draws(resolution int) int {
	if m == DrawLegacy {
		return resolution - 1
	}

	return resolution
}
