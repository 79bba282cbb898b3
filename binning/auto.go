// SPDX-License-Identifier: MIT
// Package: noisegen/binning
//
// auto.go - equal-width partitioning of [0, max(samples)].
//
// Layout:
//   - width = max(1, ceil(max / binCount))
//   - bin i = [ceil(i·width), ceil((i+1)·width)), lower inclusive, upper exclusive
//
// The lower domain edge is fixed at 0 regardless of the smallest sample, so
// negative samples are never counted. A sample equal to the last upper edge
// is outside the last bin.

package binning

import (
	"fmt"
	"math"
)

const (
	methodAutomatic = "Automatic"
	minBinWidth     = 1.0
	minBinCount     = 1
)

// Automatic partitions [0, max(samples)] into binCount equal-width bins and
// counts the samples in each half-open bin.
//
// Errors:
//   - ErrInvalidBinCount if binCount < 1.
//   - ErrEmptyInput if samples is empty or max(samples) ≤ 0.
//
// Complexity: O(len(samples) + binCount) time, O(binCount) memory.
func Automatic(binCount int, samples []float64) ([]int, error) {
	edges, err := AutomaticRanges(binCount, samples)
	if err != nil {
		return nil, err
	}

	counts := make([]int, binCount)
	width := edges[0].Upper - edges[0].Lower
	last := binCount - 1
	for _, s := range samples {
		if !(s >= 0) { // negative or NaN
			continue
		}

		// Guess the bin from the quotient, then settle it against the exact
		// edges so the comparison is the same one a linear scan would make.
		i := last
		if q := s / width; q < float64(last) {
			i = int(q)
		}
		for i > 0 && s < edges[i].Lower {
			i--
		}
		for i < last && s >= edges[i].Upper {
			i++
		}
		if s >= edges[i].Lower && s < edges[i].Upper {
			counts[i]++
		}
	}

	return counts, nil
}

// AutomaticRanges returns the bin edges Automatic would use. Each Range is
// half-open: Upper is exclusive here, unlike Manual ranges.
//
// Errors are the same as Automatic's.
func AutomaticRanges(binCount int, samples []float64) ([]Range, error) {
	if binCount < minBinCount {
		return nil, fmt.Errorf("%s: binCount=%d: %w", methodAutomatic, binCount, ErrInvalidBinCount)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: %w", methodAutomatic, ErrEmptyInput)
	}

	hi := maxSample(samples)
	if hi <= 0 {
		return nil, fmt.Errorf("%s: max sample %g leaves no domain above 0: %w", methodAutomatic, hi, ErrEmptyInput)
	}

	width := math.Max(minBinWidth, math.Ceil(hi/float64(binCount)))
	edges := make([]Range, binCount)
	for i := range edges {
		edges[i] = Range{
			Lower: math.Ceil(float64(i) * width),
			Upper: math.Ceil(float64(i+1) * width),
		}
	}

	return edges, nil
}

// maxSample returns the largest non-NaN sample, or -Inf if there is none.
func maxSample(samples []float64) float64 {
	hi := math.Inf(-1)
	for _, s := range samples {
		if s > hi {
			hi = s
		}
	}

	return hi
}
