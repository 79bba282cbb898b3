// SPDX-License-Identifier: MIT
// Package: noisegen/binning
//
// manual.go - per-range counting with inclusive bounds.

package binning

// Manual counts, for each range i, the samples s with
// ranges[i].Lower ≤ s ≤ ranges[i].Upper.
//
// Bins are independent: overlapping ranges count a shared sample once per
// range, and samples in gaps are not counted at all. The result has
// len(ranges) entries in range order.
//
// Complexity: O(len(ranges)·len(samples)) time, O(len(ranges)) memory.
func Manual(ranges []Range, samples []float64) []int {
	counts := make([]int, len(ranges))
	for i, r := range ranges {
		for _, s := range samples {
			if r.Contains(s) {
				counts[i]++
			}
		}
	}

	return counts
}
