// Package binning assigns samples to count buckets.
//
// Two bucketing policies are provided:
//
//   - Manual    - caller-supplied ranges, inclusive on both ends. Ranges may
//     overlap or leave gaps; a sample is counted in every range containing it.
//   - Automatic - equal-width bins over [0, max(samples)], each bin half-open
//     [lo, hi). Negative samples and samples at or past the last upper edge
//     are not counted.
//
// Ranges are parsed from "LOW-HIGH" text with ParseRange, which reports
// ErrRangeParse or ErrNumberFormat instead of falling back to a zero range.
//
// Strategy names the policy; ParseStrategy maps the interactive "A/M"
// answer onto it. Describe renders counts as a small text histogram.
package binning
