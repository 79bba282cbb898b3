// SPDX-License-Identifier: MIT
// Package: noisegen/binning
//
// range.go - Range type and the LOW-HIGH parser.

package binning

import (
	"fmt"
	"regexp"
	"strconv"
)

// rangePattern is the anchored LOW-HIGH grammar. Each side is an optional
// integer part followed by an optional ".fraction".
var rangePattern = regexp.MustCompile(`^([0-9]*(?:\.[0-9]+)?)-([0-9]*(?:\.[0-9]+)?)$`)

// Range is a closed interval [Lower, Upper]. Lower ≤ Upper is expected but
// not enforced; an inverted range simply contains nothing.
type Range struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Contains reports whether Lower ≤ x ≤ Upper.
func (r Range) Contains(x float64) bool {
	return x >= r.Lower && x <= r.Upper
}

// String renders the range back in LOW-HIGH form.
func (r Range) String() string {
	return strconv.FormatFloat(r.Lower, 'g', -1, 64) + "-" + strconv.FormatFloat(r.Upper, 'g', -1, 64)
}

// ParseRange parses text of the exact shape NUMBER-NUMBER.
//
// Errors:
//   - ErrRangeParse   - text does not match the grammar (e.g. "abc", "1-2-3").
//   - ErrNumberFormat - a side matched but is empty (e.g. "-3", "-").
//
// No ordering check is made: "2-1" parses to {2, 1}.
func ParseRange(text string) (Range, error) {
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return Range{}, fmt.Errorf("ParseRange: %q: %w", text, ErrRangeParse)
	}

	lower, err := parseBound(m[1])
	if err != nil {
		return Range{}, fmt.Errorf("ParseRange: %q lower bound: %w", text, err)
	}
	upper, err := parseBound(m[2])
	if err != nil {
		return Range{}, fmt.Errorf("ParseRange: %q upper bound: %w", text, err)
	}

	return Range{Lower: lower, Upper: upper}, nil
}

// parseBound converts one captured side; "" and other unparsable text map to
// ErrNumberFormat.
func parseBound(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNumberFormat)
	}

	return v, nil
}
