// SPDX-License-Identifier: MIT
// Package: noisegen/binning
//
// describe.go - plain-text histogram of bin counts.

package binning

import (
	"fmt"
	"strings"
)

// describeWidth is the bar length of the fullest bin.
const describeWidth = 16

// Describe renders one line per bin: the label, a '#' bar scaled so the
// fullest bin spans describeWidth characters, then the count.
//
//	[0-3]: ################	 3
//
// labels and counts are paired by index; missing labels fall back to the
// bin index.
func Describe(labels []string, counts []int) string {
	var sb strings.Builder

	mx := 0
	for _, c := range counts {
		if c > mx {
			mx = c
		}
	}

	for i, c := range counts {
		label := fmt.Sprint(i)
		if i < len(labels) {
			label = labels[i]
		}
		fmt.Fprintf(&sb, "[%s]: ", label)

		if mx > 0 {
			sb.WriteString(strings.Repeat("#", describeWidth*c/mx))
		}
		fmt.Fprintln(&sb, "\t", c)
	}

	return sb.String()
}

// Labels renders each range with String for use with Describe.
func Labels(ranges []Range) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.String()
	}

	return out
}
