// SPDX-License-Identifier: MIT
// Package: noisegen/binning
//
// strategy.go - the two named bucketing policies.

package binning

import (
	"fmt"
	"strings"
)

// Strategy selects a bucketing policy.
//
//   - StrategyAutomatic - equal-width half-open bins over [0, max]; see Automatic.
//   - StrategyManual    - user ranges, inclusive on both ends; see Manual.
type Strategy int

const (
	// StrategyAutomatic is the default policy.
	StrategyAutomatic Strategy = iota

	// StrategyManual uses caller-supplied ranges.
	StrategyManual
)

// manualAnswer is the only answer that selects StrategyManual.
const manualAnswer = "m"

// ParseStrategy maps an interactive answer to a Strategy. The answer is
// trimmed and lower-cased; exactly "m" selects StrategyManual, anything
// else (including malformed input) selects StrategyAutomatic.
func ParseStrategy(answer string) Strategy {
	if strings.ToLower(strings.TrimSpace(answer)) == manualAnswer {
		return StrategyManual
	}

	return StrategyAutomatic
}

// String returns "automatic" or "manual".
func (s Strategy) String() string {
	switch s {
	case StrategyAutomatic:
		return "automatic"
	case StrategyManual:
		return "manual"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// MarshalText encodes the strategy name for JSON reports.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
