// SPDX-License-Identifier: MIT
// Package: noisegen/noise
//
// validators.go - parameter contract checks shared by Sampler and Params.

package noise

import "fmt"

// Method tokens used as error prefixes.
const (
	methodParams = "Params"
	methodSample = "Sample"
	methodBuffer = "Buffer"
)

// validateMin ensures got ≥ min for the named parameter.
// Returns "<method>: <name>=<got> < min=<min>: noise: invalid generation parameter".
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrInvalidParameter)
	}

	return nil
}
