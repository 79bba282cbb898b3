// SPDX-License-Identifier: MIT
// Package: noisegen/noise
//
// errors.go - sentinel errors for the noise package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   - Sampling never panics at runtime; panics are confined to option
//     constructors (WithSource(nil), unknown DrawMode).

package noise

import "errors"

// ErrInvalidParameter indicates a generation parameter outside its domain:
// resolution < 1 or count < 0.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* report bad params */ }.
var ErrInvalidParameter = errors.New("noise: invalid generation parameter")
