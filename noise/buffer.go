// SPDX-License-Identifier: MIT
// Package: noisegen/noise
//
// buffer.go - fill a sample buffer by repeated Sample calls.

package noise

// Buffer generates p.Count samples with p's resolution, center and width.
//
// The result always has length p.Count; Count == 0 yields an empty,
// non-nil slice. Samples are appended in generation order, which carries no
// meaning for binning.
//
// Errors:
//   - ErrInvalidParameter if p.Resolution < 1 or p.Count < 0.
//
// Complexity: O(Count·Resolution) time, O(Count) memory.
func (s *Sampler) Buffer(p Params) ([]float64, error) {
	if err := validateMin(methodBuffer, "resolution", p.Resolution, MinResolution); err != nil {
		return nil, err
	}
	if err := validateMin(methodBuffer, "count", p.Count, MinCount); err != nil {
		return nil, err
	}

	out := make([]float64, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		out = append(out, s.sample(p.Resolution, p.Center, p.Width))
	}

	return out, nil
}

// BuildBuffer is the free-function form of (*Sampler).Buffer.
func BuildBuffer(s *Sampler, count, resolution int, center, width float64) ([]float64, error) {
	return s.Buffer(Params{
		Resolution: resolution,
		Center:     center,
		Width:      width,
		Count:      count,
	})
}
