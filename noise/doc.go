// Package noise generates pseudo-random samples that approximate a normal
// distribution by summing independent uniform draws (Irwin-Hall).
//
// What it does:
//
//	Every sample is built from `resolution` draws u_k ~ U[0,1):
//
//	  s = (Σ u_k − resolution/2) · width + center
//
//	The sum of n uniforms has mean n/2 and variance n/12, so after
//	recentring the sample is close to N(center, width²·n/12) for n ≳ 6.
//
// Key pieces:
//   - Sampler: owns the RNG and draws one sample at a time.
//   - Params: resolution/center/width/count bundle with Validate().
//   - Buffer / BuildBuffer: fill a slice of `count` samples.
//   - DrawMode: DrawExact (resolution draws) or DrawLegacy
//     (resolution−1 draws, same recentring) for reproducing older runs.
//
// Usage:
//
//	s := noise.NewSampler(noise.WithSeed(42))
//	buf, err := s.Buffer(noise.Params{Resolution: 12, Center: 50, Width: 10, Count: 1000})
//
// A Sampler is not safe for concurrent use; build one per goroutine.
package noise
