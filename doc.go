// Package noisegen generates Gaussian-like noise with the Irwin-Hall
// approximation, buckets it into bins and renders the bin counts as a
// histogram.
//
// What is in the box?
//
//	noise/    - Sampler and buffer builder (sum of uniform draws, recentred)
//	binning/  - range parser, Manual (inclusive) and Automatic (half-open) binners
//	render/   - bar chart of bin counts written as PNG (gonum/plot)
//	prompt/   - interactive question/answer session over any line source
//	report/   - console echo, summary statistics, Kafka report sink
//	pipeline/ - one full session: params → buffer → bins → image → report
//	config/   - flags, environment and config file (pflag, viper)
//	logging/  - leveled structured logging (go-kit/log)
//	cmd/      - the noisegen command (cobra)
//
// Quick example:
//
//	s := noise.NewSampler(noise.WithSeed(7))
//	buf, _ := s.Buffer(noise.Params{Resolution: 12, Center: 50, Width: 10, Count: 1000})
//	counts, _ := binning.Automatic(8, buf)
//	_ = render.Render(render.DefaultConfig(), 8, counts)
//
// Run the command and answer the prompts:
//
//	go install github.com/DriftingOtter/Gaussian-Signal-Generation/cmd/noisegen@latest
//	noisegen --render.output noise.png --noise.seed 42
package noisegen
