// Package pipeline runs one interactive noise generation session: it asks
// for generation parameters, builds the sample buffer, bins it with the
// chosen strategy, renders the histogram and reports the outcome.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/binning"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/logging"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/noise"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/prompt"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/render"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/report"
)

var logger = logging.GetLogger("pipeline")

// Options configures a Run.
type Options struct {
	// Render receives the histogram; Render.Path is where it is saved.
	Render render.Config

	// Seed seeds the sampler. Zero selects a seed from the clock.
	Seed uint64

	// DrawMode is passed to the sampler.
	DrawMode noise.DrawMode

	// EchoBuffer prints the raw sample buffer.
	EchoBuffer bool

	// Publisher receives the final report. Nil disables publication.
	Publisher report.Publisher

	// Now stamps the report and derives the clock seed. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns Options with the default renderer settings, a
// clock seed and buffer echo enabled.
func DefaultOptions() Options {
	return Options{
		Render:     render.DefaultConfig(),
		DrawMode:   noise.DrawExact,
		EchoBuffer: true,
	}
}

// Run executes one session reading answers from in and writing prompts and
// results to out. The first failure aborts the run and is returned.
func Run(in prompt.InputSource, out io.Writer, opts Options) (*report.Report, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}

	session := prompt.NewSession(in, out)

	params, err := session.Params()
	if err != nil {
		return nil, err
	}
	logger.Debug("parameters read",
		"resolution", params.Resolution,
		"center", params.Center,
		"width", params.Width,
		"count", params.Count,
	)

	sampler := noise.NewSampler(noise.WithSeed(seed), noise.WithDrawMode(opts.DrawMode))
	samples, err := sampler.Buffer(params)
	if err != nil {
		return nil, err
	}
	logger.Info("buffer generated", "samples", len(samples), "seed", seed, "draw_mode", sampler.Mode())

	summary := report.Summarize(samples)
	if opts.EchoBuffer {
		report.WriteBuffer(out, samples)
	}
	report.WriteSummary(out, summary)

	strategy, err := session.Strategy()
	if err != nil {
		return nil, err
	}
	binCount, err := session.BinCount()
	if err != nil {
		return nil, err
	}

	ranges, counts, err := bin(session, strategy, binCount, samples)
	if err != nil {
		return nil, err
	}
	logger.Debug("samples binned", "strategy", strategy, "bins", binCount, "counts", fmt.Sprint(counts))

	report.WriteBins(out, ranges, counts)

	if err = render.Render(opts.Render, binCount, counts); err != nil {
		return nil, err
	}
	report.WriteSaved(out, opts.Render.Path)
	logger.Info("histogram saved", "path", opts.Render.Path)

	rep := &report.Report{
		GeneratedAt: now().UTC(),
		Params:      params,
		DrawMode:    sampler.Mode().String(),
		Seed:        seed,
		Strategy:    strategy,
		Ranges:      ranges,
		Counts:      counts,
		Summary:     summary,
		Output:      opts.Render.Path,
	}

	if opts.Publisher != nil {
		if err = opts.Publisher.Publish(rep); err != nil {
			return nil, err
		}
		logger.Info("report published", "strategy", strategy)
	}

	return rep, nil
}

// bin applies strategy and returns the bin ranges with their counts.
func bin(session *prompt.Session, strategy binning.Strategy, binCount int, samples []float64) ([]binning.Range, []int, error) {
	if strategy == binning.StrategyManual {
		ranges, err := session.BinRanges(binCount)
		if err != nil {
			return nil, nil, err
		}

		return ranges, binning.Manual(ranges, samples), nil
	}

	counts, err := binning.Automatic(binCount, samples)
	if err != nil {
		return nil, nil, err
	}
	ranges, err := binning.AutomaticRanges(binCount, samples)
	if err != nil {
		return nil, nil, err
	}

	return ranges, counts, nil
}
