package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample buffer.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes count, mean, sample standard deviation, min and max.
// An empty buffer yields the zero Summary; a single sample has StdDev 0.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if len(samples) < 2 {
		std = 0
	}

	return Summary{
		Count:  len(samples),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(samples),
		Max:    floats.Max(samples),
	}
}
