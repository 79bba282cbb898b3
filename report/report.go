package report

import (
	"time"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/binning"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/noise"
)

// Report is the outcome of one run without the raw samples.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Params      noise.Params     `json:"params"`
	DrawMode    string           `json:"draw_mode"`
	Seed        uint64           `json:"seed"`
	Strategy    binning.Strategy `json:"strategy"`
	Ranges      []binning.Range  `json:"ranges"`
	Counts      []int            `json:"counts"`
	Summary     Summary          `json:"summary"`
	Output      string           `json:"output"`
}

// Publisher delivers a Report to an external sink.
type Publisher interface {
	Publish(r *Report) error
	Close() error
}
