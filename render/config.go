// SPDX-License-Identifier: MIT
// Package: noisegen/render
//
// config.go - renderer settings and documented defaults.

package render

// Documented defaults.
const (
	DefaultPath   = "histogram.png"
	DefaultWidth  = 640 // pixels
	DefaultHeight = 480 // pixels
	DefaultDPI    = 96
	DefaultTitle  = "Noise Graph"
	DefaultXLabel = "Bins"
	DefaultYLabel = "Quantized Amplitude"
)

// Config controls where and how the histogram is drawn.
type Config struct {
	Path   string // output file for Render
	Width  int    // image width in pixels (>0)
	Height int    // image height in pixels (>0)
	DPI    int    // pixels per inch used to size fonts and lines (>0)
	Title  string
	XLabel string
	YLabel string
}

// DefaultConfig returns the 640×480 "Noise Graph" settings.
func DefaultConfig() Config {
	return Config{
		Path:   DefaultPath,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		DPI:    DefaultDPI,
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
	}
}
