// SPDX-License-Identifier: MIT
// Package: noisegen/render
//
// render.go - gonum/plot bar histogram to PNG.

package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrRender wraps every drawing and I/O failure of this package.
var ErrRender = errors.New("render: cannot draw histogram")

// barFill is half-transparent blue.
var barFill = color.NRGBA{R: 0, G: 0, B: 255, A: 128}

// imageMode is the permission of a written image.
const imageMode os.FileMode = 0o644

// barShare is the fraction of the canvas width shared out among the bars.
const barShare = 0.8

// Render draws counts and writes the PNG to cfg.Path.
//
// Errors (all wrapping ErrRender):
//   - domainSize < 1 or len(counts) != domainSize.
//   - invalid Config sizes.
//   - plot construction, encoding, file create/write/close/rename failures.
//
// On failure no file is left at cfg.Path.
func Render(cfg Config, domainSize int, counts []int) (err error) {
	if cfg.Path == "" {
		return fmt.Errorf("Render: empty output path: %w", ErrRender)
	}

	// Build the plot before touching the file system so bad input leaves no file.
	p, err := newPlot(cfg, domainSize, counts)
	if err != nil {
		return err
	}

	// Encode into a sibling temp file and rename it into place, so a failed
	// write never leaves a partial image at cfg.Path.
	f, err := os.CreateTemp(filepath.Dir(cfg.Path), "."+filepath.Base(cfg.Path)+".*")
	if err != nil {
		return fmt.Errorf("Render: %w: %w", ErrRender, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = f.Chmod(imageMode); err != nil {
		_ = f.Close()
		return fmt.Errorf("Render: %w: %w", ErrRender, err)
	}
	if err = encode(f, cfg, p); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("Render: close %s: %w: %w", tmp, ErrRender, err)
	}
	if err = os.Rename(tmp, cfg.Path); err != nil {
		return fmt.Errorf("Render: %w: %w", ErrRender, err)
	}

	return nil
}

// Encode draws counts and writes the PNG bytes to w.
func Encode(w io.Writer, cfg Config, domainSize int, counts []int) error {
	p, err := newPlot(cfg, domainSize, counts)
	if err != nil {
		return err
	}

	return encode(w, cfg, p)
}

// newPlot validates the input contract and assembles the bar chart.
func newPlot(cfg Config, domainSize int, counts []int) (*plot.Plot, error) {
	if domainSize < 1 {
		return nil, fmt.Errorf("Render: domainSize=%d < 1: %w", domainSize, ErrRender)
	}
	if len(counts) != domainSize {
		return nil, fmt.Errorf("Render: %d counts for domainSize=%d: %w", len(counts), domainSize, ErrRender)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.DPI <= 0 {
		return nil, fmt.Errorf("Render: size %dx%d@%ddpi: %w", cfg.Width, cfg.Height, cfg.DPI, ErrRender)
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Y.Min = 0

	// Horizontal grid only; the x mesh would cut through the bars.
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	values := make(plotter.Values, domainSize)
	names := make([]string, domainSize)
	for i, c := range counts {
		values[i] = float64(c)
		names[i] = strconv.Itoa(i)
	}

	barWidth := pixels(cfg.Width, cfg.DPI) * barShare / vg.Length(domainSize)
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("Render: %w: %w", ErrRender, err)
	}
	bars.Color = barFill
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	return p, nil
}

// encode rasterises p at cfg's pixel size and writes a PNG to w.
func encode(w io.Writer, cfg Config, p *plot.Plot) error {
	c := vgimg.NewWith(
		vgimg.UseWH(pixels(cfg.Width, cfg.DPI), pixels(cfg.Height, cfg.DPI)),
		vgimg.UseDPI(cfg.DPI),
	)
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("Render: encode png: %w: %w", ErrRender, err)
	}

	return nil
}

// pixels converts a pixel count at dpi into a vg.Length.
func pixels(px, dpi int) vg.Length {
	return vg.Length(float64(px)/float64(dpi)) * vg.Inch
}
