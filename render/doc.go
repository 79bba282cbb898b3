// Package render draws bin counts as a vertical bar histogram and saves it
// as a PNG image using gonum/plot.
//
// Input contract:
//   - domainSize - number of bins; the x axis spans bin indices 0..domainSize-1.
//   - counts     - one count per bin, len(counts) == domainSize.
//
// The output path, pixel size, DPI and captions come from Config; nothing is
// global. Every drawing or I/O failure is returned wrapped in ErrRender and
// is not retried.
package render
