package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/binning"
)

// WriteBuffer echoes the raw samples.
func WriteBuffer(w io.Writer, samples []float64) {
	fmt.Fprintf(w, "Sample Buffer: %v\n\n", samples)
}

// WriteSummary prints s as a two-column table.
func WriteSummary(w io.Writer, s Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{"samples", humanize.Comma(int64(s.Count))})
	table.Append([]string{"mean", formatFloat(s.Mean)})
	table.Append([]string{"std dev", formatFloat(s.StdDev)})
	table.Append([]string{"min", formatFloat(s.Min)})
	table.Append([]string{"max", formatFloat(s.Max)})
	table.Render()
	fmt.Fprintln(w)
}

// WriteBins prints the raw counts, a per-bin table and a text histogram.
// ranges and counts are paired by index.
func WriteBins(w io.Writer, ranges []binning.Range, counts []int) {
	fmt.Fprintf(w, "Bin: %v\n\n", counts)

	labels := binning.Labels(ranges)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Bin", "Range", "Count"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i, c := range counts {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		table.Append([]string{strconv.Itoa(i), label, humanize.Comma(int64(c))})
	}
	table.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, binning.Describe(labels, counts))
}

// WriteSaved confirms where the image was written.
func WriteSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "Result has been saved to %s\n", path)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
