package binning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/binning"
)

// TestParseRange_Valid covers accepted shapes of the LOW-HIGH grammar.
func TestParseRange_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want binning.Range
	}{
		{"1.5-3", binning.Range{Lower: 1.5, Upper: 3}},
		{"0-10", binning.Range{Lower: 0, Upper: 10}},
		{".5-.75", binning.Range{Lower: 0.5, Upper: 0.75}},
		{"100.25-200.125", binning.Range{Lower: 100.25, Upper: 200.125}},
		{"2-1", binning.Range{Lower: 2, Upper: 1}}, // no ordering validation
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := binning.ParseRange(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParseRange_Errors checks that failures are reported, never turned
// into a (0,0) range.
func TestParseRange_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"abc", binning.ErrRangeParse},
		{"", binning.ErrRangeParse},
		{"1-2-3", binning.ErrRangeParse},
		{"1.-2", binning.ErrRangeParse},
		{" 1-2", binning.ErrRangeParse},
		{"1..5-2", binning.ErrRangeParse},
		{"-1-2", binning.ErrRangeParse},
		{"-3", binning.ErrNumberFormat},
		{"3-", binning.ErrNumberFormat},
		{"-", binning.ErrNumberFormat},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := binning.ParseRange(tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, binning.Range{}, got)
		})
	}
}

// TestRange_InvertedMatchesNothing: "2-1" is valid but contains no value.
func TestRange_InvertedMatchesNothing(t *testing.T) {
	r, err := binning.ParseRange("2-1")
	require.NoError(t, err)

	counts := binning.Manual([]binning.Range{r}, []float64{0.5, 1, 1.5, 2, 2.5})
	assert.Equal(t, []int{0}, counts)
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "1.5-3", binning.Range{Lower: 1.5, Upper: 3}.String())
	assert.Equal(t, "0-0.25", binning.Range{Lower: 0, Upper: 0.25}.String())
}
