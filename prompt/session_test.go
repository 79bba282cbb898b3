package prompt_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/binning"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/noise"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/prompt"
)

func session(answers ...string) (*prompt.Session, *bytes.Buffer) {
	var out bytes.Buffer
	lines := prompt.Lines(answers)

	return prompt.NewSession(&lines, &out), &out
}

// TestSession_Params reads the four generation answers in order.
func TestSession_Params(t *testing.T) {
	s, out := session("12", " 50.5 ", "-2", "1000")

	p, err := s.Params()
	require.NoError(t, err)
	assert.Equal(t, noise.Params{Resolution: 12, Center: 50.5, Width: -2, Count: 1000}, p)

	want := prompt.PromptResolution + "\n\n" +
		prompt.PromptCenter + "\n\n" +
		prompt.PromptWidth + "\n\n" +
		prompt.PromptCount + "\n\n"
	assert.Equal(t, want, out.String())
}

// TestSession_ParamsInvalid checks that each malformed answer fails with
// ErrInvalidInput naming its prompt.
func TestSession_ParamsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		prompt  string
	}{
		{"resolution text", []string{"abc"}, prompt.PromptResolution},
		{"resolution zero", []string{"0"}, prompt.PromptResolution},
		{"resolution float", []string{"1.5"}, prompt.PromptResolution},
		{"center text", []string{"4", "x"}, prompt.PromptCenter},
		{"width empty", []string{"4", "1", ""}, prompt.PromptWidth},
		{"count negative", []string{"4", "1", "1", "-5"}, prompt.PromptCount},
		{"eof", []string{"4", "1"}, prompt.PromptWidth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := session(tc.answers...)

			_, err := s.Params()
			require.ErrorIs(t, err, prompt.ErrInvalidInput)
			assert.True(t, strings.HasPrefix(err.Error(), tc.prompt), "got %q", err.Error())
		})
	}
}

// TestSession_EOFUnwraps keeps the read error reachable.
func TestSession_EOFUnwraps(t *testing.T) {
	s, _ := session()
	_, err := s.BinCount()
	assert.ErrorIs(t, err, prompt.ErrInvalidInput)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSession_Strategy(t *testing.T) {
	for answer, want := range map[string]binning.Strategy{
		"M":     binning.StrategyManual,
		"m":     binning.StrategyManual,
		"A":     binning.StrategyAutomatic,
		"maybe": binning.StrategyAutomatic,
	} {
		s, out := session(answer)
		got, err := s.Strategy()
		require.NoError(t, err)
		assert.Equal(t, want, got, "answer %q", answer)
		assert.Contains(t, out.String(), prompt.PromptStrategy)
	}

	s, _ := session()
	_, err := s.Strategy()
	assert.ErrorIs(t, err, prompt.ErrInvalidInput)
}

func TestSession_BinCount(t *testing.T) {
	s, _ := session("5")
	n, err := s.BinCount()
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	for _, bad := range []string{"0", "-1", "two"} {
		s, _ := session(bad)
		_, err := s.BinCount()
		assert.ErrorIs(t, err, prompt.ErrInvalidInput, "answer %q", bad)
	}
}

// TestSession_BinRanges reads numbered ranges and echoes the bounds.
func TestSession_BinRanges(t *testing.T) {
	s, out := session("0-1.5", " 1.5-3 ")

	ranges, err := s.BinRanges(2)
	require.NoError(t, err)
	assert.Equal(t, []binning.Range{{Lower: 0, Upper: 1.5}, {Lower: 1.5, Upper: 3}}, ranges)

	text := out.String()
	assert.Contains(t, text, "Enter #1 bin range (inclusive)\n")
	assert.Contains(t, text, "Enter #2 bin range (inclusive)\n")
	assert.Contains(t, text, "Lower Bound: 0 | Upper Bound: 1.5\n")
	assert.Contains(t, text, "Lower Bound: 1.5 | Upper Bound: 3\n")
}

// TestSession_BinRangesAbort stops at the first bad range and never asks
// for the next one.
func TestSession_BinRangesAbort(t *testing.T) {
	s, out := session("0-1", "abc", "2-3")

	_, err := s.BinRanges(3)
	require.ErrorIs(t, err, binning.ErrRangeParse)
	assert.True(t, strings.HasPrefix(err.Error(), "Enter #2 bin range"))
	assert.NotContains(t, out.String(), "Enter #3")

	s, _ = session("-3")
	_, err = s.BinRanges(1)
	assert.ErrorIs(t, err, binning.ErrNumberFormat)
}

// TestLineReader handles CRLF input and reports EOF.
func TestLineReader(t *testing.T) {
	r := prompt.NewReader(strings.NewReader("12\r\n3.5\nlast"))

	for _, want := range []string{"12", "3.5", "last"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadLine()
	assert.True(t, errors.Is(err, io.EOF))
}
