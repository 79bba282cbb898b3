// SPDX-License-Identifier: MIT
// Package: noisegen/prompt
//
// session.go - the fixed sequence of prompts.
//
// Every prompt is printed on its own line, the answer is read and trimmed,
// and a blank line follows. Numeric answers that do not parse, or fall
// outside their domain, fail with ErrInvalidInput naming the prompt.

package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DriftingOtter/Gaussian-Signal-Generation/binning"
	"github.com/DriftingOtter/Gaussian-Signal-Generation/noise"
)

// Prompt texts, in session order.
const (
	PromptResolution = "Enter Noise Generation Resolution"
	PromptCenter     = "Enter Sample Center"
	PromptWidth      = "Enter Sample Width"
	PromptCount      = "Enter N Size"
	PromptStrategy   = "Would you like automatic binning? Or Manual? (A/M)"
	PromptBinCount   = "Enter Bin Count"
	promptBinRange   = "Enter #%d bin range (inclusive)"
)

// minBinCount is the smallest accepted answer to PromptBinCount.
const minBinCount = 1

// Session asks questions on out and reads answers from in.
type Session struct {
	in  InputSource
	out io.Writer
}

// NewSession returns a Session over in and out.
func NewSession(in InputSource, out io.Writer) *Session {
	return &Session{in: in, out: out}
}

// ask prints prompt, reads one answer and returns it trimmed.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprintln(s.out, prompt)

	line, err := s.in.ReadLine()
	if err != nil {
		return "", invalid(prompt, "", err)
	}
	fmt.Fprintln(s.out)

	return strings.TrimSpace(line), nil
}

// askInt reads an integer ≥ min.
func (s *Session) askInt(prompt string, min int) (int, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(answer)
	if err != nil {
		return 0, invalid(prompt, answer, err)
	}
	if v < min {
		return 0, invalid(prompt, answer, fmt.Errorf("must be at least %d", min))
	}

	return v, nil
}

// askFloat reads a real number.
func (s *Session) askFloat(prompt string) (float64, error) {
	answer, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, invalid(prompt, answer, err)
	}

	return v, nil
}

// Params asks for resolution, center, width and sample count, in that order.
func (s *Session) Params() (noise.Params, error) {
	var (
		p   noise.Params
		err error
	)
	if p.Resolution, err = s.askInt(PromptResolution, noise.MinResolution); err != nil {
		return noise.Params{}, err
	}
	if p.Center, err = s.askFloat(PromptCenter); err != nil {
		return noise.Params{}, err
	}
	if p.Width, err = s.askFloat(PromptWidth); err != nil {
		return noise.Params{}, err
	}
	if p.Count, err = s.askInt(PromptCount, noise.MinCount); err != nil {
		return noise.Params{}, err
	}

	return p, nil
}

// Strategy asks for the binning mode. Any answer other than "m"/"M"
// selects StrategyAutomatic; only a failed read is an error.
func (s *Session) Strategy() (binning.Strategy, error) {
	answer, err := s.ask(PromptStrategy)
	if err != nil {
		return binning.StrategyAutomatic, err
	}

	return binning.ParseStrategy(answer), nil
}

// BinCount asks for the number of bins (≥1).
func (s *Session) BinCount() (int, error) {
	return s.askInt(PromptBinCount, minBinCount)
}

// BinRanges asks for n ranges, numbered from 1. Each answer is parsed as
// soon as it is read; the first failure aborts the pass and is returned
// wrapped with its prompt, keeping binning.ErrRangeParse or
// binning.ErrNumberFormat visible to errors.Is.
func (s *Session) BinRanges(n int) ([]binning.Range, error) {
	ranges := make([]binning.Range, 0, n)
	for i := 1; i <= n; i++ {
		prompt := fmt.Sprintf(promptBinRange, i)

		answer, err := s.ask(prompt)
		if err != nil {
			return nil, err
		}
		r, err := binning.ParseRange(answer)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", prompt, err)
		}
		fmt.Fprintf(s.out, "Lower Bound: %v | Upper Bound: %v\n\n", r.Lower, r.Upper)

		ranges = append(ranges, r)
	}

	return ranges, nil
}
