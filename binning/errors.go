// SPDX-License-Identifier: MIT
// Package binning: sentinel error set.
// Callers branch with errors.Is; implementations add context with
// fmt.Errorf("ctx: %w", ErrX). Binners never panic on user input.

package binning

import "errors"

var (
	// ErrRangeParse is returned when text does not match the LOW-HIGH grammar.
	ErrRangeParse = errors.New("binning: range does not match LOW-HIGH")

	// ErrNumberFormat is returned when the grammar matched but a bound is not
	// a number (e.g. an empty side in "-3").
	ErrNumberFormat = errors.New("binning: invalid number in range")

	// ErrEmptyInput is returned by Automatic when there is no domain to
	// partition: no samples, or no sample above zero.
	ErrEmptyInput = errors.New("binning: no samples to bin")

	// ErrInvalidBinCount is returned when fewer than one bin is requested.
	ErrInvalidBinCount = errors.New("binning: bin count must be at least 1")
)
