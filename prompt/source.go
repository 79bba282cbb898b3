// Package prompt drives the interactive question/answer session that
// collects generation parameters, the binning strategy and manual bin
// ranges.
//
// Input arrives through an InputSource so the session runs the same against
// a terminal, a scripted answers file or a test fixture.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidInput is returned when an answer cannot be read or parsed.
// The wrapping error names the prompt and the offending text.
var ErrInvalidInput = errors.New("prompt: invalid input")

// InputSource yields one line of user input per call, without the trailing
// newline. It returns io.EOF when no more input is available.
type InputSource interface {
	ReadLine() (string, error)
}

// LineReader is an InputSource over an io.Reader.
type LineReader struct {
	sc *bufio.Scanner
}

// NewReader returns a LineReader reading r line by line.
func NewReader(r io.Reader) *LineReader {
	return &LineReader{sc: bufio.NewScanner(r)}
}

// ReadLine returns the next line with any trailing "\r" removed.
func (l *LineReader) ReadLine() (string, error) {
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSuffix(l.sc.Text(), "\r"), nil
}

// Lines is an InputSource over a fixed list of answers.
type Lines []string

// ReadLine pops the next answer, or returns io.EOF when none remain.
func (l *Lines) ReadLine() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]

	return line, nil
}

// invalid wraps ErrInvalidInput with the prompt name and the answer.
func invalid(prompt, answer string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %q: %w", prompt, answer, ErrInvalidInput)
	}

	return fmt.Errorf("%s: %q: %w: %w", prompt, answer, ErrInvalidInput, cause)
}
