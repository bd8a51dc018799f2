package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned by Ask when retrying is disabled
	ErrInvalidInput = errors.New("invalid input")
	// ErrInputClosed is returned once the input stream is exhausted
	ErrInputClosed = errors.New("input closed")

	errLineTooLong = errors.New("input line too long")
)

// maxLineLength bounds a single answer; longer lines are read through and rejected
const maxLineLength = 4096

// Validator reports whether a line of input is acceptable
type Validator func(value string) bool

// OneOf accepts exactly one of the given values
func OneOf(options ...string) Validator {
	return func(value string) bool {
		for _, option := range options {
			if value == option {
				return true
			}
		}
		return false
	}
}

// IntInRange accepts integers between lo and hi inclusive
func IntInRange(lo, hi int) Validator {
	return func(value string) bool {
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		return n >= lo && n <= hi
	}
}

// Prompter asks questions on out and reads answers from in, one line each
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a Prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask shows the prompt and returns the first answer accepted by valid.
// With retry the question is repeated until a valid answer arrives,
// without it the first invalid answer fails with ErrInvalidInput.
func (p *Prompter) Ask(prompt string, valid Validator, retry bool) (string, error) {
	for {
		fmt.Fprint(p.out, prompt+" ")

		value, err := p.readLine()
		if err != nil && !errors.Is(err, errLineTooLong) {
			return "", err
		}
		if err == nil && valid(value) {
			return value, nil
		}

		if !retry {
			return "", fmt.Errorf("%w: %q", ErrInvalidInput, value)
		}
		fmt.Fprintln(p.out, "Value is not valid. Please, try again.")
	}
}

// WaitForEnter blocks until a line is read. A closed input counts as enter.
func (p *Prompter) WaitForEnter() error {
	_, err := p.readLine()
	if errors.Is(err, ErrInputClosed) || errors.Is(err, errLineTooLong) {
		return nil
	}
	return err
}

// readLine returns the next trimmed line. A line over maxLineLength is consumed
// whole and reported as errLineTooLong.
func (p *Prompter) readLine() (string, error) {
	var (
		line    []byte
		read    bool
		tooLong bool
	)
	for {
		chunk, isPrefix, err := p.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			if errors.Is(err, io.EOF) {
				return "", ErrInputClosed
			}
			return "", err
		}
		read = true

		if len(line)+len(chunk) > maxLineLength {
			tooLong = true
		} else if !tooLong {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimSpace(string(line)), nil
}
