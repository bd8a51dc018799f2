package cli

import (
	"fmt"
	"io"
)

// turnSeparator is printed after every accepted move
const turnSeparator = "/////////////////////////////"

// Output writes game text to the terminal
type Output struct {
	w io.Writer
}

// NewOutput creates a new Output
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// PrintBoard outputs a rendered board
func (o *Output) PrintBoard(rendered string) {
	fmt.Fprintln(o.w, rendered)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	fmt.Fprintln(o.w, msg)
}

// PrintMessagef outputs a formatted message
func (o *Output) PrintMessagef(format string, args ...any) {
	fmt.Fprintf(o.w, format+"\n", args...)
}

// PrintSeparator marks the end of a turn
func (o *Output) PrintSeparator() {
	fmt.Fprintln(o.w, turnSeparator)
}
