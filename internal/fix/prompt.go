package fix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter answers yes/no questions during an interactive run.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// StdPrompter reads answers line by line, normally from stdin.
type StdPrompter struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// NewStdPrompter wires a prompter to the given streams.
func NewStdPrompter(in io.Reader, out io.Writer) *StdPrompter {
	return &StdPrompter{In: in, Out: out, scanner: bufio.NewScanner(in)}
}

// Confirm asks the question and accepts y/yes (case-insensitive) as
// affirmative. EOF counts as no.
func (p *StdPrompter) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(p.Out, "%s [y/N] ", question); err != nil {
		return false, err
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return false, err
		}
		fmt.Fprintln(p.Out)
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(p.scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

// StaticPrompter answers every question the same way. Used for tests and
// for --yes style automation.
type StaticPrompter struct {
	Answer bool
}

func (p StaticPrompter) Confirm(string) (bool, error) {
	return p.Answer, nil
}
