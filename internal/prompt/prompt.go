// Package prompt reads single lines of user input in response to a prompt.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal calls.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// Prompter shows a prompt and returns the answer with surrounding whitespace
// removed. ReadSecret behaves like ReadLine but does not echo input when it
// comes from a terminal.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

// Line is a Prompter over a reader and a writer. Prompts go to the writer.
type Line struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// New returns a Line reading answers from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Line {
	l := &Line{in: bufio.NewReader(r), out: w, fd: -1}
	if f, ok := r.(*os.File); ok {
		fd := int(f.Fd())
		if isTerminal(fd) {
			l.fd = fd
			l.tty = true
		}
	}
	return l
}

// ReadLine writes prompt and reads one line. A final line without a trailing
// newline is accepted; io.EOF is returned only when no input is left.
func (l *Line) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(l.out, prompt); err != nil {
		return "", err
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (l *Line) ReadSecret(prompt string) (string, error) {
	if !l.tty {
		return l.ReadLine(prompt)
	}
	if _, err := fmt.Fprint(l.out, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(l.fd)
	fmt.Fprintln(l.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}

// Confirm asks a yes/no question and reports whether the answer was "y".
func Confirm(p Prompter, question string) (bool, error) {
	answer, err := p.ReadLine(question)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}
