package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is a Prompter over plain line-oriented streams, used when stdin is
// not a terminal.
type Line struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
}

// NewLine returns a Line reading answers from in and writing prompts to out.
func NewLine(in io.Reader, out io.Writer, styles Styles) *Line {
	return &Line{scanner: bufio.NewScanner(in), out: out, styles: styles}
}

func (l *Line) AskQuestion(text, hint string) {
	fmt.Fprintln(l.out, l.styles.Question.Render(text))
	if hint != "" {
		fmt.Fprintln(l.out, "\t"+l.styles.Hint.Render(hint))
	}
}

func (l *Line) GetLine(prompt string) (string, error) {
	fmt.Fprint(l.out, l.styles.Prompt.Render(prompt)+" ")
	return l.read()
}

func (l *Line) GetConfirmation(prompt string) (bool, error) {
	fmt.Fprint(l.out, l.styles.Prompt.Render(prompt)+" [y/N] ")
	answer, err := l.read()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (l *Line) ReportError(message string) {
	fmt.Fprintln(l.out, l.styles.Error.Render(message))
}

func (l *Line) read() (string, error) {
	if !l.scanner.Scan() {
		fmt.Fprintln(l.out)
		if err := l.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(l.scanner.Text()), nil
}
