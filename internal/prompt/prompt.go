// Package prompt supplies validated user input to the interactive session.
//
// Prompter is the only capability the session relies on; Terminal drives a
// real TTY through bubbletea, Line serves piped input and tests.
package prompt

import "errors"

// ErrAborted is returned when the user cancels a prompt or input ends.
var ErrAborted = errors.New("input aborted")

// Prompter asks the user for input. Implementations do no validation of
// their own; retrying is up to the caller.
type Prompter interface {
	// AskQuestion shows a question with an optional hint below it. It does
	// not wait for input.
	AskQuestion(text, hint string)
	// GetLine reads one trimmed line of input.
	GetLine(prompt string) (string, error)
	// GetConfirmation asks a yes/no question.
	GetConfirmation(prompt string) (bool, error)
	// ReportError tells the user their last answer was rejected.
	ReportError(message string)
}
