package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Terminal is a Prompter for interactive terminals. Each question runs a
// short-lived bubbletea program on the given input and output.
type Terminal struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// NewTerminal returns a Terminal reading keys from in and drawing to out.
func NewTerminal(in io.Reader, out io.Writer, styles Styles) *Terminal {
	return &Terminal{in: in, out: out, styles: styles}
}

func (t *Terminal) AskQuestion(text, hint string) {
	fmt.Fprintln(t.out, t.styles.Question.Render(text))
	if hint != "" {
		fmt.Fprintln(t.out, "\t"+t.styles.Hint.Render(hint))
	}
}

func (t *Terminal) GetLine(prompt string) (string, error) {
	final, err := t.run(newLineModel(prompt, t.styles))
	if err != nil {
		return "", err
	}
	m := final.(lineModel)
	if m.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(m.input.Value()), nil
}

func (t *Terminal) GetConfirmation(prompt string) (bool, error) {
	final, err := t.run(newConfirmModel(prompt, t.styles))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.confirmed, nil
}

func (t *Terminal) ReportError(message string) {
	fmt.Fprintln(t.out, t.styles.Error.Render(message))
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

// lineModel reads a single line of text.
type lineModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func newLineModel(prompt string, s Styles) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt + " "
	ti.PromptStyle = s.Prompt
	ti.CharLimit = 64
	ti.Focus()
	return lineModel{input: ti}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.done || m.aborted {
		return m.input.PromptStyle.Render(m.input.Prompt) + m.input.Value() + "\n"
	}
	return m.input.View()
}

// confirmModel asks a y/N question. Anything but y counts as no.
type confirmModel struct {
	prompt    string
	style     Styles
	confirmed bool
	answered  bool
	aborted   bool
}

func newConfirmModel(prompt string, s Styles) confirmModel {
	return confirmModel{prompt: prompt, style: s}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "ctrl+d", "esc":
		m.aborted = true
		return m, tea.Quit
	case "y", "Y":
		m.confirmed = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "enter":
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	s := m.style.Prompt.Render(m.prompt) + " [y/N] "
	if m.answered {
		if m.confirmed {
			return s + "y\n"
		}
		return s + "n\n"
	}
	if m.aborted {
		return s + "\n"
	}
	return s
}
