package prompt

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorHeader   = lipgloss.Color("#10B981")
	colorSubtitle = lipgloss.Color("#06B6D4")
	colorQuestion = lipgloss.Color("#F59E0B")
	colorError    = lipgloss.Color("#EF4444")
	colorMuted    = lipgloss.Color("#6B7280")
)

// Styles groups every style used for prompts, headers and tables.
type Styles struct {
	Header      lipgloss.Style
	SubHeader   lipgloss.Style
	Question    lipgloss.Style
	Hint        lipgloss.Style
	Prompt      lipgloss.Style
	Error       lipgloss.Style
	TableBorder lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
}

// NewStyles returns the styles for colored output, or unstyled equivalents
// when color is false.
func NewStyles(color bool) Styles {
	plain := lipgloss.NewStyle()
	cell := lipgloss.NewStyle().Padding(0, 1)
	if !color {
		return Styles{
			Header:      plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			SubHeader:   plain,
			Question:    plain,
			Hint:        plain,
			Prompt:      plain,
			Error:       plain,
			TableBorder: plain,
			TableHeader: cell,
			TableCell:   cell,
		}
	}
	return Styles{
		Header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorHeader).
			Foreground(colorHeader).
			Padding(0, 1),
		SubHeader: lipgloss.NewStyle().
			Foreground(colorSubtitle),
		Question: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorQuestion),
		Hint: lipgloss.NewStyle().
			Faint(true),
		Prompt: lipgloss.NewStyle().
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(colorError),
		TableBorder: lipgloss.NewStyle().
			Foreground(colorMuted),
		TableHeader: cell.
			Bold(true),
		TableCell: cell,
	}
}
