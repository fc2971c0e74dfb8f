package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

const (
	colorGreen  lipgloss.Color = "#a6e3a1"
	colorYellow lipgloss.Color = "#f9e2af"
	colorRed    lipgloss.Color = "#f38ba8"
	colorGray   lipgloss.Color = "#808080"
	colorCyan   lipgloss.Color = "#89dceb"
)

// styles holds the renderer-bound styles for one output stream.
type styles struct {
	correct lipgloss.Style
	present lipgloss.Style
	absent  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	info    lipgloss.Style
}

// newStyles binds styles to w so colour is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		correct: r.NewStyle().Foreground(colorGreen).Bold(true),
		present: r.NewStyle().Foreground(colorYellow).Bold(true),
		absent:  r.NewStyle().Foreground(colorGray),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		danger:  r.NewStyle().Foreground(colorRed),
		info:    r.NewStyle().Foreground(colorCyan),
	}
}

func (s styles) letter(r game.LetterResult) lipgloss.Style {
	switch r {
	case game.Correct:
		return s.correct
	case game.Present:
		return s.present
	}
	return s.absent
}
