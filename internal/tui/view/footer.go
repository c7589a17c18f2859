package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterViewState holds the already styled lines of the footer.
type FooterViewState struct {
	InnerW     int
	FooterH    int
	StatsLine  string
	NotesLine  string
	PromptLine []string
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// FooterHeight is the number of lines the footer needs for state.
func FooterHeight(state FooterViewState) int {
	return len(footerLines(state))
}

// RenderFooter renders stats, notes, prompt, status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}
	lines := footerLines(state)
	if len(lines) > state.FooterH {
		lines = lines[len(lines)-state.FooterH:]
	}
	return PlaceBox(state.InnerW, state.FooterH, lipgloss.Bottom, strings.Join(lines, "\n"), state.Bg)
}

func footerLines(state FooterViewState) []string {
	lines := []string{state.StatsLine}
	if state.NotesLine != "" {
		lines = append(lines, state.NotesLine)
	}
	lines = append(lines, state.PromptLine...)
	return append(lines, state.StatusLine, state.HelpLine)
}
