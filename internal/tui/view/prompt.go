package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/weekgrid/internal/tui/input"
)

// PromptLines builds the prompt input line followed by matching command
// suggestions, wrapped to width.
func PromptLines(value, cursor string, width int, commands []input.PromptCommand) []string {
	lines := wrapTextWithPrefix(value+cursor, "> ", "  ", width)
	return append(lines, SuggestionLines(value, width, commands)...)
}

// SuggestionLines lists the commands matching value, wrapped to width.
func SuggestionLines(value string, width int, commands []input.PromptCommand) []string {
	var lines []string
	for _, cmd := range input.PromptMatchingCommands(value, commands) {
		line := cmd.Name
		if cmd.Usage != "" {
			line += " " + cmd.Usage
		}
		line += "  " + cmd.Description
		lines = append(lines, wrapTextWithPrefix(line, "  ", "    ", width)...)
	}
	return lines
}

// ClampLines keeps at most maxLines lines and marks the cut with an ellipsis.
func ClampLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	clamped := append([]string(nil), lines[:maxLines]...)
	clamped[maxLines-1] = addEllipsis(clamped[maxLines-1], width)
	return clamped
}

// WrapTextToWidths wraps text at spaces, using firstWidth for the first
// line and otherWidth after it. Words longer than a line are split.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 {
		return []string{""}
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 4)
	width := firstWidth
	lineStart := 0
	lastSpace := -1
	lineWidth := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' {
			lastSpace = i
		}

		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width {
			if lastSpace >= lineStart {
				lines = append(lines, string(runes[lineStart:lastSpace]))
				i = lastSpace
				lineStart = lastSpace + 1
			} else {
				lines = append(lines, string(runes[lineStart:i]))
				lineStart = i
				i--
			}
			width = otherWidth
			lastSpace = -1
			lineWidth = 0
			continue
		}
		lineWidth += rw
	}

	return append(lines, string(runes[lineStart:]))
}

func wrapTextWithPrefix(s, prefix, continuation string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	firstWidth := max(width-len(prefix), 1)
	otherWidth := max(width-len(continuation), 1)

	lines := WrapTextToWidths(s, firstWidth, otherWidth)
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
		} else {
			lines[i] = continuation + lines[i]
		}
	}
	return lines
}

func addEllipsis(s string, width int) string {
	if width <= 3 {
		return strings.Repeat(".", max(width, 0))
	}
	if runewidth.StringWidth(s)+3 > width {
		s = runewidth.Truncate(s, width-3, "")
	}
	return s + "..."
}
