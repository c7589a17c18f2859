package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content,
		lipgloss.WithWhitespaceBackground(bg))
	return PadLines(placed, w, h, bg)
}

// PadLines pads content to width and height with a background color.
// Lines wider than width are left untouched.
func PadLines(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	fill := lipgloss.NewStyle().Background(bg)
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + fill.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}

// Overlay centers box over base, a width by height screen. Box lines are
// padded to a common width and keep bg across embedded style resets.
func Overlay(base, box string, width, height int, bg lipgloss.Color) string {
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, line := range boxLines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}
	if boxWidth == 0 || width <= 0 || height <= 0 {
		return base
	}
	boxWidth = min(boxWidth, width)

	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)

	fill := lipgloss.NewStyle().Background(bg)
	for i, line := range boxLines {
		w := lipgloss.Width(line)
		if w > boxWidth {
			line = ansi.Cut(line, 0, boxWidth)
		} else if w < boxWidth {
			line += fill.Render(strings.Repeat(" ", boxWidth-w))
		}
		boxLines[i] = keepBackground(line, bg) + ansi.ResetStyle
	}

	rows := strings.Split(PadLines(base, width, height, lipgloss.Color("")), "\n")
	for i, line := range boxLines {
		row := top + i
		if row >= len(rows) {
			break
		}
		rows[row] = ansi.Cut(rows[row], 0, left) + line + ansi.Cut(rows[row], left+boxWidth, width)
	}
	return strings.Join(rows, "\n")
}

// keepBackground reapplies bg after every reset inside line.
func keepBackground(line string, bg lipgloss.Color) string {
	seq := backgroundSeq(bg)
	if seq == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+seq)
	}
	return line
}

func backgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}
