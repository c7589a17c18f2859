// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// FitCell truncates s to width columns and pads it to exactly width.
func FitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// FormatDuration formats minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatDelta formats a signed offset delta, e.g. "-12h" or "+5h 30m".
func FormatDelta(minutes int) string {
	switch {
	case minutes > 0:
		return "+" + FormatDuration(minutes)
	case minutes < 0:
		return "-" + FormatDuration(-minutes)
	default:
		return "0m"
	}
}

// ProgressBar draws done over filled blocks as a bar of width cells.
func ProgressBar(done, filled, width int) string {
	if width <= 0 {
		return ""
	}
	n := 0
	if filled > 0 {
		n = (done * width) / filled
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}
