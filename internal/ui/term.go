package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Filled blocks: cyan so the plan stands out from empty slots
	colorFilled = color.New(color.FgCyan)

	// Done blocks: green
	colorDone = color.New(color.FgGreen, color.Bold)

	// Today's column header
	colorToday = color.New(color.FgYellow, color.Bold)

	// Notes text
	colorNotes = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatFilled(s string) string {
	return colorFilled.Sprint(s)
}

func formatDone(s string) string {
	return colorDone.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatNotes(s string) string {
	return colorNotes.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
