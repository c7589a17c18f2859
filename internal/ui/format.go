package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/summary"
)

const (
	timeColWidth = 8 // "  HH:MM "
	minCellWidth = 6
	maxCellWidth = 22
)

// GridOpts configures week grid printing.
type GridOpts struct {
	All       bool      // Print every slot, not only rows with blocks
	CellWidth int       // Column width (0 = fit terminal)
	Today     time.Time // Highlighted date (zero = none)
}

func (o GridOpts) cellWidth() int {
	if o.CellWidth > 0 {
		return o.CellWidth
	}
	return CalcCellWidth(termWidth())
}

// CalcCellWidth fits the time column and seven day columns into width.
func CalcCellWidth(width int) int {
	w := (width-timeColWidth)/grid.DaysPerWeek - 1
	if w < minCellWidth {
		return minCellWidth
	}
	if w > maxCellWidth {
		return maxCellWidth
	}
	return w
}

// FitCell truncates s to width columns and pads it to exactly width.
func FitCell(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// CellLabel returns the text shown for a block.
func CellLabel(c schedule.Cell) string {
	if !c.Done {
		return c.Text
	}
	if c.Text == "" {
		return "✓"
	}
	return "✓ " + c.Text
}

// PrintWeekGrid prints the week as a time by day table.
func PrintWeekGrid(w io.Writer, s *summary.WeekSummary, opts GridOpts) {
	width := opts.cellWidth()
	cells := make(map[grid.Slot]schedule.Cell, len(s.Cells))
	for _, c := range s.Cells {
		cells[grid.Slot{Day: c.Day, Time: c.Time}] = c.Cell
	}

	var header strings.Builder
	header.WriteString("  TIME  ")
	for i, d := range s.Days {
		label := FitCell(fmt.Sprintf("%s %s", grid.DayName(i), d.Date.Format("01/02")), width)
		if !opts.Today.IsZero() && sameDate(d.Date, opts.Today) {
			label = formatToday(label)
		} else {
			label = formatHeader(label)
		}
		header.WriteString(label)
		header.WriteString(" ")
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(header.String(), " "))
	_, _ = fmt.Fprintln(w, "  "+strings.Repeat("─", timeColWidth-2+grid.DaysPerWeek*(width+1)))

	rows := 0
	for _, key := range grid.Keys() {
		var line strings.Builder
		filled := false
		for day := 0; day < grid.DaysPerWeek; day++ {
			c, ok := cells[grid.Slot{Day: day, Time: key}]
			if !ok {
				line.WriteString(formatMuted(FitCell("·", width)))
			} else {
				filled = true
				text := FitCell(CellLabel(c), width)
				if c.Done {
					line.WriteString(formatDone(text))
				} else {
					line.WriteString(formatFilled(text))
				}
			}
			line.WriteString(" ")
		}
		if !filled && !opts.All {
			continue
		}
		rows++
		_, _ = fmt.Fprintf(w, "  %s  %s\n", key, strings.TrimRight(line.String(), " "))
	}

	if rows == 0 {
		_, _ = fmt.Fprintln(w, "  No blocks scheduled for this week.")
	}
}

// PrintBlockList prints one line per block, for narrow terminals.
func PrintBlockList(w io.Writer, s *summary.WeekSummary) {
	if len(s.Cells) == 0 {
		_, _ = fmt.Fprintln(w, "  No blocks scheduled for this week.")
		return
	}
	currentDay := -1
	for _, c := range s.Cells {
		if c.Day != currentDay {
			if currentDay >= 0 {
				_, _ = fmt.Fprintln(w)
			}
			date := s.Days[c.Day].Date
			_, _ = fmt.Fprintf(w, "  %s\n", formatHeader(date.Format("Mon Jan 2")))
			currentDay = c.Day
		}
		symbol := "○"
		label := formatFilled(c.Cell.Text)
		if c.Cell.Done {
			symbol = "✓"
			label = formatDone(c.Cell.Text)
		}
		_, _ = fmt.Fprintf(w, "    %s  %s  %s\n", symbol, c.Time, label)
	}
}

// PrintSummary prints the week stats below the grid.
func PrintSummary(w io.Writer, s *summary.WeekSummary) {
	busiest := "-"
	if day, filled := s.BusiestDay(); day >= 0 {
		busiest = fmt.Sprintf("%s (%d)", grid.DayName(day), filled)
	}
	_, _ = fmt.Fprintf(w, "  Filled: %d  |  Done: %s  |  Busiest: %s\n",
		s.Filled(), formatStats(s.Ratio()), busiest)
	_, _ = fmt.Fprintf(w, "  Progress: %s\n", ProgressBar(s.Done(), s.Filled(), 20))
	if s.Delta != 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", formatMuted(fmt.Sprintf(
			"Shown in %s, %s from the reference timezone", s.Zone, FormatDelta(s.Delta))))
	}
}

// ProgressBar creates an ASCII progress bar of done over filled blocks.
func ProgressBar(done, filled, width int) string {
	if filled == 0 {
		return "[" + strings.Repeat("░", width) + "] (0% done)"
	}

	done = min(max(done, 0), filled)
	pct := (done * 100) / filled
	n := min(max((done*width)/filled, 0), width)

	bar := strings.Repeat("█", n) + strings.Repeat("░", width-n)
	return fmt.Sprintf("[%s] %s", formatDone(bar), formatStats(fmt.Sprintf("(%d%% done)", pct)))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// FormatDelta formats a signed offset delta, e.g. "-12h" or "+5h30m".
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

func sameDate(a, b time.Time) bool {
	return dateutil.FormatDate(a) == dateutil.FormatDate(b.In(a.Location()))
}
