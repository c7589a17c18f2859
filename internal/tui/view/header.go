package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekgrid/internal/grid"
)

// DayLabels builds the column labels for a week and returns today's
// column, or -1 when today is not in the week.
func DayLabels(days [grid.DaysPerWeek]time.Time, today time.Time) ([]string, int) {
	labels := make([]string, 0, len(days))
	todayCol := -1
	for i, d := range days {
		label := fmt.Sprintf("%s %d", grid.DayName(i), d.Day())
		if !today.IsZero() && sameDay(d, today.In(d.Location())) {
			label = "*" + label + "*"
			todayCol = i
		}
		labels = append(labels, label)
	}
	return labels, todayCol
}

// WeekRange formats the first and last day of a week, e.g. "Jul 14 - Jul 20 2024".
func WeekRange(start time.Time) string {
	end := start.AddDate(0, 0, grid.DaysPerWeek-1)
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2 2006"))
}

// CenterLabel centers s in width columns.
func CenterLabel(s string, width int) string {
	s = ansi.Truncate(strings.TrimSpace(s), width, "…")
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
