// Package export writes displayed weeks to external calendar formats.
package export

import (
	"context"
	"fmt"
	"io"
	"time"

	ical "github.com/emersion/go-ical"

	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// ProductID identifies the generator in exported calendars.
const ProductID = "-//weekgrid//weekly planner//EN"

// BuildCalendar converts every non-empty block of v into a 30 minute event
// placed at its displayed date and time in the display location.
func BuildCalendar(ctx context.Context, v *schedule.View, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	days := v.Days()
	for _, c := range v.Cells(ctx) {
		if c.Cell.Text == "" {
			continue
		}
		tod := grid.MustParseKey(c.Time)
		day := days[c.Day]
		start := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, v.Display)
		end := start.Add(grid.SlotMinutes * time.Minute)

		summary := c.Cell.Text
		status := "TENTATIVE"
		if c.Cell.Done {
			summary = "[x] " + summary
			status = "CONFIRMED"
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d-%s@weekgrid", v.Key, c.Day, c.Time))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
		event.Props.SetText(ical.PropSummary, summary)
		event.Props.SetText(ical.PropStatus, status)
		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

// WriteICS encodes the calendar for v to w.
func WriteICS(ctx context.Context, w io.Writer, v *schedule.View, now time.Time) (int, error) {
	cal := BuildCalendar(ctx, v, now)
	if len(cal.Children) == 0 {
		return 0, nil
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return 0, fmt.Errorf("encoding calendar: %w", err)
	}
	return len(cal.Children), nil
}
