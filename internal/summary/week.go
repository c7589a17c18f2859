// Package summary provides shared week summary utilities.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// DayStats holds block counts for one displayed day.
type DayStats struct {
	Date   time.Time
	Filled int
	Done   int
}

// WeekSummary holds aggregated data for a displayed week.
type WeekSummary struct {
	Key   string
	Zone  string
	Start time.Time
	End   time.Time
	Delta int
	Days  [grid.DaysPerWeek]DayStats
	Cells []schedule.DisplayedCell
}

// Filled returns the number of non-empty blocks in the week.
func (s *WeekSummary) Filled() int {
	n := 0
	for _, d := range s.Days {
		n += d.Filled
	}
	return n
}

// Done returns the number of blocks marked done.
func (s *WeekSummary) Done() int {
	n := 0
	for _, d := range s.Days {
		n += d.Done
	}
	return n
}

// DonePercent returns the share of filled blocks that are done.
func (s *WeekSummary) DonePercent() int {
	if s.Filled() == 0 {
		return 0
	}
	return (s.Done() * 100) / s.Filled()
}

// BusiestDay returns the day index with the most filled blocks, or -1 for
// an empty week.
func (s *WeekSummary) BusiestDay() (day int, filled int) {
	day = -1
	for i, d := range s.Days {
		if d.Filled > filled {
			filled = d.Filled
			day = i
		}
	}
	return day, filled
}

// Ratio returns done:filled as text, e.g. "12/30".
func (s *WeekSummary) Ratio() string {
	return fmt.Sprintf("%d/%d", s.Done(), s.Filled())
}

// Summarize builds the summary of a view from its displayed blocks.
func Summarize(ctx context.Context, v *schedule.View) *WeekSummary {
	days := v.Days()
	s := &WeekSummary{
		Key:   v.Key,
		Zone:  v.ZoneName(),
		Start: days[0],
		End:   days[grid.DaysPerWeek-1],
		Delta: v.Delta,
		Cells: v.Cells(ctx),
	}
	for i := range s.Days {
		s.Days[i].Date = days[i]
	}
	for _, c := range s.Cells {
		// A done mark without text is not a block.
		if c.Cell.Text == "" {
			continue
		}
		s.Days[c.Day].Filled++
		if c.Cell.Done {
			s.Days[c.Day].Done++
		}
	}
	return s
}
