package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// DefaultWindowDays bounds navigation to this many days around the current week.
const DefaultWindowDays = 14

// ErrOutsideWindow is returned for dates outside the navigation window.
var ErrOutsideWindow = errors.New("date is outside the navigation window")

// Window bounds selectable dates to Days days before the start and after
// the end of the week containing Today.
type Window struct {
	Today time.Time
	Days  int
}

// NewWindow creates a window around today. A non-positive days uses
// DefaultWindowDays.
func NewWindow(today time.Time, days int) Window {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return Window{Today: dateutil.TruncateToDay(today), Days: days}
}

// Bounds returns the first and last selectable dates.
func (w Window) Bounds() (first, last time.Time) {
	start := dateutil.StartOfWeek(w.Today, w.Today.Location())
	first = start.AddDate(0, 0, -w.Days)
	last = start.AddDate(0, 0, 6+w.Days)
	return first, last
}

// Contains reports whether date's calendar day is inside the window.
func (w Window) Contains(date time.Time) bool {
	d := dateutil.DateIn(date, w.Today.Location())
	first, last := w.Bounds()
	return !d.Before(first) && !d.After(last)
}

// Check returns ErrOutsideWindow when date is not selectable.
func (w Window) Check(date time.Time) error {
	if w.Contains(date) {
		return nil
	}
	first, last := w.Bounds()
	return fmt.Errorf("%w: %s not in %s..%s", ErrOutsideWindow,
		dateutil.FormatDate(date), dateutil.FormatDate(first), dateutil.FormatDate(last))
}

// Clamp moves date to the nearest selectable day.
func (w Window) Clamp(date time.Time) time.Time {
	d := dateutil.DateIn(date, w.Today.Location())
	first, last := w.Bounds()
	switch {
	case d.Before(first):
		return first
	case d.After(last):
		return last
	}
	return d
}

// CanShift reports whether moving date by weeks stays inside the window.
func (w Window) CanShift(date time.Time, weeks int) bool {
	return w.Contains(date.AddDate(0, 0, 7*weeks))
}

// Shift moves date by weeks when the result stays in the window. It
// returns the original date and false otherwise.
func (w Window) Shift(date time.Time, weeks int) (time.Time, bool) {
	if !w.CanShift(date, weeks) {
		return date, false
	}
	return date.AddDate(0, 0, 7*weeks), true
}
