// Package dateutil provides date parsing, week addressing and timezone
// offset utilities.
package dateutil

import (
	"errors"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// DateLayout is the canonical calendar date format used for week keys.
const DateLayout = "2006-01-02"

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format or a relative phrase")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// TruncateToDay returns t with time set to midnight in t's location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateIn returns midnight of t's calendar date in loc.
// The year, month and day are kept as-is; only the zone changes.
func DateIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDate parses a date string in YYYY-MM-DD format as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDate formats t's calendar date without converting through UTC.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo's date
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow", "yesterday", "next-week", "last-week"
//   - Weekday names: "monday" through "sunday" (that day of the current week)
//   - Anything go-naturaldate understands, e.g. "next friday", "3 days ago"
//
// All inputs are case-insensitive. The result is midnight in relativeTo's location.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	case "last-week", "prev-week":
		return today.AddDate(0, 0, -7), nil
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return today.AddDate(0, 0, int(targetDay)-int(today.Weekday())), nil
	}

	if result, err := ParseDate(input, relativeTo.Location()); err == nil {
		return result, nil
	}

	result, err := naturaldate.Parse(input, relativeTo, naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return TruncateToDay(result.In(relativeTo.Location())), nil
}

// StartOfWeek returns 00:00 on the Sunday of the week containing t, as seen
// on loc's calendar. Two zones can disagree on the week near day boundaries.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	sunday := local.AddDate(0, 0, -int(local.Weekday()))
	return time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, loc)
}

// WeekKey returns the storage key of the week containing t in loc: the
// YYYY-MM-DD of its Sunday on loc's own calendar.
func WeekKey(t time.Time, loc *time.Location) string {
	return FormatDate(StartOfWeek(t, loc))
}
