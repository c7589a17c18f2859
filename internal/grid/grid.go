// Package grid defines the fixed half-hour slot catalog of the weekly grid
// and the translation of slots across timezone offsets.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Grid dimensions.
const (
	DaysPerWeek   = 7
	MinutesPerDay = 24 * 60
	SlotMinutes   = 30

	FirstHour = 5  // first displayed block starts at 05:00
	LastHour  = 23 // last displayed block starts at 23:30
)

// Parsing errors.
var (
	ErrInvalidTimeKey = errors.New("time must be in HH:MM format")
	ErrInvalidDay     = errors.New("day must be 0-6 or a weekday name")
)

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Key returns the zero-padded "HH:MM" form used as storage key.
func (t TimeOfDay) Key() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// FromMinutes converts minutes since midnight into a TimeOfDay.
// m must be in [0, MinutesPerDay).
func FromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// ParseKey decodes an "HH:MM" key.
func ParseKey(key string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(key, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w, got %q", ErrInvalidTimeKey, key)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("%w, got %q", ErrInvalidTimeKey, key)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("%w, got %q", ErrInvalidTimeKey, key)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// MustParseKey is like ParseKey but panics on malformed input.
// Keys handled internally always come from the catalog.
func MustParseKey(key string) TimeOfDay {
	t, err := ParseKey(key)
	if err != nil {
		panic(err)
	}
	return t
}

// catalog is built once and never mutated.
var catalog = buildCatalog()

func buildCatalog() []TimeOfDay {
	times := make([]TimeOfDay, 0, (LastHour-FirstHour+1)*2)
	for h := FirstHour; h <= LastHour; h++ {
		times = append(times, TimeOfDay{Hour: h, Minute: 0}, TimeOfDay{Hour: h, Minute: SlotMinutes})
	}
	return times
}

// Times returns the displayed slots of a day in order (05:00 through 23:30).
func Times() []TimeOfDay {
	out := make([]TimeOfDay, len(catalog))
	copy(out, catalog)
	return out
}

// Keys returns the displayed slot keys of a day in order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, t := range catalog {
		keys[i] = t.Key()
	}
	return keys
}

// SlotsPerDay is the number of displayed blocks in a day.
func SlotsPerDay() int {
	return len(catalog)
}

// IsDisplayed reports whether key is one of the catalog slots.
func IsDisplayed(key string) bool {
	t, err := ParseKey(key)
	if err != nil || t.Minute%SlotMinutes != 0 {
		return false
	}
	return t.Hour >= FirstHour && t.Hour <= LastHour
}

// TimesBetween returns the half-hour keys from start up to, but not
// including, endExcl.
func TimesBetween(start, endExcl string) ([]string, error) {
	s, err := ParseKey(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseKey(endExcl)
	if err != nil {
		return nil, err
	}
	var keys []string
	for m := s.Minutes(); m < e.Minutes(); m += SlotMinutes {
		keys = append(keys, FromMinutes(m).Key())
	}
	return keys, nil
}

var dayNames = [DaysPerWeek]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

var dayLookup = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// DayName returns the short upper-case name of a day index (0=Sunday).
func DayName(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return ""
	}
	return dayNames[day]
}

// ParseDay accepts a day index "0"-"6" or a weekday name.
func ParseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := dayLookup[s]; ok {
		return d, nil
	}
	d, err := strconv.Atoi(s)
	if err != nil || d < 0 || d >= DaysPerWeek {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidDay, s)
	}
	return d, nil
}
