package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Zone rules are bundled so lookups do not depend on the host's zoneinfo.
	_ "time/tzdata"
)

// ErrUnknownTimezone is returned for zone identifiers that cannot be resolved.
var ErrUnknownTimezone = errors.New("unknown timezone")

// LoadZone resolves an IANA zone name ("America/New_York", "UTC", "Local").
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownTimezone, name, err)
	}
	return loc, nil
}

// Offset returns loc's offset from UTC in minutes at instant, east-positive.
func Offset(instant time.Time, loc *time.Location) int {
	_, seconds := instant.In(loc).Zone()
	return seconds / 60
}

// OffsetMinutes returns the named zone's offset from UTC in minutes at
// instant, east-positive. The offset is evaluated per instant so daylight
// saving rules apply.
func OffsetMinutes(instant time.Time, zone string) (int, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return 0, err
	}
	return Offset(instant, loc), nil
}

// OffsetDelta returns display's offset minus reference's offset at instant.
// A negative delta means the display zone is behind the reference zone.
func OffsetDelta(instant time.Time, display, reference *time.Location) int {
	return Offset(instant, display) - Offset(instant, reference)
}

// FormatOffset renders minutes east of UTC as "UTC+08:00".
func FormatOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, minutes/60, minutes%60)
}
