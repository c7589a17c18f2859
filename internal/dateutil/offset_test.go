package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestOffsetMinutes(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		zone    string
		want    int
	}{
		{"manila summer", time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC), "Asia/Manila", 480},
		{"manila winter", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "Asia/Manila", 480},
		{"new york EDT", time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC), "America/New_York", -240},
		{"new york EST", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "America/New_York", -300},
		{"utc", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "UTC", 0},
		{"half hour zone", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "Asia/Kolkata", 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OffsetMinutes(tt.instant, tt.zone)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("OffsetMinutes(%v, %s) = %d, want %d", tt.instant, tt.zone, got, tt.want)
			}
		})
	}
}

func TestOffsetMinutes_DSTTransition(t *testing.T) {
	// US DST began 2024-03-10 at 02:00 local (07:00 UTC).
	before := time.Date(2024, 3, 10, 6, 59, 0, 0, time.UTC)
	after := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)

	got, err := OffsetMinutes(before, "America/New_York")
	if err != nil || got != -300 {
		t.Errorf("before transition = %d, %v; want -300", got, err)
	}
	got, err = OffsetMinutes(after, "America/New_York")
	if err != nil || got != -240 {
		t.Errorf("after transition = %d, %v; want -240", got, err)
	}
}

func TestOffsetMinutes_UnknownZone(t *testing.T) {
	for _, zone := range []string{"Mars/Olympus_Mons", "", "America/Nowhere"} {
		_, err := OffsetMinutes(time.Now(), zone)
		if !errors.Is(err, ErrUnknownTimezone) {
			t.Errorf("OffsetMinutes(%q) error = %v, want ErrUnknownTimezone", zone, err)
		}
	}
}

func TestOffsetDelta(t *testing.T) {
	ny := mustZone(t, "America/New_York")
	manila := mustZone(t, "Asia/Manila")

	summer := time.Date(2024, 7, 14, 0, 0, 0, 0, ny)
	winter := time.Date(2024, 1, 14, 0, 0, 0, 0, ny)

	if got := OffsetDelta(summer, ny, manila); got != -720 {
		t.Errorf("summer delta = %d, want -720", got)
	}
	if got := OffsetDelta(winter, ny, manila); got != -780 {
		t.Errorf("winter delta = %d, want -780", got)
	}
	if got := OffsetDelta(summer, manila, manila); got != 0 {
		t.Errorf("same zone delta = %d, want 0", got)
	}
	if got := OffsetDelta(summer, manila, ny); got != 720 {
		t.Errorf("reverse delta = %d, want 720", got)
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{480, "UTC+08:00"},
		{-240, "UTC-04:00"},
		{0, "UTC+00:00"},
		{330, "UTC+05:30"},
		{-570, "UTC-09:30"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.in); got != tt.want {
			t.Errorf("FormatOffset(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
