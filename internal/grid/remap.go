package grid

import "strconv"

// Slot identifies one block of the week by day index (0=Sunday) and time key.
type Slot struct {
	Day  int
	Time string
}

// DayKey returns the day index as used in persisted weeks ("0".."6").
func (s Slot) DayKey() string {
	return strconv.Itoa(s.Day)
}

// Valid reports whether the slot has an in-range day and a well-formed key.
func (s Slot) Valid() bool {
	if s.Day < 0 || s.Day >= DaysPerWeek {
		return false
	}
	_, err := ParseKey(s.Time)
	return err == nil
}

// Remap shifts a slot by delta minutes, carrying whole days across the
// week in either direction. Remap(Remap(s, d), -d) == s for any d.
func Remap(s Slot, delta int) Slot {
	if delta == 0 {
		return s
	}
	shifted := MustParseKey(s.Time).Minutes() + delta
	carry := floorDiv(shifted, MinutesPerDay)
	return Slot{
		Day:  floorMod(s.Day+carry, DaysPerWeek),
		Time: FromMinutes(floorMod(shifted, MinutesPerDay)).Key(),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
