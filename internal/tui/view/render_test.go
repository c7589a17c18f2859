package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFitCell(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "pad", in: "Gym", width: 6, want: "Gym   "},
		{name: "exact", in: "Lunch", width: 5, want: "Lunch"},
		{name: "truncate", in: "Deep work session", width: 6, want: "Deep …"},
		{name: "zero_width", in: "x", width: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitCell(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, ansi.StringWidth(got))
		})
	}
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "0m", FormatDelta(0))
	assert.Equal(t, "-12h", FormatDelta(-720))
	assert.Equal(t, "+5h 30m", FormatDelta(330))
	assert.Equal(t, "+45m", FormatDelta(45))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", ProgressBar(0, 0, 4))
	assert.Equal(t, "██░░", ProgressBar(1, 2, 4))
	assert.Equal(t, "████", ProgressBar(3, 3, 4))
	assert.Equal(t, "", ProgressBar(1, 1, 0))
}

func TestDayLabels(t *testing.T) {
	start := time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)
	var days [7]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}

	labels, today := DayLabels(days, time.Date(2024, 7, 16, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, 2, today)
	assert.Equal(t, "SUN 14", labels[0])
	assert.Equal(t, "*TUE 16*", labels[2])

	_, today = DayLabels(days, time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, -1, today)
}

func TestWeekRange(t *testing.T) {
	start := time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Dec 29 - Jan 4 2025", WeekRange(start))
}

func TestCenterLabel(t *testing.T) {
	assert.Equal(t, "  SUN  ", CenterLabel("SUN", 7))
	assert.Equal(t, "SUN 1…", CenterLabel("SUN 14 JUL", 6))
	assert.Equal(t, 10, len(CenterLabel("x", 10)))
	assert.False(t, strings.HasSuffix(CenterLabel("abc", 3), " "))
}
