package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/summary"
)

func TestCalcCellWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 40, want: minCellWidth},
		{width: 80, want: 9},
		{width: 120, want: 15},
		{width: 400, want: maxCellWidth},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalcCellWidth(tt.width), "width %d", tt.width)
	}
}

func TestFitCell(t *testing.T) {
	assert.Equal(t, "Gym   ", FitCell("Gym", 6))
	assert.Equal(t, "Deep …", FitCell("Deep work", 6))
	assert.Equal(t, "✓ Run ", FitCell("✓ Run", 6))
}

func TestCellLabel(t *testing.T) {
	assert.Equal(t, "Run", CellLabel(schedule.Cell{Text: "Run"}))
	assert.Equal(t, "✓ Run", CellLabel(schedule.Cell{Text: "Run", Done: true}))
	assert.Equal(t, "✓", CellLabel(schedule.Cell{Done: true}))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░] (0% done)", ProgressBar(0, 0, 4))
	assert.Equal(t, "[██░░] (50% done)", ProgressBar(1, 2, 4))
	assert.Equal(t, "[████] (100% done)", ProgressBar(3, 3, 4))
	assert.Equal(t, "[████] (100% done)", ProgressBar(2, 1, 4))
	assert.Equal(t, "[░░░░] (0% done)", ProgressBar(-1, 2, 4))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "5h30m", FormatDuration(330))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "0m", FormatDelta(0))
	assert.Equal(t, "+1h", FormatDelta(60))
	assert.Equal(t, "-12h", FormatDelta(-720))
}

func weekSummary(t *testing.T, fill func(ctx context.Context, v *schedule.View)) *summary.WeekSummary {
	t.Helper()
	ctx := context.Background()
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}
	p := schedule.Load(ctx, schedule.NewMemoryStore(), loc)
	v := p.View(ctx, time.Date(2024, 7, 17, 0, 0, 0, 0, loc), loc)
	if fill != nil {
		fill(ctx, v)
	}
	return summary.Summarize(ctx, v)
}

func TestPrintWeekGrid(t *testing.T) {
	s := weekSummary(t, func(ctx context.Context, v *schedule.View) {
		v.SetText(ctx, 1, "09:00", "Standup")
		v.SetCell(ctx, 3, "09:00", schedule.Cell{Text: "Review", Done: true})
	})

	var buf bytes.Buffer
	PrintWeekGrid(&buf, s, GridOpts{CellWidth: 9})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "  TIME  SUN 07/14 MON 07/15 TUE 07/16 WED 07/17 THU 07/18 FRI 07/19 SAT 07/20", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  ─"))
	assert.Equal(t, "  09:00  ·         Standup   ·         ✓ Review  ·         ·         ·", lines[2])
}

func TestPrintWeekGrid_AllAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintWeekGrid(&buf, weekSummary(t, nil), GridOpts{CellWidth: 8})
	assert.Contains(t, buf.String(), "No blocks scheduled for this week.")

	buf.Reset()
	PrintWeekGrid(&buf, weekSummary(t, nil), GridOpts{CellWidth: 8, All: true})
	assert.Equal(t, 2+38, strings.Count(buf.String(), "\n"))
}

func TestPrintBlockList(t *testing.T) {
	s := weekSummary(t, func(ctx context.Context, v *schedule.View) {
		v.SetText(ctx, 0, "07:00", "Church")
		v.SetCell(ctx, 2, "18:30", schedule.Cell{Text: "Climb", Done: true})
	})

	var buf bytes.Buffer
	PrintBlockList(&buf, s)
	assert.Equal(t, "  Sun Jul 14\n    ○  07:00  Church\n\n  Tue Jul 16\n    ✓  18:30  Climb\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	s := weekSummary(t, func(ctx context.Context, v *schedule.View) {
		v.SetText(ctx, 2, "07:00", "a")
		v.SetCell(ctx, 2, "07:30", schedule.Cell{Text: "b", Done: true})
		v.SetText(ctx, 4, "07:00", "c")
	})

	var buf bytes.Buffer
	PrintSummary(&buf, s)
	out := buf.String()
	assert.Contains(t, out, "Filled: 3  |  Done: 1/3  |  Busiest: TUE (2)")
	assert.Contains(t, out, "(33% done)")
	assert.NotContains(t, out, "Shown in")
}

func TestPrintSummary_DoneWithoutText(t *testing.T) {
	s := weekSummary(t, func(ctx context.Context, v *schedule.View) {
		v.SetCell(ctx, 2, "07:00", schedule.Cell{Text: "a", Done: true})
		v.ToggleDone(ctx, 2, "10:00")
	})

	var buf bytes.Buffer
	assert.NotPanics(t, func() { PrintSummary(&buf, s) })
	out := buf.String()
	assert.Contains(t, out, "Filled: 1  |  Done: 1/1")
	assert.Contains(t, out, "(100% done)")
}
