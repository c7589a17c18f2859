package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/weekgrid/internal/schedule"
)

func pinTrueColor(t *testing.T) {
	t.Helper()
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m, _ := newTestModel(t)
	m.width, m.height = 0, 0
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestView_RendersWeek(t *testing.T) {
	pinTrueColor(t)
	m, _ := newTestModel(t)
	m.view.SetText(context.Background(), 3, "10:00", "Standup")

	out := ansi.Strip(m.View())
	for _, want := range []string{
		"weekgrid",
		"Jul 14 - Jul 20 2024",
		"America/New_York UTC-04:00",
		"-12h from Asia/Manila",
		"SUN 14",
		"WED 17",
		"10:00",
		"Standup",
		"Filled 1  Done 0/1",
		"enter edit",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	if len(lines) > 40 {
		t.Fatalf("view has %d lines, want at most 40", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 120 {
			t.Fatalf("line %d is %d columns wide", i, w)
		}
	}
}

func TestView_TodayHeaderHighlighted(t *testing.T) {
	pinTrueColor(t)
	m, _ := newTestModel(t)

	header := m.renderDayHeader()
	todayBg := termenv.TrueColor.Color(string(m.styles.palette.Today)).Sequence(true)
	idx := strings.Index(header, "WED 17")
	if idx == -1 {
		t.Fatalf("header missing today label: %q", header)
	}
	if !strings.Contains(header[:idx], todayBg) {
		t.Fatalf("expected background before today label: %q", header[:idx])
	}
	if strings.Contains(ansi.Strip(header), "*") {
		t.Fatalf("today markers leaked into header: %q", ansi.Strip(header))
	}
}

func TestView_DoneBlockShowsCheck(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	m.view.SetCell(ctx, 2, "09:00", schedule.Cell{Text: "Ship", Done: true})

	out := ansi.Strip(m.renderGrid(m.gridRows()))
	if !strings.Contains(out, "✓ Ship") {
		t.Fatalf("grid missing done block:\n%s", out)
	}
}

func TestView_EditFooterShowsStoredSlot(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "enter")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Edit WED 10:00 (stored WED 22:00)") {
		t.Fatalf("edit footer missing stored slot:\n%s", out)
	}
}

func TestView_PromptSuggestions(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "/")
	m = typeText(t, m, "te")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "/template save|reset") {
		t.Fatalf("prompt suggestions missing:\n%s", out)
	}
}

func TestView_NotesLine(t *testing.T) {
	m, p := newTestModel(t)
	p.SetNotes(context.Background(), "focus week\nsecond line")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Notes: focus week") {
		t.Fatalf("notes line missing:\n%s", out)
	}
	if strings.Contains(out, "second line") {
		t.Fatalf("only the first notes line should show:\n%s", out)
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "?")

	out := ansi.Strip(m.View())
	for _, want := range []string{"Keys", "Toggle done", "/goto DATE"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help overlay missing %q:\n%s", want, out)
		}
	}
}

func TestGridCells_AlternatesAdjacentBlocks(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	m.view.SetText(ctx, 1, "09:00", "Deep work")
	m.view.SetText(ctx, 1, "09:30", "Deep work")
	m.view.SetText(ctx, 1, "10:00", "Email")

	cells, shades := m.gridCells()
	if len(cells) != 3 {
		t.Fatalf("cells = %d, want 3", len(cells))
	}
	first := Position{Day: 1, Slot: 8}
	second := Position{Day: 1, Slot: 9}
	third := Position{Day: 1, Slot: 10}
	if shades[first] != shades[second] {
		t.Fatal("same block should share a shade")
	}
	if shades[second] == shades[third] {
		t.Fatal("adjacent different blocks should alternate")
	}
}

func TestView_NarrowTerminal(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = updated.(Model)

	if got := m.colWidth(); got != minColWidth {
		t.Fatalf("colWidth = %d, want %d", got, minColWidth)
	}
	if out := m.View(); out == "" {
		t.Fatal("expected output on narrow terminal")
	}
}
