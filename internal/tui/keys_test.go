package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/summary"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
)

func TestEdit_StoresUnderReferenceSlot(t *testing.T) {
	m, p := newTestModel(t)

	m = press(t, m, "enter")
	if m.mode != ModeEdit {
		t.Fatalf("mode = %v, want ModeEdit", m.mode)
	}
	m = typeText(t, m, "Standup")
	m = press(t, m, "enter")
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, want ModeNormal", m.mode)
	}

	// Wednesday 10:00 in New York is Wednesday 22:00 in Manila.
	c, ok := p.CellAt(context.Background(), m.view.Key, grid.Slot{Day: 3, Time: "22:00"})
	if !ok || c.Text != "Standup" {
		t.Fatalf("stored cell = %+v (ok=%v), want Standup", c, ok)
	}
	if got := m.selectedCell().Text; got != "Standup" {
		t.Fatalf("selected cell = %q, want Standup", got)
	}
}

func TestEdit_PrefillsAndCancels(t *testing.T) {
	m, _ := newTestModel(t)
	m.view.SetText(context.Background(), m.cursor.Day, m.cursor.Key(), "Gym")

	m = press(t, m, "e")
	if got := m.input.Value(); got != "Gym" {
		t.Fatalf("input = %q, want Gym", got)
	}
	m = typeText(t, m, " class")
	m = press(t, m, "esc")

	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, want ModeNormal", m.mode)
	}
	if got := m.selectedCell().Text; got != "Gym" {
		t.Fatalf("cell = %q, want Gym after cancel", got)
	}
}

func TestToggleDone_AndClear(t *testing.T) {
	m, _ := newTestModel(t)
	m.view.SetText(context.Background(), m.cursor.Day, m.cursor.Key(), "Review")

	m = press(t, m, " ")
	if !m.selectedCell().Done {
		t.Fatal("expected block done")
	}
	if !strings.HasSuffix(m.status, "done") {
		t.Fatalf("status = %q", m.status)
	}

	m = press(t, m, " ")
	if m.selectedCell().Done {
		t.Fatal("expected block not done")
	}

	m = press(t, m, "x")
	if got := m.selectedCell(); !got.IsEmpty() {
		t.Fatalf("cell = %+v, want empty", got)
	}
}

func TestToggleDone_IsSymmetricAcrossZones(t *testing.T) {
	m, _ := newTestModel(t)
	m.view.SetText(context.Background(), m.cursor.Day, m.cursor.Key(), "Call")

	m = press(t, m, " ", "tab")
	// In Manila the block sits at Wednesday 22:00.
	c, _ := m.view.Cell(context.Background(), 3, "22:00")
	if !c.Done || c.Text != "Call" {
		t.Fatalf("manila cell = %+v, want done Call", c)
	}
}

func TestTemplateKeys(t *testing.T) {
	m, p := newTestModel(t)
	ctx := context.Background()
	m.view.SetText(ctx, 1, "09:00", "Planning")

	m = press(t, m, "S")
	if p.Template().Len() != 1 {
		t.Fatalf("template blocks = %d, want 1", p.Template().Len())
	}

	m.view.SetText(ctx, 1, "09:00", "Changed")
	m = press(t, m, "R")
	c, _ := m.view.Cell(ctx, 1, "09:00")
	if c.Text != "Planning" {
		t.Fatalf("cell after reset = %q, want Planning", c.Text)
	}
}

func TestAutoSeedToggle(t *testing.T) {
	m, p := newTestModel(t)
	before := p.AutoSeed()

	m = press(t, m, "a")
	if p.AutoSeed() == before {
		t.Fatal("auto-seed not toggled")
	}
	if !strings.HasPrefix(m.status, "Auto-seed") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestNotesEditor(t *testing.T) {
	m, p := newTestModel(t)

	m = press(t, m, "n")
	if m.mode != ModeNotes {
		t.Fatalf("mode = %v, want ModeNotes", m.mode)
	}
	m = typeText(t, m, "ship it")
	m = press(t, m, "enter")

	if got := p.Notes(); got != "ship it" {
		t.Fatalf("notes = %q, want %q", got, "ship it")
	}
}

func TestPrompt_Commands(t *testing.T) {
	m, p := newTestModel(t)

	m = press(t, m, "/")
	if m.mode != ModePrompt || m.input.Value() != "/" {
		t.Fatalf("mode/input = %v/%q", m.mode, m.input.Value())
	}
	m = typeText(t, m, "au")
	m = press(t, m, "tab")
	if got := m.input.Value(); got != "/autoseed " {
		t.Fatalf("autocomplete = %q, want %q", got, "/autoseed ")
	}
	m = typeText(t, m, "off")
	m = press(t, m, "enter")
	if p.AutoSeed() {
		t.Fatal("expected auto-seed off")
	}

	m = press(t, m, "/")
	m = typeText(t, m, "tz Asia/Manila")
	m = press(t, m, "enter")
	if got := m.zone().String(); got != "Asia/Manila" {
		t.Fatalf("zone = %s, want Asia/Manila", got)
	}

	m = press(t, m, "/")
	m = typeText(t, m, "bogus")
	m = press(t, m, "enter")
	if !m.isError || !strings.Contains(m.status, "unknown command") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestPrompt_Export(t *testing.T) {
	m, _ := newTestModel(t)
	m.view.SetText(context.Background(), m.cursor.Day, m.cursor.Key(), "Standup")
	path := filepath.Join(t.TempDir(), "week.ics")

	cmd := m.runPrompt("/export " + path)
	if cmd == nil {
		t.Fatal("expected export command")
	}
	msg := cmd()
	if _, ok := msg.(commands.WeekExportedMsg); !ok {
		t.Fatalf("msg = %T, want WeekExportedMsg", msg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export not written: %v", err)
	}

	updated, _ := m.Update(msg)
	m = updated.(Model)
	if !strings.Contains(m.status, "Exported 1 blocks") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestCopyWeekKey(t *testing.T) {
	m, _ := newTestModel(t)
	m.view.SetText(context.Background(), 0, "08:00", "Brunch")

	_, cmd := m.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}

	text := weekText(summary.Summarize(context.Background(), m.view))
	if !strings.Contains(text, "SUN 07/14 08:00  [ ] Brunch") {
		t.Fatalf("week text = %q", text)
	}
}

func TestWeekText_SkipsDoneWithoutText(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	m.view.SetText(ctx, 1, "09:00", "Plan")
	m.view.ToggleDone(ctx, 1, "09:00")
	m.view.ToggleDone(ctx, 2, "09:00")

	text := weekText(summary.Summarize(ctx, m.view))
	if got := strings.Count(text, "[x]"); got != 1 {
		t.Fatalf("done lines = %d, want 1:\n%s", got, text)
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "?")
	if m.mode != ModeHelp {
		t.Fatalf("mode = %v, want ModeHelp", m.mode)
	}
	m = press(t, m, "j")
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, want ModeNormal", m.mode)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected QuitMsg", k)
		}
	}

	// q is text while editing.
	m = press(t, m, "enter", "q")
	if m.mode != ModeEdit || m.input.Value() != "q" {
		t.Fatalf("mode/input = %v/%q", m.mode, m.input.Value())
	}
}

func TestStatusMessages(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(commands.StatusMsgCmd{Msg: "hello"})
	m = updated.(Model)
	if m.status != "hello" || cmd == nil {
		t.Fatalf("status = %q, cmd nil = %v", m.status, cmd == nil)
	}

	updated, _ = m.Update(commands.ClearStatusMsg{})
	m = updated.(Model)
	if m.status != "" {
		t.Fatalf("status = %q, want empty", m.status)
	}

	updated, _ = m.Update(commands.WeekCopiedMsg{Blocks: 3})
	m = updated.(Model)
	if m.status != "Copied 3 blocks to clipboard" {
		t.Fatalf("status = %q", m.status)
	}
}
