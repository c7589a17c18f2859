package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/summary"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
	"github.com/javiermolinar/weekgrid/internal/tui/input"
)

// handleKeyMsg dispatches a key press to the handler of the current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeEdit, ModeNotes, ModePrompt:
		return m.handleInputKeys(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "g", "home":
		m.moveCursor(0, -grid.SlotsPerDay())
	case "G", "end":
		m.moveCursor(0, grid.SlotsPerDay())

	case "[":
		return m, m.shiftWeek(-1)
	case "]":
		return m, m.shiftWeek(1)
	case "t":
		m.goToToday()
		return m, m.setStatus("Today")
	case "tab":
		return m, m.cycleZone(1)
	case "shift+tab":
		return m, m.cycleZone(-1)

	case "enter", "e":
		m.startInput(ModeEdit, m.selectedCell().Text, "Block text")
		return m, textinput.Blink
	case " ":
		done := m.view.ToggleDone(m.ctx, m.cursor.Day, m.cursor.Key())
		if done {
			return m, m.setStatus(fmt.Sprintf("%s %s done", grid.DayName(m.cursor.Day), m.cursor.Key()))
		}
		return m, m.setStatus(fmt.Sprintf("%s %s not done", grid.DayName(m.cursor.Day), m.cursor.Key()))
	case "x", "delete", "backspace":
		m.view.Clear(m.ctx, m.cursor.Day, m.cursor.Key())
		return m, m.setStatus(fmt.Sprintf("Cleared %s %s", grid.DayName(m.cursor.Day), m.cursor.Key()))

	case "S":
		m.view.SaveAsTemplate(m.ctx)
		return m, m.setStatus("Saved week as template")
	case "R":
		m.view.ResetToTemplate(m.ctx)
		return m, m.setStatus("Reset week to template")
	case "a":
		on := !m.planner.AutoSeed()
		m.planner.SetAutoSeed(m.ctx, on)
		return m, m.setStatus("Auto-seed " + onOff(on))
	case "n":
		m.startInput(ModeNotes, m.planner.Notes(), "Notes")
		return m, textinput.Blink

	case "y":
		sum := summary.Summarize(m.ctx, m.view)
		return m, commands.CopyWeek(weekText(sum), sum.Filled())
	case "/":
		m.startInput(ModePrompt, "/", "/command")
		return m, textinput.Blink
	case "?":
		m.mode = ModeHelp
	}

	return m, nil
}

// handleInputKeys feeds keys to the text input and commits or cancels it.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopInput()
		return m, nil
	case "enter":
		value := m.input.Value()
		mode := m.mode
		m.stopInput()
		return m, m.commitInput(mode, value)
	case "tab":
		if m.mode == ModePrompt {
			if value, ok := input.PromptAutocomplete(m.input.Value(), input.Commands); ok {
				m.input.SetValue(value)
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ensureCursorVisible()
	return m, cmd
}

func (m *Model) startInput(mode Mode, value, placeholder string) {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.ensureCursorVisible()
}

func (m *Model) stopInput() {
	m.mode = ModeNormal
	m.input.Blur()
	m.input.Reset()
	m.ensureCursorVisible()
}

// commitInput applies the text entered in mode.
func (m *Model) commitInput(mode Mode, value string) tea.Cmd {
	switch mode {
	case ModeEdit:
		m.view.SetText(m.ctx, m.cursor.Day, m.cursor.Key(), value)
		if strings.TrimSpace(value) == "" {
			return m.setStatus(fmt.Sprintf("Cleared %s %s", grid.DayName(m.cursor.Day), m.cursor.Key()))
		}
		return m.setStatus(fmt.Sprintf("Saved %s %s", grid.DayName(m.cursor.Day), m.cursor.Key()))
	case ModeNotes:
		m.planner.SetNotes(m.ctx, value)
		return m.setStatus("Notes saved")
	case ModePrompt:
		return m.runPrompt(value)
	}
	return nil
}

// runPrompt executes a slash command.
func (m *Model) runPrompt(line string) tea.Cmd {
	name, args := input.ParsePrompt(line)
	switch name {
	case "":
		if args == "" {
			return nil
		}
		return m.setError(errors.New("commands start with /, try /goto"))
	case "/goto":
		return m.goTo(args)
	case "/tz":
		if args == "" {
			return m.setError(errors.New("/tz needs a timezone name"))
		}
		return m.setZone(args)
	case "/template":
		switch strings.ToLower(args) {
		case "save":
			m.view.SaveAsTemplate(m.ctx)
			return m.setStatus("Saved week as template")
		case "reset":
			m.view.ResetToTemplate(m.ctx)
			return m.setStatus("Reset week to template")
		}
		return m.setError(errors.New("/template takes save or reset"))
	case "/autoseed":
		switch strings.ToLower(args) {
		case "on", "off":
			on := strings.EqualFold(args, "on")
			m.planner.SetAutoSeed(m.ctx, on)
			return m.setStatus("Auto-seed " + onOff(on))
		}
		return m.setError(errors.New("/autoseed takes on or off"))
	case "/notes":
		m.planner.SetNotes(m.ctx, args)
		return m.setStatus("Notes saved")
	case "/export":
		path := args
		if path == "" {
			path = fmt.Sprintf("weekgrid-%s.ics", m.view.Key)
		}
		return commands.ExportWeek(m.ctx, m.view, path, m.now())
	case "/clear":
		m.view.Clear(m.ctx, m.cursor.Day, m.cursor.Key())
		return m.setStatus(fmt.Sprintf("Cleared %s %s", grid.DayName(m.cursor.Day), m.cursor.Key()))
	}
	return m.setError(fmt.Errorf("unknown command %s", name))
}

// weekText renders the week as plain text for the clipboard.
func weekText(s *summary.WeekSummary) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "Week of %s (%s)\n", s.Start.Format("Mon Jan 2 2006"), s.Zone)
	for _, c := range s.Cells {
		if c.Cell.Text == "" {
			continue
		}
		mark := "[ ]"
		if c.Cell.Done {
			mark = "[x]"
		}
		_, _ = fmt.Fprintf(&b, "%s %s %s  %s %s\n", grid.DayName(c.Day), s.Days[c.Day].Date.Format("01/02"), c.Time, mark, c.Cell.Text)
	}
	return b.String()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
