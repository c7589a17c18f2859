package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/summary"
	"github.com/javiermolinar/weekgrid/internal/tui/input"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

const (
	timeColWidth   = 7 // "HH:MM  "
	headerLines    = 2 // title and day labels
	minColWidth    = 4
	maxSuggestions = 4
	progressWidth  = 12
)

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sum := summary.Summarize(m.ctx, m.view)
	footer := m.footerState(sum)
	footer.FooterH = view.FooterHeight(footer)

	content := strings.Join([]string{
		m.renderTitle(),
		m.renderDayHeader(),
		m.renderGrid(m.gridRows()),
		view.RenderFooter(footer),
	}, "\n")

	if m.mode == ModeHelp {
		content = view.Overlay(content, m.renderHelp(), m.width, m.height, m.styles.palette.Panel.Bg)
	}
	return content
}

// gridRows is the number of slot rows that fit between header and footer.
func (m *Model) gridRows() int {
	if m.height == 0 {
		return 0
	}
	rows := m.height - headerLines - view.FooterHeight(m.footerState(nil))
	return clamp(rows, 0, grid.SlotsPerDay())
}

// colWidth is the width of a day column, without the gap.
func (m *Model) colWidth() int {
	return max((m.width-timeColWidth)/grid.DaysPerWeek-1, minColWidth)
}

func (m Model) renderTitle() string {
	s := m.styles
	parts := []string{
		s.TitleStyle.Render(" weekgrid "),
		s.SubtitleStyle.Render(view.WeekRange(m.view.Start)),
		s.ZoneStyle.Render(fmt.Sprintf("%s %s", m.view.ZoneName(),
			dateutil.FormatOffset(dateutil.Offset(m.view.Start, m.zone())))),
	}
	if m.view.Delta != 0 {
		parts = append(parts, s.ZoneShiftStyle.Render(fmt.Sprintf("%s from %s",
			view.FormatDelta(m.view.Delta), m.planner.Reference())))
	}
	if len(m.zones) > 1 {
		parts = append(parts, s.SubtitleStyle.Render(fmt.Sprintf("[%d/%d]", m.zoneIdx+1, len(m.zones))))
	}
	gap := s.SubtitleStyle.Render("  ")
	return view.PadLines(strings.Join(parts, gap), m.width, 1, m.styles.palette.Bg)
}

func (m Model) renderDayHeader() string {
	s := m.styles
	width := m.colWidth()
	labels, todayCol := view.DayLabels(m.view.Days(), m.now())

	var b strings.Builder
	b.WriteString(s.TimeHeaderStyle.Render(view.FitCell(" TIME", timeColWidth)))
	for i, label := range labels {
		style := s.DayHeaderStyle
		if i == todayCol {
			style = s.DayHeaderTodayStyle
			label = strings.Trim(label, "*")
		}
		b.WriteString(style.Render(view.CenterLabel(label, width)))
		b.WriteString(s.TimeHeaderStyle.Render(" "))
	}
	return view.PadLines(b.String(), m.width, 1, m.styles.palette.Bg)
}

// renderGrid renders rows slot rows starting at the scroll offset.
func (m Model) renderGrid(rows int) string {
	if rows <= 0 {
		return ""
	}
	s := m.styles
	width := m.colWidth()
	keys := grid.Keys()
	cells, shades := m.gridCells()

	_, todayCol := view.DayLabels(m.view.Days(), m.now())
	nowSlot := -1
	if todayCol >= 0 {
		nowSlot = slotAt(m.now().In(m.zone()))
	}

	lines := make([]string, 0, rows)
	last := min(m.scroll+rows, len(keys))
	for slot := m.scroll; slot < last; slot++ {
		var b strings.Builder
		timeStyle := s.TimeColumnStyle
		if slot == nowSlot {
			timeStyle = s.TimeColumnNowStyle
		}
		b.WriteString(timeStyle.Render(view.FitCell(" "+keys[slot], timeColWidth)))

		for day := 0; day < grid.DaysPerWeek; day++ {
			pos := Position{Day: day, Slot: slot}
			c, ok := cells[pos]

			var text string
			var style lipgloss.Style
			switch {
			case ok:
				text = view.FitCell(cellLabel(c), width)
				style = s.blockStyle(c.Done, shades[pos])
			case day == todayCol:
				text = view.CenterLabel("·", width)
				style = s.EmptyTodayCellStyle
			default:
				text = view.CenterLabel("·", width)
				style = s.EmptyCellStyle
			}
			if pos == m.cursor {
				style = s.CursorStyle
				if m.mode == ModeEdit {
					style = s.CursorEditStyle
				}
			}
			b.WriteString(style.Render(text))
			b.WriteString(s.TimeColumnStyle.Render(" "))
		}
		lines = append(lines, b.String())
	}
	return view.PadLines(strings.Join(lines, "\n"), m.width, rows, m.styles.palette.Bg)
}

// gridCells returns the displayed blocks by position and whether each
// uses the alternate shade. Shades alternate between consecutive blocks
// of a day so adjacent entries stay distinguishable.
func (m Model) gridCells() (map[Position]schedule.Cell, map[Position]bool) {
	cells := make(map[Position]schedule.Cell)
	for _, c := range m.view.Cells(m.ctx) {
		for i, key := range grid.Keys() {
			if key == c.Time {
				cells[Position{Day: c.Day, Slot: i}] = c.Cell
				break
			}
		}
	}

	shades := make(map[Position]bool, len(cells))
	for day := 0; day < grid.DaysPerWeek; day++ {
		alt := true
		prev := ""
		for slot := 0; slot < grid.SlotsPerDay(); slot++ {
			pos := Position{Day: day, Slot: slot}
			c, ok := cells[pos]
			if !ok {
				prev = ""
				continue
			}
			if c.Text != prev || prev == "" {
				alt = !alt
			}
			prev = c.Text
			shades[pos] = alt
		}
	}
	return cells, shades
}

// cellLabel returns the text shown for a block.
func cellLabel(c schedule.Cell) string {
	if !c.Done {
		return c.Text
	}
	if c.Text == "" {
		return "✓"
	}
	return "✓ " + c.Text
}

// footerState builds the footer lines. A nil summary leaves the stats
// line empty, which is enough to measure the footer.
func (m Model) footerState(sum *summary.WeekSummary) view.FooterViewState {
	s := m.styles
	state := view.FooterViewState{
		InnerW:   m.width,
		HelpLine: m.helpLine(),
		Bg:       s.palette.Bg,
	}

	if sum != nil {
		autoSeed := "off"
		if m.planner.AutoSeed() {
			autoSeed = "on"
		}
		state.StatsLine = fmt.Sprintf("%s  %s %s  %s",
			s.StatsStyle.Render(fmt.Sprintf(" Filled %d  Done %s", sum.Filled(), sum.Ratio())),
			s.ProgressStyle.Render(view.ProgressBar(sum.Done(), sum.Filled(), progressWidth)),
			s.StatsStyle.Render(fmt.Sprintf("%d%%", sum.DonePercent())),
			s.HelpStyle.Render("auto-seed "+autoSeed))
	}

	if notes := m.planner.Notes(); notes != "" && m.mode != ModeNotes {
		first, _, _ := strings.Cut(notes, "\n")
		state.NotesLine = s.NotesStyle.Render(view.FitCell(" Notes: "+first, max(m.width, 1)))
	}

	switch m.mode {
	case ModeEdit:
		label := fmt.Sprintf(" Edit %s %s", grid.DayName(m.cursor.Day), m.cursor.Key())
		if m.view.Delta != 0 {
			stored := m.view.StorageSlot(m.cursor.Day, m.cursor.Key())
			label += fmt.Sprintf(" (stored %s %s)", grid.DayName(stored.Day), stored.Time)
		}
		state.PromptLine = []string{s.PromptStyle.Render(label) + " " + m.input.View()}
	case ModeNotes:
		state.PromptLine = []string{s.PromptStyle.Render(" Notes") + " " + m.input.View()}
	case ModePrompt:
		suggestions := view.SuggestionLines(m.input.Value(), max(m.width, 1), input.Commands)
		state.PromptLine = append([]string{" " + m.input.View()},
			view.ClampLines(suggestions, maxSuggestions, m.width)...)
		for i := 1; i < len(state.PromptLine); i++ {
			state.PromptLine[i] = s.HelpStyle.Render(state.PromptLine[i])
		}
	}

	switch {
	case m.status == "":
	case m.isError:
		state.StatusLine = s.ErrorStyle.Render(" " + m.status)
	default:
		state.StatusLine = s.StatusStyle.Render(" " + m.status)
	}
	return state
}

func (m Model) helpLine() string {
	var pairs [][2]string
	switch m.mode {
	case ModeEdit, ModeNotes:
		pairs = [][2]string{{"enter", "save"}, {"esc", "cancel"}}
	case ModePrompt:
		pairs = [][2]string{{"enter", "run"}, {"tab", "complete"}, {"esc", "cancel"}}
	default:
		pairs = [][2]string{
			{"enter", "edit"}, {"space", "done"}, {"tab", "zone"}, {"[ ]", "week"},
			{"t", "today"}, {"/", "command"}, {"?", "help"}, {"q", "quit"},
		}
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, m.styles.HelpKeyStyle.Render(p[0])+m.styles.HelpStyle.Render(" "+p[1]))
	}
	return m.styles.HelpStyle.Render(" ") + strings.Join(parts, m.styles.HelpStyle.Render("  "))
}

// keyReference lists every key binding shown in the help overlay.
var keyReference = [][2]string{
	{"h j k l / arrows", "Move the cursor"},
	{"g / G", "First or last slot"},
	{"enter / e", "Edit the selected block"},
	{"space", "Toggle done"},
	{"x / delete", "Clear the selected block"},
	{"tab / shift+tab", "Cycle display timezone"},
	{"[ / ]", "Previous or next week"},
	{"t", "Jump to today"},
	{"S", "Save week as template"},
	{"R", "Reset week to template"},
	{"a", "Toggle auto-seed"},
	{"n", "Edit notes"},
	{"y", "Copy week to clipboard"},
	{"/", "Command prompt"},
	{"q", "Quit"},
}

func (m Model) renderHelp() string {
	s := m.styles
	lines := []string{s.PanelTitleStyle.Render("Keys"), ""}
	for _, k := range keyReference {
		lines = append(lines, s.PanelTitleStyle.Render(view.FitCell(k[0], 18))+s.PanelTextStyle.Render(k[1]))
	}
	lines = append(lines, "", s.PanelMutedStyle.Render("Commands"))
	for _, cmd := range input.Commands {
		lines = append(lines, s.PanelTextStyle.Render(view.FitCell(cmd.Name+" "+cmd.Usage, 18))+s.PanelMutedStyle.Render(cmd.Description))
	}
	return s.PanelStyle.Render(strings.Join(lines, "\n"))
}
