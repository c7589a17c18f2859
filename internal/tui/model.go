package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/grid"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit        // Editing the text of the selected block
	ModeNotes       // Editing the notes
	ModePrompt      // Typing a slash command
	ModeHelp        // Key reference overlay
)

// Position is a cursor location in the displayed grid.
type Position struct {
	Day  int // 0 = Sunday
	Slot int // index into grid.Keys()
}

// Key returns the displayed time key under the cursor.
func (p Position) Key() string {
	return grid.Keys()[p.Slot]
}

// Model is the main TUI model.
type Model struct {
	ctx     context.Context
	planner *schedule.Planner
	config  *config.Config
	styles  *Styles

	zones   []*time.Location
	zoneIdx int
	date    time.Time // a day in the displayed week, in the display zone
	view    *schedule.View

	cursor Position
	scroll int // first visible slot row

	mode  Mode
	input textinput.Model

	status  string
	isError bool

	width   int
	height  int
	nowFunc func() time.Time
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithNow sets the clock used for today and the navigation window.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.nowFunc = now
		}
	}
}

// WithStatus shows msg in the status line on startup.
func WithStatus(msg string) ModelOption {
	return func(m *Model) {
		m.status = msg
	}
}

// WithContext sets the context used for storage calls.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New creates a new TUI model showing the current week in the configured
// default display timezone.
func New(planner *schedule.Planner, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.CharLimit = 256

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		log.WithError(err).Warn("loading theme, falling back to mocha")
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)
	ti.PromptStyle = styles.PromptStyle
	ti.TextStyle = styles.StatsStyle
	ti.PlaceholderStyle = styles.HelpStyle

	zones, err := cfg.DisplayLocations()
	if err != nil || len(zones) == 0 {
		log.WithError(err).Warn("loading display timezones, using the reference timezone")
		zones = []*time.Location{planner.Reference()}
	}
	zoneIdx := cfg.DefaultDisplayIndex()
	if zoneIdx >= len(zones) {
		zoneIdx = 0
	}

	m := &Model{
		ctx:     context.Background(),
		planner: planner,
		config:  cfg,
		styles:  styles,
		zones:   zones,
		zoneIdx: zoneIdx,
		mode:    ModeNormal,
		input:   ti,
		nowFunc: time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.goToToday()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.status != "" {
		return commands.ClearStatusAfter(commands.StatusTimeout)
	}
	return nil
}

// Run starts the TUI on planner. A default config file is written on the
// first run.
func Run(planner *schedule.Planner, cfg *config.Config) error {
	var opts []ModelOption

	state, err := DetectInitState()
	if err != nil {
		return err
	}
	if state.ConfigMissing {
		if err := cfg.SaveTo(state.ConfigPath); err != nil {
			log.WithError(err).Warn("writing default config")
		} else {
			opts = append(opts, WithStatus(fmt.Sprintf("Created config at %s", state.ConfigPath)))
		}
	}

	model := New(planner, cfg, opts...)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *Model) now() time.Time {
	return m.nowFunc()
}

// zone returns the display location.
func (m *Model) zone() *time.Location {
	return m.zones[m.zoneIdx]
}

// window returns the navigation window around today in the display zone.
func (m *Model) window() schedule.Window {
	return schedule.NewWindow(m.now().In(m.zone()), m.config.Calendar.WindowDays)
}

// reload rebuilds the view for the selected date and display zone.
func (m *Model) reload() {
	m.view = m.planner.View(m.ctx, m.date, m.zone())
	log.WithFields(log.Fields{
		"week":  m.view.Key,
		"zone":  m.view.ZoneName(),
		"delta": m.view.Delta,
	}).Debug("view loaded")
}

// goToToday selects today and puts the cursor on the current time.
func (m *Model) goToToday() {
	now := m.now().In(m.zone())
	m.date = dateutil.DateIn(now, m.zone())
	m.cursor = Position{Day: int(now.Weekday()), Slot: slotAt(now)}
	m.reload()
	m.ensureCursorVisible()
}

// slotAt returns the displayed slot containing t, clamped to the grid.
func slotAt(t time.Time) int {
	minutes := t.Hour()*60 + t.Minute() - grid.FirstHour*60
	idx := minutes / grid.SlotMinutes
	if minutes < 0 {
		idx = 0
	}
	return min(idx, grid.SlotsPerDay()-1)
}

// shiftWeek moves the selection by weeks inside the navigation window.
func (m *Model) shiftWeek(weeks int) tea.Cmd {
	date, ok := m.window().Shift(m.date, weeks)
	if !ok {
		first, last := m.window().Bounds()
		return m.setError(fmt.Errorf("%w (%s..%s)", schedule.ErrOutsideWindow,
			dateutil.FormatDate(first), dateutil.FormatDate(last)))
	}
	m.date = date
	m.reload()
	return nil
}

// goTo selects the week containing the date described by input.
func (m *Model) goTo(input string) tea.Cmd {
	now := m.now().In(m.zone())
	date, err := dateutil.ParseRelativeDate(input, now)
	if err != nil {
		return m.setError(fmt.Errorf("invalid date %q: %w", input, err))
	}
	if err := m.window().Check(date); err != nil {
		return m.setError(err)
	}
	m.date = date
	m.cursor.Day = int(date.Weekday())
	m.reload()
	return m.setStatus(fmt.Sprintf("Week of %s", dateutil.FormatDate(m.view.Start)))
}

// cycleZone switches to the next display zone, keeping the selected
// calendar date.
func (m *Model) cycleZone(step int) tea.Cmd {
	if len(m.zones) < 2 {
		return m.setStatus("Only one display timezone configured")
	}
	n := len(m.zones)
	m.useZone((m.zoneIdx + step%n + n) % n)
	return m.setStatus(m.zoneStatus())
}

// setZone switches to the named zone, adding it for this session when it
// is not configured.
func (m *Model) setZone(name string) tea.Cmd {
	if idx := m.config.DisplayIndex(name); idx >= 0 && idx < len(m.zones) {
		m.useZone(idx)
		return m.setStatus(m.zoneStatus())
	}
	loc, err := dateutil.LoadZone(name)
	if err != nil {
		return m.setError(err)
	}
	for i, z := range m.zones {
		if z.String() == loc.String() {
			m.useZone(i)
			return m.setStatus(m.zoneStatus())
		}
	}
	m.zones = append(m.zones, loc)
	m.useZone(len(m.zones) - 1)
	return m.setStatus(m.zoneStatus())
}

func (m *Model) useZone(idx int) {
	m.zoneIdx = idx
	y, mo, d := m.date.Date()
	m.date = m.window().Clamp(time.Date(y, mo, d, 0, 0, 0, 0, m.zone()))
	m.reload()
}

func (m *Model) zoneStatus() string {
	offset := dateutil.Offset(m.view.Start, m.zone())
	return fmt.Sprintf("Showing %s (%s)", m.view.ZoneName(), dateutil.FormatOffset(offset))
}

// moveCursor moves the cursor by days and slots, clamped to the grid.
func (m *Model) moveCursor(days, slots int) {
	m.cursor.Day = clamp(m.cursor.Day+days, 0, grid.DaysPerWeek-1)
	m.cursor.Slot = clamp(m.cursor.Slot+slots, 0, grid.SlotsPerDay()-1)
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the grid so the cursor row is shown.
func (m *Model) ensureCursorVisible() {
	rows := m.gridRows()
	if rows <= 0 {
		return
	}
	if m.cursor.Slot < m.scroll {
		m.scroll = m.cursor.Slot
	}
	if m.cursor.Slot >= m.scroll+rows {
		m.scroll = m.cursor.Slot - rows + 1
	}
	m.scroll = clamp(m.scroll, 0, max(grid.SlotsPerDay()-rows, 0))
}

// selectedCell returns the block under the cursor.
func (m *Model) selectedCell() schedule.Cell {
	c, _ := m.view.Cell(m.ctx, m.cursor.Day, m.cursor.Key())
	return c
}

// setStatus shows a temporary status message.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.status = msg
	m.isError = false
	return commands.ClearStatusAfter(commands.StatusTimeout)
}

// setError shows err in the status line.
func (m *Model) setError(err error) tea.Cmd {
	log.WithError(err).Debug("tui error")
	m.status = err.Error()
	m.isError = true
	return commands.ClearStatusAfter(commands.StatusTimeout)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
