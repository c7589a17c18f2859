// Package tui provides the interactive week grid editor.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title bar
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	ZoneStyle      lipgloss.Style
	ZoneShiftStyle lipgloss.Style

	// Header styles
	TimeHeaderStyle     lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle    lipgloss.Style
	TimeColumnNowStyle lipgloss.Style

	// Block cells
	EmptyCellStyle      lipgloss.Style
	EmptyTodayCellStyle lipgloss.Style
	FilledStyle         lipgloss.Style
	FilledAltStyle      lipgloss.Style // alternate shade for adjacent blocks
	DoneStyle           lipgloss.Style
	DoneAltStyle        lipgloss.Style
	CursorStyle         lipgloss.Style
	CursorEditStyle     lipgloss.Style

	// Footer
	StatsStyle    lipgloss.Style
	ProgressStyle lipgloss.Style
	NotesStyle    lipgloss.Style
	PromptStyle   lipgloss.Style
	StatusStyle   lipgloss.Style
	ErrorStyle    lipgloss.Style
	HelpStyle     lipgloss.Style
	HelpKeyStyle  lipgloss.Style

	// Help overlay
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
	PanelTextStyle  lipgloss.Style
	PanelMutedStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	return &Styles{
		palette: p,

		TitleStyle:     base.Foreground(p.Accent).Bold(true),
		SubtitleStyle:  base.Foreground(p.FgMuted),
		ZoneStyle:      base.Foreground(p.Fg).Bold(true),
		ZoneShiftStyle: base.Foreground(p.Warning),

		TimeHeaderStyle:     base.Foreground(p.FgMuted).Bold(true),
		DayHeaderStyle:      base.Foreground(p.Fg).Bold(true),
		DayHeaderTodayStyle: lipgloss.NewStyle().Background(p.Today).Foreground(p.TextOnAccent).Bold(true),

		TimeColumnStyle:    base.Foreground(p.FgMuted),
		TimeColumnNowStyle: base.Foreground(p.Today).Bold(true),

		EmptyCellStyle:      base.Foreground(p.BgSelection),
		EmptyTodayCellStyle: lipgloss.NewStyle().Background(p.BgHighlight).Foreground(p.BgSelection),
		FilledStyle:         lipgloss.NewStyle().Background(p.FilledBg).Foreground(p.TextOnFilled),
		FilledAltStyle:      lipgloss.NewStyle().Background(p.FilledBgAlt).Foreground(p.TextOnFilled),
		DoneStyle:           lipgloss.NewStyle().Background(p.DoneBg).Foreground(p.TextOnDone).Strikethrough(true),
		DoneAltStyle:        lipgloss.NewStyle().Background(p.DoneBgAlt).Foreground(p.TextOnDone).Strikethrough(true),
		CursorStyle:         lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Bold(true),
		CursorEditStyle:     lipgloss.NewStyle().Background(p.Warning).Foreground(p.TextOnWarning).Bold(true),

		StatsStyle:    base.Foreground(p.Fg),
		ProgressStyle: base.Foreground(p.Done),
		NotesStyle:    base.Foreground(p.Today).Italic(true),
		PromptStyle:   base.Foreground(p.Accent),
		StatusStyle:   base.Foreground(p.Done),
		ErrorStyle:    base.Foreground(p.Warning).Bold(true),
		HelpStyle:     base.Foreground(p.FgMuted),
		HelpKeyStyle:  base.Foreground(p.Accent).Bold(true),

		PanelStyle: lipgloss.NewStyle().
			Background(p.Panel.Bg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Panel.Border).
			BorderBackground(p.Panel.Bg).
			Padding(1, 2),
		PanelTitleStyle: lipgloss.NewStyle().Background(p.Panel.Bg).Foreground(p.Panel.Border).Bold(true),
		PanelTextStyle:  lipgloss.NewStyle().Background(p.Panel.Bg).Foreground(p.Panel.Text),
		PanelMutedStyle: lipgloss.NewStyle().Background(p.Panel.Bg).Foreground(p.Panel.Muted),
	}
}

// Palette returns the colors the styles were derived from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

// blockStyle returns the style of a block, alternating shades between
// adjacent blocks with different text.
func (s *Styles) blockStyle(done, alt bool) lipgloss.Style {
	switch {
	case done && alt:
		return s.DoneAltStyle
	case done:
		return s.DoneStyle
	case alt:
		return s.FilledAltStyle
	default:
		return s.FilledStyle
	}
}
