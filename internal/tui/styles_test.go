package tui

import (
	"testing"

	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

func TestNewStyles_UsesThemeColors(t *testing.T) {
	th, err := theme.Load("latte")
	if err != nil {
		t.Fatalf("loading theme: %v", err)
	}
	s := NewStyles(th)
	p := s.Palette()

	if got := s.FilledStyle.GetBackground(); got != p.FilledBg {
		t.Fatalf("filled background = %v, want %v", got, p.FilledBg)
	}
	if got := s.CursorStyle.GetBackground(); got != p.Accent {
		t.Fatalf("cursor background = %v, want %v", got, p.Accent)
	}
	if got := s.DayHeaderTodayStyle.GetBackground(); got != p.Today {
		t.Fatalf("today background = %v, want %v", got, p.Today)
	}
}

func TestBlockStyle(t *testing.T) {
	s := NewStyles(nil)
	p := s.Palette()

	tests := []struct {
		name      string
		done, alt bool
		wantBg    any
	}{
		{name: "filled", wantBg: p.FilledBg},
		{name: "filled_alt", alt: true, wantBg: p.FilledBgAlt},
		{name: "done", done: true, wantBg: p.DoneBg},
		{name: "done_alt", done: true, alt: true, wantBg: p.DoneBgAlt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.blockStyle(tt.done, tt.alt).GetBackground()
			if got != tt.wantBg {
				t.Fatalf("background = %v, want %v", got, tt.wantBg)
			}
		})
	}
}
