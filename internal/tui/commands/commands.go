// Package commands provides TUI command constructors and message types.
package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/export"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// StatusTimeout is how long a status message stays on screen.
const StatusTimeout = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// WeekCopiedMsg is sent after the week text reached the clipboard.
type WeekCopiedMsg struct {
	Blocks int
}

// WeekExportedMsg is sent after the week was written as iCalendar.
type WeekExportedMsg struct {
	Path   string
	Blocks int
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Status emits a status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyWeek writes text to the system clipboard.
func CopyWeek(text string, blocks int) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying week: %w", err)}
		}
		return WeekCopiedMsg{Blocks: blocks}
	}
}

// ExportWeek writes the displayed week to path as an iCalendar file.
func ExportWeek(ctx context.Context, v *schedule.View, path string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		n, err := export.WriteICS(ctx, &buf, v, now)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if n == 0 {
			return StatusMsgCmd{Msg: "No blocks to export"}
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return ErrMsg{Err: fmt.Errorf("writing %s: %w", path, err)}
		}
		return WeekExportedMsg{Path: path, Blocks: n}
	}
}
