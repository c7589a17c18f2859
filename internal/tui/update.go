package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width-20, 10)
		m.ensureCursorVisible()
		return m, nil

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		m.status = ""
		m.isError = false
		return m, nil

	case commands.ErrMsg:
		log.WithError(msg.Err).Warn("tui command failed")
		return m, m.setError(msg.Err)

	case commands.WeekCopiedMsg:
		return m, m.setStatus(fmt.Sprintf("Copied %d blocks to clipboard", msg.Blocks))

	case commands.WeekExportedMsg:
		return m, m.setStatus(fmt.Sprintf("Exported %d blocks to %s", msg.Blocks, msg.Path))
	}

	if m.mode == ModeEdit || m.mode == ModeNotes || m.mode == ModePrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}
