package controller

import (
	"microengineer/internal/tui/model"
	"microengineer/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

const tuiSubsystem = "TUI"

// mainControllerDispatch routes every message to its handler and keeps the
// log viewport in sync afterwards.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = handleWindowSize(m, msg)

	case model.TickMsg:
		if m.CurrentAppMode == model.ModeQuitting {
			return m, nil
		}
		m, cmd = handleTick(m)
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m.AddRawLineToActivityLog(msg.Entry.String())
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.LogChannelClosedMsg:
		m.LogChannel = nil

	case model.ClearStatusBarMsg:
		if msg.Token == m.StatusBarClearToken {
			m.StatusBarMessage = ""
		}

	case tea.KeyMsg:
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	default:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.LogViewport.AtBottom() || m.CurrentAppMode != model.ModeLogOverlay {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

func handleWindowSize(m *model.Model, msg tea.WindowSizeMsg) *model.Model {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	m.LogViewport.Width = max(msg.Width-8, 10)
	m.LogViewport.Height = max(msg.Height-8, 3)
	m.ActivityLogDirty = true
	return m
}
