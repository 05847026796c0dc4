package model

import (
	"time"

	"microengineer/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusBarMessageTimeout is how long a status message stays visible.
const StatusBarMessageTimeout = 3 * time.Second

// TickCmd schedules the next refresh tick.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ListenForLogEntriesCmd waits for the next log entry on ch.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: e}
	}
}

// SetStatusMessage shows msg in the status bar and returns the command that
// clears it again.
func (m *Model) SetStatusMessage(msg string, t MessageType) tea.Cmd {
	m.StatusBarMessage = msg
	m.StatusBarMessageType = t
	m.StatusBarClearToken++
	token := m.StatusBarClearToken
	return tea.Tick(StatusBarMessageTimeout, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{Token: token}
	})
}

// AddRawLineToActivityLog appends a formatted log line, keeping at most
// MaxActivityLogLines.
func (m *Model) AddRawLineToActivityLog(line string) {
	m.ActivityLog = append(m.ActivityLog, line)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
