package model

import (
	"time"

	"microengineer/pkg/logging"
)

// TickMsg drives the refresh loop.
type TickMsg time.Time

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel is closed.
type LogChannelClosedMsg struct{}

// ClearStatusBarMsg clears the status message set under Token, unless a
// newer message replaced it.
type ClearStatusBarMsg struct {
	Token int
}

// LayoutSavedMsg reports the outcome of writing the layout file.
type LayoutSavedMsg struct {
	Path string
	Err  error
}
