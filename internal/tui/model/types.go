package model

import (
	"time"

	"microengineer/internal/celestial"
	"microengineer/internal/entry"
	"microengineer/internal/layout"
	"microengineer/internal/telemetry"
	"microengineer/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode is the interaction mode of the dashboard.
type AppMode int

const (
	// ModeDashboard shows panels and reacts to navigation keys.
	ModeDashboard AppMode = iota
	// ModeEdit edits the focused panel's entries.
	ModeEdit
	// ModeAddEntry shows the entry picker for the focused panel.
	ModeAddEntry
	// ModeRename edits the focused panel's name and abbreviation.
	ModeRename
	// ModeLogOverlay shows the full log.
	ModeLogOverlay
	// ModeHelpOverlay shows every key binding.
	ModeHelpOverlay
	// ModeQuitting is set once quitting has started.
	ModeQuitting
)

// String implements the Stringer interface.
func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeEdit:
		return "Edit"
	case ModeAddEntry:
		return "AddEntry"
	case ModeRename:
		return "Rename"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType styles the status bar message.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarWarning
	StatusBarError
)

// MaxActivityLogLines bounds the log kept in memory.
const MaxActivityLogLines = 500

// Stepper is a telemetry source that advances in simulated time.
type Stepper interface {
	Step(dt float64)
}

// KeyMap holds every key binding of the dashboard.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Tab           key.Binding
	ShiftTab      key.Binding
	Enter         key.Binding
	Esc           key.Binding
	Quit          key.Binding
	Help          key.Binding
	ToggleLog     key.Binding
	CopyValues    key.Binding
	SwitchContext key.Binding
	TogglePanel   key.Binding
	Close         key.Binding
	Settings      key.Binding
	PopOut        key.Binding
	Lock          key.Binding
	AltUnit       key.Binding
	CycleBody     key.Binding
	Torque        key.Binding
	Pause         key.Binding
	Edit          key.Binding
	AddEntry      key.Binding
	RemoveEntry   key.Binding
	MoveUp        key.Binding
	MoveDown      key.Binding
	NewPanel      key.Binding
	DeletePanel   key.Binding
	Rename        key.Binding
	NextCategory  key.Binding
	PrevCategory  key.Binding
	ResetLayout   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.SwitchContext, k.Edit, k.CopyValues, k.ToggleLog, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.ShiftTab, k.SwitchContext},
		{k.TogglePanel, k.Close, k.Settings, k.PopOut, k.Lock, k.AltUnit, k.CycleBody, k.Torque, k.Pause},
		{k.Edit, k.AddEntry, k.RemoveEntry, k.MoveUp, k.MoveDown, k.NewPanel, k.DeletePanel, k.Rename},
		{k.CopyValues, k.ToggleLog, k.ResetLayout, k.Help, k.Quit},
	}
}

// Model is the whole dashboard state. The controller mutates it; the view
// only reads it.
type Model struct {
	Layout  *layout.Layout
	Bodies  *celestial.Table
	Source  telemetry.Source
	Stepper Stepper

	Context         layout.Context
	RefreshInterval time.Duration
	TimeWarp        float64
	Paused          bool
	LayoutPath      string

	// FocusedPanel indexes the panels shown in Context.
	FocusedPanel int
	// Cursor is the selected row of the focused panel.
	Cursor int

	// Picker state while adding entries.
	PickerCategory entry.Category
	PickerCursor   int

	RenameInput textinput.Model

	LastSnapshot *telemetry.Snapshot
	LastStats    layout.RefreshStats
	LastTick     time.Time
	TickDuration time.Duration

	CurrentAppMode AppMode
	Width          int
	Height         int
	Keys           KeyMap
	Help           help.Model

	LogChannel       <-chan logging.LogEntry
	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	ShowLogPane      bool

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearToken  int
}
