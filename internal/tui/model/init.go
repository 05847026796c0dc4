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
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultKeyMap returns the default bindings of the dashboard.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next row"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log"),
		),
		CopyValues: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy values"),
		),
		SwitchContext: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "switch context"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "show/hide panel"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close panel"),
		),
		Settings: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "settings"),
		),
		PopOut: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pop out/in"),
		),
		Lock: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lock/unlock"),
		),
		AltUnit: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "alternate unit"),
		),
		CycleBody: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "next body"),
		),
		Torque: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "torque"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit panel"),
		),
		AddEntry: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add entry"),
		),
		RemoveEntry: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove entry"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		NewPanel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new panel"),
		),
		DeletePanel: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete panel"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename panel"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←", "previous category"),
		),
		ResetLayout: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset layout"),
		),
	}
}

// Options configure a new dashboard model.
type Options struct {
	Layout          *layout.Layout
	Bodies          *celestial.Table
	Source          telemetry.Source
	Context         layout.Context
	RefreshInterval time.Duration
	TimeWarp        float64
	LayoutPath      string
	LogChannel      <-chan logging.LogEntry
}

// InitializeModel builds the dashboard model. A source that can advance in
// time is also used as the Stepper.
func InitializeModel(opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Name/ABBR"
	ti.CharLimit = 64
	ti.Width = 40

	m := &Model{
		Layout:          opts.Layout,
		Bodies:          opts.Bodies,
		Source:          opts.Source,
		Context:         opts.Context,
		RefreshInterval: opts.RefreshInterval,
		TimeWarp:        opts.TimeWarp,
		LayoutPath:      opts.LayoutPath,
		LogChannel:      opts.LogChannel,
		CurrentAppMode:  ModeDashboard,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		RenameInput:     ti,
		LogViewport:     viewport.New(0, 0),
		ShowLogPane:     true,
		PickerCategory:  entry.Vessel,
	}
	if s, ok := opts.Source.(Stepper); ok {
		m.Stepper = s
	}
	if m.RefreshInterval <= 0 {
		m.RefreshInterval = 250 * time.Millisecond
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return TickMsg(time.Now()) },
		ListenForLogEntriesCmd(m.LogChannel),
	)
}
