package controller

import (
	"errors"

	"microengineer/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram builds the dashboard program on the alternate screen.
func NewProgram(opts model.Options) (*tea.Program, error) {
	if opts.Layout == nil {
		return nil, errors.New("dashboard needs a layout")
	}
	if opts.Source == nil {
		return nil, errors.New("dashboard needs a telemetry source")
	}
	if opts.Bodies == nil {
		return nil, errors.New("dashboard needs a body table")
	}

	m := model.InitializeModel(opts)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen()), nil
}
