package controller

import (
	"microengineer/internal/tui/model"
	"microengineer/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel adapts the dashboard model to tea.Model.
type AppModel struct {
	model *model.Model
}

// NewAppModel wraps m.
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model.
func (a AppModel) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model.
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := mainControllerDispatch(a.model, msg)
	a.model = updated
	return a, cmd
}

// View implements tea.Model.
func (a AppModel) View() string {
	return view.Render(a.model)
}
