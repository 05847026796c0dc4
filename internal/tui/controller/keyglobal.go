package controller

import (
	"fmt"

	"microengineer/internal/layout"
	"microengineer/internal/metrics"
	"microengineer/internal/tui/model"
	"microengineer/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes a key press by mode.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m, nil
	case model.ModeAddEntry:
		return handlePickerKey(m, msg)
	case model.ModeRename:
		return handleRenameKey(m, msg)
	case model.ModeHelpOverlay:
		if key.Matches(msg, m.Keys.Esc, m.Keys.Help, m.Keys.Quit) {
			m.CurrentAppMode = model.ModeDashboard
		}
		return m, nil
	case model.ModeLogOverlay:
		if key.Matches(msg, m.Keys.Esc, m.Keys.ToggleLog, m.Keys.Quit) {
			m.CurrentAppMode = model.ModeDashboard
			return m, nil
		}
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	case model.ModeEdit:
		if handled, cmd := handleEditKey(m, msg); handled {
			return m, cmd
		}
	}

	return handleGlobalKey(m, msg)
}

// handleGlobalKey handles the keys that work in dashboard and edit mode.
func handleGlobalKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)

	case key.Matches(msg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay

	case key.Matches(msg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()

	case key.Matches(msg, m.Keys.Tab):
		cycleFocus(m, 1)

	case key.Matches(msg, m.Keys.ShiftTab):
		cycleFocus(m, -1)

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < m.CursorLimit()-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.SwitchContext):
		return switchContext(m)

	case key.Matches(msg, m.Keys.TogglePanel):
		return togglePanel(m, int(msg.Runes[0]-'1'))

	case key.Matches(msg, m.Keys.Close):
		if p := m.Focused(); p != nil {
			return setActive(m, p, false)
		}

	case key.Matches(msg, m.Keys.Settings):
		if p, ok := m.Layout.PanelByRole(layout.RoleSettings); ok {
			return setActive(m, p, !p.IsActive(m.Context))
		}

	case key.Matches(msg, m.Keys.PopOut):
		if p := m.Focused(); p != nil && p.Role != layout.RoleSettings {
			p.SetPoppedOut(m.Context, !p.IsPoppedOut(m.Context))
			m.FocusPanel(p)
		}

	case key.Matches(msg, m.Keys.Lock):
		if p := m.Focused(); p != nil {
			p.Locked = !p.Locked
			state := "unlocked"
			if p.Locked {
				state = "locked"
			}
			return m, m.SetStatusMessage(fmt.Sprintf("%s %s", p.Name, state), model.StatusBarInfo)
		}

	case key.Matches(msg, m.Keys.AltUnit):
		return toggleAltUnit(m)

	case key.Matches(msg, m.Keys.CycleBody):
		return cycleBody(m)

	case key.Matches(msg, m.Keys.Torque):
		m.Layout.SetTorque(!m.Layout.TorqueEnabled())
		state := "hidden"
		if m.Layout.TorqueEnabled() {
			state = "shown"
		}
		return m, m.SetStatusMessage("Torque "+state, model.StatusBarInfo)

	case key.Matches(msg, m.Keys.Pause):
		if m.Stepper != nil {
			m.Paused = !m.Paused
		}

	case key.Matches(msg, m.Keys.Edit):
		return enterEditMode(m)

	case key.Matches(msg, m.Keys.NewPanel):
		return createPanel(m)

	case key.Matches(msg, m.Keys.CopyValues):
		return copyFocusedPanel(m)

	case key.Matches(msg, m.Keys.ResetLayout):
		m.Layout.ResetToDefaults()
		m.CurrentAppMode = model.ModeDashboard
		m.FocusedPanel, m.Cursor = 0, 0
		logging.Info(tuiSubsystem, "Layout reset to defaults")
		return m, m.SetStatusMessage("Layout reset to defaults", model.StatusBarWarning)
	}
	return m, nil
}

func cycleFocus(m *model.Model, step int) {
	n := len(m.VisiblePanels())
	if n == 0 {
		return
	}
	m.FocusedPanel = ((m.FocusedPanel+step)%n + n) % n
	m.Cursor = 0
	if m.CurrentAppMode == model.ModeEdit {
		if p := m.Focused(); p == nil || !p.IsEditable() {
			m.CurrentAppMode = model.ModeDashboard
		}
	}
}

func switchContext(m *model.Model) (*model.Model, tea.Cmd) {
	contexts := layout.Contexts()
	for i, c := range contexts {
		if c == m.Context {
			m.Context = contexts[(i+1)%len(contexts)]
			break
		}
	}
	m.CurrentAppMode = model.ModeDashboard
	m.FocusedPanel, m.Cursor = 0, 0
	logging.Debug(tuiSubsystem, "Switched to %s context", m.Context)
	return m, m.SetStatusMessage("Context: "+m.Context.String(), model.StatusBarInfo)
}

func togglePanel(m *model.Model, index int) (*model.Model, tea.Cmd) {
	panels := m.ToggleablePanels()
	if index < 0 || index >= len(panels) {
		return m, nil
	}
	p := panels[index]
	return setActive(m, p, !p.IsActive(m.Context))
}

func setActive(m *model.Model, p *layout.Panel, active bool) (*model.Model, tea.Cmd) {
	if !p.SetActive(m.Context, active) {
		return m, m.SetStatusMessage(p.Name+" is locked", model.StatusBarWarning)
	}
	if active {
		m.FocusPanel(p)
	}
	m.ClampFocus()
	return m, nil
}

func toggleAltUnit(m *model.Model) (*model.Model, tea.Cmd) {
	e := m.SelectedEntry()
	if e == nil || !e.HasAltUnit() {
		return m, m.SetStatusMessage("No alternate unit for this entry", model.StatusBarInfo)
	}
	e.SetAltUnit(!e.AltUnitActive())
	return m, nil
}

func cycleBody(m *model.Model) (*model.Model, tea.Cmd) {
	p := m.Focused()
	if p == nil || p.Role != layout.RoleAssemblyStage {
		return m, m.SetStatusMessage("Select a stage in the assembly stage panel first", model.StatusBarInfo)
	}
	table := m.Layout.StageTable()
	if err := table.CycleBody(m.Cursor); err != nil {
		logging.Warn(tuiSubsystem, "Cannot change body of stage row %d: %v", m.Cursor, err)
		return m, m.SetStatusMessage(err.Error(), model.StatusBarError)
	}
	metrics.StageRecomputed(metrics.ReasonBody)
	return m, nil
}

func createPanel(m *model.Model) (*model.Model, tea.Cmd) {
	p := m.Layout.CreatePanel()
	m.FocusPanel(p)
	if m.Focused() != p {
		return m, m.SetStatusMessage("Created "+p.Name+" in the flight context", model.StatusBarSuccess)
	}
	m.CurrentAppMode = model.ModeEdit
	return m, m.SetStatusMessage("Created "+p.Name, model.StatusBarSuccess)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	if m.LayoutPath != "" {
		if err := m.Layout.Save(m.LayoutPath); err != nil {
			logging.Error(tuiSubsystem, err, "Failed to save layout to %s", m.LayoutPath)
		} else {
			logging.Info(tuiSubsystem, "Layout saved to %s", m.LayoutPath)
		}
	}
	return m, tea.Quit
}
