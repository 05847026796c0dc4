package controller

import (
	"strings"

	"microengineer/internal/entry"
	"microengineer/internal/tui/model"
	"microengineer/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func enterEditMode(m *model.Model) (*model.Model, tea.Cmd) {
	p := m.Focused()
	if p == nil {
		return m, nil
	}
	if !p.IsEditable() {
		return m, m.SetStatusMessage(p.Name+" cannot be edited", model.StatusBarWarning)
	}
	m.CurrentAppMode = model.ModeEdit
	m.Cursor = 0
	return m, nil
}

// handleEditKey handles the keys specific to edit mode. It reports false for
// keys the global handler should see.
func handleEditKey(m *model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	p := m.Focused()
	if p == nil || !p.IsEditable() {
		m.CurrentAppMode = model.ModeDashboard
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Esc, m.Keys.Edit):
		m.CurrentAppMode = model.ModeDashboard
		m.ClampFocus()
		return true, nil

	case key.Matches(msg, m.Keys.AddEntry):
		m.CurrentAppMode = model.ModeAddEntry
		m.PickerCursor = 0
		return true, nil

	case key.Matches(msg, m.Keys.RemoveEntry):
		if err := m.Layout.RemoveEntry(p, m.Cursor); err != nil {
			return true, m.SetStatusMessage(err.Error(), model.StatusBarError)
		}
		m.ClampFocus()
		return true, nil

	case key.Matches(msg, m.Keys.MoveUp):
		if err := m.Layout.MoveEntryUp(p, m.Cursor); err != nil {
			return true, m.SetStatusMessage(err.Error(), model.StatusBarError)
		}
		if m.Cursor > 0 {
			m.Cursor--
		}
		return true, nil

	case key.Matches(msg, m.Keys.MoveDown):
		if err := m.Layout.MoveEntryDown(p, m.Cursor); err != nil {
			return true, m.SetStatusMessage(err.Error(), model.StatusBarError)
		}
		if m.Cursor < p.Len()-1 {
			m.Cursor++
		}
		return true, nil

	case key.Matches(msg, m.Keys.DeletePanel):
		name := p.Name
		if err := m.Layout.DeletePanel(p); err != nil {
			return true, m.SetStatusMessage(err.Error(), model.StatusBarError)
		}
		m.CurrentAppMode = model.ModeDashboard
		m.Cursor = 0
		m.ClampFocus()
		return true, m.SetStatusMessage("Deleted "+name, model.StatusBarSuccess)

	case key.Matches(msg, m.Keys.Rename):
		m.CurrentAppMode = model.ModeRename
		m.RenameInput.SetValue(p.Name + "/" + p.Abbreviation)
		m.RenameInput.CursorEnd()
		return true, m.RenameInput.Focus()
	}
	return false, nil
}

func handlePickerKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	p := m.Focused()
	if p == nil {
		m.CurrentAppMode = model.ModeDashboard
		return m, nil
	}
	candidates := m.PickerEntries()

	switch {
	case key.Matches(msg, m.Keys.Esc, m.Keys.AddEntry):
		m.CurrentAppMode = model.ModeEdit
		m.ClampFocus()

	case key.Matches(msg, m.Keys.NextCategory, m.Keys.Tab):
		m.PickerCategory = stepCategory(m.PickerCategory, 1)
		m.PickerCursor = 0

	case key.Matches(msg, m.Keys.PrevCategory, m.Keys.ShiftTab):
		m.PickerCategory = stepCategory(m.PickerCategory, -1)
		m.PickerCursor = 0

	case key.Matches(msg, m.Keys.Up):
		if m.PickerCursor > 0 {
			m.PickerCursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.PickerCursor < len(candidates)-1 {
			m.PickerCursor++
		}

	case key.Matches(msg, m.Keys.Enter):
		if m.PickerCursor < 0 || m.PickerCursor >= len(candidates) {
			return m, nil
		}
		name := candidates[m.PickerCursor].Name
		if err := m.Layout.AddEntry(p, name); err != nil {
			return m, m.SetStatusMessage(err.Error(), model.StatusBarError)
		}
		if left := len(m.PickerEntries()); m.PickerCursor >= left {
			m.PickerCursor = max(left-1, 0)
		}
		return m, m.SetStatusMessage("Added "+name+" to "+p.Name, model.StatusBarSuccess)
	}
	return m, nil
}

func stepCategory(c entry.Category, step int) entry.Category {
	all := entry.Categories()
	for i, v := range all {
		if v == c {
			return all[((i+step)%len(all)+len(all))%len(all)]
		}
	}
	return all[0]
}

func handleRenameKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	p := m.Focused()
	switch {
	case p == nil || key.Matches(msg, m.Keys.Esc):
		m.RenameInput.Blur()
		m.CurrentAppMode = model.ModeEdit
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		name, abbr := parseRename(m.RenameInput.Value(), p.Abbreviation)
		if err := m.Layout.RenamePanel(p, name, abbr); err != nil {
			return m, m.SetStatusMessage(err.Error(), model.StatusBarError)
		}
		logging.Info(tuiSubsystem, "Renamed panel to %s [%s]", name, abbr)
		m.RenameInput.Blur()
		m.CurrentAppMode = model.ModeEdit
		return m, nil
	}

	var cmd tea.Cmd
	m.RenameInput, cmd = m.RenameInput.Update(msg)
	return m, cmd
}

// parseRename splits "Name/ABBR". Without a slash the abbreviation is kept.
func parseRename(input, abbreviation string) (string, string) {
	name, abbr, found := strings.Cut(input, "/")
	name = strings.TrimSpace(name)
	if !found {
		return name, abbreviation
	}
	return name, strings.TrimSpace(abbr)
}
