package model

import (
	"microengineer/internal/entry"
	"microengineer/internal/layout"
)

// ToggleablePanels are the panels listed in the main window's panel bar.
func (m *Model) ToggleablePanels() []*layout.Panel {
	var out []*layout.Panel
	for _, p := range m.Layout.Panels() {
		if p.Role == layout.RoleMain || p.Role == layout.RoleSettings {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MainActive reports whether the main window is open in the current context.
func (m *Model) MainActive() bool {
	p, ok := m.Layout.PanelByRole(layout.RoleMain)
	return ok && p.IsActive(m.Context)
}

// DockedPanels are shown inside the main window.
func (m *Model) DockedPanels() []*layout.Panel {
	if !m.MainActive() {
		return nil
	}
	var out []*layout.Panel
	for _, p := range m.Layout.ActivePanels(m.Context) {
		if p.Role == layout.RoleMain || p.Role == layout.RoleSettings || p.IsPoppedOut(m.Context) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PoppedOutPanels are shown in their own windows. The settings panel is
// always a window of its own.
func (m *Model) PoppedOutPanels() []*layout.Panel {
	var out []*layout.Panel
	for _, p := range m.Layout.ActivePanels(m.Context) {
		if p.Role == layout.RoleMain {
			continue
		}
		if p.Role == layout.RoleSettings || p.IsPoppedOut(m.Context) {
			out = append(out, p)
		}
	}
	return out
}

// VisiblePanels is the focus order: docked panels first, then windows.
func (m *Model) VisiblePanels() []*layout.Panel {
	return append(m.DockedPanels(), m.PoppedOutPanels()...)
}

// Focused returns the focused panel, or nil when nothing is shown.
func (m *Model) Focused() *layout.Panel {
	panels := m.VisiblePanels()
	if len(panels) == 0 {
		return nil
	}
	if m.FocusedPanel < 0 || m.FocusedPanel >= len(panels) {
		return nil
	}
	return panels[m.FocusedPanel]
}

// FocusPanel moves the focus to p if it is visible.
func (m *Model) FocusPanel(p *layout.Panel) {
	for i, v := range m.VisiblePanels() {
		if v == p {
			m.FocusedPanel = i
			m.Cursor = 0
			return
		}
	}
}

// CursorLimit is the number of rows the cursor can select in the focused
// panel for the current mode.
func (m *Model) CursorLimit() int {
	p := m.Focused()
	if p == nil {
		return 0
	}
	if m.CurrentAppMode == ModeEdit {
		return p.Len()
	}
	switch p.Role {
	case layout.RoleAssemblyStage:
		return m.Layout.StageTable().Len()
	case layout.RoleSettings:
		return 0
	default:
		return len(m.Layout.Resolve(p))
	}
}

// ClampFocus keeps the focus and cursor inside what is shown.
func (m *Model) ClampFocus() {
	n := len(m.VisiblePanels())
	if m.FocusedPanel >= n {
		m.FocusedPanel = n - 1
	}
	if m.FocusedPanel < 0 {
		m.FocusedPanel = 0
	}
	limit := m.CursorLimit()
	if m.Cursor >= limit {
		m.Cursor = limit - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// SelectedEntry is the entry under the cursor in the focused panel.
func (m *Model) SelectedEntry() *entry.Entry {
	p := m.Focused()
	if p == nil {
		return nil
	}
	if m.CurrentAppMode == ModeEdit {
		names := p.Entries()
		if m.Cursor < 0 || m.Cursor >= len(names) {
			return nil
		}
		e, _ := m.Layout.Entries().Get(names[m.Cursor])
		return e
	}
	entries := m.Layout.Resolve(p)
	if m.Cursor < 0 || m.Cursor >= len(entries) {
		return nil
	}
	return entries[m.Cursor]
}

// PickerEntries lists the entries the picker offers for the focused panel.
func (m *Model) PickerEntries() []*entry.Entry {
	p := m.Focused()
	if p == nil {
		return nil
	}
	return m.Layout.Available(p, m.PickerCategory)
}
