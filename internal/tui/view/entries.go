package view

import (
	"fmt"
	"strings"
	"time"

	"microengineer/internal/entry"
	"microengineer/internal/layout"
	"microengineer/internal/tui/design"
	"microengineer/internal/tui/model"
	"microengineer/internal/tui/utils"
	"microengineer/internal/units"
)

// panelLines renders the content of p for a panel width cells wide.
func panelLines(m *model.Model, p *layout.Panel, width int, focused bool) []string {
	if p.Role == layout.RoleSettings {
		return settingsLines(m, width)
	}
	if focused && m.CurrentAppMode == model.ModeEdit {
		return editLines(m, p, width)
	}

	var lines []string
	for i, e := range m.Layout.Resolve(p) {
		selected := focused && i == m.Cursor
		switch {
		case !e.Visible():
			continue
		case e.IsSeparator():
			lines = append(lines, "")
		case e.Kind == entry.KindFlightStages:
			lines = append(lines, flightStageLines(e, width)...)
		case e.Kind == entry.KindAssemblyStages:
			lines = append(lines, assemblyStageLines(m, width, focused)...)
		default:
			lines = append(lines, entryLine(e, width, selected))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, design.TextMutedStyle.Render("No entries"))
	}
	return lines
}

func entryLine(e *entry.Entry, width int, selected bool) string {
	d := e.Display()
	value := d.Value
	if d.Unit != "" {
		value += " " + d.Unit
	}
	line := utils.Columns(e.Name, value, width)
	if selected {
		return design.EntrySelectedStyle.Render(line)
	}

	// Style name, value and unit separately once the layout is fixed.
	cut := len(line) - len(value)
	if cut < 0 || !strings.HasSuffix(line, value) {
		return line
	}
	name := design.EntryNameStyle.Render(line[:cut])
	if d.Value == units.Placeholder {
		return name + design.EntryNoDataStyle.Render(value)
	}
	styled := design.EntryValueStyle.Render(d.Value)
	if d.Unit != "" {
		styled += " " + design.EntryUnitStyle.Render(d.Unit)
	}
	return name + styled
}

func editLines(m *model.Model, p *layout.Panel, width int) []string {
	names := p.Entries()
	if len(names) == 0 {
		return []string{design.TextMutedStyle.Render("Empty, press a to add entries")}
	}
	lines := make([]string, 0, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%2d %s", i+1, name)
		if e, ok := m.Layout.Entries().Get(name); ok && !e.Visible() {
			label += " (off)"
		}
		line := utils.PadRight(label, width)
		if i == m.Cursor {
			line = design.ListItemSelectedStyle.UnsetPaddingLeft().Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func settingsLines(m *model.Model, width int) []string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	layoutFile := m.LayoutPath
	if layoutFile == "" {
		layoutFile = units.Placeholder
	}
	rows := [][2]string{
		{"Context", m.Context.String()},
		{"Refresh", m.RefreshInterval.String()},
		{"Time warp", fmt.Sprintf("%gx", m.TimeWarp)},
		{"Paused", onOff(m.Paused)},
		{"Torque (OAB)", onOff(m.Layout.TorqueEnabled())},
		{"Reference body", m.Bodies.ReferenceName()},
		{"Bodies", fmt.Sprintf("%d", m.Bodies.Len())},
		{"Last tick", m.TickDuration.Round(time.Microsecond).String()},
		{"Layout file", layoutFile},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, utils.Columns(r[0], r[1], width))
	}
	return lines
}
