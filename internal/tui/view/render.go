package view

import (
	"fmt"
	"strings"

	"microengineer/internal/layout"
	"microengineer/internal/tui/components"
	"microengineer/internal/tui/design"
	"microengineer/internal/tui/model"
	"microengineer/internal/units"

	"github.com/charmbracelet/lipgloss"
)

// logPaneLines is the height of the log tail under the panels.
const logPaneLines = 5

// Render draws the whole dashboard.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return design.TextSecondaryStyle.Render("Saving layout and shutting down...") + "\n"
	}

	switch m.CurrentAppMode {
	case model.ModeAddEntry:
		return overlay(m, renderPickerOverlay(m))
	case model.ModeRename:
		return overlay(m, renderRenameOverlay(m))
	case model.ModeHelpOverlay:
		return overlay(m, renderHelpOverlay(m))
	case model.ModeLogOverlay:
		return overlay(m, renderLogOverlay(m))
	}

	width := m.Width
	if width <= 0 {
		width = 120
	}

	sections := []string{renderHeader(m, width)}
	if body := renderPanels(m, width); body != "" {
		sections = append(sections, body)
	} else {
		sections = append(sections, design.TextMutedStyle.Render("No panels open in this context. Press c to switch context."))
	}
	if m.ShowLogPane {
		sections = append(sections, renderLogPane(m, width))
	}
	sections = append(sections, renderStatusBar(m, width), m.Help.View(m.Keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(m *model.Model, width int) string {
	parts := []string{"Micro Engineer", m.Context.String()}
	if m.LastSnapshot != nil {
		parts = append(parts, "UT "+units.FormatDuration(m.LastSnapshot.UniversalTime, 0))
	}
	if m.Stepper != nil {
		parts = append(parts, fmt.Sprintf("warp %gx", m.TimeWarp))
	}
	if m.Paused {
		parts = append(parts, "paused")
	}
	if m.CurrentAppMode == model.ModeEdit {
		parts = append(parts, "editing")
	}
	header := design.HeaderStyle.Render(strings.Join(parts, " · "))
	return lipgloss.NewStyle().Width(width).Render(header)
}

func renderPanels(m *model.Model, width int) string {
	focused := m.Focused()
	var blocks []string

	if m.MainActive() {
		blocks = append(blocks, renderPanelBar(m))
		docked := m.DockedPanels()
		if grid := renderGrid(m, docked, focused, width); grid != "" {
			blocks = append(blocks, grid)
		}
	}
	if windows := renderGrid(m, m.PoppedOutPanels(), focused, width); windows != "" {
		blocks = append(blocks, windows)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderPanelBar lists the toggleable panels with their number keys.
func renderPanelBar(m *model.Model) string {
	var items []string
	for i, p := range m.ToggleablePanels() {
		label := p.Abbreviation
		if i < 9 {
			label = fmt.Sprintf("%d:%s", i+1, p.Abbreviation)
		}
		if p.IsActive(m.Context) {
			items = append(items, design.ListItemSelectedStyle.UnsetPaddingLeft().Render(label))
		} else {
			items = append(items, design.TextMutedStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().Padding(0, design.SpaceXS).Render(strings.Join(items, "  "))
}

func panelWidth(p *layout.Panel) int {
	if p.Role == layout.RoleStage || p.Role == layout.RoleAssemblyStage {
		return design.StageTableWidth
	}
	return design.PanelWidth
}

// renderGrid flows panels left to right, wrapping at width.
func renderGrid(m *model.Model, panels []*layout.Panel, focused *layout.Panel, width int) string {
	if len(panels) == 0 {
		return ""
	}
	maxHeight := 0
	if m.Height > 0 {
		maxHeight = m.Height - logPaneLines - 6
	}

	var rows []string
	var row []string
	used := 0
	for _, p := range panels {
		w := panelWidth(p)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, renderPanel(m, p, p == focused, w, maxHeight))
		used += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderPanel(m *model.Model, p *layout.Panel, focused bool, width, maxHeight int) string {
	box := components.NewPanel(p.Name).
		WithBadge(p.Abbreviation).
		WithWidth(width).
		WithMaxHeight(maxHeight).
		SetFocused(focused).
		SetPoppedOut(p.IsPoppedOut(m.Context) || p.Role == layout.RoleSettings).
		SetLocked(p.Locked)
	return box.WithLines(panelLines(m, p, box.InnerWidth(), focused)).Render()
}

func renderLogPane(m *model.Model, width int) string {
	title := design.LogPanelTitleStyle.Render("Log")
	return lipgloss.NewStyle().Padding(0, design.SpaceXS).Render(
		title + "\n" + tailLines(m.ActivityLog, logPaneLines, width-2))
}

func renderStatusBar(m *model.Model, width int) string {
	left := m.CurrentAppMode.String()
	if p := m.Focused(); p != nil {
		left += " · " + p.Name
	}
	right := fmt.Sprintf("%d panels · %d entries · %d without data",
		m.LastStats.Panels, m.LastStats.Entries, m.LastStats.NoData)

	bar := components.NewStatusBar(width).WithLeftText(left).WithRightText(right)
	if m.StatusBarMessage != "" {
		bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}
