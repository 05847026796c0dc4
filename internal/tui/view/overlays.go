package view

import (
	"fmt"
	"strings"

	"microengineer/internal/entry"
	"microengineer/internal/tui/design"
	"microengineer/internal/tui/model"
	"microengineer/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const overlayWidth = 56

func renderPickerOverlay(m *model.Model) string {
	p := m.Focused()
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render("Add entry to " + p.Name))
	b.WriteString("\n")

	var tabs []string
	for _, c := range entry.Categories() {
		label := c.String()
		if c == m.PickerCategory {
			tabs = append(tabs, design.ListItemSelectedStyle.UnsetPaddingLeft().Render("["+label+"]"))
		} else {
			tabs = append(tabs, design.TextSecondaryStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.NewStyle().Width(overlayWidth).Render(strings.Join(tabs, " ")))
	b.WriteString("\n\n")

	candidates := m.PickerEntries()
	if len(candidates) == 0 {
		b.WriteString(design.TextMutedStyle.Render("Nothing left to add in this category."))
	}
	for i, e := range candidates {
		line := utils.TruncateString(e.Name+"  "+design.TextMutedStyle.Render(e.Description), overlayWidth-2)
		if i == m.PickerCursor {
			b.WriteString(design.ListItemSelectedStyle.Render("> " + e.Name))
		} else {
			b.WriteString(design.ListItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(design.TextMutedStyle.Render("←/→ category · enter add · esc done"))
	return design.OverlayStyle.Render(b.String())
}

func renderRenameOverlay(m *model.Model) string {
	p := m.Focused()
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(design.TitleStyle.Render(fmt.Sprintf("Rename %s [%s]", p.Name, p.Abbreviation)))
	b.WriteString("\n\n")
	b.WriteString(m.RenameInput.View())
	b.WriteString("\n\n")
	b.WriteString(design.TextMutedStyle.Render("Name/ABBR, abbreviation 1 to 4 letters or digits · enter save · esc cancel"))
	return design.OverlayStyle.Width(overlayWidth).Render(b.String())
}

func renderHelpOverlay(m *model.Model) string {
	h := m.Help
	h.ShowAll = true
	return design.OverlayStyle.Render(design.TitleStyle.Render("Keys") + "\n\n" + h.View(m.Keys))
}

func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render("Log")
	return design.OverlayStyle.Render(title + "\n" + m.LogViewport.View())
}

// overlay centers box over the available area.
func overlay(m *model.Model, box string) string {
	if m.Width <= 0 || m.Height <= 0 {
		return box
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
