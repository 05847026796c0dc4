package components

import (
	"strings"

	"microengineer/internal/tui/design"
	"microengineer/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered box with a title line and pre-rendered content lines.
type Panel struct {
	Title     string
	Badge     string
	Lines     []string
	Width     int
	MaxHeight int
	Focused   bool
	PoppedOut bool
	Locked    bool
}

// NewPanel creates a panel of the preferred entry panel width.
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.PanelWidth,
	}
}

// WithBadge sets the short tag shown after the title.
func (p *Panel) WithBadge(badge string) *Panel {
	p.Badge = badge
	return p
}

// WithLines sets the content lines.
func (p *Panel) WithLines(lines []string) *Panel {
	p.Lines = lines
	return p
}

// WithWidth sets the outer width.
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// WithMaxHeight bounds the outer height. Zero means unbounded.
func (p *Panel) WithMaxHeight(height int) *Panel {
	p.MaxHeight = height
	return p
}

// SetFocused updates the focus state.
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// SetPoppedOut draws the panel as a separate window.
func (p *Panel) SetPoppedOut(popped bool) *Panel {
	p.PoppedOut = popped
	return p
}

// SetLocked marks the panel as locked.
func (p *Panel) SetLocked(locked bool) *Panel {
	p.Locked = locked
	return p
}

// InnerWidth is the number of content cells per line.
func (p *Panel) InnerWidth() int {
	w := p.width() - p.style().GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

func (p *Panel) width() int {
	if p.Width < design.MinPanelWidth {
		return design.MinPanelWidth
	}
	return p.Width
}

// Render returns the styled panel.
func (p *Panel) Render() string {
	style := p.style()
	inner := p.InnerWidth()

	lines := []string{p.renderTitle(inner)}
	content := p.Lines
	if p.MaxHeight > 0 {
		room := p.MaxHeight - style.GetVerticalFrameSize() - 1
		if room < 1 {
			room = 1
		}
		if len(content) > room {
			content = append(append([]string(nil), content[:room-1]...), design.TextMutedStyle.Render("..."))
		}
	}
	for _, line := range content {
		if lipgloss.Width(line) > inner {
			line = utils.TruncateString(line, inner)
		}
		lines = append(lines, line)
	}
	if len(lines) < design.MinPanelHeight-style.GetVerticalFrameSize() {
		for len(lines) < design.MinPanelHeight-style.GetVerticalFrameSize() {
			lines = append(lines, "")
		}
	}

	return style.Width(p.width() - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (p *Panel) style() lipgloss.Style {
	switch {
	case p.PoppedOut && p.Focused:
		return design.PanelPoppedOutStyle.BorderForeground(design.ColorBorderFocus)
	case p.PoppedOut:
		return design.PanelPoppedOutStyle
	case p.Focused:
		return design.PanelFocusedStyle
	default:
		return design.PanelStyle
	}
}

func (p *Panel) renderTitle(width int) string {
	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}

	parts := []string{titleStyle.Render(p.Title)}
	if p.Badge != "" {
		parts = append(parts, design.TextMutedStyle.Render("["+p.Badge+"]"))
	}
	if p.Locked {
		parts = append(parts, design.TextWarningStyle.Render("locked"))
	}
	title := strings.Join(parts, " ")

	if lipgloss.Width(title) > width {
		return utils.TruncateString(p.Title, width)
	}
	return title
}
