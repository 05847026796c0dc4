package view

import (
	"strings"

	"microengineer/internal/tui/design"
	"microengineer/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PrepareLogContent styles and truncates log lines for a viewport width
// cells wide.
func PrepareLogContent(lines []string, width int) string {
	if len(lines) == 0 {
		return design.TextMutedStyle.Render("No activity yet.")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if width > 0 && lipgloss.Width(line) > width {
			line = utils.TruncateString(line, width)
		}
		out[i] = logLineStyle(line).Render(line)
	}
	return strings.Join(out, "\n")
}

func logLineStyle(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return design.LogErrorStyle
	case strings.Contains(line, "[WARN]"):
		return design.LogWarnStyle
	case strings.Contains(line, "[DEBUG]"):
		return design.LogDebugStyle
	default:
		return design.LogInfoStyle
	}
}

// tailLines returns the last n lines of the log, prepared for width.
func tailLines(lines []string, n, width int) string {
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return PrepareLogContent(lines, width)
}
