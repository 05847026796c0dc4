package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString cuts s to at most width terminal cells, ending with "..." when
// something was cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}

// PadLeft right-aligns s in width cells.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(TruncateString(s, width), width)
}

// Columns lays out a name on the left and a value on the right of a line
// width cells wide. The name gives way when both do not fit.
func Columns(name, value string, width int) string {
	vw := runewidth.StringWidth(value)
	if vw >= width {
		return TruncateString(value, width)
	}
	nameWidth := width - vw - 1
	if nameWidth < 1 {
		return PadLeft(value, width)
	}
	return PadRight(name, nameWidth) + " " + value
}

// Lines splits s on newlines, returning nil for an empty string.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
