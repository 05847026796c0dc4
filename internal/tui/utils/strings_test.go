package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Apoapsis", 10, "Apoapsis"},
		{"cut", "Semi-major axis", 8, "Semi-..."},
		{"zero width", "Apoapsis", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestColumns(t *testing.T) {
	line := Columns("Apoapsis", "80.00 km", 20)
	assert.Equal(t, 20, runewidth.StringWidth(line))
	assert.Equal(t, "Apoapsis    80.00 km", line)

	assert.Equal(t, "80.00 km", Columns("Apoapsis", "80.00 km", 8))
	assert.Equal(t, " 1.0", Columns("X", "1.0", 4))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "  ab", PadLeft("ab", 4))
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb"))
}
