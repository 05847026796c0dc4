package components

import (
	"strings"

	"microengineer/internal/tui/design"
	"microengineer/internal/tui/model"
	"microengineer/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar is the line at the bottom of the dashboard.
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates an empty status bar.
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage shows a message instead of the left and right texts.
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text.
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text.
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar.
func (s *StatusBar) Render() string {
	style := s.style()
	inner := s.Width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var content string
	switch {
	case s.Message != "":
		content = utils.TruncateString(s.Message, inner)
	case s.RightText == "":
		content = utils.TruncateString(s.LeftText, inner)
	default:
		gap := inner - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
		if gap > 0 {
			content = s.LeftText + strings.Repeat(" ", gap) + s.RightText
		} else {
			content = utils.TruncateString(s.LeftText, inner)
		}
	}
	return style.Render(content)
}

func (s *StatusBar) style() lipgloss.Style {
	if s.Message == "" {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	default:
		return design.StatusBarInfoStyle
	}
}
