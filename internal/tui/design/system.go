package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing follows a 4px base unit.
const (
	SpaceXS = 1
	SpaceSM = 2

	MinPanelHeight = 4
	MinPanelWidth  = 24

	// PanelWidth is the preferred width of an entry panel.
	PanelWidth = 38
	// StageTableWidth fits the widest stage table.
	StageTableWidth = 64
)

var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
)

var (
	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	// Entries

	EntryNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	EntryValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	EntryUnitStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	EntryNoDataStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	EntrySelectedStyle = lipgloss.NewStyle().
				Background(ColorHighlight)

	// Panels

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelStyle = BorderStyle.
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorBorderFocus)

	PanelPoppedOutStyle = PanelStyle.
				BorderStyle(lipgloss.DoubleBorder())

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, SpaceXS)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Underline(true)

	// Status bar

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarSuccessStyle = StatusBarStyle.
				Foreground(ColorSuccess)

	StatusBarErrorStyle = StatusBarStyle.
				Foreground(ColorError)

	StatusBarWarningStyle = StatusBarStyle.
				Foreground(ColorWarning)

	StatusBarInfoStyle = StatusBarStyle.
				Foreground(ColorInfo)

	// Overlays

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(SpaceXS, SpaceSM)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceSM)

	ListItemSelectedStyle = ListItemStyle.
				Foreground(ColorPrimary).
				Bold(true)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)
