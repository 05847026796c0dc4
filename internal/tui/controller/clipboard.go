package controller

import (
	"fmt"
	"strings"

	"microengineer/internal/entry"
	"microengineer/internal/layout"
	"microengineer/internal/staging"
	"microengineer/internal/tui/model"
	"microengineer/internal/units"
	"microengineer/pkg/logging"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is a variable so tests can capture copied text.
var clipboardWriteAll = clipboard.WriteAll

func copyFocusedPanel(m *model.Model) (*model.Model, tea.Cmd) {
	p := m.Focused()
	if p == nil {
		return m, nil
	}
	text := panelText(m.Layout, p)
	if err := clipboardWriteAll(text); err != nil {
		logging.Error(tuiSubsystem, err, "Failed to copy %s to the clipboard", p.Name)
		return m, m.SetStatusMessage("Clipboard unavailable", model.StatusBarError)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("Copied %s to the clipboard", p.Name), model.StatusBarSuccess)
}

// panelText renders the current values of p as plain text.
func panelText(l *layout.Layout, p *layout.Panel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Name)
	for _, e := range l.Resolve(p) {
		switch {
		case !e.Visible():
		case e.IsSeparator():
			b.WriteString("\n")
		case e.Kind == entry.KindFlightStages:
			for _, r := range staging.FlightRows(e.Value().Stages) {
				fmt.Fprintf(&b, "Stage %s: %s m/s, TWR %s, %s\n", r.Label,
					units.FormatNumberValue(r.DeltaV, 0, units.FormatNumber),
					units.FormatNumberValue(r.TWR, 2, units.FormatFixed),
					r.BurnTimeDisplay)
			}
		case e.Kind == entry.KindAssemblyStages:
			for _, r := range l.StageTable().Rows() {
				fmt.Fprintf(&b, "Stage %s (%s): %s m/s ASL, %s m/s vac, TWR %s/%s, %s\n", r.Label, r.BodyLabel,
					units.FormatNumberValue(r.DeltaVASL, 0, units.FormatNumber),
					units.FormatNumberValue(r.DeltaVVac, 0, units.FormatNumber),
					units.FormatNumberValue(r.TWRASL, 2, units.FormatFixed),
					units.FormatNumberValue(r.TWRVac, 2, units.FormatFixed),
					r.BurnTimeDisplay)
			}
		default:
			fmt.Fprintf(&b, "%s: %s\n", e.Name, e.Display())
		}
	}
	return b.String()
}
