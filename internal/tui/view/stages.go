package view

import (
	"strings"

	"microengineer/internal/entry"
	"microengineer/internal/staging"
	"microengineer/internal/tui/design"
	"microengineer/internal/tui/model"
	"microengineer/internal/tui/utils"
	"microengineer/internal/units"
)

type column struct {
	title string
	width int
	left  bool
}

func (c column) cell(s string) string {
	if c.left {
		return utils.PadRight(s, c.width)
	}
	return utils.PadLeft(s, c.width)
}

// tableLine joins cells; the last column takes the remaining width.
func tableLine(cols []column, cells []string, width int) string {
	parts := make([]string, len(cols))
	used := 0
	for i, c := range cols {
		if i == len(cols)-1 {
			c.width = width - used
			if c.width < 1 {
				c.width = 1
			}
		}
		parts[i] = c.cell(cells[i])
		used += c.width + 1
	}
	return utils.TruncateString(strings.Join(parts, " "), width)
}

func tableHeader(cols []column, width int) string {
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	return design.TableHeaderStyle.Render(tableLine(cols, titles, width))
}

func speed(v float64) string {
	if units.IsMissing(v) {
		return units.Placeholder
	}
	return units.FormatNumberValue(v, 0, units.FormatNumber) + " m/s"
}

func twr(v float64, decimals int) string {
	return units.FormatNumberValue(v, decimals, units.FormatFixed)
}

var flightColumns = []column{
	{title: "Stg", width: 3, left: true},
	{title: "∆v", width: 12},
	{title: "TWR", width: 7},
	{title: "Burn", width: 9},
}

func flightStageLines(e *entry.Entry, width int) []string {
	v := e.Value()
	if v.Missing() {
		return []string{utils.Columns(e.Name, units.Placeholder, width)}
	}
	rows := staging.FlightRows(v.Stages)
	if len(rows) == 0 {
		return []string{design.TextMutedStyle.Render("No propulsive stages")}
	}
	decimals := staging.TWRDecimals(staging.FlightTWRs(rows))

	lines := []string{tableHeader(flightColumns, width)}
	for _, r := range rows {
		lines = append(lines, tableLine(flightColumns, []string{
			r.Label,
			speed(r.DeltaV),
			twr(r.TWR, decimals),
			r.BurnTimeDisplay,
		}, width))
	}
	return lines
}

var assemblyColumns = []column{
	{title: "Stg", width: 3, left: true},
	{title: "TWR", width: 6},
	{title: "SLT", width: 6},
	{title: "∆v ASL", width: 10},
	{title: "∆v Vac", width: 10},
	{title: "Burn", width: 7},
	{title: "Body", width: 8, left: true},
}

func assemblyStageLines(m *model.Model, width int, focused bool) []string {
	table := m.Layout.StageTable()
	rows := table.Rows()
	if len(rows) == 0 {
		return []string{design.TextMutedStyle.Render("No propulsive stages")}
	}
	decimals := table.TWRDecimals()

	lines := []string{tableHeader(assemblyColumns, width)}
	for i, r := range rows {
		line := tableLine(assemblyColumns, []string{
			r.Label,
			twr(r.TWRVac, decimals),
			twr(r.TWRASL, decimals),
			speed(r.DeltaVASL),
			speed(r.DeltaVVac),
			r.BurnTimeDisplay,
			r.BodyLabel,
		}, width)
		if focused && i == m.Cursor {
			line = design.EntrySelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}
