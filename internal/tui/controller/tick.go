package controller

import (
	"time"

	"microengineer/internal/metrics"
	"microengineer/internal/telemetry"
	"microengineer/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleTick advances a simulated source, refreshes what the current context
// shows and schedules the next tick.
func handleTick(m *model.Model) (*model.Model, tea.Cmd) {
	start := time.Now()

	if m.Stepper != nil && !m.Paused {
		m.Stepper.Step(m.RefreshInterval.Seconds() * m.TimeWarp)
	}

	var snap *telemetry.Snapshot
	if m.Source != nil {
		snap = m.Source.Snapshot()
	}
	stats := m.Layout.Refresh(snap, m.Context)
	if stats.StagesUpdated {
		metrics.StageRecomputed(metrics.ReasonSolution)
	}

	m.TickDuration = time.Since(start)
	metrics.ObserveTick(m.Context.String(), m.TickDuration, stats.Entries, stats.NoData)

	m.LastSnapshot = snap
	m.LastStats = stats
	m.LastTick = start
	m.ClampFocus()
	return m, model.TickCmd(m.RefreshInterval)
}
