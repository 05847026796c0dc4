package view

import (
	"strings"
	"testing"

	"microengineer/internal/celestial"
	"microengineer/internal/entry"
	"microengineer/internal/layout"
	"microengineer/internal/telemetry"
	"microengineer/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderModel(t *testing.T, ctx layout.Context) *model.Model {
	t.Helper()
	bodies := celestial.NewTable(celestial.Builtin, celestial.DefaultReference)
	kerbin, err := bodies.Reference()
	require.NoError(t, err)

	sim := telemetry.NewSimulator(kerbin, telemetry.DefaultVehicle())
	m := model.InitializeModel(model.Options{
		Layout:   layout.New(bodies),
		Bodies:   bodies,
		Source:   sim,
		Context:  ctx,
		TimeWarp: 1,
	})
	m.Width, m.Height = 160, 60
	m.LastSnapshot = sim.Snapshot()
	m.LastStats = m.Layout.Refresh(m.LastSnapshot, ctx)
	return m
}

func TestRender_FlightDashboard(t *testing.T) {
	m := newRenderModel(t, layout.ContextFlight)
	out := Render(m)

	for _, want := range []string{"Micro Engineer", "flight", "Vessel", "[ORB]", "Kerbal X", "1:VES", "Stg"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Stage (OAB)", "editor panel is not shown in flight")
}

func TestRender_NoDataPlaceholder(t *testing.T) {
	m := newRenderModel(t, layout.ContextFlight)
	m.Layout.Refresh(nil, layout.ContextFlight)
	out := Render(m)

	assert.Contains(t, out, "Apoapsis")
	assert.Contains(t, out, " - ")
}

func TestRender_EditorStageTable(t *testing.T) {
	m := newRenderModel(t, layout.ContextEditor)
	out := Render(m)

	assert.Contains(t, out, "Stage (OAB)")
	assert.Contains(t, out, "SLT")
	assert.Contains(t, out, "02")
	assert.Contains(t, out, "03")
	assert.Contains(t, out, "Kerbin")
	assert.NotContains(t, out, "1:VES", "main window is closed in the editor")
}

func TestRender_EmptyContext(t *testing.T) {
	m := newRenderModel(t, layout.ContextEditor)
	soab, ok := m.Layout.PanelByRole(layout.RoleAssemblyStage)
	require.True(t, ok)
	soab.SetActive(layout.ContextEditor, false)

	assert.Contains(t, Render(m), "No panels open")
}

func TestRender_EditModeListsEntries(t *testing.T) {
	m := newRenderModel(t, layout.ContextFlight)
	m.CurrentAppMode = model.ModeEdit
	out := Render(m)

	assert.Contains(t, out, " 1 Vessel")
	assert.Contains(t, out, "editing")
}

func TestRender_Overlays(t *testing.T) {
	m := newRenderModel(t, layout.ContextFlight)

	m.CurrentAppMode = model.ModeAddEntry
	m.PickerCategory = entry.Orbital
	out := Render(m)
	assert.Contains(t, out, "Add entry to Vessel")
	assert.Contains(t, out, "[Orbital]")

	m.CurrentAppMode = model.ModeRename
	assert.Contains(t, Render(m), "Rename Vessel [VES]")

	m.CurrentAppMode = model.ModeHelpOverlay
	assert.Contains(t, Render(m), "copy values")

	m.CurrentAppMode = model.ModeQuitting
	assert.Contains(t, Render(m), "shutting down")
}

func TestRender_SettingsPanel(t *testing.T) {
	m := newRenderModel(t, layout.ContextFlight)
	settings, ok := m.Layout.PanelByRole(layout.RoleSettings)
	require.True(t, ok)
	settings.SetActive(layout.ContextFlight, true)

	out := Render(m)
	assert.Contains(t, out, "Reference body")
	assert.Contains(t, out, "Torque (OAB)")
}

func TestPrepareLogContent(t *testing.T) {
	assert.Contains(t, PrepareLogContent(nil, 40), "No activity")

	lines := []string{"12:00:00 [WARN] Layout: " + strings.Repeat("x", 80)}
	out := PrepareLogContent(lines, 40)
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "...")
}
