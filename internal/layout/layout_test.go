package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microengineer/internal/celestial"
	"microengineer/internal/entry"
	"microengineer/internal/staging"
	"microengineer/internal/telemetry"
)

func newLayout(t *testing.T) *Layout {
	t.Helper()
	return New(celestial.NewTable(celestial.Builtin, celestial.DefaultReference))
}

func panel(t *testing.T, l *Layout, name string) *Panel {
	t.Helper()
	p, ok := l.Panel(name)
	require.True(t, ok, "panel %s", name)
	return p
}

func TestDefaults(t *testing.T) {
	l := newLayout(t)

	vessel := panel(t, l, "Vessel")
	assert.Equal(t, "VES", vessel.Abbreviation)
	assert.True(t, vessel.IsActive(ContextFlight))
	assert.False(t, vessel.IsActive(ContextEditor))
	for _, e := range l.Resolve(vessel) {
		assert.Equal(t, entry.Vessel, e.Category)
		assert.True(t, e.IsDefault)
	}

	assert.False(t, panel(t, l, "Flight").IsActive(ContextFlight))

	oab := panel(t, l, "Stage (OAB)")
	assert.True(t, oab.IsActive(ContextEditor))
	assert.True(t, oab.IsPoppedOut(ContextEditor))
	assert.Equal(t, entry.AssemblyStageInfoName, oab.Entries()[0])
}

func TestEditablePanels(t *testing.T) {
	l := newLayout(t)
	var names []string
	for _, p := range l.EditablePanels() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Vessel", "Orbital", "Surface", "Flight", "Target", "Maneuver"}, names)

	custom := l.CreatePanel()
	assert.Contains(t, l.EditablePanels(), custom)
}

func TestMoveEntry_BoundariesAreNoOps(t *testing.T) {
	l := newLayout(t)
	p := panel(t, l, "Orbital")
	before := p.Entries()

	require.NoError(t, l.MoveEntryUp(p, 0))
	assert.Equal(t, before, p.Entries())

	require.NoError(t, l.MoveEntryDown(p, p.Len()-1))
	assert.Equal(t, before, p.Entries())

	require.NoError(t, l.MoveEntryDown(p, 0))
	assert.Equal(t, before[1], p.Entries()[0])
	assert.Equal(t, before[0], p.Entries()[1])

	require.NoError(t, l.MoveEntryUp(p, 1))
	assert.Equal(t, before, p.Entries())

	assert.ErrorIs(t, l.MoveEntryUp(p, p.Len()), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.MoveEntryDown(p, -1), ErrIndexOutOfRange)
}

func TestAddRemoveEntry(t *testing.T) {
	l := newLayout(t)
	p := l.CreatePanel()

	require.NoError(t, l.AddEntry(p, "Apoapsis"))
	require.NoError(t, l.AddEntry(p, entry.SeparatorName))
	require.NoError(t, l.AddEntry(p, entry.SeparatorName))
	assert.ErrorIs(t, l.AddEntry(p, "Apoapsis"), ErrDuplicateEntry)
	assert.ErrorIs(t, l.AddEntry(p, "Warp drive"), ErrUnknownEntry)
	assert.Equal(t, []string{"Apoapsis", entry.SeparatorName, entry.SeparatorName}, p.Entries())

	require.NoError(t, l.RemoveEntry(p, 0))
	assert.Equal(t, []string{entry.SeparatorName, entry.SeparatorName}, p.Entries())
	assert.ErrorIs(t, l.RemoveEntry(p, 2), ErrIndexOutOfRange)

	stage := panel(t, l, "Stage")
	assert.ErrorIs(t, l.AddEntry(stage, "Apoapsis"), ErrPanelNotEditable)
}

func TestSharedEntriesResolveToOneInstance(t *testing.T) {
	l := newLayout(t)
	p := l.CreatePanel()
	require.NoError(t, l.AddEntry(p, "Apoapsis"))

	orbital := l.Resolve(panel(t, l, "Orbital"))[0]
	custom := l.Resolve(p)[0]
	assert.Same(t, orbital, custom)
}

func TestCreatePanel_ReusesLowestSuffix(t *testing.T) {
	l := newLayout(t)

	c1 := l.CreatePanel()
	c2 := l.CreatePanel()
	c3 := l.CreatePanel()
	assert.Equal(t, "Custom1", c1.Name)
	assert.Equal(t, "Custom2", c2.Name)
	assert.Equal(t, "Custom3", c3.Name)
	assert.Equal(t, "Cu2", c2.Abbreviation)

	require.NoError(t, l.DeletePanel(c2))
	next := l.CreatePanel()
	assert.Equal(t, "Custom2", next.Name)

	assert.True(t, next.IsActive(ContextFlight))
	assert.False(t, next.IsActive(ContextMap))
	assert.False(t, next.IsActive(ContextEditor))
	assert.NotEqual(t, c2.ID, next.ID)
}

func TestCustomAbbreviation(t *testing.T) {
	assert.Equal(t, "Cu7", customAbbreviation(7))
	assert.Equal(t, "C12", customAbbreviation(12))
	assert.Equal(t, "123", customAbbreviation(123))
	for _, n := range []int{1, 42, 999} {
		assert.NoError(t, ValidateAbbreviation(customAbbreviation(n)))
	}
}

func TestDeletePanel_SpecialPanelsStay(t *testing.T) {
	l := newLayout(t)
	count := len(l.Panels())

	for _, name := range []string{"Micro Engineer", "Settings", "Vessel", "Stage", "Stage (OAB)"} {
		assert.ErrorIs(t, l.DeletePanel(panel(t, l, name)), ErrPanelNotDeletable, name)
	}
	assert.Len(t, l.Panels(), count)
}

func TestValidateAbbreviation(t *testing.T) {
	assert.NoError(t, ValidateAbbreviation("ORB"))
	assert.NoError(t, ValidateAbbreviation("SOAB"))
	assert.ErrorIs(t, ValidateAbbreviation(""), ErrInvalidAbbrev)
	assert.ErrorIs(t, ValidateAbbreviation("TOOLONG"), ErrInvalidAbbrev)
	assert.ErrorIs(t, ValidateAbbreviation("A B"), ErrInvalidAbbrev)
}

func TestRenamePanel(t *testing.T) {
	l := newLayout(t)
	p := l.CreatePanel()

	require.NoError(t, l.RenamePanel(p, "Docking", "DOK"))
	assert.Equal(t, "Docking", p.Name)
	assert.ErrorIs(t, l.RenamePanel(p, "Vessel", "VES"), ErrInvalidName)
	assert.ErrorIs(t, l.RenamePanel(p, "Docking", "D-K"), ErrInvalidAbbrev)
	assert.ErrorIs(t, l.RenamePanel(panel(t, l, "Settings"), "Prefs", "PRF"), ErrPanelNotEditable)
}

func TestLockedPoppedOutPanelCannotClose(t *testing.T) {
	l := newLayout(t)
	p := l.CreatePanel()
	p.SetPoppedOut(ContextFlight, true)
	p.Locked = true

	assert.False(t, p.SetActive(ContextFlight, false))
	assert.True(t, p.IsActive(ContextFlight))
	assert.False(t, p.SetRect(ContextFlight, Rect{X: 3}))

	p.Locked = false
	assert.True(t, p.SetActive(ContextFlight, false))
}

func TestResetToDefaults(t *testing.T) {
	l := newLayout(t)
	original := l.Document()

	l.CreatePanel()
	orbital := panel(t, l, "Orbital")
	require.NoError(t, l.RemoveEntry(orbital, 0))
	l.SetTorque(true)
	oldSet := l.Entries()

	l.ResetToDefaults()

	assert.NotSame(t, oldSet, l.Entries(), "fresh registry")
	assert.False(t, l.TorqueEnabled())
	reset := l.Document()
	require.Len(t, reset.Panels, len(original.Panels))
	for i := range reset.Panels {
		assert.Equal(t, original.Panels[i].Name, reset.Panels[i].Name)
		assert.Equal(t, original.Panels[i].Entries, reset.Panels[i].Entries)
		assert.Equal(t, original.Panels[i].Contexts, reset.Panels[i].Contexts)
	}
}

func TestRefresh(t *testing.T) {
	l := newLayout(t)
	body, err := celestial.NewTable(celestial.Builtin, celestial.DefaultReference).Reference()
	require.NoError(t, err)
	sim := telemetry.NewSimulator(body, telemetry.DefaultVehicle())
	sim.Step(5)

	stats := l.Refresh(sim.Snapshot(), ContextFlight)
	assert.Greater(t, stats.Entries, 0)
	assert.Greater(t, stats.NoData, 0, "no target or maneuver")
	assert.False(t, stats.StagesUpdated, "editor panels are inactive in flight")

	apo, _ := l.Entries().Get("Apoapsis")
	assert.False(t, apo.Value().Missing())

	flight, _ := l.Entries().Get("Speed")
	assert.True(t, flight.Value().Missing(), "inactive panels are not refreshed")

	stats = l.Refresh(nil, ContextFlight)
	assert.Equal(t, stats.Entries, stats.NoData)
}

func TestRefresh_AssemblyStageTable(t *testing.T) {
	l := newLayout(t)
	snap := &telemetry.Snapshot{Assembly: &telemetry.Assembly{
		Revision: 1,
		DeltaV: &telemetry.DeltaV{Stages: []staging.Stage{
			{Stage: 0, DeltaVVac: 1500, DeltaVASL: 1200, TWRVac: 2.1, ThrustVac: 200, ThrustASL: 180, IspVac: 320, IspASL: 280},
			{Stage: 1, DeltaVVac: 0.00001, DeltaVASL: 0.00001},
		}},
	}}

	stats := l.Refresh(snap, ContextEditor)
	require.True(t, stats.StagesUpdated)
	rows := l.StageTable().Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "02", rows[0].Label)

	require.NoError(t, l.StageTable().SelectBody(0, "Mun"))
	stats = l.Refresh(snap, ContextEditor)
	assert.False(t, stats.StagesUpdated, "same revision")
	sel, _ := l.StageTable().Selection(0)
	assert.Equal(t, "Mun", sel)
}

func TestTorqueToggleHidesEntry(t *testing.T) {
	l := newLayout(t)
	tq := 5.0
	snap := &telemetry.Snapshot{Assembly: &telemetry.Assembly{Torque: &tq}}

	l.Refresh(snap, ContextEditor)
	torque, _ := l.Entries().Get(entry.TorqueName)
	assert.True(t, torque.Value().Missing())

	l.SetTorque(true)
	l.Refresh(snap, ContextEditor)
	assert.False(t, torque.Value().Missing())
}

func TestPersistence_RoundTrip(t *testing.T) {
	l := newLayout(t)
	custom := l.CreatePanel()
	require.NoError(t, l.AddEntry(custom, "Mass"))
	require.NoError(t, l.AddEntry(custom, "Apoapsis"))
	custom.SetPoppedOut(ContextFlight, true)
	custom.SetRect(ContextFlight, Rect{X: 10, Y: 2, Width: 40})
	custom.Locked = true
	require.NoError(t, l.MoveEntryDown(panel(t, l, "Vessel"), 0))
	l.SetTorque(true)
	speed, _ := l.Entries().Get("Speed")
	speed.SetAltUnit(true)

	path := filepath.Join(t.TempDir(), "nested", "layout.yaml")
	require.NoError(t, l.Save(path))

	restored := newLayout(t)
	require.NoError(t, restored.Load(path))

	assert.Equal(t, l.Document(), restored.Document())
	assert.True(t, restored.TorqueEnabled())
	rc := panel(t, restored, "Custom1")
	assert.Equal(t, custom.ID, rc.ID)
	assert.True(t, rc.Locked)
	assert.Equal(t, Rect{X: 10, Y: 2, Width: 40}, rc.State(ContextFlight).Rect)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	l := newLayout(t)
	require.NoError(t, l.Load(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Len(t, l.Panels(), 10)
}

func TestLoad_RecoversFromBadRecords(t *testing.T) {
	l := newLayout(t)
	err := l.Unmarshal([]byte(`
version: "` + Version + `"
panels:
  - name: Orbital
    abbreviation: ORB
    role: category
    contexts:
      flight: {active: true}
      hyperspace: {active: true}
    entries: [Apoapsis, Warp factor, Periapsis, Apoapsis]
  - name: ""
    abbreviation: X
    role: custom
  - name: Broken
    abbreviation: TOOLONG
    role: custom
  - name: Weird
    abbreviation: W
    role: gadget
  - name: Orbital
    abbreviation: OR2
    role: category
`))
	require.NoError(t, err)

	orbital := panel(t, l, "Orbital")
	assert.Equal(t, []string{"Apoapsis", "Periapsis"}, orbital.Entries())
	assert.True(t, orbital.IsActive(ContextFlight))

	for _, r := range []Role{RoleMain, RoleSettings, RoleStage, RoleAssemblyStage} {
		_, ok := l.PanelByRole(r)
		assert.True(t, ok, "restored %s panel", r)
	}
	assert.Len(t, l.Panels(), 5)
	_, ok := l.Panel("Vessel")
	assert.False(t, ok, "category panels are not restored")
}

func TestLoad_SkipsRecordWithBadFieldType(t *testing.T) {
	l := newLayout(t)
	err := l.Unmarshal([]byte(`
version: "` + Version + `"
panels:
  - name: Orbital
    abbreviation: ORB
    role: category
    contexts:
      flight: {active: true}
    entries: [Apoapsis, Periapsis]
  - name: Custom2
    abbreviation: Cu2
    role: custom
    locked: maybe
  - name: Custom1
    abbreviation: Cu1
    role: custom
    locked: true
    entries: [Mass]
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Apoapsis", "Periapsis"}, panel(t, l, "Orbital").Entries())
	custom := panel(t, l, "Custom1")
	assert.True(t, custom.Locked)
	assert.Equal(t, []string{"Mass"}, custom.Entries())

	_, ok := l.Panel("Custom2")
	assert.False(t, ok)
	assert.Len(t, l.Panels(), 6)
}

func TestLoad_VersionMismatchIgnored(t *testing.T) {
	l := newLayout(t)
	before := l.Document()

	err := l.Unmarshal([]byte("version: \"0.9\"\npanels: []\n"))
	assert.ErrorIs(t, err, ErrLayoutVersion)
	assert.Equal(t, before, l.Document())
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panels: [oops"), 0644))

	l := newLayout(t)
	assert.Error(t, l.Load(path))
	assert.Len(t, l.Panels(), 10)
}
