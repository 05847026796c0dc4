package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"microengineer/internal/config"
	"microengineer/internal/layout"
	"microengineer/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useDefaultConfig makes loadConfig return the built-in configuration with
// the layout stored under a temporary directory.
func useDefaultConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Dashboard.LayoutFile = filepath.Join(t.TempDir(), "layout.yaml")

	original := configLoader
	configLoader = func() (config.Config, error) { return cfg, nil }
	t.Cleanup(func() { configLoader = original })
	return cfg
}

func execute(t *testing.T, c *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)
	require.NoError(t, c.Execute(), buf.String())
	return buf.String()
}

func TestBodiesCommand(t *testing.T) {
	useDefaultConfig(t)

	var bodies []bodyOutput
	require.NoError(t, json.Unmarshal([]byte(execute(t, newBodiesCmd(), "-o", "json")), &bodies))
	require.NotEmpty(t, bodies)

	byName := make(map[string]bodyOutput)
	for _, b := range bodies {
		byName[b.Name] = b
	}
	kerbin := byName["Kerbin"]
	assert.True(t, kerbin.Reference)
	assert.Equal(t, 1.0, kerbin.TWRFactor)
	assert.Greater(t, kerbin.SurfaceDensity, 0.0)

	mun := byName["Mun"]
	assert.Greater(t, mun.TWRFactor, 1.0)
	assert.Zero(t, mun.SurfaceDensity)
}

func TestBodiesCommand_TableAndExport(t *testing.T) {
	useDefaultConfig(t)

	out := execute(t, newBodiesCmd())
	assert.Contains(t, out, "Kerbin *")
	assert.Contains(t, out, "Mun")

	exported := execute(t, newBodiesCmd(), "--export")
	assert.Contains(t, exported, "Kerbin")
	assert.Contains(t, exported, "gravParameter")
}

func TestEntriesCommand(t *testing.T) {
	useDefaultConfig(t)

	var entries []entryOutput
	out := execute(t, newEntriesCmd(), "--category", "orbital", "-o", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		assert.Equal(t, "Orbital", e.Category)
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "Apoapsis")
}

func TestEntriesCommand_UnknownCategory(t *testing.T) {
	useDefaultConfig(t)

	c := newEntriesCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--category", "nope"})
	assert.Error(t, c.Execute())
}

func stageRows(t *testing.T, args ...string) map[string]stageRowOutput {
	t.Helper()
	var rows []stageRowOutput
	out := execute(t, newStagesCmd(), append(args, "-o", "json")...)
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	byLabel := make(map[string]stageRowOutput)
	for _, r := range rows {
		byLabel[r.Stage] = r
	}
	return byLabel
}

func TestStagesCommand_ReferenceBody(t *testing.T) {
	useDefaultConfig(t)

	rows := stageRows(t)
	require.Len(t, rows, 2)
	for _, label := range []string{"02", "03"} {
		r, ok := rows[label]
		require.True(t, ok, "stage %s", label)
		assert.Equal(t, "Kerbin", r.Body)
		assert.Greater(t, r.DeltaVVac, 0.0)
	}
}

func TestStagesCommand_BodySelection(t *testing.T) {
	useDefaultConfig(t)

	kerbin := stageRows(t)
	mun := stageRows(t, "--body", "Mun")
	for label, r := range mun {
		assert.Equal(t, "Mun", r.Body)
		assert.Greater(t, r.TWR, kerbin[label].TWR)
	}

	mixed := stageRows(t, "--select", "2=Mun")
	assert.Equal(t, "Mun", mixed["02"].Body)
	assert.Equal(t, "Kerbin", mixed["03"].Body)
}

func TestStagesCommand_Errors(t *testing.T) {
	useDefaultConfig(t)

	for _, args := range [][]string{
		{"--select", "09=Mun"},
		{"--body", "Nowhere"},
		{"-o", "xml"},
	} {
		c := newStagesCmd()
		c.SetOut(&bytes.Buffer{})
		c.SetErr(&bytes.Buffer{})
		c.SetArgs(args)
		assert.Error(t, c.Execute(), "%v", args)
	}
}

func TestStagesCommand_Flight(t *testing.T) {
	useDefaultConfig(t)

	out := execute(t, newStagesCmd(), "--flight", "--time", "5")
	assert.Contains(t, out, "Flight stages")
	assert.Contains(t, out, "STG")
}

func TestRecordAndReplay(t *testing.T) {
	useDefaultConfig(t)
	path := filepath.Join(t.TempDir(), "launch.yaml")

	execute(t, newRecordCmd(), "--duration", "10", "--interval", "5", "-o", path)

	replay, err := telemetry.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 3, replay.Len())

	first := replay.Snapshot()
	assert.Zero(t, first.UniversalTime)
	assert.InDelta(t, 5, replay.Snapshot().UniversalTime, 1e-6)

	out := execute(t, newStagesCmd(), "--replay", path)
	assert.Contains(t, out, "Kerbal X")
}

func TestRecordCommand_RejectsBadInterval(t *testing.T) {
	useDefaultConfig(t)

	c := newRecordCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--interval", "0"})
	assert.Error(t, c.Execute())
}

func TestLayoutCommands(t *testing.T) {
	cfg := useDefaultConfig(t)

	assert.Equal(t, cfg.Dashboard.LayoutFile+"\n", execute(t, newLayoutCmd(), "path"))

	execute(t, newLayoutCmd(), "reset")
	_, err := os.Stat(cfg.Dashboard.LayoutFile)
	require.NoError(t, err)

	out := execute(t, newLayoutCmd(), "show")
	assert.Contains(t, out, "Vessel")
	assert.Contains(t, out, "flight")

	doc := execute(t, newLayoutCmd(), "show", "-o", "yaml")
	assert.Contains(t, doc, "version:")
	assert.Contains(t, doc, "Stage (OAB)")
}

func TestLayoutCommand_FlagOverridesConfig(t *testing.T) {
	useDefaultConfig(t)
	path := filepath.Join(t.TempDir(), "other.yaml")

	assert.Equal(t, path+"\n", execute(t, newLayoutCmd(), "path", "--layout", path))
}

func TestPrepareDashboard(t *testing.T) {
	cfg := useDefaultConfig(t)

	opts := &dashboardOptions{}
	c := &cobra.Command{Use: "dashboard"}
	addDashboardFlags(c, opts)
	require.NoError(t, c.ParseFlags([]string{"--context", "editor", "--warp", "4", "--no-save"}))

	setup, err := prepareDashboard(c, opts)
	require.NoError(t, err)
	assert.Equal(t, layout.ContextEditor, setup.options.Context)
	assert.Equal(t, 4.0, setup.options.TimeWarp)
	assert.Equal(t, config.DefaultRefreshInterval, setup.options.RefreshInterval)
	assert.Empty(t, setup.options.LayoutPath, "--no-save leaves no path to save to")
	assert.Equal(t, cfg.Dashboard.LayoutFile, setup.layoutPath)
	assert.IsType(t, &telemetry.Simulator{}, setup.options.Source)
	assert.NotNil(t, setup.options.Layout)
}

func TestPrepareDashboard_Errors(t *testing.T) {
	useDefaultConfig(t)

	for _, args := range [][]string{
		{"--context", "orbit"},
		{"--replay", "/does/not/exist.yaml"},
		{"--body", "Nowhere"},
		{"--refresh", "1ms"},
	} {
		opts := &dashboardOptions{}
		c := &cobra.Command{Use: "dashboard"}
		addDashboardFlags(c, opts)
		require.NoError(t, c.ParseFlags(args))

		_, err := prepareDashboard(c, opts)
		assert.Error(t, err, "%v", args)
	}
}
