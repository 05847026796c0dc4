package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// mockPaths points both config layers into tempDir and restores them after
// the test.
func mockPaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	originalOsUserHomeDir := osUserHomeDir
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
		osUserHomeDir = originalOsUserHomeDir
	})

	osUserHomeDir = func() (string, error) { return tempDir, nil }
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, 250*time.Millisecond, loaded.Dashboard.RefreshInterval)
	assert.Equal(t, "Kerbin", loaded.Bodies.ReferenceBody)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), `
dashboard:
  refreshInterval: 1s
bodies:
  referenceBody: Duna
logLevel: debug
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Second, loaded.Dashboard.RefreshInterval)
	assert.Equal(t, "Duna", loaded.Bodies.ReferenceBody)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, "flight", loaded.Dashboard.StartContext, "unset fields keep defaults")
	assert.Equal(t, DefaultUpdateRepository, loaded.UpdateRepository)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), `
bodies:
  referenceBody: Duna
metricsAddress: localhost:9000
`)
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), `
bodies:
  referenceBody: Eve
telemetry:
  replayFile: ascent.yaml
  timeWarp: 4
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Eve", loaded.Bodies.ReferenceBody)
	assert.Equal(t, "localhost:9000", loaded.MetricsAddress)
	assert.Equal(t, "ascent.yaml", loaded.Telemetry.ReplayFile)
	assert.Equal(t, 4.0, loaded.Telemetry.TimeWarp)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)
	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), "dashboard: [oops")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)
	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), `
dashboard:
  refreshInterval: 1ms
  startContext: orbit
`)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refreshInterval")
	assert.Contains(t, err.Error(), "startContext")
}

func TestLoadConfig_UnresolvableHome(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLayoutPath(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	cfg := GetDefaultConfig()
	path, err := cfg.LayoutPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, userConfigDir, layoutFileName), path)

	cfg.Dashboard.LayoutFile = "~/layouts/mine.yaml"
	path, err = cfg.LayoutPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "layouts", "mine.yaml"), path)

	cfg.Bodies.CatalogueFile = "/etc/bodies.yaml"
	path, err = cfg.CataloguePath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/bodies.yaml", path)
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(GetDefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "refreshInterval: 250ms")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, GetDefaultConfig(), decoded)
}
