package cmd

import (
	"bytes"
	"errors"
	"testing"

	"microengineer/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "microengineer", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "microengineer version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "microengineer version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, want := range []string{"dashboard", "stages", "bodies", "entries", "layout", "record", "version", "self-update"} {
		assert.True(t, found[want], "subcommand %s should be registered", want)
	}
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "0.4.0"

	var buf bytes.Buffer
	c := newVersionCmd()
	c.SetOut(&buf)
	c.SetArgs(nil)
	require.NoError(t, c.Execute())
	assert.Equal(t, "microengineer version 0.4.0\n", buf.String())
}

func TestLoadConfig_Error(t *testing.T) {
	original := configLoader
	defer func() { configLoader = original }()
	configLoader = func() (config.Config, error) { return config.Config{}, errors.New("bad yaml") }

	_, err := loadConfig(&cobra.Command{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestLoadConfig_LogLevelFlagOverrides(t *testing.T) {
	useDefaultConfig(t)

	c := &cobra.Command{Use: "x"}
	c.Flags().StringVar(&logLevel, "log-level", "warn", "")
	require.NoError(t, c.ParseFlags([]string{"--log-level", "debug"}))
	defer func() { logLevel = "warn" }()

	cfg, err := loadConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewBodyTable(t *testing.T) {
	cfg := config.GetDefaultConfig()
	bodies, err := newBodyTable(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Kerbin", bodies.ReferenceName())

	cfg.Bodies.ReferenceBody = "Nowhere"
	_, err = newBodyTable(cfg)
	assert.Error(t, err)

	cfg = config.GetDefaultConfig()
	cfg.Bodies.CatalogueFile = "/does/not/exist.yaml"
	_, err = newBodyTable(cfg)
	assert.Error(t, err)
}
