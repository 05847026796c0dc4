package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"microengineer/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/microengineer"
	projectConfigDir = ".microengineer"
	configFileName   = "config.yaml"
	minRefresh       = 10 * time.Millisecond
)

// LoadConfig loads the configuration by layering default, user and project
// settings.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Dashboard.RefreshInterval != 0 {
		merged.Dashboard.RefreshInterval = overlay.Dashboard.RefreshInterval
	}
	if overlay.Dashboard.LayoutFile != "" {
		merged.Dashboard.LayoutFile = overlay.Dashboard.LayoutFile
	}
	if overlay.Dashboard.StartContext != "" {
		merged.Dashboard.StartContext = overlay.Dashboard.StartContext
	}

	if overlay.Bodies.ReferenceBody != "" {
		merged.Bodies.ReferenceBody = overlay.Bodies.ReferenceBody
	}
	if overlay.Bodies.CatalogueFile != "" {
		merged.Bodies.CatalogueFile = overlay.Bodies.CatalogueFile
	}

	if overlay.Telemetry.ReplayFile != "" {
		merged.Telemetry.ReplayFile = overlay.Telemetry.ReplayFile
	}
	if overlay.Telemetry.TimeWarp != 0 {
		merged.Telemetry.TimeWarp = overlay.Telemetry.TimeWarp
	}

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.MetricsAddress != "" {
		merged.MetricsAddress = overlay.MetricsAddress
	}
	if overlay.UpdateRepository != "" {
		merged.UpdateRepository = overlay.UpdateRepository
	}

	return merged
}

// Validate rejects settings the dashboard cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Dashboard.RefreshInterval < minRefresh {
		errs = append(errs, fmt.Errorf("dashboard.refreshInterval must be at least %s, got %s", minRefresh, c.Dashboard.RefreshInterval))
	}
	switch strings.ToLower(c.Dashboard.StartContext) {
	case "", "flight", "map", "editor":
	default:
		errs = append(errs, fmt.Errorf("dashboard.startContext must be flight, map or editor, got %q", c.Dashboard.StartContext))
	}
	if c.Telemetry.TimeWarp < 0 {
		errs = append(errs, fmt.Errorf("telemetry.timeWarp must not be negative, got %g", c.Telemetry.TimeWarp))
	}
	return errors.Join(errs...)
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LayoutPath is the layout file, defaulting to the user config directory.
func (c Config) LayoutPath() (string, error) {
	if c.Dashboard.LayoutFile != "" {
		return expandHome(c.Dashboard.LayoutFile)
	}
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, layoutFileName), nil
}

// CataloguePath is the expanded body catalogue path, empty when unset.
func (c Config) CataloguePath() (string, error) {
	if c.Bodies.CatalogueFile == "" {
		return "", nil
	}
	return expandHome(c.Bodies.CatalogueFile)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
