package config

import (
	"time"
)

// Config is the top-level configuration structure for microengineer.
type Config struct {
	Dashboard DashboardSettings `yaml:"dashboard"`
	Bodies    BodySettings      `yaml:"bodies"`
	Telemetry TelemetrySettings `yaml:"telemetry"`

	LogLevel         string `yaml:"logLevel,omitempty"`         // debug, info, warn or error
	MetricsAddress   string `yaml:"metricsAddress,omitempty"`   // e.g. "localhost:9090"; empty disables /metrics
	UpdateRepository string `yaml:"updateRepository,omitempty"` // owner/repo used by self-update
}

// DashboardSettings control the dashboard tick and layout.
type DashboardSettings struct {
	RefreshInterval time.Duration `yaml:"refreshInterval,omitempty"` // tick period
	LayoutFile      string        `yaml:"layoutFile,omitempty"`      // defaults to the user config dir
	StartContext    string        `yaml:"startContext,omitempty"`    // flight, map or editor
}

// BodySettings select the celestial bodies used for TWR and ASL figures.
type BodySettings struct {
	ReferenceBody string `yaml:"referenceBody,omitempty"`
	CatalogueFile string `yaml:"catalogueFile,omitempty"` // optional YAML catalogue replacing the built-in system
}

// TelemetrySettings pick the telemetry source.
type TelemetrySettings struct {
	ReplayFile string  `yaml:"replayFile,omitempty"` // replay recorded snapshots instead of simulating
	TimeWarp   float64 `yaml:"timeWarp,omitempty"`   // simulated seconds per real second
}
