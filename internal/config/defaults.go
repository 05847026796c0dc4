package config

import (
	"time"
)

const (
	DefaultRefreshInterval  = 250 * time.Millisecond
	DefaultReferenceBody    = "Kerbin"
	DefaultUpdateRepository = "microengineer/microengineer"
	layoutFileName          = "layout.yaml"
)

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		Dashboard: DashboardSettings{
			RefreshInterval: DefaultRefreshInterval,
			StartContext:    "flight",
		},
		Bodies: BodySettings{
			ReferenceBody: DefaultReferenceBody,
		},
		Telemetry: TelemetrySettings{
			TimeWarp: 1,
		},
		LogLevel:         "info",
		UpdateRepository: DefaultUpdateRepository,
	}
}
