// Package config provides configuration management for microengineer.
//
// This package implements a layered configuration system. Configuration is
// loaded from multiple sources and merged in order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - Provides working defaults for all settings
//
//  2. User Configuration (~/.config/microengineer/config.yaml)
//     - Personal preferences that apply everywhere
//
//  3. Project Configuration (./.microengineer/config.yaml)
//     - Settings for one working directory, e.g. a recorded flight
//
// Fields left empty in a layer keep the value of the layer below.
//
// # Configuration Structure
//
//	dashboard:
//	  refreshInterval: 250ms
//	  layoutFile: ~/.config/microengineer/layout.yaml
//	  startContext: flight
//	bodies:
//	  referenceBody: Kerbin
//	  catalogueFile: ./bodies.yaml
//	telemetry:
//	  replayFile: ./ascent.yaml
//	  timeWarp: 4
//	logLevel: info
//	metricsAddress: localhost:9090
//	updateRepository: microengineer/microengineer
//
// The layout file is not part of this configuration; it is owned by the
// layout package and rewritten whenever the dashboard exits.
package config
