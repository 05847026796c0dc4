// Package telemetry defines the read-only snapshot of simulation state that
// every entry refresh receives, and the sources that produce it.
//
// Each optional part of a Snapshot is a pointer: nil means the host has no
// data for it this frame (no active vessel, no target, no maneuver node).
// Entries read what they need from the snapshot and fall back to their
// no-data value otherwise.
//
// Two sources ship with the package. Simulator flies a small staged rocket
// from the reference body's surface so the dashboard has live data without a
// game attached. Replay cycles through snapshots recorded in a YAML file.
package telemetry
