// Package entry holds the computed telemetry values shown in panels and the
// registry that builds them.
//
// Every variant is a plain *Entry configured by a constructor in the static
// constructors list: a category tag, a Kind that selects how the value is
// displayed, unit metadata and a refresh strategy reading one value out of a
// telemetry.Snapshot. Refresh never fails; a strategy that finds its part of
// the snapshot missing returns NoData and the display falls back to the
// placeholder.
//
// BuildAll instantiates every constructor once. Each call returns a fresh,
// independent Set, which is how a layout reset gets pristine entries.
package entry
