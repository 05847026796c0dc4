// Package staging turns per-stage propulsion records into the rows shown in
// the stage tables.
//
// Records come from the host's delta-v solution with TWR computed against
// the reference body's gravity and ASL figures against the reference
// atmosphere. ComputeRow re-derives them for another body: TWR is rescaled by
// the gravity ratio and the sea-level thrust and Isp are blended between the
// vacuum and reference-ASL endpoints by the ratio of surface densities.
//
// Stages whose vacuum and ASL delta-v are both below MinDeltaV are
// non-propulsive (decouplers, clamps) and never produce a row.
package staging
