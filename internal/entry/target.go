package entry

import (
	"microengineer/internal/telemetry"
	"microengineer/internal/units"
)

var targetEntries = []constructor{
	func() *Entry {
		return &Entry{
			Name: "Target", Description: "Name of the selected target.",
			Category: Target, Kind: KindText, IsDefault: true,
			refresh: text(targetOf, func(t *telemetry.Target) string { return t.Name }),
		}
	},
	targetNumber("Target Ap.", "Apoapsis of the target's orbit.", true, distanceUnits(), 3,
		func(t *telemetry.Target) float64 { return t.Apoapsis }),
	targetNumber("Target Pe.", "Periapsis of the target's orbit.", true, distanceUnits(), 3,
		func(t *telemetry.Target) float64 { return t.Periapsis }),
	targetNumber("Distance to target", "Straight-line distance to the target.", true, distanceUnits(), 3,
		func(t *telemetry.Target) float64 { return t.Distance }),
	targetNumber("Rel. speed", "Speed relative to the target.", true, speedUnits(), 1,
		func(t *telemetry.Target) float64 { return t.RelativeSpeed }),
	targetNumber("Rel. inclination", "Angle between the two orbital planes.", false, baseUnit("°"), 3,
		func(t *telemetry.Target) float64 { return t.RelativeInclination }),
	targetNumber("Closest approach", "Smallest distance to the target on the current orbit.", true, distanceUnits(), 3,
		func(t *telemetry.Target) float64 { return t.ClosestApproach }),
	func() *Entry {
		return &Entry{
			Name: "Time to C/A", Description: "Time until the closest approach.",
			Category: Target, Kind: KindDuration, IsDefault: true,
			refresh: number(targetOf, func(t *telemetry.Target) float64 { return t.TimeToClosestApproach }),
		}
	},
}

var maneuverEntries = []constructor{
	maneuverNumber("∆v required", "Delta-v of the next maneuver node.", true, baseUnit("m/s"), 1,
		func(m *telemetry.Maneuver) float64 { return m.DeltaV }),
	maneuverNumber("∆v prograde", "Prograde component of the node.", false, baseUnit("m/s"), 1,
		func(m *telemetry.Maneuver) float64 { return m.Prograde }),
	maneuverNumber("∆v normal", "Normal component of the node.", false, baseUnit("m/s"), 1,
		func(m *telemetry.Maneuver) float64 { return m.Normal }),
	maneuverNumber("∆v radial", "Radial component of the node.", false, baseUnit("m/s"), 1,
		func(m *telemetry.Maneuver) float64 { return m.Radial }),
	maneuverDuration("Time to node", "Time until the maneuver node.", true,
		func(m *telemetry.Maneuver) float64 { return m.TimeToNode }),
	maneuverDuration("Node burn time", "Time needed to execute the node.", true,
		func(m *telemetry.Maneuver) float64 { return m.BurnTime }),
	maneuverNumber("Projected Ap.", "Apoapsis after the node.", true, distanceUnits(), 3,
		func(m *telemetry.Maneuver) float64 { return m.ProjectedApoapsis }),
	maneuverNumber("Projected Pe.", "Periapsis after the node.", true, distanceUnits(), 3,
		func(m *telemetry.Maneuver) float64 { return m.ProjectedPeriapsis }),
}

func targetNumber(name, desc string, def bool, spec units.Spec, decimals int, get func(*telemetry.Target) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Target, IsDefault: def,
			Units: spec, Decimals: decimals, Format: units.FormatNumber,
			refresh: number(targetOf, get),
		}
	}
}

func maneuverNumber(name, desc string, def bool, spec units.Spec, decimals int, get func(*telemetry.Maneuver) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Maneuver, IsDefault: def,
			Units: spec, Decimals: decimals, Format: units.FormatNumber,
			refresh: number(maneuverOf, get),
		}
	}
}

func maneuverDuration(name, desc string, def bool, get func(*telemetry.Maneuver) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Maneuver, Kind: KindDuration, IsDefault: def,
			refresh: number(maneuverOf, get),
		}
	}
}
