package entry

import (
	"microengineer/internal/staging"
	"microengineer/internal/telemetry"
	"microengineer/internal/units"
)

var vesselEntries = []constructor{
	func() *Entry {
		return &Entry{
			Name: "Vessel", Description: "Name of the active vessel.",
			Category: Vessel, Kind: KindText, IsDefault: true,
			refresh: text(vesselOf, func(v *telemetry.Vessel) string { return v.Name }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Mass", Description: "Total mass of the vessel.",
			Category: Vessel, IsDefault: true,
			Units: massUnits(), Decimals: 2, Format: units.FormatNumber,
			refresh: number(vesselOf, func(v *telemetry.Vessel) float64 { return v.Mass * 1000 }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Total ∆v (Actual)", Description: "Delta-v left in the current environment.",
			Category: Vessel, IsDefault: true,
			Units: baseUnit("m/s"), Decimals: 0, Format: units.FormatNumber,
			refresh: number(deltaVOf, func(d *telemetry.DeltaV) float64 { return d.TotalDeltaVActual }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Total ∆v (ASL)", Description: "Delta-v left at sea level of the reference body.",
			Category: Vessel,
			Units:    baseUnit("m/s"), Decimals: 0, Format: units.FormatNumber,
			refresh: number(deltaVOf, func(d *telemetry.DeltaV) float64 { return d.TotalDeltaVASL }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Total ∆v (Vac)", Description: "Delta-v left in vacuum.",
			Category: Vessel,
			Units:    baseUnit("m/s"), Decimals: 0, Format: units.FormatNumber,
			refresh: number(deltaVOf, func(d *telemetry.DeltaV) float64 { return d.TotalDeltaVVac }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Total burn time", Description: "Burn time of all remaining stages.",
			Category: Vessel, Kind: KindDuration,
			refresh: number(deltaVOf, func(d *telemetry.DeltaV) float64 { return d.TotalBurnTime }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Parts", Description: "Number of parts on the vessel.",
			Category: Vessel,
			Decimals: 0, Format: units.FormatNumber,
			refresh: number(deltaVOf, func(d *telemetry.DeltaV) float64 { return float64(d.PartCount) }),
		}
	},
	stageFigure("Thrust", "Thrust of the current stage in the current environment.", true, forceUnits(), 2,
		func(s *staging.Stage) float64 { return s.ThrustActual * 1000 }),
	stageFigure("Thrust (ASL)", "Thrust of the current stage at sea level.", false, forceUnits(), 2,
		func(s *staging.Stage) float64 { return s.ThrustASL * 1000 }),
	stageFigure("Thrust (Vac)", "Thrust of the current stage in vacuum.", false, forceUnits(), 2,
		func(s *staging.Stage) float64 { return s.ThrustVac * 1000 }),
	stageFigure("TWR", "Thrust-to-weight ratio of the current stage.", true, units.Spec{}, 2,
		func(s *staging.Stage) float64 { return s.TWRActual }),
	stageFigure("TWR (ASL)", "Sea-level thrust-to-weight ratio of the current stage.", false, units.Spec{}, 2,
		func(s *staging.Stage) float64 { return s.TWRASL }),
	stageFigure("TWR (Vac)", "Vacuum thrust-to-weight ratio of the current stage.", false, units.Spec{}, 2,
		func(s *staging.Stage) float64 { return s.TWRVac }),
	stageFigure("ISP", "Specific impulse of the current stage in the current environment.", false, baseUnit("s"), 0,
		func(s *staging.Stage) float64 { return s.IspActual }),
	stageFigure("ISP (ASL)", "Sea-level specific impulse of the current stage.", false, baseUnit("s"), 0,
		func(s *staging.Stage) float64 { return s.IspASL }),
	stageFigure("ISP (Vac)", "Vacuum specific impulse of the current stage.", false, baseUnit("s"), 0,
		func(s *staging.Stage) float64 { return s.IspVac }),
}

// stageFigure reads a figure of the stage that fires next.
func stageFigure(name, desc string, def bool, spec units.Spec, decimals int, get func(*staging.Stage) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Vessel, IsDefault: def,
			Units: spec, Decimals: decimals, Format: units.FormatNumber,
			refresh: number(currentStageOf, get),
		}
	}
}
