package entry

import (
	"math"

	"microengineer/internal/telemetry"
	"microengineer/internal/units"
)

// Names of entries other packages look up directly.
const (
	StageInfoName         = "Stage info"
	AssemblyStageInfoName = "Stage info (OAB)"
	TorqueName            = "Torque"
	SeparatorName         = "Separator"
)

var stageEntries = []constructor{
	func() *Entry {
		return &Entry{
			Name: StageInfoName, Description: "Delta-v, TWR and burn time of every propulsive stage.",
			Category: Stage, Kind: KindFlightStages, IsDefault: true,
			refresh: stages(deltaVOf),
		}
	},
}

var assemblyEntries = []constructor{
	func() *Entry {
		return &Entry{
			Name: AssemblyStageInfoName, Description: "Stage table of the vessel in the editor, per selected body.",
			Category: OAB, Kind: KindAssemblyStages, IsDefault: true,
			refresh: stages(assemblyDeltaVOf),
		}
	},
	assemblyNumber("Total ∆v Vac (OAB)", "Vacuum delta-v of the assembly.", true, baseUnit("m/s"), 0,
		func(d *telemetry.DeltaV) float64 { return d.TotalDeltaVVac }),
	assemblyNumber("Total ∆v ASL (OAB)", "Sea-level delta-v of the assembly.", true, baseUnit("m/s"), 0,
		func(d *telemetry.DeltaV) float64 { return d.TotalDeltaVASL }),
	func() *Entry {
		return &Entry{
			Name: "Total burn time (OAB)", Description: "Burn time of all stages of the assembly.",
			Category: OAB, Kind: KindDuration, IsDefault: true,
			refresh: number(assemblyDeltaVOf, func(d *telemetry.DeltaV) float64 { return d.TotalBurnTime }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Assembly mass", Description: "Wet mass of the assembly.",
			Category: OAB,
			Units:    massUnits(), Decimals: 2, Format: units.FormatNumber,
			refresh: number(assemblyOf, func(a *telemetry.Assembly) float64 { return a.Mass * 1000 }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: TorqueName, Description: "Torque available from reaction wheels.",
			Category: OAB, IsDefault: true, Toggleable: true,
			Units: torqueUnits(), Decimals: 2, Format: units.FormatNumber,
			refresh: number(assemblyOf, func(a *telemetry.Assembly) float64 {
				if a.Torque == nil {
					return math.NaN()
				}
				return *a.Torque * 1000
			}),
		}
	},
}

var miscEntries = []constructor{
	func() *Entry {
		return &Entry{
			Name: "Universal time", Description: "Time elapsed in the simulation.",
			Category: Misc, Kind: KindDuration,
			refresh: number(snapshotOf, func(s *telemetry.Snapshot) float64 { return s.UniversalTime }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: SeparatorName, Description: "Empty row for grouping entries.",
			Category: Misc, Kind: KindSeparator,
		}
	},
}

func assemblyNumber(name, desc string, def bool, spec units.Spec, decimals int, get func(*telemetry.DeltaV) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: OAB, IsDefault: def,
			Units: spec, Decimals: decimals, Format: units.FormatNumber,
			refresh: number(assemblyDeltaVOf, get),
		}
	}
}
