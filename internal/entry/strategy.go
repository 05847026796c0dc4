package entry

import (
	"microengineer/internal/staging"
	"microengineer/internal/telemetry"
	"microengineer/internal/units"
)

// number reads a float from one optional part of the snapshot.
func number[T any](part func(*telemetry.Snapshot) *T, get func(*T) float64) RefreshFunc {
	return func(s *telemetry.Snapshot) Value {
		if s == nil {
			return NoData
		}
		p := part(s)
		if p == nil {
			return NoData
		}
		return Num(get(p))
	}
}

// text reads a string from one optional part of the snapshot.
func text[T any](part func(*telemetry.Snapshot) *T, get func(*T) string) RefreshFunc {
	return func(s *telemetry.Snapshot) Value {
		if s == nil {
			return NoData
		}
		p := part(s)
		if p == nil {
			return NoData
		}
		return Str(get(p))
	}
}

// stages reads a stage list from one optional delta-v solution.
func stages(part func(*telemetry.Snapshot) *telemetry.DeltaV) RefreshFunc {
	return func(s *telemetry.Snapshot) Value {
		if s == nil {
			return NoData
		}
		dv := part(s)
		if dv == nil {
			return NoData
		}
		if dv.Stages == nil {
			return StageList([]staging.Stage{})
		}
		return StageList(dv.Stages)
	}
}

func vesselOf(s *telemetry.Snapshot) *telemetry.Vessel     { return s.Vessel }
func deltaVOf(s *telemetry.Snapshot) *telemetry.DeltaV     { return s.DeltaV }
func aeroOf(s *telemetry.Snapshot) *telemetry.Aero         { return s.Aero }
func orbitOf(s *telemetry.Snapshot) *telemetry.Orbit       { return s.Orbit }
func targetOf(s *telemetry.Snapshot) *telemetry.Target     { return s.Target }
func maneuverOf(s *telemetry.Snapshot) *telemetry.Maneuver { return s.Maneuver }
func assemblyOf(s *telemetry.Snapshot) *telemetry.Assembly { return s.Assembly }
func snapshotOf(s *telemetry.Snapshot) *telemetry.Snapshot { return s }

func currentStageOf(s *telemetry.Snapshot) *staging.Stage {
	return s.DeltaV.Current()
}

func assemblyDeltaVOf(s *telemetry.Snapshot) *telemetry.DeltaV {
	if s.Assembly == nil {
		return nil
	}
	return s.Assembly.DeltaV
}

func distanceUnits() units.Spec {
	return units.Spec{Milli: "mm", Base: "m", Kilo: "km", Mega: "Mm", Giga: "Gm"}
}

func speedUnits() units.Spec {
	return units.Spec{Milli: "mm/s", Base: "m/s", Kilo: "km/s", Mega: "Mm/s"}
}

func surfaceSpeedUnits() units.Spec {
	return units.Spec{Base: "m/s", Alt: &units.AltUnit{Symbol: "km/h", Factor: 3.6}}
}

func forceUnits() units.Spec {
	return units.Spec{Milli: "mN", Base: "N", Kilo: "kN", Mega: "MN", Giga: "GN"}
}

func massUnits() units.Spec {
	return units.Spec{Milli: "g", Base: "kg", Kilo: "t", Mega: "kt", Giga: "Mt"}
}

func densityUnits() units.Spec {
	return units.Spec{Milli: "mg/L", Base: "g/L", Kilo: "kg/L"}
}

func pressureUnits() units.Spec {
	return units.Spec{Milli: "mPa", Base: "Pa", Kilo: "kPa", Mega: "MPa"}
}

func torqueUnits() units.Spec {
	return units.Spec{Base: "N·m", Kilo: "kN·m", Mega: "MN·m"}
}

func baseUnit(symbol string) units.Spec {
	return units.Spec{Base: symbol}
}
