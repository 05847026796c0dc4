package entry

import (
	"math"

	"microengineer/internal/telemetry"
	"microengineer/internal/units"
)

// minDrag below which the lift/drag ratio is undefined, kN.
const minDrag = 1e-6

var flightEntries = []constructor{
	func() *Entry {
		return &Entry{
			Name: "Speed", Description: "Speed relative to the surface.",
			Category: Flight, IsDefault: true,
			Units: surfaceSpeedUnits(), Decimals: 1, Format: units.FormatNumber,
			refresh: number(vesselOf, func(v *telemetry.Vessel) float64 { return v.SurfaceSpeed }),
		}
	},
	flightNumber("Mach number", "Speed as a multiple of the local speed of sound.", true, units.Spec{}, 2,
		func(v *telemetry.Vessel) float64 { return v.Mach }),
	flightNumber("G-Force", "Acceleration felt by the crew.", true, baseUnit("g"), 3,
		func(v *telemetry.Vessel) float64 { return v.GeeForce }),
	aeroNumber("AoA", "Angle of attack.", true, baseUnit("°"), 2,
		func(a *telemetry.Aero) float64 { return a.AngleOfAttack }),
	aeroNumber("Sideslip", "Angle between the nose and the airflow in the horizontal plane.", true, baseUnit("°"), 2,
		func(a *telemetry.Aero) float64 { return a.Sideslip }),
	flightNumber("Heading", "Compass heading of the nose.", true, baseUnit("°"), 1,
		func(v *telemetry.Vessel) float64 { return v.Heading }),
	flightNumber("Pitch", "Angle of the nose above the horizon.", true, baseUnit("°"), 1,
		func(v *telemetry.Vessel) float64 { return v.Pitch }),
	flightNumber("Roll", "Bank angle.", false, baseUnit("°"), 1,
		func(v *telemetry.Vessel) float64 { return v.Roll }),
	flightNumber("Yaw", "Heading of the nose relative to north.", false, baseUnit("°"), 1,
		func(v *telemetry.Vessel) float64 { return v.Yaw }),
	flightNumber("Zenith", "Angle between the nose and straight up.", false, baseUnit("°"), 1,
		func(v *telemetry.Vessel) float64 { return v.Zenith }),
	aeroNumber("Total lift", "Aerodynamic lift on the vessel.", true, forceUnits(), 2,
		func(a *telemetry.Aero) float64 { return a.Lift * 1000 }),
	aeroNumber("Total drag", "Aerodynamic drag on the vessel.", true, forceUnits(), 2,
		func(a *telemetry.Aero) float64 { return a.Drag * 1000 }),
	aeroNumber("Lift / Drag", "Ratio of lift to drag.", true, units.Spec{}, 3,
		func(a *telemetry.Aero) float64 {
			if math.Abs(a.Drag) < minDrag {
				return math.NaN()
			}
			return a.Lift / a.Drag
		}),
	aeroNumber("Drag coefficient", "Drag coefficient of the vessel.", false, units.Spec{}, 2,
		func(a *telemetry.Aero) float64 { return a.DragCoefficient }),
	aeroNumber("Exposed area", "Cross-section exposed to the airflow.", false, baseUnit("m²"), 2,
		func(a *telemetry.Aero) float64 { return a.ExposedArea }),
	flightNumber("Atm. density", "Density of the surrounding atmosphere.", true, densityUnits(), 3,
		func(v *telemetry.Vessel) float64 { return v.AtmosphericDensity }),
	flightNumber("Speed of sound", "Local speed of sound.", false, speedUnits(), 1,
		func(v *telemetry.Vessel) float64 { return v.SoundSpeed }),
	flightNumber("Static pressure", "Pressure of the surrounding atmosphere.", false, pressureUnits(), 2,
		func(v *telemetry.Vessel) float64 { return v.StaticPressure }),
	flightNumber("Dynamic pressure", "Pressure of the airflow on the vessel (Q).", false, pressureUnits(), 2,
		func(v *telemetry.Vessel) float64 { return v.DynamicPressure }),
}

func flightNumber(name, desc string, def bool, spec units.Spec, decimals int, get func(*telemetry.Vessel) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Flight, IsDefault: def,
			Units: spec, Decimals: decimals, Format: units.FormatNumber,
			refresh: number(vesselOf, get),
		}
	}
}

func aeroNumber(name, desc string, def bool, spec units.Spec, decimals int, get func(*telemetry.Aero) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Flight, IsDefault: def,
			Units: spec, Decimals: decimals, Format: units.FormatNumber,
			refresh: number(aeroOf, get),
		}
	}
}
