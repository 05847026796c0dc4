package entry

import (
	"math"

	"microengineer/internal/telemetry"
	"microengineer/internal/units"
)

var orbitalEntries = []constructor{
	orbitDistance("Apoapsis", "Highest point of the orbit above sea level.", true,
		func(o *telemetry.Orbit) float64 { return o.Apoapsis }),
	orbitDuration("Time to Ap.", "Time until the vessel reaches apoapsis.", true,
		func(o *telemetry.Orbit) float64 { return o.TimeToApoapsis }),
	orbitDistance("Periapsis", "Lowest point of the orbit above sea level.", true,
		func(o *telemetry.Orbit) float64 { return o.Periapsis }),
	orbitDuration("Time to Pe.", "Time until the vessel reaches periapsis.", true,
		func(o *telemetry.Orbit) float64 { return o.TimeToPeriapsis }),
	func() *Entry {
		return &Entry{
			Name: "Inclination", Description: "Angle between the orbital plane and the equator.",
			Category: Orbital, IsDefault: true,
			Units: baseUnit("°"), Decimals: 3, Format: units.FormatNumber,
			refresh: number(orbitOf, func(o *telemetry.Orbit) float64 { return o.Inclination }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Eccentricity", Description: "Deviation of the orbit from a circle.",
			Category: Orbital, IsDefault: true,
			Decimals: 3, Format: units.FormatNumber,
			refresh: number(orbitOf, func(o *telemetry.Orbit) float64 { return o.Eccentricity }),
		}
	},
	orbitDuration("Period", "Time for one full orbit.", true,
		func(o *telemetry.Orbit) float64 { return o.Period }),
	func() *Entry {
		return &Entry{
			Name: "Orbital speed", Description: "Speed relative to the orbited body.",
			Category: Orbital, IsDefault: true,
			Units: speedUnits(), Decimals: 1, Format: units.FormatNumber,
			refresh: number(orbitOf, func(o *telemetry.Orbit) float64 { return o.OrbitalSpeed }),
		}
	},
	orbitDistance("Semi-major axis", "Half of the orbit's longest diameter.", false,
		func(o *telemetry.Orbit) float64 { return o.SemiMajorAxis }),
	func() *Entry {
		return &Entry{
			Name: "SOI transition", Description: "Time until the vessel leaves the sphere of influence.",
			Category: Orbital, Kind: KindDuration, IsDefault: true,
			refresh: number(orbitOf, func(o *telemetry.Orbit) float64 {
				if o.SOITransition == nil {
					return math.NaN()
				}
				return *o.SOITransition
			}),
		}
	},
}

var surfaceEntries = []constructor{
	func() *Entry {
		return &Entry{
			Name: "Body", Description: "Body the vessel is currently orbiting.",
			Category: Surface, Kind: KindText, IsDefault: true,
			refresh: text(vesselOf, func(v *telemetry.Vessel) string { return v.MainBody }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Situation", Description: "Flight situation of the vessel.",
			Category: Surface, Kind: KindText, IsDefault: true,
			refresh: text(vesselOf, func(v *telemetry.Vessel) string { return v.Situation }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Biome", Description: "Biome below the vessel.",
			Category: Surface, Kind: KindText, IsDefault: true,
			refresh: text(vesselOf, func(v *telemetry.Vessel) string { return v.Biome }),
		}
	},
	surfaceNumber("Altitude (Sea level)", "Altitude above sea level.", true, distanceUnits(), 0,
		func(v *telemetry.Vessel) float64 { return v.AltitudeSeaLevel }),
	surfaceNumber("Altitude (Ground)", "Altitude above the terrain.", true, distanceUnits(), 0,
		func(v *telemetry.Vessel) float64 { return v.AltitudeTerrain }),
	surfaceNumber("Vertical speed", "Rate of climb.", true, speedUnits(), 1,
		func(v *telemetry.Vessel) float64 { return v.VerticalSpeed }),
	surfaceNumber("Horizontal speed", "Speed parallel to the surface.", true, speedUnits(), 1,
		func(v *telemetry.Vessel) float64 { return v.HorizontalSpeed }),
	func() *Entry {
		return &Entry{
			Name: "Latitude", Description: "Latitude of the vessel.",
			Category: Surface, Kind: KindLatitude, IsDefault: true,
			refresh: number(vesselOf, func(v *telemetry.Vessel) float64 { return v.Latitude }),
		}
	},
	func() *Entry {
		return &Entry{
			Name: "Longitude", Description: "Longitude of the vessel.",
			Category: Surface, Kind: KindLongitude, IsDefault: true,
			refresh: number(vesselOf, func(v *telemetry.Vessel) float64 { return v.Longitude }),
		}
	},
}

func orbitDistance(name, desc string, def bool, get func(*telemetry.Orbit) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Orbital, IsDefault: def,
			Units: distanceUnits(), Decimals: 3, Format: units.FormatNumber,
			refresh: number(orbitOf, get),
		}
	}
}

func orbitDuration(name, desc string, def bool, get func(*telemetry.Orbit) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Orbital, Kind: KindDuration, IsDefault: def,
			refresh: number(orbitOf, get),
		}
	}
}

func surfaceNumber(name, desc string, def bool, spec units.Spec, decimals int, get func(*telemetry.Vessel) float64) constructor {
	return func() *Entry {
		return &Entry{
			Name: name, Description: desc,
			Category: Surface, IsDefault: def,
			Units: spec, Decimals: decimals, Format: units.FormatNumber,
			refresh: number(vesselOf, get),
		}
	}
}
