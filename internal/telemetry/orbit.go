package telemetry

import "math"

type orbitElements struct {
	apoapsis        float64
	periapsis       float64
	semiMajorAxis   float64
	eccentricity    float64
	period          float64
	timeToApoapsis  float64
	timeToPeriapsis float64
}

// computeElements derives planar orbital elements from a state vector given
// as altitude and horizontal/vertical velocity. Escape trajectories report
// NaN for the apoapsis, period and time to apoapsis.
func computeElements(mu, radius, alt, vx, vy float64) orbitElements {
	nan := math.NaN()
	r := radius + alt
	if mu <= 0 || r <= 0 {
		return orbitElements{nan, nan, nan, nan, nan, nan, nan}
	}

	v2 := vx*vx + vy*vy
	energy := v2/2 - mu/r
	angular := r * vx
	e := math.Sqrt(math.Max(0, 1+2*energy*angular*angular/(mu*mu)))

	el := orbitElements{eccentricity: e}
	if energy >= 0 {
		p := angular * angular / mu
		el.apoapsis = nan
		el.periapsis = p/(1+e) - radius
		el.semiMajorAxis = nan
		el.period = nan
		el.timeToApoapsis = nan
		el.timeToPeriapsis = nan
		return el
	}

	a := -mu / (2 * energy)
	el.semiMajorAxis = a
	el.apoapsis = a*(1+e) - radius
	el.periapsis = a*(1-e) - radius
	el.period = 2 * math.Pi * math.Sqrt(a*a*a/mu)

	meanMotion := math.Sqrt(mu / (a * a * a))
	m := meanAnomaly(a, e, r, vy)
	el.timeToApoapsis = (math.Pi - m) / meanMotion
	if m < 0 {
		el.timeToPeriapsis = -m / meanMotion
	} else {
		el.timeToPeriapsis = (2*math.Pi - m) / meanMotion
	}
	return el
}

// meanAnomaly is in (-π, π]; negative while falling towards periapsis.
func meanAnomaly(a, e, r, radialSpeed float64) float64 {
	if e < 1e-9 {
		return 0
	}
	cosE := math.Max(-1, math.Min(1, (1-r/a)/e))
	ecc := math.Acos(cosE)
	if radialSpeed < 0 {
		ecc = -ecc
	}
	return ecc - e*math.Sin(ecc)
}
