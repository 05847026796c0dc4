package celestial

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// ProfilePoint is one density sample of an atmosphere.
type ProfilePoint struct {
	Altitude float64 `yaml:"altitude"` // m above sea level
	Density  float64 `yaml:"density"`  // kg/m^3
}

// Profile is an atmospheric density-vs-altitude curve.
type Profile struct {
	points []ProfilePoint
	curve  *interp.PiecewiseLinear
}

// NewProfile builds a profile from samples in any order. Altitudes must be
// distinct and densities non-negative.
func NewProfile(points []ProfilePoint) (*Profile, error) {
	if len(points) == 0 {
		return nil, errors.New("atmosphere profile needs at least one sample")
	}

	sorted := make([]ProfilePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Altitude < sorted[j].Altitude })

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, p := range sorted {
		if math.IsNaN(p.Density) || p.Density < 0 {
			return nil, fmt.Errorf("invalid density %v at altitude %v", p.Density, p.Altitude)
		}
		if i > 0 && p.Altitude == sorted[i-1].Altitude {
			return nil, fmt.Errorf("duplicate altitude %v in atmosphere profile", p.Altitude)
		}
		xs[i], ys[i] = p.Altitude, p.Density
	}

	profile := &Profile{points: sorted}
	if len(sorted) > 1 {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("fitting atmosphere profile: %w", err)
		}
		profile.curve = &pl
	}
	return profile, nil
}

// ExponentialProfile samples rho0*exp(-h/scaleHeight) from sea level up to
// top, where density is forced to zero.
func ExponentialProfile(rho0, scaleHeight, top float64) *Profile {
	const samples = 8
	points := make([]ProfilePoint, 0, samples+1)
	for i := 0; i < samples; i++ {
		h := top * float64(i) / samples
		points = append(points, ProfilePoint{Altitude: h, Density: rho0 * math.Exp(-h/scaleHeight)})
	}
	points = append(points, ProfilePoint{Altitude: top, Density: 0})

	p, err := NewProfile(points)
	if err != nil {
		panic(err)
	}
	return p
}

// DensityAt returns the density at altitude; altitudes outside the sampled
// range clamp to the nearest sample.
func (p *Profile) DensityAt(altitude float64) float64 {
	if p == nil {
		return 0
	}
	if p.curve == nil {
		return p.points[0].Density
	}
	return p.curve.Predict(altitude)
}

// SeaLevelDensity is the density at altitude zero.
func (p *Profile) SeaLevelDensity() float64 {
	return p.DensityAt(0)
}

// Points returns a copy of the samples in ascending altitude order.
func (p *Profile) Points() []ProfilePoint {
	if p == nil {
		return nil
	}
	out := make([]ProfilePoint, len(p.points))
	copy(out, p.points)
	return out
}

// Top is the highest sampled altitude, zero for an airless body.
func (p *Profile) Top() float64 {
	if p == nil || len(p.points) == 0 {
		return 0
	}
	return p.points[len(p.points)-1].Altitude
}
