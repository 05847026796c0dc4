package celestial

import "math"

// Body is a reference body for TWR and sea-level recomputation.
type Body struct {
	Name          string
	DisplayName   string
	GravParameter float64 // μ, m^3/s^2
	Radius        float64 // m
	Atmosphere    *Profile
}

// SurfaceGravity is μ/r² in m/s². Degenerate bodies report zero.
func (b Body) SurfaceGravity() float64 {
	if b.Radius <= 0 || b.GravParameter <= 0 {
		return 0
	}
	return b.GravParameter / (b.Radius * b.Radius)
}

// HasAtmosphere reports whether the body has a non-zero surface density.
func (b Body) HasAtmosphere() bool {
	return b.SurfaceDensity() > 0
}

// SurfaceDensity is the atmospheric density at sea level, zero when airless.
func (b Body) SurfaceDensity() float64 {
	if b.Atmosphere == nil {
		return 0
	}
	d := b.Atmosphere.SeaLevelDensity()
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	return d
}

// Label is the name shown to users.
func (b Body) Label() string {
	if b.DisplayName != "" {
		return b.DisplayName
	}
	return b.Name
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}
