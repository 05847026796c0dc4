package telemetry

import (
	"math"

	"microengineer/internal/staging"
)

// StandardGravity converts Isp in seconds into exhaust velocity.
const StandardGravity = 9.80665

// StageSpec is one stage of a Vehicle. Masses are in tonnes, thrust in kN
// and Isp in seconds. A stage without thrust only separates.
type StageSpec struct {
	Name      string  `yaml:"name"`
	Parts     int     `yaml:"parts"`
	DryMass   float64 `yaml:"dryMass"`
	FuelMass  float64 `yaml:"fuelMass"`
	ThrustVac float64 `yaml:"thrustVac"`
	ThrustASL float64 `yaml:"thrustASL"`
	IspVac    float64 `yaml:"ispVac"`
	IspASL    float64 `yaml:"ispASL"`
}

// Vehicle is a rocket whose stages are listed in firing order.
type Vehicle struct {
	Name         string      `yaml:"name"`
	PayloadMass  float64     `yaml:"payloadMass"`
	PayloadParts int         `yaml:"payloadParts"`
	Stages       []StageSpec `yaml:"stages"`
}

// DefaultVehicle is a two-stage orbital launcher held down by clamps.
func DefaultVehicle() Vehicle {
	return Vehicle{
		Name:         "Kerbal X",
		PayloadMass:  2.5,
		PayloadParts: 5,
		Stages: []StageSpec{
			{Name: "Launch clamps", Parts: 4},
			{Name: "Booster", Parts: 12, DryMass: 4, FuelMass: 32, ThrustVac: 1500, ThrustASL: 1379, IspVac: 310, IspASL: 285},
			{Name: "Upper stage", Parts: 8, DryMass: 1.5, FuelMass: 8, ThrustVac: 60, ThrustASL: 14.78, IspVac: 345, IspASL: 85},
		},
	}
}

// FullFuel is the fuel load of every stage at launch.
func (v Vehicle) FullFuel() []float64 {
	fuel := make([]float64, len(v.Stages))
	for i, s := range v.Stages {
		fuel[i] = s.FuelMass
	}
	return fuel
}

// Mass is the total mass with stages from first on and the given fuel.
func (v Vehicle) Mass(first int, fuel []float64) float64 {
	m := v.PayloadMass
	for k := first; k < len(v.Stages); k++ {
		m += v.Stages[k].DryMass + fuel[k]
	}
	return m
}

// Solve computes the delta-v solution for the stages from first on.
// densityRatio blends actual thrust and Isp between vacuum (0) and sea level
// (1); gRef is the reference body's surface gravity used for TWR.
func (v Vehicle) Solve(first int, fuel []float64, densityRatio, gRef float64) *DeltaV {
	n := len(v.Stages)
	dv := &DeltaV{PartCount: v.PayloadParts}
	if first >= n {
		return dv
	}

	dv.Stages = make([]staging.Stage, 0, n-first)
	for k := n - 1; k >= first; k-- {
		spec := v.Stages[k]
		m0 := v.Mass(k, fuel)
		m1 := m0 - fuel[k]

		thrustActual := spec.ThrustVac + (spec.ThrustASL-spec.ThrustVac)*densityRatio
		ispActual := spec.IspVac + (spec.IspASL-spec.IspVac)*densityRatio

		st := staging.Stage{
			Stage:        n - 1 - k,
			PartCount:    spec.Parts,
			ThrustVac:    spec.ThrustVac,
			ThrustASL:    spec.ThrustASL,
			ThrustActual: thrustActual,
			IspVac:       spec.IspVac,
			IspASL:       spec.IspASL,
			IspActual:    ispActual,
			StartMass:    m0,
			EndMass:      m1,
		}
		if fuel[k] > 0 && m1 > 0 {
			ln := math.Log(m0 / m1)
			st.DeltaVVac = spec.IspVac * StandardGravity * ln
			st.DeltaVASL = spec.IspASL * StandardGravity * ln
			st.DeltaVActual = ispActual * StandardGravity * ln
			if spec.ThrustVac > 0 {
				st.BurnTime = fuel[k] * spec.IspVac * StandardGravity / spec.ThrustVac
			}
		}
		if m0 > 0 && gRef > 0 {
			st.TWRVac = spec.ThrustVac / (m0 * gRef)
			st.TWRASL = spec.ThrustASL / (m0 * gRef)
			st.TWRActual = thrustActual / (m0 * gRef)
		}

		dv.TotalDeltaVVac += st.DeltaVVac
		dv.TotalDeltaVASL += st.DeltaVASL
		dv.TotalDeltaVActual += st.DeltaVActual
		dv.TotalBurnTime += st.BurnTime
		dv.PartCount += spec.Parts
		dv.Stages = append(dv.Stages, st)
	}
	return dv
}
