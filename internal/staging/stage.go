package staging

import (
	"fmt"
	"sort"
)

// MinDeltaV is the delta-v below which a stage counts as non-propulsive.
const MinDeltaV = 0.0001

// Stage is the propulsion record of one stage as reported by the host's
// delta-v solution. Thrust is in kN, Isp in seconds, delta-v in m/s and burn
// time in seconds. TWR figures are relative to the reference body.
type Stage struct {
	Stage        int     `yaml:"stage" json:"stage"`
	PartCount    int     `yaml:"parts,omitempty" json:"parts,omitempty"`
	DeltaVVac    float64 `yaml:"deltaVVac" json:"deltaVVac"`
	DeltaVASL    float64 `yaml:"deltaVASL" json:"deltaVASL"`
	DeltaVActual float64 `yaml:"deltaVActual" json:"deltaVActual"`
	ThrustVac    float64 `yaml:"thrustVac" json:"thrustVac"`
	ThrustASL    float64 `yaml:"thrustASL" json:"thrustASL"`
	ThrustActual float64 `yaml:"thrustActual" json:"thrustActual"`
	IspVac       float64 `yaml:"ispVac" json:"ispVac"`
	IspASL       float64 `yaml:"ispASL" json:"ispASL"`
	IspActual    float64 `yaml:"ispActual" json:"ispActual"`
	TWRVac       float64 `yaml:"twrVac" json:"twrVac"`
	TWRASL       float64 `yaml:"twrASL" json:"twrASL"`
	TWRActual    float64 `yaml:"twrActual" json:"twrActual"`
	BurnTime     float64 `yaml:"burnTime" json:"burnTime"`
	StartMass    float64 `yaml:"startMass,omitempty" json:"startMass,omitempty"`
	EndMass      float64 `yaml:"endMass,omitempty" json:"endMass,omitempty"`
}

// IsPropulsive reports whether the stage produces a row.
func (s Stage) IsPropulsive() bool {
	return s.DeltaVVac > MinDeltaV || s.DeltaVASL > MinDeltaV
}

// Filter keeps the propulsive stages, preserving order.
func Filter(stages []Stage) []Stage {
	out := make([]Stage, 0, len(stages))
	for _, s := range stages {
		if s.IsPropulsive() {
			out = append(out, s)
		}
	}
	return out
}

// DisplayOrder filters stages and sorts them by descending stage index, the
// order in which they fire.
func DisplayOrder(stages []Stage) []Stage {
	out := Filter(stages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Stage > out[j].Stage
	})
	return out
}

// Number is the user-facing stage number. Counting from the bottom keeps the
// first stage to fire at 1.
func Number(total, index int) int {
	return total - index
}

// Label formats a stage number with two digits.
func Label(number int) string {
	return fmt.Sprintf("%02d", number)
}
