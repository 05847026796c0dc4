package staging

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"microengineer/internal/celestial"
	"microengineer/internal/units"
)

// epsilon guards divisions by vacuum thrust and Isp.
const epsilon = 1e-9

// Row is one rendered line of the assembly stage table.
type Row struct {
	Number    int
	Label     string
	Body      string
	BodyLabel string
	TWRVac    float64
	TWRASL    float64
	DeltaVASL float64
	DeltaVVac float64
	BurnTime  float64
	// BurnTimeDisplay keeps the two most significant duration parts.
	BurnTimeDisplay string
}

// FlightRow is one line of the in-flight stage table.
type FlightRow struct {
	Number          int
	Label           string
	DeltaV          float64
	TWR             float64
	BurnTime        float64
	BurnTimeDisplay string
}

// DensityRatio is the share of the reference body's sea-level density that
// body has at its surface, clamped to [0, 1]. Airless bodies are 0.
func DensityRatio(body, ref celestial.Body) float64 {
	bodyDensity := body.SurfaceDensity()
	if bodyDensity <= 0 {
		return 0
	}
	refDensity := ref.SurfaceDensity()
	if refDensity <= 0 {
		return 1
	}
	return clamp01(bodyDensity / refDensity)
}

// ComputeRow re-derives a stage's figures for body. factor is g_ref/g_body
// and ratio the surface density ratio from DensityRatio.
func ComputeRow(stage Stage, factor, ratio float64) Row {
	ratio = clamp01(ratio)

	row := Row{
		TWRVac:    stage.TWRVac * factor,
		DeltaVVac: stage.DeltaVVac,
		BurnTime:  stage.BurnTime,
	}

	thrustSurface := lerp(stage.ThrustVac, stage.ThrustASL, ratio)
	if stage.ThrustVac > epsilon {
		row.TWRASL = stage.TWRVac * thrustSurface / stage.ThrustVac * factor
	} else {
		row.TWRASL = stage.TWRASL * factor
	}

	ispSurface := lerp(stage.IspVac, stage.IspASL, ratio)
	if stage.IspVac > epsilon {
		row.DeltaVASL = stage.DeltaVVac * ispSurface / stage.IspVac
	} else {
		row.DeltaVASL = stage.DeltaVASL
	}

	row.BurnTimeDisplay = units.FormatDuration(stage.BurnTime, 2)
	return row
}

// FlightRows builds the in-flight table: propulsive stages in firing order
// with the live TWR and delta-v figures.
func FlightRows(stages []Stage) []FlightRow {
	ordered := DisplayOrder(stages)
	rows := make([]FlightRow, 0, len(ordered))
	for _, s := range ordered {
		n := Number(len(stages), s.Stage)
		rows = append(rows, FlightRow{
			Number:          n,
			Label:           Label(n),
			DeltaV:          s.DeltaVActual,
			TWR:             s.TWRActual,
			BurnTime:        s.BurnTime,
			BurnTimeDisplay: units.FormatDuration(s.BurnTime, 2),
		})
	}
	return rows
}

// FlightTWRs returns the TWR column of rows.
func FlightTWRs(rows []FlightRow) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.TWR
	}
	return out
}

// TWRDecimals picks the precision of a TWR column from its largest value:
// 2 decimals normally, 1 when that value has three integer digits and 0 from
// four digits on.
func TWRDecimals(twrs []float64) int {
	finite := make([]float64, 0, len(twrs))
	for _, v := range twrs {
		if !units.IsMissing(v) {
			finite = append(finite, math.Abs(v))
		}
	}
	if len(finite) == 0 {
		return 2
	}

	highest := floats.Max(finite)
	switch {
	case highest >= 1000:
		return 0
	case highest >= 100:
		return 1
	default:
		return 2
	}
}

func lerp(vac, asl, ratio float64) float64 {
	return vac + (asl-vac)*ratio
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
