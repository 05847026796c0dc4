package staging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microengineer/internal/celestial"
)

func twoStages() []Stage {
	return []Stage{
		{
			Stage:     0,
			DeltaVVac: 1500, DeltaVASL: 1200,
			ThrustVac: 215, ThrustASL: 172,
			IspVac: 320, IspASL: 250,
			TWRVac: 1.5, TWRASL: 1.2,
			BurnTime: 125,
		},
		{Stage: 1},
	}
}

func TestFilter_DropsNonPropulsiveStages(t *testing.T) {
	stages := []Stage{
		{Stage: 0, DeltaVVac: 0.00005, DeltaVASL: 0.00005},
		{Stage: 1, DeltaVVac: 0.0002},
		{Stage: 2, DeltaVASL: 0.0002},
		{Stage: 3},
	}
	got := Filter(stages)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Stage)
	assert.Equal(t, 2, got[1].Stage)
}

func TestDisplayOrder_Descending(t *testing.T) {
	stages := []Stage{
		{Stage: 0, DeltaVVac: 100},
		{Stage: 2, DeltaVVac: 300},
		{Stage: 1, DeltaVVac: 200},
	}
	got := DisplayOrder(stages)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 1, 0}, []int{got[0].Stage, got[1].Stage, got[2].Stage})
	assert.Equal(t, 1, Number(len(stages), got[0].Stage), "first stage to fire is 01")
	assert.Equal(t, "01", Label(1))
	assert.Equal(t, "12", Label(12))
}

func TestComputeRow_ReferenceBodyMatchesRecord(t *testing.T) {
	row := ComputeRow(twoStages()[0], 1, 1)

	assert.Equal(t, 1.5, row.TWRVac)
	assert.InDelta(t, 1.2, row.TWRASL, 1e-12)
	assert.InDelta(t, 1500*250.0/320, row.DeltaVASL, 1e-9)
	assert.Equal(t, "2m 05s", row.BurnTimeDisplay)
}

func TestComputeRow_AirlessUsesVacuumFigures(t *testing.T) {
	row := ComputeRow(twoStages()[0], 6, 0)

	assert.InDelta(t, 9.0, row.TWRVac, 1e-12)
	assert.InDelta(t, 9.0, row.TWRASL, 1e-12)
	assert.InDelta(t, 1500, row.DeltaVASL, 1e-9)
}

func TestComputeRow_ZeroVacuumThrust(t *testing.T) {
	row := ComputeRow(Stage{DeltaVASL: 10, TWRASL: 0.5}, 2, 0.5)
	assert.Equal(t, 1.0, row.TWRASL)
	assert.Equal(t, 10.0, row.DeltaVASL)
	assert.False(t, math.IsNaN(row.TWRASL))
}

func TestDensityRatio(t *testing.T) {
	table := celestial.NewTable(celestial.Builtin, celestial.DefaultReference)
	kerbin, _ := table.Get("Kerbin")
	mun, _ := table.Get("Mun")
	eve, _ := table.Get("Eve")
	duna, _ := table.Get("Duna")

	assert.Equal(t, 1.0, DensityRatio(kerbin, kerbin))
	assert.Equal(t, 0.0, DensityRatio(mun, kerbin))
	assert.Equal(t, 1.0, DensityRatio(eve, kerbin), "denser than reference clamps")
	assert.InDelta(t, 0.149/1.225, DensityRatio(duna, kerbin), 1e-9)
}

func TestTWRDecimals(t *testing.T) {
	assert.Equal(t, 2, TWRDecimals(nil))
	assert.Equal(t, 2, TWRDecimals([]float64{1.5, 99.99}))
	assert.Equal(t, 1, TWRDecimals([]float64{1.5, 123.4}))
	assert.Equal(t, 0, TWRDecimals([]float64{1234, 2}))
	assert.Equal(t, 2, TWRDecimals([]float64{math.NaN(), 3}))
}

func TestFlightRows(t *testing.T) {
	stages := []Stage{
		{Stage: 0, DeltaVVac: 900, DeltaVActual: 880, TWRActual: 0.8, BurnTime: 60},
		{Stage: 1},
		{Stage: 2, DeltaVVac: 2000, DeltaVActual: 1800, TWRActual: 1.7, BurnTime: 90000},
	}

	rows := FlightRows(stages)
	require.Len(t, rows, 2)
	assert.Equal(t, "01", rows[0].Label)
	assert.Equal(t, 1800.0, rows[0].DeltaV)
	assert.Equal(t, "1d 01h", rows[0].BurnTimeDisplay)
	assert.Equal(t, "03", rows[1].Label)
	assert.Equal(t, []float64{1.7, 0.8}, FlightTWRs(rows))
}

func TestTable_SelectBodyRecomputesRow(t *testing.T) {
	bodies := celestial.NewTable(celestial.Builtin, celestial.DefaultReference)
	table := NewTable(bodies)
	table.Update(twoStages())

	rows := table.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "02", rows[0].Label)
	assert.Equal(t, "Kerbin", rows[0].Body)
	assert.Equal(t, 1.5, rows[0].TWRVac)

	require.NoError(t, table.SelectBody(0, "Mun"))

	factor, err := bodies.TWRFactor("Mun")
	require.NoError(t, err)
	rows = table.Rows()
	assert.Equal(t, "Mun", rows[0].Body)
	assert.Equal(t, "The Mun", rows[0].BodyLabel)
	assert.InDelta(t, 1.5*factor, rows[0].TWRVac, 1e-12)
	assert.InDelta(t, 1.5*factor, rows[0].TWRASL, 1e-12)
	assert.InDelta(t, 1500, rows[0].DeltaVASL, 1e-9)
	assert.Equal(t, 1500.0, rows[0].DeltaVVac)
}

func TestTable_SelectBodyInterpolatesThinAtmosphere(t *testing.T) {
	bodies := celestial.NewTable(celestial.Builtin, celestial.DefaultReference)
	table := NewTable(bodies)
	table.Update(twoStages())
	require.NoError(t, table.SelectBody(0, "Duna"))

	duna, err := bodies.Get("Duna")
	require.NoError(t, err)
	kerbin, err := bodies.Reference()
	require.NoError(t, err)
	ratio := DensityRatio(duna, kerbin)
	require.InDelta(t, 0.149/1.225, ratio, 1e-6)

	factor, err := bodies.TWRFactor("Duna")
	require.NoError(t, err)

	stage := twoStages()[0]
	thrust := stage.ThrustVac + (stage.ThrustASL-stage.ThrustVac)*ratio
	isp := stage.IspVac + (stage.IspASL-stage.IspVac)*ratio

	row := table.Rows()[0]
	assert.Equal(t, "Duna", row.Body)
	assert.InDelta(t, stage.TWRVac*factor, row.TWRVac, 1e-12)
	assert.InDelta(t, stage.TWRVac*thrust/stage.ThrustVac*factor, row.TWRASL, 1e-12)
	assert.InDelta(t, stage.DeltaVVac*isp/stage.IspVac, row.DeltaVASL, 1e-9)

	// Between the vacuum figure and Kerbin's sea-level figure.
	assert.Less(t, row.DeltaVASL, stage.DeltaVVac)
	assert.Greater(t, row.DeltaVASL, stage.DeltaVASL)
	assert.InDelta(t, 1460.09, row.DeltaVASL, 0.01)
}

func TestTable_SelectionsSurviveUpdates(t *testing.T) {
	table := NewTable(celestial.NewTable(celestial.Builtin, celestial.DefaultReference))
	table.Update(twoStages())
	require.NoError(t, table.SelectBody(0, "Duna"))

	table.Update(twoStages())
	sel, err := table.Selection(0)
	require.NoError(t, err)
	assert.Equal(t, "Duna", sel)

	table.Reset()
	sel, err = table.Selection(0)
	require.NoError(t, err)
	assert.Equal(t, "Kerbin", sel)
}

func TestTable_Errors(t *testing.T) {
	table := NewTable(celestial.NewTable(celestial.Builtin, celestial.DefaultReference))
	table.Update(twoStages())

	assert.ErrorIs(t, table.SelectBody(3, "Mun"), ErrStageOutOfRange)
	assert.ErrorIs(t, table.SelectBody(0, "Nowhere"), celestial.ErrUnknownBody)
	assert.ErrorIs(t, table.CycleBody(-1), ErrStageOutOfRange)
	_, err := table.Selection(5)
	assert.ErrorIs(t, err, ErrStageOutOfRange)
}

func TestTable_CycleBody(t *testing.T) {
	table := NewTable(celestial.NewTable(celestial.Builtin, celestial.DefaultReference))
	table.Update(twoStages())

	require.NoError(t, table.CycleBody(0))
	sel, _ := table.Selection(0)
	assert.Equal(t, "Mun", sel)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 2, table.TWRDecimals())
}
