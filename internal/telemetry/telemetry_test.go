package telemetry

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microengineer/internal/celestial"
	"microengineer/internal/staging"
)

func kerbin(t *testing.T) celestial.Body {
	t.Helper()
	table := celestial.NewTable(celestial.Builtin, celestial.DefaultReference)
	body, err := table.Reference()
	require.NoError(t, err)
	return body
}

func TestVehicle_SolveMatchesRocketEquation(t *testing.T) {
	v := DefaultVehicle()
	dv := v.Solve(0, v.FullFuel(), 1, 9.81)

	require.Len(t, dv.Stages, 3)
	for i, st := range dv.Stages {
		assert.Equal(t, i, st.Stage, "stages ascend by index")
	}

	booster := dv.Stages[1]
	m0 := v.Mass(1, v.FullFuel())
	assert.InDelta(t, 48.0, m0, 1e-9)
	assert.InDelta(t, 310*StandardGravity*math.Log(48.0/16.0), booster.DeltaVVac, 1e-6)
	assert.InDelta(t, 285*StandardGravity*math.Log(48.0/16.0), booster.DeltaVActual, 1e-6)
	assert.InDelta(t, 1500/(48*9.81), booster.TWRVac, 1e-9)
	assert.InDelta(t, 32*310*StandardGravity/1500, booster.BurnTime, 1e-6)

	clamps := dv.Stages[2]
	assert.False(t, clamps.IsPropulsive())
	assert.Equal(t, 2, dv.Current().Stage)

	assert.InDelta(t, dv.Stages[0].DeltaVVac+booster.DeltaVVac, dv.TotalDeltaVVac, 1e-9)
	assert.Equal(t, 29, dv.PartCount)
}

func TestDeltaV_CurrentOfEmpty(t *testing.T) {
	var dv *DeltaV
	assert.Nil(t, dv.Current())
	assert.Nil(t, (&DeltaV{}).Current())
}

func TestSimulator_PreLaunch(t *testing.T) {
	sim := NewSimulator(kerbin(t), DefaultVehicle())
	snap := sim.Snapshot()

	require.NotNil(t, snap.Vessel)
	assert.Equal(t, "Pre-Launch", snap.Vessel.Situation)
	assert.Equal(t, 1.0, snap.Vessel.GeeForce)
	assert.InDelta(t, 1.225, snap.Vessel.AtmosphericDensity, 1e-9)
	assert.Nil(t, snap.Target)
	assert.Nil(t, snap.Maneuver)

	require.NotNil(t, snap.Assembly)
	require.NotNil(t, snap.Assembly.Torque)
	assert.Len(t, snap.Assembly.DeltaV.Stages, 3)
}

func TestSimulator_Climbs(t *testing.T) {
	sim := NewSimulator(kerbin(t), DefaultVehicle())

	sim.Step(10)
	snap := sim.Snapshot()
	assert.Greater(t, snap.Vessel.AltitudeSeaLevel, 100.0)
	assert.Greater(t, snap.Vessel.VerticalSpeed, 0.0)
	assert.Equal(t, "Flying", snap.Vessel.Situation)
	assert.InDelta(t, 10.0, snap.UniversalTime, 1e-6)
	require.Len(t, snap.DeltaV.Stages, 2, "clamps released")
	assert.Less(t, snap.Vessel.Mass, 48.0)
}

func TestSimulator_StagesWhenFuelRunsOut(t *testing.T) {
	v := DefaultVehicle()
	v.Stages[1].FuelMass = 1
	sim := NewSimulator(kerbin(t), v)

	sim.Step(5)
	snap := sim.Snapshot()
	require.Len(t, snap.DeltaV.Stages, 1, "booster spent")
	assert.InDelta(t, 2.5+1.5+8, snap.Vessel.Mass, 0.5)
}

func TestSimulator_Deterministic(t *testing.T) {
	a := NewSimulator(kerbin(t), DefaultVehicle())
	b := NewSimulator(kerbin(t), DefaultVehicle())
	for i := 0; i < 20; i++ {
		a.Step(1.5)
		b.Step(1.5)
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	a.Reset()
	assert.Equal(t, 0.0, a.Snapshot().Vessel.AltitudeSeaLevel)
}

func TestComputeElements_CircularOrbit(t *testing.T) {
	body := kerbin(t)
	r := body.Radius + 100000
	v := math.Sqrt(body.GravParameter / r)

	el := computeElements(body.GravParameter, body.Radius, 100000, v, 0)
	assert.InDelta(t, 0, el.eccentricity, 1e-6)
	assert.InDelta(t, 100000, el.apoapsis, 1)
	assert.InDelta(t, 100000, el.periapsis, 1)
	assert.InDelta(t, 2*math.Pi*r/v, el.period, 1e-6)
}

func TestComputeElements_Escape(t *testing.T) {
	body := kerbin(t)
	el := computeElements(body.GravParameter, body.Radius, 0, 5000, 0)
	assert.True(t, math.IsNaN(el.apoapsis))
	assert.True(t, math.IsNaN(el.period))
}

func TestComputeElements_SuborbitalTimeToApoapsis(t *testing.T) {
	body := kerbin(t)
	el := computeElements(body.GravParameter, body.Radius, 10000, 500, 300)
	assert.Greater(t, el.timeToApoapsis, 0.0)
	assert.Less(t, el.timeToApoapsis, 60.0)
	assert.Less(t, el.periapsis, 0.0)
}

func TestReplay_RoundTrip(t *testing.T) {
	sim := NewSimulator(kerbin(t), DefaultVehicle())
	var frames []*Snapshot
	for i := 0; i < 3; i++ {
		sim.Step(5)
		frames = append(frames, sim.Snapshot())
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecording(&buf, frames))

	replay, err := ParseRecording(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 3, replay.Len())

	first := replay.Snapshot()
	assert.InDelta(t, 5.0, first.UniversalTime, 1e-9)
	replay.Snapshot()
	replay.Snapshot()
	assert.InDelta(t, 5.0, replay.Snapshot().UniversalTime, 1e-9, "wraps around")
}

func TestParseRecording_Errors(t *testing.T) {
	_, err := ParseRecording([]byte("frames: []"))
	assert.Error(t, err)

	_, err = ParseRecording([]byte("frames: [oops"))
	assert.Error(t, err)
}

func TestParseRecording_PartialFrame(t *testing.T) {
	replay, err := ParseRecording([]byte(`
frames:
  - universalTime: 12
    deltaV:
      stages:
        - {stage: 0, deltaVVac: 1500, twrVac: 1.5}
`))
	require.NoError(t, err)

	snap := replay.Snapshot()
	assert.Nil(t, snap.Vessel)
	require.NotNil(t, snap.DeltaV)
	assert.Equal(t, []staging.Stage{{Stage: 0, DeltaVVac: 1500, TWRVac: 1.5}}, snap.DeltaV.Stages)
}
