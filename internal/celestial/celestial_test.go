package celestial

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Interpolation(t *testing.T) {
	p, err := NewProfile([]ProfilePoint{
		{Altitude: 10000, Density: 0.2},
		{Altitude: 0, Density: 1.2},
		{Altitude: 20000, Density: 0},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.2, p.SeaLevelDensity(), 1e-12)
	assert.InDelta(t, 0.7, p.DensityAt(5000), 1e-12)
	assert.InDelta(t, 0.1, p.DensityAt(15000), 1e-12)
	assert.InDelta(t, 1.2, p.DensityAt(-100), 1e-12, "below range clamps")
	assert.InDelta(t, 0, p.DensityAt(1e6), 1e-12, "above range clamps")
	assert.Equal(t, 0.0, p.Points()[0].Altitude, "points are sorted")
}

func TestProfile_SinglePointIsConstant(t *testing.T) {
	p, err := NewProfile([]ProfilePoint{{Altitude: 0, Density: 0.5}})
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.DensityAt(12345))
}

func TestProfile_Validation(t *testing.T) {
	_, err := NewProfile(nil)
	assert.Error(t, err)

	_, err = NewProfile([]ProfilePoint{{0, 1}, {0, 2}})
	assert.Error(t, err)

	_, err = NewProfile([]ProfilePoint{{0, -1}})
	assert.Error(t, err)
}

func TestNilProfileIsAirless(t *testing.T) {
	var p *Profile
	assert.Equal(t, 0.0, p.DensityAt(0))
	assert.Nil(t, p.Points())
}

func TestBody_SurfaceGravity(t *testing.T) {
	kerbin := Body{Name: "Kerbin", GravParameter: 3.5316e12, Radius: 600000}
	assert.InDelta(t, 9.81, kerbin.SurfaceGravity(), 1e-9)

	assert.Equal(t, 0.0, Body{Name: "broken"}.SurfaceGravity())
	assert.False(t, kerbin.HasAtmosphere())
	assert.Equal(t, "Kerbin", kerbin.Label())
}

func TestTable_TWRFactorOfReferenceIsExactlyOne(t *testing.T) {
	table := NewTable(Builtin, DefaultReference)

	f, err := table.TWRFactor(DefaultReference)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestTable_TWRFactor(t *testing.T) {
	table := NewTable(Builtin, DefaultReference)

	mun, err := table.Get("Mun")
	require.NoError(t, err)
	kerbin, err := table.Reference()
	require.NoError(t, err)

	f, err := table.TWRFactor("Mun")
	require.NoError(t, err)
	assert.InDelta(t, kerbin.SurfaceGravity()/mun.SurfaceGravity(), f, 1e-12)
	assert.Greater(t, f, 1.0, "lower gravity raises TWR")

	f, err = table.TWRFactor("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownBody)
	assert.Equal(t, 1.0, f)
}

func TestTable_PopulatesOnce(t *testing.T) {
	var calls atomic.Int32
	provider := ProviderFunc(func() ([]Body, error) {
		calls.Add(1)
		return builtinBodies(), nil
	})
	table := NewTable(provider, DefaultReference)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = table.Bodies()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 17, table.Len())
}

func TestTable_ProviderFailure(t *testing.T) {
	table := NewTable(ProviderFunc(func() ([]Body, error) {
		return nil, errors.New("no game state")
	}), DefaultReference)

	assert.Error(t, table.Err())
	assert.Empty(t, table.Bodies())
	_, err := table.Reference()
	assert.ErrorIs(t, err, ErrUnknownBody)
}

func TestTable_SkipsInvalidBodies(t *testing.T) {
	table := NewTable(ProviderFunc(func() ([]Body, error) {
		return []Body{
			{Name: "Kerbin", GravParameter: 3.5316e12, Radius: 600000},
			{Name: "Kerbin", GravParameter: 1, Radius: 1},
			{Name: "", GravParameter: 1, Radius: 1},
			{Name: "Ghost"},
		}, nil
	}), "Kerbin")

	assert.Equal(t, 1, table.Len())
}

func TestTable_Next(t *testing.T) {
	table := NewTable(Builtin, DefaultReference)

	assert.Equal(t, "Mun", table.Next("Kerbin"))
	assert.Equal(t, "Kerbol", table.Next("Eeloo"), "wraps around")
	assert.Equal(t, DefaultReference, table.Next("Nowhere"))
}

func TestBuiltin_Atmospheres(t *testing.T) {
	table := NewTable(Builtin, DefaultReference)

	kerbin, err := table.Get("Kerbin")
	require.NoError(t, err)
	assert.InDelta(t, 1.225, kerbin.SurfaceDensity(), 1e-9)

	mun, err := table.Get("Mun")
	require.NoError(t, err)
	assert.False(t, mun.HasAtmosphere())
	assert.Equal(t, "The Mun", mun.Label())

	eve, err := table.Get("Eve")
	require.NoError(t, err)
	assert.Greater(t, eve.SurfaceDensity(), kerbin.SurfaceDensity())
}

func TestCatalogue_RoundTrip(t *testing.T) {
	data, err := MarshalCatalogue(builtinBodies())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bodies.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	bodies, err := FileProvider{Path: path}.Bodies()
	require.NoError(t, err)
	require.Len(t, bodies, 17)

	table := NewTable(FileProvider{Path: path}, DefaultReference)
	kerbin, err := table.Reference()
	require.NoError(t, err)
	assert.InDelta(t, 1.225, kerbin.SurfaceDensity(), 1e-9)
}

func TestParseCatalogue_Errors(t *testing.T) {
	_, err := ParseCatalogue([]byte("bodies: [oops"))
	assert.Error(t, err)

	_, err = ParseCatalogue([]byte(`
bodies:
  - name: Bad
    gravParameter: 1
    radius: 1
    atmosphere:
      - {altitude: 0, density: 1}
      - {altitude: 0, density: 2}
`))
	assert.Error(t, err)
}
