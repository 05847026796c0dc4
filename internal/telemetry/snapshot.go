package telemetry

import "microengineer/internal/staging"

// Snapshot is the simulation state at one instant.
type Snapshot struct {
	UniversalTime float64   `yaml:"universalTime" json:"universalTime"`
	Vessel        *Vessel   `yaml:"vessel,omitempty" json:"vessel,omitempty"`
	DeltaV        *DeltaV   `yaml:"deltaV,omitempty" json:"deltaV,omitempty"`
	Aero          *Aero     `yaml:"aero,omitempty" json:"aero,omitempty"`
	Orbit         *Orbit    `yaml:"orbit,omitempty" json:"orbit,omitempty"`
	Target        *Target   `yaml:"target,omitempty" json:"target,omitempty"`
	Maneuver      *Maneuver `yaml:"maneuver,omitempty" json:"maneuver,omitempty"`
	Assembly      *Assembly `yaml:"assembly,omitempty" json:"assembly,omitempty"`
}

// Vessel is the active vessel's state. Masses are in tonnes, speeds in m/s,
// altitudes in metres and angles in degrees.
type Vessel struct {
	Name               string  `yaml:"name" json:"name"`
	Situation          string  `yaml:"situation,omitempty" json:"situation,omitempty"`
	Biome              string  `yaml:"biome,omitempty" json:"biome,omitempty"`
	MainBody           string  `yaml:"mainBody,omitempty" json:"mainBody,omitempty"`
	Mass               float64 `yaml:"mass" json:"mass"`
	AltitudeSeaLevel   float64 `yaml:"altitudeSeaLevel" json:"altitudeSeaLevel"`
	AltitudeTerrain    float64 `yaml:"altitudeTerrain" json:"altitudeTerrain"`
	SurfaceSpeed       float64 `yaml:"surfaceSpeed" json:"surfaceSpeed"`
	HorizontalSpeed    float64 `yaml:"horizontalSpeed" json:"horizontalSpeed"`
	VerticalSpeed      float64 `yaml:"verticalSpeed" json:"verticalSpeed"`
	Latitude           float64 `yaml:"latitude" json:"latitude"`
	Longitude          float64 `yaml:"longitude" json:"longitude"`
	Heading            float64 `yaml:"heading" json:"heading"`
	Pitch              float64 `yaml:"pitch" json:"pitch"`
	Roll               float64 `yaml:"roll" json:"roll"`
	Yaw                float64 `yaml:"yaw" json:"yaw"`
	Zenith             float64 `yaml:"zenith" json:"zenith"`
	GeeForce           float64 `yaml:"geeForce" json:"geeForce"`
	Mach               float64 `yaml:"mach" json:"mach"`
	AtmosphericDensity float64 `yaml:"atmosphericDensity" json:"atmosphericDensity"` // kg/m^3
	SoundSpeed         float64 `yaml:"soundSpeed" json:"soundSpeed"`
	StaticPressure     float64 `yaml:"staticPressure" json:"staticPressure"` // Pa
	DynamicPressure    float64 `yaml:"dynamicPressure" json:"dynamicPressure"`
}

// DeltaV is the host's delta-v solution. Stages are ordered by ascending
// stage index; the highest index fires next.
type DeltaV struct {
	TotalDeltaVVac    float64         `yaml:"totalDeltaVVac" json:"totalDeltaVVac"`
	TotalDeltaVASL    float64         `yaml:"totalDeltaVASL" json:"totalDeltaVASL"`
	TotalDeltaVActual float64         `yaml:"totalDeltaVActual" json:"totalDeltaVActual"`
	TotalBurnTime     float64         `yaml:"totalBurnTime" json:"totalBurnTime"`
	PartCount         int             `yaml:"parts" json:"parts"`
	Stages            []staging.Stage `yaml:"stages" json:"stages"`
}

// Current is the next stage to fire, or nil when no stages remain.
func (d *DeltaV) Current() *staging.Stage {
	if d == nil || len(d.Stages) == 0 {
		return nil
	}
	cur := &d.Stages[0]
	for i := range d.Stages {
		if d.Stages[i].Stage > cur.Stage {
			cur = &d.Stages[i]
		}
	}
	return cur
}

// Aero holds aerodynamic forces in kN and flow angles in degrees.
type Aero struct {
	Lift            float64 `yaml:"lift" json:"lift"`
	Drag            float64 `yaml:"drag" json:"drag"`
	AngleOfAttack   float64 `yaml:"angleOfAttack" json:"angleOfAttack"`
	Sideslip        float64 `yaml:"sideslip" json:"sideslip"`
	DragCoefficient float64 `yaml:"dragCoefficient" json:"dragCoefficient"`
	ExposedArea     float64 `yaml:"exposedArea" json:"exposedArea"` // m^2
}

// Orbit describes the active vessel's orbit around MainBody. Altitudes are
// above sea level. SOITransition is nil when the orbit never leaves the
// sphere of influence.
type Orbit struct {
	MainBody        string   `yaml:"mainBody" json:"mainBody"`
	Apoapsis        float64  `yaml:"apoapsis" json:"apoapsis"`
	Periapsis       float64  `yaml:"periapsis" json:"periapsis"`
	TimeToApoapsis  float64  `yaml:"timeToApoapsis" json:"timeToApoapsis"`
	TimeToPeriapsis float64  `yaml:"timeToPeriapsis" json:"timeToPeriapsis"`
	Inclination     float64  `yaml:"inclination" json:"inclination"`
	Eccentricity    float64  `yaml:"eccentricity" json:"eccentricity"`
	Period          float64  `yaml:"period" json:"period"`
	OrbitalSpeed    float64  `yaml:"orbitalSpeed" json:"orbitalSpeed"`
	SemiMajorAxis   float64  `yaml:"semiMajorAxis" json:"semiMajorAxis"`
	SOITransition   *float64 `yaml:"soiTransition,omitempty" json:"soiTransition,omitempty"`
}

// Target is the selected target relative to the active vessel.
type Target struct {
	Name                  string  `yaml:"name" json:"name"`
	Apoapsis              float64 `yaml:"apoapsis" json:"apoapsis"`
	Periapsis             float64 `yaml:"periapsis" json:"periapsis"`
	Distance              float64 `yaml:"distance" json:"distance"`
	RelativeSpeed         float64 `yaml:"relativeSpeed" json:"relativeSpeed"`
	RelativeInclination   float64 `yaml:"relativeInclination" json:"relativeInclination"`
	ClosestApproach       float64 `yaml:"closestApproach" json:"closestApproach"`
	TimeToClosestApproach float64 `yaml:"timeToClosestApproach" json:"timeToClosestApproach"`
}

// Maneuver is the next planned maneuver node.
type Maneuver struct {
	DeltaV             float64 `yaml:"deltaV" json:"deltaV"`
	Prograde           float64 `yaml:"prograde" json:"prograde"`
	Normal             float64 `yaml:"normal" json:"normal"`
	Radial             float64 `yaml:"radial" json:"radial"`
	TimeToNode         float64 `yaml:"timeToNode" json:"timeToNode"`
	BurnTime           float64 `yaml:"burnTime" json:"burnTime"`
	ProjectedApoapsis  float64 `yaml:"projectedApoapsis" json:"projectedApoapsis"`
	ProjectedPeriapsis float64 `yaml:"projectedPeriapsis" json:"projectedPeriapsis"`
}

// Assembly is the vessel under construction in the editor. Revision increases
// every time the host publishes a new delta-v solution for it.
type Assembly struct {
	Name     string   `yaml:"name" json:"name"`
	Revision uint64   `yaml:"revision" json:"revision"`
	Mass     float64  `yaml:"mass" json:"mass"`
	Parts    int      `yaml:"parts" json:"parts"`
	Torque   *float64 `yaml:"torque,omitempty" json:"torque,omitempty"` // kN·m
	DeltaV   *DeltaV  `yaml:"deltaV,omitempty" json:"deltaV,omitempty"`
}

// Source produces snapshots on demand.
type Source interface {
	Snapshot() *Snapshot
}

// SourceFunc adapts a function to Source.
type SourceFunc func() *Snapshot

// Snapshot implements Source.
func (f SourceFunc) Snapshot() *Snapshot { return f() }
