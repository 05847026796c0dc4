package telemetry

import (
	"math"
	"sync"

	"microengineer/internal/celestial"
	"microengineer/pkg/logging"
)

const subsystem = "Telemetry"

const (
	simSubstep      = 0.05  // s
	dragArea        = 2.0   // Cd·A, m^2
	dragCoefficient = 0.3   //
	seaLevelSound   = 340.0 // m/s
	targetApoapsis  = 80000.0
	targetPeriapsis = 75000.0
	turnStart       = 1000.0
	turnEnd         = 50000.0
	maxTurn         = 80 * math.Pi / 180
	circularizeLead = 15.0 // s before apoapsis
	specificGasTemp = 287.05 * 288.15
	launchLatitude  = -0.0972
	launchLongitude = -74.5578
	assemblyTorque  = 15.0 // kN·m
)

type flightPhase int

const (
	phaseAscent flightPhase = iota
	phaseCoast
	phaseCircularize
	phaseOrbit
)

func (p flightPhase) String() string {
	switch p {
	case phaseAscent:
		return "ascent"
	case phaseCoast:
		return "coast"
	case phaseCircularize:
		return "circularize"
	default:
		return "orbit"
	}
}

// Simulator flies a Vehicle from the surface of a body into a low orbit with
// a fixed pitch program. It is deterministic: the same sequence of Step calls
// always yields the same snapshots.
type Simulator struct {
	body    celestial.Body
	vehicle Vehicle
	gRef    float64

	mu      sync.Mutex
	elapsed float64
	alt     float64
	vx, vy  float64
	lon     float64
	stage   int
	fuel    []float64
	phase   flightPhase
	launch  bool
	accel   float64 // non-gravitational, m/s^2
	drag    float64 // kN
	pitch   float64 // from vertical, rad
}

// NewSimulator places vehicle on the pad of body, which also serves as the
// reference body for TWR.
func NewSimulator(body celestial.Body, vehicle Vehicle) *Simulator {
	s := &Simulator{body: body, vehicle: vehicle, gRef: body.SurfaceGravity()}
	s.Reset()
	return s
}

// Reset puts the vehicle back on the pad.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed = 0
	s.alt, s.vx, s.vy = 0, 0, 0
	s.lon = launchLongitude
	s.stage = 0
	s.fuel = s.vehicle.FullFuel()
	s.phase = phaseAscent
	s.launch = false
	s.accel, s.drag, s.pitch = 0, 0, 0
}

// Step advances the simulation by dt seconds.
func (s *Simulator) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.launch {
		s.launch = true
		logging.Info(subsystem, "Launching %s from %s", s.vehicle.Name, s.body.Name)
	}
	for dt > 0 {
		h := math.Min(dt, simSubstep)
		s.step(h)
		dt -= h
	}
}

func (s *Simulator) step(h float64) {
	s.stageIfSpent()

	mu := s.body.GravParameter
	r := s.body.Radius + s.alt
	rho := s.body.Atmosphere.DensityAt(s.alt)
	ratio := s.densityRatio(rho)
	mass := s.vehicle.Mass(s.stage, s.fuel)

	thrust, isp := s.engine(ratio)
	thrust *= s.guidance()
	s.pitch = s.pitchProgram()

	var ax, ay float64
	if thrust > 0 && mass > 0 {
		a := thrust / mass
		ax = a * math.Sin(s.pitch)
		ay = a * math.Cos(s.pitch)
	}

	s.drag = 0
	if v := math.Hypot(s.vx, s.vy); v > 0 && rho > 0 && mass > 0 {
		d := 0.5 * rho * v * v * dragArea / (mass * 1000)
		ax -= d * s.vx / v
		ay -= d * s.vy / v
		s.drag = d * mass
	}
	s.accel = math.Hypot(ax, ay)

	ay += s.vx*s.vx/r - mu/(r*r)
	s.vx += ax * h
	s.vy += ay * h
	s.alt += s.vy * h
	if s.alt <= 0 {
		s.alt = 0
		s.vy = math.Max(s.vy, 0)
		if thrust == 0 {
			s.vx = 0
		}
	}

	s.lon += s.vx * h / r * 180 / math.Pi
	if s.lon >= 180 {
		s.lon -= 360
	}

	if thrust > 0 && isp > 0 && s.stage < len(s.fuel) {
		s.fuel[s.stage] = math.Max(0, s.fuel[s.stage]-thrust/(isp*StandardGravity)*h)
	}
	s.elapsed += h
}

func (s *Simulator) stageIfSpent() {
	for s.stage < len(s.vehicle.Stages) {
		spec := s.vehicle.Stages[s.stage]
		if spec.ThrustVac > 0 && s.fuel[s.stage] > 0 {
			return
		}
		logging.Debug(subsystem, "Separating %s at T+%.1fs", spec.Name, s.elapsed)
		s.stage++
	}
}

func (s *Simulator) engine(ratio float64) (thrust, isp float64) {
	if s.stage >= len(s.vehicle.Stages) {
		return 0, 0
	}
	spec := s.vehicle.Stages[s.stage]
	thrust = spec.ThrustVac + (spec.ThrustASL-spec.ThrustVac)*ratio
	isp = spec.IspVac + (spec.IspASL-spec.IspVac)*ratio
	return thrust, isp
}

func (s *Simulator) guidance() float64 {
	if s.stage >= len(s.vehicle.Stages) {
		return 0
	}
	el := s.elements()
	switch s.phase {
	case phaseAscent:
		if el.apoapsis >= targetApoapsis {
			s.setPhase(phaseCoast)
			return 0
		}
		return 1
	case phaseCoast:
		if s.vy > 0 && el.timeToApoapsis > circularizeLead {
			return 0
		}
		s.setPhase(phaseCircularize)
		return 1
	case phaseCircularize:
		if el.periapsis >= targetPeriapsis {
			s.setPhase(phaseOrbit)
			return 0
		}
		return 1
	}
	return 0
}

func (s *Simulator) setPhase(p flightPhase) {
	logging.Debug(subsystem, "Entering %s phase at %.0f m", p, s.alt)
	s.phase = p
}

func (s *Simulator) pitchProgram() float64 {
	if s.phase != phaseAscent {
		return math.Pi / 2
	}
	if s.alt < turnStart {
		return 0
	}
	return math.Min(maxTurn, (s.alt-turnStart)/(turnEnd-turnStart)*maxTurn)
}

func (s *Simulator) densityRatio(rho float64) float64 {
	ref := s.body.SurfaceDensity()
	if ref <= 0 || rho <= 0 {
		return 0
	}
	return math.Min(1, rho/ref)
}

func (s *Simulator) elements() orbitElements {
	return computeElements(s.body.GravParameter, s.body.Radius, s.alt, s.vx, s.vy)
}

// Snapshot implements Source.
func (s *Simulator) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rho := s.body.Atmosphere.DensityAt(s.alt)
	ratio := s.densityRatio(rho)
	speed := math.Hypot(s.vx, s.vy)
	mass := s.vehicle.Mass(s.stage, s.fuel)
	el := s.elements()

	sound := 0.0
	mach := 0.0
	if rho > 0 {
		sound = seaLevelSound
		mach = speed / sound
	}

	gee := s.accel / StandardGravity
	if s.alt == 0 && s.vy == 0 {
		gee = 1
	}

	pitchDeg := 90 - s.pitch*180/math.Pi
	dv := s.vehicle.Solve(s.stage, s.fuel, ratio, s.gRef)

	snap := &Snapshot{
		UniversalTime: s.elapsed,
		Vessel: &Vessel{
			Name:               s.vehicle.Name,
			Situation:          s.situation(el),
			Biome:              s.biome(),
			MainBody:           s.body.Name,
			Mass:               mass,
			AltitudeSeaLevel:   s.alt,
			AltitudeTerrain:    s.alt,
			SurfaceSpeed:       speed,
			HorizontalSpeed:    s.vx,
			VerticalSpeed:      s.vy,
			Latitude:           launchLatitude,
			Longitude:          s.lon,
			Heading:            90,
			Pitch:              pitchDeg,
			Yaw:                90,
			Zenith:             90 - pitchDeg,
			GeeForce:           gee,
			Mach:               mach,
			AtmosphericDensity: rho,
			SoundSpeed:         sound,
			StaticPressure:     rho * specificGasTemp,
			DynamicPressure:    0.5 * rho * speed * speed,
		},
		DeltaV: dv,
		Aero: &Aero{
			Drag:            s.drag,
			DragCoefficient: dragCoefficient,
			ExposedArea:     dragArea / dragCoefficient,
		},
		Orbit: &Orbit{
			MainBody:        s.body.Name,
			Apoapsis:        el.apoapsis,
			Periapsis:       el.periapsis,
			TimeToApoapsis:  el.timeToApoapsis,
			TimeToPeriapsis: el.timeToPeriapsis,
			Eccentricity:    el.eccentricity,
			Period:          el.period,
			OrbitalSpeed:    speed,
			SemiMajorAxis:   el.semiMajorAxis,
		},
		Assembly: s.assembly(),
	}
	return snap
}

func (s *Simulator) assembly() *Assembly {
	full := s.vehicle.FullFuel()
	torque := assemblyTorque
	parts := s.vehicle.PayloadParts
	for _, st := range s.vehicle.Stages {
		parts += st.Parts
	}
	return &Assembly{
		Name:     s.vehicle.Name,
		Revision: 1,
		Mass:     s.vehicle.Mass(0, full),
		Parts:    parts,
		Torque:   &torque,
		DeltaV:   s.vehicle.Solve(0, full, 1, s.gRef),
	}
}

func (s *Simulator) situation(el orbitElements) string {
	top := s.body.Atmosphere.Top()
	switch {
	case !s.launch:
		return "Pre-Launch"
	case s.alt == 0:
		return "Landed"
	case top > 0 && s.alt < top:
		return "Flying"
	case el.periapsis > top:
		return "Orbiting"
	default:
		return "Sub-Orbital"
	}
}

func (s *Simulator) biome() string {
	switch {
	case s.alt < 2000:
		return "Shores"
	case s.alt < 18000:
		return "Flying Low"
	default:
		return "Space"
	}
}
