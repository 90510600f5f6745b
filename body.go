package planetary

import (
	"fmt"
	"math"
)

const (
	// G is the universal gravitational constant in m³/(kg·s²).
	G = 6.67430e-11
	// SpeedOfLight is the speed of light in vacuum in m/s.
	SpeedOfLight = 299792458.0
	// NoParent marks a body without a gravitational reference center.
	NoParent = -1
)

// Body holds the physical, kinematic and orbital state of one celestial
// object. All units are SI: kg, m, s, radians. Position, velocity and
// acceleration share one inertial frame. Bodies are created and owned by
// the caller; this package only reads and mutates the fields below and
// never holds on to a body between calls.
type Body struct {
	Name    string
	Mass    float64 // kg
	Radius  float64 // m
	Density float64 // kg/m³

	R []float64 // position, m
	V []float64 // velocity, m/s
	A []float64 // acceleration, m/s² (persisted between steps for Verlet)

	// Classical orbital elements relative to the parent body. Angles in
	// radians, Epoch in simulation seconds on the caller's timeline.
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	MeanAnomalyAtEpoch       float64
	Epoch                    float64

	// Parent indexes the gravitational/reference center in the caller-owned
	// body slice, NoParent if none. Cycle validation is the caller's job.
	Parent int

	// Feature flags read by specific force calculators.
	HasAtmosphere    bool
	AtmosphereHeight float64 // m above the surface
	HasMagneticField bool
	DipoleMoment     float64 // A·m²
	Luminosity       float64 // W
	Albedo           float64
}

// NewBody returns a body with allocated state vectors and no parent.
func NewBody(name string, mass, radius, density float64) *Body {
	return &Body{
		Name:    name,
		Mass:    mass,
		Radius:  radius,
		Density: density,
		R:       make([]float64, 3),
		V:       make([]float64, 3),
		A:       make([]float64, 3),
		Parent:  NoParent,
	}
}

// GM returns the gravitational parameter μ of this body alone.
func (b Body) GM() float64 {
	return G * b.Mass
}

// MeanMotion returns the mean motion n about the given parent, from the
// combined gravitational parameter. Zero if the semi major axis is not set.
func (b Body) MeanMotion(parent *Body) float64 {
	if b.SemiMajorAxis == 0 || parent == nil {
		return 0
	}
	μ := G * (b.Mass + parent.Mass)
	return math.Sqrt(μ / math.Pow(math.Abs(b.SemiMajorAxis), 3))
}

// OrbitalPeriod returns the orbital period about the given parent, zero if
// undefined.
func (b Body) OrbitalPeriod(parent *Body) float64 {
	n := b.MeanMotion(parent)
	if n == 0 {
		return 0
	}
	return 2 * math.Pi / n
}

// SemiParameter returns the semi parameter (semi latus rectum).
func (b Body) SemiParameter() float64 {
	return b.SemiMajorAxis * (1 - b.Eccentricity*b.Eccentricity)
}

// Apoapsis returns the apoapsis radius.
func (b Body) Apoapsis() float64 {
	return b.SemiMajorAxis * (1 + b.Eccentricity)
}

// Periapsis returns the periapsis radius.
func (b Body) Periapsis() float64 {
	return b.SemiMajorAxis * (1 - b.Eccentricity)
}

// CrossSection returns the geometric cross section πR².
func (b Body) CrossSection() float64 {
	return math.Pi * b.Radius * b.Radius
}

// String implements the Stringer interface.
func (b Body) String() string {
	return fmt.Sprintf("%s (m=%.4g kg, r=%.4g m)", b.Name, b.Mass, b.Radius)
}

// BodyState is a plain-data snapshot of the kinematic state, for external
// serialization collaborators. The core never serializes itself.
type BodyState struct {
	Name         string
	Mass, Radius float64
	R, V, A      [3]float64
}

// State returns a detached snapshot of this body's kinematic state.
func (b Body) State() BodyState {
	s := BodyState{Name: b.Name, Mass: b.Mass, Radius: b.Radius}
	copy(s.R[:], b.R)
	copy(s.V[:], b.V)
	copy(s.A[:], b.A)
	return s
}
