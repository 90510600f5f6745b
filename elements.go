package planetary

import (
	"errors"
	"math"

	"github.com/gonum/floats"
)

// ErrSameBody is returned when extraction is requested relative to the body
// itself.
var ErrSameBody = errors.New("cannot extract orbital elements of a body relative to itself")

// Elements are the classical orbital elements of a body relative to a
// central body, as produced by Extract. Plain data for the external
// serialization boundary. Angles in radians, distances in meters.
type Elements struct {
	SemiMajorAxis            float64
	Eccentricity             float64
	Inclination              float64
	LongitudeOfAscendingNode float64
	ArgumentOfPeriapsis      float64
	TrueAnomaly              float64
	MeanAnomaly              float64
	OrbitalPeriod            float64 // s, zero for open orbits
	Energy                   float64 // specific orbital energy, J/kg
	AngularMomentum          float64 // specific angular momentum norm, m²/s
}

// Extract computes the classical orbital elements of body relative to
// central, following Vallado's RV2COE. Degenerate geometry (zero angular
// momentum, zero eccentricity vector, zero separation) yields zeroed
// angles rather than NaN. An eccentricity of 1 or above comes back with a
// negative or infinite semi major axis and a zero period; open orbits are
// otherwise unsupported.
func Extract(body, central *Body) (Elements, error) {
	if body == central {
		return Elements{}, ErrSameBody
	}
	R := sub(body.R, central.R)
	V := sub(body.V, central.V)
	μ := G * (body.Mass + central.Mass)

	r := norm(R)
	v := norm(V)
	if r == 0 || μ == 0 {
		return Elements{}, nil
	}

	hVec := cross(R, V)
	h := norm(hVec)
	n := cross([]float64{0, 0, 1}, hVec)

	ξ := v*v/2 - μ/r
	a := -μ / (2 * ξ)

	eVec := make([]float64, 3)
	for k := 0; k < 3; k++ {
		eVec[k] = ((v*v-μ/r)*R[k] - dot(R, V)*V[k]) / μ
	}
	e := norm(eVec)

	i := math.Acos(hVec[2] / h)
	if math.IsNaN(i) {
		i = 0
	}

	Ω := math.Acos(n[0] / norm(n))
	if math.IsNaN(Ω) {
		Ω = 0
	}
	if n[1] < 0 {
		Ω = 2*math.Pi - Ω
	}

	ω := math.Acos(dot(n, eVec) / (norm(n) * e))
	if math.IsNaN(ω) {
		ω = 0
	}
	if eVec[2] < 0 {
		ω = 2*math.Pi - ω
	}

	cosν := dot(eVec, R) / (e * r)
	if abscosν := math.Abs(cosν); abscosν > 1 && floats.EqualWithinAbs(abscosν, 1, 1e-12) {
		// Acos would return NaN from a rounding overshoot.
		cosν = sign(cosν)
	}
	ν := math.Acos(cosν)
	if math.IsNaN(ν) {
		ν = 0
	}
	if dot(R, V) < 0 {
		ν = 2*math.Pi - ν
	}

	// Fix rounding errors.
	i = math.Mod(i, 2*math.Pi)
	Ω = math.Mod(Ω, 2*math.Pi)
	ω = math.Mod(ω, 2*math.Pi)
	ν = math.Mod(ν, 2*math.Pi)

	// Mean anomaly through the eccentric anomaly inverse relation.
	sinE := math.Sqrt(1-e*e) * math.Sin(ν)
	cosE := e + math.Cos(ν)
	E := math.Atan2(sinE, cosE)
	M := E - e*math.Sin(E)
	if math.IsNaN(M) {
		M = 0
	}
	M = math.Mod(M, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}

	var period float64
	if a > 0 {
		period = 2 * math.Pi * math.Sqrt(math.Pow(a, 3)/μ)
	}

	return Elements{
		SemiMajorAxis:            a,
		Eccentricity:             e,
		Inclination:              i,
		LongitudeOfAscendingNode: Ω,
		ArgumentOfPeriapsis:      ω,
		TrueAnomaly:              ν,
		MeanAnomaly:              M,
		OrbitalPeriod:            period,
		Energy:                   ξ,
		AngularMomentum:          h,
	}, nil
}
