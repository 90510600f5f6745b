package planetary

import "math"

// keplerIterations is the fixed iteration count of the Kepler solver. There
// is deliberately no convergence check: the fixed cost is accurate for
// e < ~0.9, which covers bound planetary orbits. Open orbits (e ≥ 1) are
// not supported by this solver.
const keplerIterations = 10

// solveKepler returns the eccentric anomaly E for mean anomaly M and
// eccentricity e via fixed-point iteration of E = M + e sin E.
func solveKepler(M, e float64) float64 {
	E := M
	for iter := 0; iter < keplerIterations; iter++ {
		E = M + e*math.Sin(E)
	}
	return E
}

// Propagate advances body idx analytically along its Keplerian orbit to
// simulation time t (seconds) and writes the resulting position and
// velocity into the body, returning both. The parent link is resolved
// through the caller-owned slice so that propagation composes
// hierarchically: a moon's state includes its planet's state, which in
// turn includes the star's. No-op when the body has no parent or no semi
// major axis; every other body in the slice is ignored.
func Propagate(bodies []*Body, idx int, t float64) (R, V []float64) {
	b := bodies[idx]
	if b.Parent == NoParent || b.Parent < 0 || b.Parent >= len(bodies) || b.SemiMajorAxis == 0 {
		return b.R, b.V
	}
	parent := bodies[b.Parent]

	a := b.SemiMajorAxis
	e := b.Eccentricity
	n := b.MeanMotion(parent)
	M := b.MeanAnomalyAtEpoch + n*(t-b.Epoch)
	E := solveKepler(M, e)

	sinE, cosE := math.Sincos(E)
	// True anomaly via the half-angle atan2 identity.
	ν := 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
	r := a * (1 - e*cosE)

	sinν, cosν := math.Sincos(ν)
	pR := []float64{r * cosν, r * sinν, 0}

	// In-plane velocity from the angular-momentum relation: the orbit
	// sweeps h = √(μa(1-e²)), and ṙ follows from Kepler's equation.
	μ := G * (b.Mass + parent.Mass)
	vFactor := math.Sqrt(μ*a) / r
	pV := []float64{-vFactor * sinE, vFactor * math.Sqrt(1-e*e) * cosE, 0}

	i := b.Inclination
	ω := b.ArgumentOfPeriapsis
	Ω := b.LongitudeOfAscendingNode
	b.R = add(PQW2ECI(i, ω, Ω, pR), parent.R)
	b.V = add(PQW2ECI(i, ω, Ω, pV), parent.V)
	return b.R, b.V
}

// PropagateAll propagates every body in index order. Because parents are
// propagated before their satellites when the caller orders the slice
// star-first, one pass keeps a whole hierarchy consistent.
func PropagateAll(bodies []*Body, t float64) {
	for i := range bodies {
		Propagate(bodies, i, t)
	}
}
