package planetary

// TotalEnergy returns the total mechanical energy of the body set: kinetic
// plus pairwise gravitational potential. Useful for drift checks on the
// integrators.
func TotalEnergy(bodies []*Body) float64 {
	e := 0.0
	for i, b := range bodies {
		v := norm(b.V)
		e += 0.5 * b.Mass * v * v
		for j := i + 1; j < len(bodies); j++ {
			r := norm(sub(bodies[j].R, b.R))
			if r == 0 {
				continue
			}
			e -= G * b.Mass * bodies[j].Mass / r
		}
	}
	return e
}

// TotalMomentum returns the total linear momentum vector of the body set.
func TotalMomentum(bodies []*Body) []float64 {
	p := make([]float64, 3)
	for _, b := range bodies {
		accumulate(p, scale(b.V, b.Mass))
	}
	return p
}

// Barycenter returns the mass-weighted mean position of the body set, or
// the zero vector if the set is massless.
func Barycenter(bodies []*Body) []float64 {
	c := make([]float64, 3)
	total := 0.0
	for _, b := range bodies {
		accumulate(c, scale(b.R, b.Mass))
		total += b.Mass
	}
	if total == 0 {
		return c
	}
	return scale(c, 1/total)
}
