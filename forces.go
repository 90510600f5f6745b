package planetary

import "math"

const (
	// atmosphereScaleHeight is the e-folding altitude of the exponential
	// density falloff used by the drag model, in meters.
	atmosphereScaleHeight = 8000.0
	// seaLevelDensity is the atmospheric density at the surface, kg/m³.
	seaLevelDensity = 1.225
	// dragCoefficient is the drag coefficient of the quadratic drag law.
	dragCoefficient = 2.2
	// dipoleConstant is μ0/4π in T·m/A.
	dipoleConstant = 1e-7
)

// ForceCalculator computes the total force vector (in N) exerted on the
// target body by the rest of the set. Calculators must not mutate any body
// and must never include a self-interaction term.
type ForceCalculator interface {
	Compute(target int, bodies []*Body) []float64
}

// ForceFunc adapts a plain function into a custom force calculator. A
// returned error (or a panic) is logged by the integrator and the
// contribution is dropped for that invocation only.
type ForceFunc func(target int, bodies []*Body) ([]float64, error)

// GravityForce is pairwise Newtonian attraction. The squared distance is
// softened by Softening² before the inverse square, which keeps the force
// finite through close encounters. With zero softening, overlapping bodies
// exert no gravitational force on each other.
//
// When Relativistic is set, each pair term is multiplied by the Lorentz
// factor of the source body's speed in the shared inertial frame. This is a
// documented approximation kept for compatibility, not a rigorous
// relativistic treatment.
type GravityForce struct {
	Softening    float64
	Relativistic bool
}

// Compute implements the ForceCalculator interface.
func (g GravityForce) Compute(target int, bodies []*Body) []float64 {
	b := bodies[target]
	f := make([]float64, 3)
	for j, other := range bodies {
		if j == target {
			continue
		}
		d := sub(other.R, b.R)
		r2 := dot(d, d)
		if g.Softening <= 0 && r2 < math.Pow(b.Radius+other.Radius, 2) {
			continue
		}
		r2 += g.Softening * g.Softening
		if r2 == 0 {
			continue
		}
		mag := G * b.Mass * other.Mass / r2
		if g.Relativistic {
			v := norm(other.V)
			if β2 := v * v / (SpeedOfLight * SpeedOfLight); β2 < 1 {
				mag /= math.Sqrt(1 - β2)
			}
		}
		accumulate(f, scale(unit(d), mag))
	}
	return f
}

// TidalForce is the scalar tidal model: magnitude 2G·m·M·R/d⁴ along the
// separation vector, where R is the target's radius.
type TidalForce struct{}

// Compute implements the ForceCalculator interface.
func (TidalForce) Compute(target int, bodies []*Body) []float64 {
	b := bodies[target]
	f := make([]float64, 3)
	for j, other := range bodies {
		if j == target {
			continue
		}
		d := sub(other.R, b.R)
		r := norm(d)
		if r == 0 {
			continue
		}
		mag := 2 * G * other.Mass * b.Mass * b.Radius / math.Pow(r, 4)
		accumulate(f, scale(unit(d), mag))
	}
	return f
}

// AtmosphericDragForce applies a quadratic drag law to a body flagged with
// an atmosphere, against the relative velocity of any body inside
// radius+atmosphereHeight. Density decays exponentially with altitude above
// the surface with an 8 km scale height.
type AtmosphericDragForce struct{}

// Compute implements the ForceCalculator interface.
func (AtmosphericDragForce) Compute(target int, bodies []*Body) []float64 {
	b := bodies[target]
	f := make([]float64, 3)
	if !b.HasAtmosphere {
		return f
	}
	reach := b.Radius + b.AtmosphereHeight
	for j, other := range bodies {
		if j == target {
			continue
		}
		r := norm(sub(other.R, b.R))
		if r == 0 || r > reach {
			continue
		}
		altitude := r - b.Radius
		if altitude < 0 {
			altitude = 0
		}
		ρ := seaLevelDensity * math.Exp(-altitude/atmosphereScaleHeight)
		vRel := sub(b.V, other.V)
		speed := norm(vRel)
		if speed == 0 {
			continue
		}
		mag := 0.5 * ρ * dragCoefficient * b.CrossSection() * speed * speed
		accumulate(f, scale(unit(vRel), -mag))
	}
	return f
}

// RadiationPressureForce pushes the target away from every luminous body:
// magnitude (1+albedo)·flux·crossSection/c with flux = L/4πd².
type RadiationPressureForce struct{}

// Compute implements the ForceCalculator interface.
func (RadiationPressureForce) Compute(target int, bodies []*Body) []float64 {
	b := bodies[target]
	f := make([]float64, 3)
	for j, other := range bodies {
		if j == target || other.Luminosity <= 0 {
			continue
		}
		d := sub(b.R, other.R) // away from the source
		r2 := dot(d, d)
		if r2 == 0 {
			continue
		}
		flux := other.Luminosity / (4 * math.Pi * r2)
		mag := (1 + b.Albedo) * flux * b.CrossSection() / SpeedOfLight
		accumulate(f, scale(unit(d), mag))
	}
	return f
}

// MagneticForce is the dipole-dipole interaction between two flagged
// bodies, attractive along the separation vector and falling off as d⁻⁴.
type MagneticForce struct{}

// Compute implements the ForceCalculator interface.
func (MagneticForce) Compute(target int, bodies []*Body) []float64 {
	b := bodies[target]
	f := make([]float64, 3)
	if !b.HasMagneticField {
		return f
	}
	for j, other := range bodies {
		if j == target || !other.HasMagneticField {
			continue
		}
		d := sub(other.R, b.R)
		r := norm(d)
		if r == 0 {
			continue
		}
		mag := 3 * dipoleConstant * b.DipoleMoment * other.DipoleMoment / math.Pow(r, 4)
		accumulate(f, scale(unit(d), mag))
	}
	return f
}
