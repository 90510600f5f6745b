package planetary

import (
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Method defines an enum of integration schemes.
type Method uint8

const (
	// Euler is the semi-implicit (symplectic) Euler scheme: velocity is
	// updated first, position from the updated velocity.
	Euler Method = iota + 1
	// Verlet is velocity-Verlet; it keeps the previous step's acceleration
	// in each body's A field between calls.
	Verlet
	// RK4 is classical fourth-order Runge-Kutta, four full force
	// evaluations per step.
	RK4
)

func (m Method) String() string {
	switch m {
	case Euler:
		return "euler"
	case Verlet:
		return "verlet"
	case RK4:
		return "rk4"
	}
	panic("cannot stringify unknown integration method")
}

// ParseMethod converts a method name into its Method value. The name is
// checked once here so stepping never compares strings.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "euler":
		return Euler, nil
	case "verlet":
		return Verlet, nil
	case "rk4":
		return RK4, nil
	}
	return 0, fmt.Errorf("unknown integration method %q", name)
}

// Config holds the per-integrator settings. It is owned by the Integrator
// instance, never ambient.
type Config struct {
	TimeStep           float64 // s, default step used when Step is given none
	Method             Method
	Softening          float64 // m, gravitational softening length
	MaxAcceleration    float64 // m/s² ceiling, 0 disables clamping
	MaxVelocity        float64 // m/s ceiling, 0 disables clamping
	CollisionThreshold float64 // multiple of summed radii, 0 disables detection

	// Force model toggles. Relativistic only matters with Gravity set.
	Gravity      bool
	Relativistic bool
	Tidal        bool
	Drag         bool
	Radiation    bool
	Magnetic     bool
}

// DefaultConfig returns a gravity-only Verlet configuration with a one
// minute step.
func DefaultConfig() Config {
	return Config{
		TimeStep:           60,
		Method:             Verlet,
		CollisionThreshold: 1,
		Gravity:            true,
	}
}

// Integrator advances a caller-owned body set numerically. It is
// single-writer and performs no locking: the caller must not touch the
// bodies while a step executes.
type Integrator struct {
	cfg         Config
	calculators []ForceCalculator
	custom      map[string]ForceFunc
	handler     CollisionHandler
	logger      kitlog.Logger
}

// NewIntegrator validates the configuration and returns a ready integrator.
// An unknown method or non-positive time step is a configuration error,
// surfaced here before any state can be mutated.
func NewIntegrator(cfg Config) (*Integrator, error) {
	switch cfg.Method {
	case Euler, Verlet, RK4:
	default:
		return nil, fmt.Errorf("unknown integration method %d", cfg.Method)
	}
	if cfg.TimeStep <= 0 {
		return nil, fmt.Errorf("config TimeStep must be positive, got %f", cfg.TimeStep)
	}
	in := &Integrator{
		cfg:    cfg,
		custom: make(map[string]ForceFunc),
		logger: kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "subsys", "integrator"),
	}
	if cfg.Gravity {
		in.calculators = append(in.calculators, GravityForce{Softening: cfg.Softening, Relativistic: cfg.Relativistic})
	}
	if cfg.Tidal {
		in.calculators = append(in.calculators, TidalForce{})
	}
	if cfg.Drag {
		in.calculators = append(in.calculators, AtmosphericDragForce{})
	}
	if cfg.Radiation {
		in.calculators = append(in.calculators, RadiationPressureForce{})
	}
	if cfg.Magnetic {
		in.calculators = append(in.calculators, MagneticForce{})
	}
	return in, nil
}

// SetLogger replaces the integrator's logger.
func (in *Integrator) SetLogger(l kitlog.Logger) {
	in.logger = l
}

// RegisterForce adds (or replaces) a named custom force calculator.
func (in *Integrator) RegisterForce(name string, fn ForceFunc) {
	in.custom[name] = fn
}

// UnregisterForce removes a named custom force calculator.
func (in *Integrator) UnregisterForce(name string) {
	delete(in.custom, name)
}

// SetCollisionHandler registers the handler invoked by the post-step
// collision scan. A nil handler disables the scan.
func (in *Integrator) SetCollisionHandler(h CollisionHandler) {
	in.handler = h
}

// forceOn sums every enabled and registered force contribution on the
// target body. A failing custom calculator is logged and skipped; it never
// aborts the step for other bodies or other calculators.
func (in *Integrator) forceOn(target int, bodies []*Body) []float64 {
	total := make([]float64, 3)
	for _, calc := range in.calculators {
		accumulate(total, calc.Compute(target, bodies))
	}
	for name, fn := range in.custom {
		contrib, err := invokeCustom(fn, target, bodies)
		if err != nil {
			in.logger.Log("level", "error", "force", name, "body", bodies[target].Name, "err", err)
			continue
		}
		accumulate(total, contrib)
	}
	return total
}

func invokeCustom(fn ForceFunc, target int, bodies []*Body) (contrib []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("calculator panicked: %v", r)
		}
	}()
	contrib, err = fn(target, bodies)
	if err == nil && contrib == nil {
		contrib = make([]float64, 3)
	}
	return
}

// accelerations computes force/mass for every body from one consistent
// snapshot of the whole set, before any state is mutated. Massless bodies
// get zero acceleration rather than a division blowup.
func (in *Integrator) accelerations(bodies []*Body) [][]float64 {
	acc := make([][]float64, len(bodies))
	for i := range bodies {
		f := in.forceOn(i, bodies)
		if m := bodies[i].Mass; m > 0 {
			acc[i] = scale(f, 1/m)
		} else {
			acc[i] = make([]float64, 3)
		}
	}
	return acc
}

// Step advances every body by dt seconds (the configured TimeStep when
// dt <= 0), mutating position, velocity and acceleration in place, then
// runs the collision scan if a handler is registered. Within the step,
// every force evaluation sees one consistent snapshot of all positions.
func (in *Integrator) Step(bodies []*Body, dt float64) {
	if dt <= 0 {
		dt = in.cfg.TimeStep
	}
	start := time.Now()
	switch in.cfg.Method {
	case Euler:
		in.stepEuler(bodies, dt)
	case Verlet:
		in.stepVerlet(bodies, dt)
	case RK4:
		in.stepRK4(bodies, dt)
	}
	stepsTotal.WithLabelValues(in.cfg.Method.String()).Inc()
	stepDuration.Observe(time.Since(start).Seconds())
	if in.handler != nil && in.cfg.CollisionThreshold > 0 {
		DetectCollisions(bodies, in.cfg.CollisionThreshold, in.handler, in.logger)
	}
}

// stepEuler is semi-implicit Euler: the position update uses the already
// updated velocity, which keeps long-run orbital energy bounded where the
// naive explicit variant drifts.
func (in *Integrator) stepEuler(bodies []*Body, dt float64) {
	acc := in.accelerations(bodies)
	for i, b := range bodies {
		b.A = clampNorm(acc[i], in.cfg.MaxAcceleration)
		b.V = clampNorm(add(b.V, scale(b.A, dt)), in.cfg.MaxVelocity)
		b.R = add(b.R, scale(b.V, dt))
	}
}

// stepVerlet is velocity-Verlet. The acceleration stored in each body from
// the previous step drives the position update, forces are recomputed at
// the new positions, and the velocity update averages old and new
// acceleration. The scheme is stateful across steps through Body.A.
func (in *Integrator) stepVerlet(bodies []*Body, dt float64) {
	for _, b := range bodies {
		b.R = add(b.R, add(scale(b.V, dt), scale(b.A, 0.5*dt*dt)))
	}
	acc := in.accelerations(bodies)
	for i, b := range bodies {
		aNew := clampNorm(acc[i], in.cfg.MaxAcceleration)
		b.V = clampNorm(add(b.V, scale(add(b.A, aNew), 0.5*dt)), in.cfg.MaxVelocity)
		b.A = aNew
	}
}

// stageSnapshot is the per-body state backing one RK4 stage. It lives for
// a single step and is discarded afterward.
type stageSnapshot struct {
	R, V []float64
}

type stageDerivative struct {
	dR, dV []float64
}

func snapshotBodies(bodies []*Body) []stageSnapshot {
	snap := make([]stageSnapshot, len(bodies))
	for i, b := range bodies {
		snap[i] = stageSnapshot{
			R: append([]float64(nil), b.R...),
			V: append([]float64(nil), b.V...),
		}
	}
	return snap
}

// derivatives evaluates the ODE right-hand side (ẋ = v, v̇ = F/m) for the
// whole set at the bodies' current stage state.
func (in *Integrator) derivatives(bodies []*Body) []stageDerivative {
	acc := in.accelerations(bodies)
	k := make([]stageDerivative, len(bodies))
	for i, b := range bodies {
		k[i] = stageDerivative{
			dR: append([]float64(nil), b.V...),
			dV: acc[i],
		}
	}
	return k
}

// applyStage loads base + h·k into every body for the next stage
// evaluation.
func applyStage(bodies []*Body, base []stageSnapshot, k []stageDerivative, h float64) {
	for i, b := range bodies {
		b.R = add(base[i].R, scale(k[i].dR, h))
		b.V = add(base[i].V, scale(k[i].dV, h))
	}
}

// rk4Combine returns (k1 + 2k2 + 2k3 + k4)/6.
func rk4Combine(k1, k2, k3, k4 []float64) []float64 {
	const oneSixth = 1 / 6.0
	return scale(add(add(k1, scale(add(k2, k3), 2)), k4), oneSixth)
}

// stepRK4 runs the four classical Runge-Kutta stages, each a full force
// recomputation across the whole set from an intermediate snapshot. Four
// times the per-step cost of Euler, bought back in accuracy.
func (in *Integrator) stepRK4(bodies []*Body, dt float64) {
	base := snapshotBodies(bodies)
	k1 := in.derivatives(bodies)
	applyStage(bodies, base, k1, dt/2)
	k2 := in.derivatives(bodies)
	applyStage(bodies, base, k2, dt/2)
	k3 := in.derivatives(bodies)
	applyStage(bodies, base, k3, dt)
	k4 := in.derivatives(bodies)
	for i, b := range bodies {
		b.A = clampNorm(rk4Combine(k1[i].dV, k2[i].dV, k3[i].dV, k4[i].dV), in.cfg.MaxAcceleration)
		b.V = clampNorm(add(base[i].V, scale(rk4Combine(k1[i].dV, k2[i].dV, k3[i].dV, k4[i].dV), dt)), in.cfg.MaxVelocity)
		b.R = add(base[i].R, scale(rk4Combine(k1[i].dR, k2[i].dR, k3[i].dR, k4[i].dR), dt))
	}
}
