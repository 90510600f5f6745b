// Package planetary advances the physical state of a heterogeneous set of
// celestial bodies through time. It provides a fast analytical Keplerian
// propagation path for bodies on fixed orbits, and a full numerical N-body
// path with pluggable force models (gravity, tidal, atmospheric drag,
// radiation pressure, magnetic dipole, custom) stepped by semi-implicit
// Euler, velocity-Verlet or RK4, followed by pairwise collision detection
// and Cartesian-to-orbital-element extraction.
//
// The package is a library core: callers own the body collection and the
// pacing of steps. Everything runs single-threaded and synchronously, and
// concurrent access to the same bodies during a step is undefined. Open
// (parabolic/hyperbolic) orbits are not supported by the Kepler solver.
package planetary
