// Package orbit provides the core primitives for Keplerian radial-velocity
// modeling.
//
// The package defines the fundamental types and equations used by the
// pipeline in [github.com/san-kum/rvlab/internal/rv]:
//
//   - [Elements]: immutable set of spectroscopic orbital elements
//   - [Kepler]: residual of Kepler's equation E - e*sin(E) - M
//   - [Elements.Radius]: orbital radius from eccentric anomaly
//   - [Elements.TrueAnomaly]: principal-branch true anomaly
//   - [Elements.RadialVelocity]: projected velocity from true anomaly
//
// Equations follow the formalism of Murray & Correia (2011),
// arXiv:1009.1738; equation numbers in comments refer to that article.
//
// # Error Taxonomy
//
// Parameter violations surface [ErrParameterBounds] before any
// computation. Root-finding failures surface as a [SolveError] wrapping
// [ErrConvergence], carrying the offending mean anomaly. Degenerate
// circular-orbit geometry never errors: e = 0 is special-cased so the
// true anomaly falls back to the mean anomaly.
package orbit
