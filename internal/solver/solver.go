// Package solver provides root finders for Kepler's equation.
//
// Each solver converts a mean anomaly M to the eccentric anomaly E
// satisfying E - e*sin(E) - M = 0 for a fixed eccentricity 0 <= e < 1,
// under an explicit convergence contract: an absolute residual
// tolerance and a bounded iteration count. Exceeding the budget is an
// error, never a silently wrong value.
//
//   - [Newton]: Newton-Raphson from the initial guess E0 = M (default)
//   - [Halley]: third-order Newton-class refinement
//   - [Bisection]: bracketing fallback on [M-e, M+e]
package solver

import (
	"fmt"

	"github.com/san-kum/rvlab/internal/orbit"
)

// Solver finds the eccentric anomaly for one mean anomaly sample.
// Implementations are stateless and safe for concurrent use.
type Solver interface {
	Solve(e, M float64) (float64, error)
	Name() string
}

// Options is the convergence contract shared by all solvers.
type Options struct {
	Tolerance float64 // absolute residual bound on Kepler's equation
	MaxIter   int
}

// DefaultOptions returns the contract used by the pipeline.
func DefaultOptions() Options {
	return Options{
		Tolerance: 1e-12,
		MaxIter:   50,
	}
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-12
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 50
	}
	return o
}

// New returns a solver by name.
func New(name string, opts Options) (Solver, error) {
	switch name {
	case "newton", "":
		return NewNewton(opts), nil
	case "halley":
		return NewHalley(opts), nil
	case "bisection":
		return NewBisection(opts), nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}

// Names lists the available solvers.
func Names() []string {
	return []string{"newton", "halley", "bisection"}
}

func convergenceError(name string, e, M, residual float64, iter int) error {
	return fmt.Errorf("%s: %w", name, &orbit.SolveError{
		MeanAnomaly:  M,
		Eccentricity: e,
		Iterations:   iter,
		Residual:     residual,
		Wrapped:      orbit.ErrConvergence,
	})
}
