package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for radial-velocity computations.
var (
	// ErrParameterBounds indicates an orbital element or grid parameter
	// outside its valid range.
	ErrParameterBounds = errors.New("orbit: parameter out of valid bounds")

	// ErrConvergence indicates the Kepler solver exhausted its iteration
	// budget without meeting tolerance.
	ErrConvergence = errors.New("orbit: kepler solver did not converge")

	// ErrGridTooSmall indicates a sample grid below the minimum size
	// required for periodic interpolation.
	ErrGridTooSmall = errors.New("orbit: sample grid too small")
)

// SolveError carries the context of a failed Kepler solve. The pipeline
// aborts on the first SolveError rather than returning a partial curve,
// since the resampler needs a complete one-period reference.
type SolveError struct {
	MeanAnomaly  float64
	Eccentricity float64
	Iterations   int
	Residual     float64
	Wrapped      error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("kepler solve failed after %d iterations (M=%.9f, e=%.6f, residual=%.3e)",
		e.Iterations, e.MeanAnomaly, e.Eccentricity, e.Residual)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
