package solver

import (
	"math"

	"github.com/san-kum/rvlab/internal/orbit"
)

// Bisection brackets the root on [M-e, M+e], valid because
// |E - M| = e*|sin(E)| <= e, and the residual is strictly increasing
// in E for e < 1. Slower than the Newton-class solvers but immune to
// any pathological starting point.
type Bisection struct {
	opts Options
}

func NewBisection(opts Options) *Bisection {
	return &Bisection{opts: opts.withDefaults()}
}

func (b *Bisection) Name() string { return "bisection" }

func (b *Bisection) Solve(e, M float64) (float64, error) {
	if e == 0 {
		return M, nil
	}

	lo, hi := M-e, M+e
	var mid, residual float64

	for i := 0; i < b.opts.MaxIter; i++ {
		mid = 0.5 * (lo + hi)
		residual = orbit.Kepler(mid, e, M)
		if math.Abs(residual) < b.opts.Tolerance {
			return mid, nil
		}
		if residual > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}

	return 0, convergenceError(b.Name(), e, M, residual, b.opts.MaxIter)
}
