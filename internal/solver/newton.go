package solver

import (
	"math"

	"github.com/san-kum/rvlab/internal/orbit"
)

// Newton solves Kepler's equation by Newton-Raphson iteration starting
// from E0 = M. For 0 <= e < 1 the derivative 1 - e*cos(E) is bounded
// away from zero, so the iteration is well defined everywhere on the
// principal branch.
type Newton struct {
	opts Options
}

func NewNewton(opts Options) *Newton {
	return &Newton{opts: opts.withDefaults()}
}

func (n *Newton) Name() string { return "newton" }

func (n *Newton) Solve(e, M float64) (float64, error) {
	if e == 0 {
		return M, nil
	}

	E := M
	residual := orbit.Kepler(E, e, M)

	for i := 0; i < n.opts.MaxIter; i++ {
		if math.Abs(residual) < n.opts.Tolerance {
			return E, nil
		}
		E -= residual / (1 - e*math.Cos(E))
		residual = orbit.Kepler(E, e, M)
	}

	if math.Abs(residual) < n.opts.Tolerance {
		return E, nil
	}
	return 0, convergenceError(n.Name(), e, M, residual, n.opts.MaxIter)
}
