package solver

import (
	"math"

	"github.com/san-kum/rvlab/internal/orbit"
)

// Halley solves Kepler's equation with Halley's third-order method,
// which folds the second derivative e*sin(E) into each update. It
// typically converges in fewer iterations than Newton for high
// eccentricities at slightly more work per step.
type Halley struct {
	opts Options
}

func NewHalley(opts Options) *Halley {
	return &Halley{opts: opts.withDefaults()}
}

func (h *Halley) Name() string { return "halley" }

func (h *Halley) Solve(e, M float64) (float64, error) {
	if e == 0 {
		return M, nil
	}

	E := M
	residual := orbit.Kepler(E, e, M)

	for i := 0; i < h.opts.MaxIter; i++ {
		if math.Abs(residual) < h.opts.Tolerance {
			return E, nil
		}
		d1 := 1 - e*math.Cos(E)
		d2 := e * math.Sin(E)
		E -= 2 * residual * d1 / (2*d1*d1 - residual*d2)
		residual = orbit.Kepler(E, e, M)
	}

	if math.Abs(residual) < h.opts.Tolerance {
		return E, nil
	}
	return 0, convergenceError(h.Name(), e, M, residual, h.opts.MaxIter)
}
