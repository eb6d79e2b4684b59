// Package rv generates radial-velocity curves from Keplerian elements.
//
// The pipeline is a stateless chain of pure transforms over index-aligned
// sequences: a uniform one-period time grid starting at periastron is
// mapped to mean anomalies, each mean anomaly is solved for its eccentric
// anomaly (independently, in parallel), eccentric anomalies become true
// anomalies through the ellipse geometry with an explicit half-period
// unwrap, the velocity equation produces one period of RV samples, and a
// periodic linear interpolation resamples that reference curve onto the
// requested observation span.
package rv

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/rvlab/internal/orbit"
	"github.com/san-kum/rvlab/internal/solver"
)

// Config controls curve generation. NT is the one-period phase
// resolution, N the reporting resolution over [Start, End]; the
// resampler decouples the two.
type Config struct {
	Start   float64
	End     float64
	NT      int // one-period grid points, >= 2
	N       int // output points, >= 1
	Solver  solver.Solver
	Workers int // parallel solve workers; <= 0 means GOMAXPROCS
	Metrics []Metric
}

// Metric summarizes a generated curve sample by sample.
type Metric interface {
	Name() string
	Observe(t, v float64)
	Value() float64
	Reset()
}

// DefaultConfig covers a single period at the standard resolution.
func DefaultConfig(el orbit.Elements) Config {
	return Config{
		Start: el.Tperi,
		End:   el.Tperi + el.Period,
		NT:    1000,
		N:     1000,
	}
}

// Curve is a sampled (time, RV) sequence. Producers and consumers
// address samples by position; the two slices always have equal length.
type Curve struct {
	Times  []float64
	Values []float64
}

// Result holds the generated observation-span curve together with the
// one-period reference it was interpolated from and summary metrics.
type Result struct {
	Curve
	Reference Curve
	Metrics   map[string]float64
}

// Generate computes the radial-velocity curve for the given elements.
// All parameters are validated before any computation; a solver failure
// on any sample aborts the run rather than returning a partial curve.
func Generate(ctx context.Context, el orbit.Elements, cfg Config) (*Result, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}
	if cfg.NT < 2 {
		return nil, fmt.Errorf("%w: NT=%d, need at least 2 one-period samples", orbit.ErrGridTooSmall, cfg.NT)
	}
	if cfg.N < 1 {
		return nil, fmt.Errorf("%w: N=%d, need at least 1 output sample", orbit.ErrParameterBounds, cfg.N)
	}
	if cfg.End < cfg.Start {
		return nil, fmt.Errorf("%w: end %g before start %g", orbit.ErrParameterBounds, cfg.End, cfg.Start)
	}

	s := cfg.Solver
	if s == nil {
		s = solver.NewNewton(solver.DefaultOptions())
	}

	ref, err := onePeriod(ctx, el, s, cfg.NT, cfg.Workers)
	if err != nil {
		return nil, err
	}

	times := Linspace(cfg.Start, cfg.End, cfg.N)
	values := ResamplePeriodic(times, ref.Times, ref.Values, el.Period)

	result := &Result{
		Curve:     Curve{Times: times, Values: values},
		Reference: ref,
		Metrics:   make(map[string]float64, len(cfg.Metrics)),
	}

	for _, m := range cfg.Metrics {
		m.Reset()
		for i := range times {
			m.Observe(times[i], values[i])
		}
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// onePeriod produces the reference curve: NT samples sweeping uniformly
// from periastron passage over exactly one period.
func onePeriod(ctx context.Context, el orbit.Elements, s solver.Solver, nt, workers int) (Curve, error) {
	times := Linspace(el.Tperi, el.Tperi+el.Period, nt)

	mean := make([]float64, nt)
	for i, t := range times {
		mean[i] = el.MeanAnomaly(t)
	}

	// Per-sample solves share no state; results land by index.
	ecc := make([]float64, nt)
	errs := make([]error, nt)
	ParallelFor(workers, nt, 64, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				return
			}
			ecc[i], errs[i] = s.Solve(el.Ecc, mean[i])
		}
	})
	for _, err := range errs {
		if err != nil {
			return Curve{}, err
		}
	}

	f := trueAnomalies(el, mean, ecc)

	values := make([]float64, nt)
	for i := range f {
		values[i] = el.RadialVelocity(f[i])
	}

	return Curve{Times: times, Values: values}, nil
}

// trueAnomalies converts the solved eccentric anomalies to a true-anomaly
// sequence that increases monotonically from 0 to 2*pi.
//
// The principal arccos branch only covers [0, pi], so the inbound half of
// the orbit has to be reflected past pi: samples at or beyond the midpoint
// index take f -> f + 2*(pi - f). This relies on the grid being a uniform
// sweep starting at periastron, where the first half is the outbound
// branch and the second half the inbound one.
//
// For circular orbits the geometry degenerates (the arccos argument
// divides by e), but the true anomaly simply equals the mean anomaly,
// which already runs 0 to 2*pi without unwrapping.
func trueAnomalies(el orbit.Elements, mean, ecc []float64) []float64 {
	f := make([]float64, len(ecc))

	if el.Ecc == 0 {
		copy(f, mean)
		return f
	}

	for i, E := range ecc {
		f[i] = el.TrueAnomaly(E)
	}
	mid := (len(f) - 1) / 2
	for i := mid; i < len(f); i++ {
		f[i] += 2 * (math.Pi - f[i])
	}
	return f
}

// Linspace returns n evenly spaced samples over [start, end] inclusive.
// n = 1 returns exactly start.
func Linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint against accumulated rounding.
	out[n-1] = end
	return out
}
