package rv

import (
	"math"
	"sort"
)

// ResamplePeriodic maps a periodic reference curve onto arbitrary target
// times by linear interpolation. Each target is reduced modulo the
// period into the reference window before interpolating between its two
// nearest reference samples.
//
// Precondition: refTimes is sorted, spans exactly one full period
// (inclusive of both endpoints), and has at least 2 points. This is the
// only stage that handles times outside the reference window, which
// keeps phase resolution independent of reporting resolution.
func ResamplePeriodic(targets, refTimes, refValues []float64, period float64) []float64 {
	out := make([]float64, len(targets))
	t0 := refTimes[0]

	for i, t := range targets {
		phase := math.Mod(t-t0, period)
		if phase < 0 {
			phase += period
		}
		out[i] = interp(t0+phase, refTimes, refValues)
	}
	return out
}

// interp linearly interpolates at t, which must lie within
// [refTimes[0], refTimes[len-1]].
func interp(t float64, refTimes, refValues []float64) float64 {
	j := sort.SearchFloat64s(refTimes, t)
	if j == 0 {
		return refValues[0]
	}
	if j >= len(refTimes) {
		return refValues[len(refValues)-1]
	}
	if refTimes[j] == t {
		return refValues[j]
	}

	t1, t2 := refTimes[j-1], refTimes[j]
	v1, v2 := refValues[j-1], refValues[j]
	if t2 == t1 {
		return v1
	}
	return v1 + (v2-v1)*(t-t1)/(t2-t1)
}
