package analysis

import (
	"math"
	"sort"
)

// DominantPeriod estimates the strongest periodicity in a uniformly
// sampled curve from the peak of its power spectrum. The mean is
// removed first so the DC bin does not mask the orbital signal. Returns
// 0 when no usable peak exists (fewer than 2 samples or a flat curve).
func DominantPeriod(times, values []float64) float64 {
	if len(values) < 2 || len(times) != len(values) {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	padded := make([]float64, NextPow2(len(values)))
	for i, v := range values {
		padded[i] = v - mean
	}

	ps := PowerSpectrum(padded)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 || maxPower == 0 {
		return 0
	}

	// Bin k corresponds to frequency k / (NFFT * dt).
	dt := (times[len(times)-1] - times[0]) / float64(len(times)-1)
	freq := float64(maxIdx) / (float64(len(padded)) * dt)
	return 1 / freq
}

// FoldedSample is one observation mapped into orbital phase.
type FoldedSample struct {
	Phase float64 // [0, 1), 0 at the fold epoch
	Value float64
}

// Fold collapses a curve onto one orbit: each time is reduced to its
// phase relative to epoch modulo period, and samples are returned in
// phase order.
func Fold(times, values []float64, period, epoch float64) []FoldedSample {
	samples := make([]FoldedSample, 0, len(times))
	for i := range times {
		ph := math.Mod(times[i]-epoch, period) / period
		if ph < 0 {
			ph += 1
		}
		samples = append(samples, FoldedSample{Phase: ph, Value: values[i]})
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Phase < samples[j].Phase })
	return samples
}
