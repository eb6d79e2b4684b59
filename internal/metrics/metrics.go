// Package metrics provides summary statistics over generated RV curves,
// implementing the rv.Metric interface.
package metrics

import "math"

// PeakToPeak tracks the full velocity swing of the curve. For a bound
// orbit this approaches 2K modulated by eccentricity and periapse angle.
type PeakToPeak struct {
	name     string
	min, max float64
	samples  int
}

func NewPeakToPeak() *PeakToPeak {
	return &PeakToPeak{name: "peak_to_peak"}
}

func (p *PeakToPeak) Name() string { return p.name }

func (p *PeakToPeak) Observe(t, v float64) {
	if p.samples == 0 {
		p.min, p.max = v, v
	} else {
		p.min = math.Min(p.min, v)
		p.max = math.Max(p.max, v)
	}
	p.samples++
}

func (p *PeakToPeak) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.max - p.min
}

func (p *PeakToPeak) Reset() {
	p.min, p.max = 0, 0
	p.samples = 0
}

// Mean tracks the average radial velocity over the observation span.
type Mean struct {
	name    string
	sum     float64
	samples int
}

func NewMean() *Mean {
	return &Mean{name: "mean_rv"}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(t, v float64) {
	m.sum += v
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// RMS tracks the root-mean-square deviation from the systemic velocity,
// a proxy for how much signal a fit would have to work with.
type RMS struct {
	name    string
	vsys    float64
	sumSq   float64
	samples int
}

func NewRMS(vsys float64) *RMS {
	return &RMS{name: "rms_about_vsys", vsys: vsys}
}

func (r *RMS) Name() string { return r.name }

func (r *RMS) Observe(t, v float64) {
	d := v - r.vsys
	r.sumSq += d * d
	r.samples++
}

func (r *RMS) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMS) Reset() {
	r.sumSq = 0
	r.samples = 0
}
