package orbit

import (
	"fmt"
	"math"
)

// Elements is the orbital parameter set of a spectroscopic orbit. Times
// are in days, velocities in km/s, angles in degrees unless noted. The
// value fully determines the radial-velocity model.
type Elements struct {
	K         float64 `json:"k" yaml:"k"`                   // velocity semi-amplitude
	Period    float64 `json:"period" yaml:"period"`         // orbital period
	Tperi     float64 `json:"tperi" yaml:"tperi"`           // periastron-passage epoch
	Omega     float64 `json:"omega" yaml:"omega"`           // argument of periapse, degrees
	Ecc       float64 `json:"ecc" yaml:"ecc"`               // eccentricity, 0 <= e < 1
	SemiMajor float64 `json:"semi_major" yaml:"semi_major"` // semi-major axis
	Vsys      float64 `json:"vsys" yaml:"vsys"`             // systemic velocity
}

// Validate checks the elements describe a bound, periodic orbit.
func (el Elements) Validate() error {
	if el.Ecc < 0 || el.Ecc >= 1 {
		return fmt.Errorf("%w: eccentricity %g must satisfy 0 <= e < 1", ErrParameterBounds, el.Ecc)
	}
	if el.Period <= 0 {
		return fmt.Errorf("%w: period %g must be positive", ErrParameterBounds, el.Period)
	}
	return nil
}

// MeanMotion returns 2*pi/T, the mean angular rate in rad/day.
func (el Elements) MeanMotion() float64 {
	return 2 * math.Pi / el.Period
}

// MeanAnomaly returns M(t) = 2*pi/T * (t - Tperi), linear in time and
// zero at periastron passage.
func (el Elements) MeanAnomaly(t float64) float64 {
	return el.MeanMotion() * (t - el.Tperi)
}

// Kepler returns the residual of Kepler's equation (Eq. 41),
// E - e*sin(E) - M. A solved eccentric anomaly drives this to zero.
func Kepler(E, e, M float64) float64 {
	return E - e*math.Sin(E) - M
}

// Radius returns the orbital separation for an eccentric anomaly,
// r = a*(1 - e*cos(E)).
func (el Elements) Radius(E float64) float64 {
	return el.SemiMajor * (1 - el.Ecc*math.Cos(E))
}

// TrueAnomaly converts an eccentric anomaly to the principal-branch
// true anomaly in [0, pi] via f = arccos(((a*(1-e^2)/r) - 1)/e).
// Callers covering a full period must unwrap the inbound half
// themselves; see rv.Generate. For e = 0 the arccos argument is
// undefined (zero denominator), so the caller is expected to use the
// mean anomaly directly for circular orbits.
func (el Elements) TrueAnomaly(E float64) float64 {
	r := el.Radius(E)
	arg := (el.SemiMajor*(1-el.Ecc*el.Ecc)/r - 1) / el.Ecc
	// Rounding can push the argument just past +/-1 at the apsides.
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	return math.Acos(arg)
}

// RadialVelocity evaluates the projected velocity equation (Eq. 65),
// RV = Vsys + K*(cos(w+f) + e*cos(w)), for a true anomaly f in radians.
func (el Elements) RadialVelocity(f float64) float64 {
	w := el.Omega * math.Pi / 180
	return el.Vsys + el.K*(math.Cos(w+f)+el.Ecc*math.Cos(w))
}

// SemiAmplitude computes the velocity semi-amplitude from component
// masses, mean motion, semi-major axis, and inclination (Eq. 66):
// K = m2/(m1+m2) * n*a*sin(I)/sqrt(1-e^2). Not used by the pipeline;
// provided for callers deriving K from physical parameters.
func SemiAmplitude(m1, m2, n, a, inclination, e float64) float64 {
	return m2 / (m1 + m2) * n * a * math.Sin(inclination) / math.Sqrt(1-e*e)
}
