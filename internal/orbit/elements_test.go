package orbit

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		el      Elements
		wantErr bool
	}{
		{"valid", Elements{Ecc: 0.5, Period: 100}, false},
		{"circular", Elements{Ecc: 0, Period: 1}, false},
		{"negative ecc", Elements{Ecc: -0.1, Period: 100}, true},
		{"parabolic", Elements{Ecc: 1.0, Period: 100}, true},
		{"hyperbolic", Elements{Ecc: 1.5, Period: 100}, true},
		{"zero period", Elements{Ecc: 0.5, Period: 0}, true},
		{"negative period", Elements{Ecc: 0.5, Period: -10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.el.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr && !errors.Is(err, ErrParameterBounds) {
				t.Errorf("expected ErrParameterBounds, got %v", err)
			}
		})
	}
}

func TestMeanAnomaly(t *testing.T) {
	el := Elements{Period: 100, Tperi: 50}

	if got := el.MeanAnomaly(50); got != 0 {
		t.Errorf("mean anomaly at periastron should be 0, got %f", got)
	}
	if got := el.MeanAnomaly(100); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("mean anomaly at half period should be pi, got %f", got)
	}
	if got := el.MeanAnomaly(150); math.Abs(got-2*math.Pi) > 1e-12 {
		t.Errorf("mean anomaly at full period should be 2*pi, got %f", got)
	}
}

func TestKeplerResidual(t *testing.T) {
	// E = M when e = 0
	if got := Kepler(1.3, 0, 1.3); got != 0 {
		t.Errorf("residual should be 0 for e=0, E=M, got %g", got)
	}

	// Hand-checked point: E=pi/2, e=0.5 gives M = pi/2 - 0.5
	M := math.Pi/2 - 0.5
	if got := Kepler(math.Pi/2, 0.5, M); math.Abs(got) > 1e-15 {
		t.Errorf("residual should vanish at exact solution, got %g", got)
	}
}

func TestRadiusApsides(t *testing.T) {
	el := Elements{SemiMajor: 2.0, Ecc: 0.3}

	peri := el.Radius(0)
	if math.Abs(peri-2.0*0.7) > 1e-12 {
		t.Errorf("periastron radius: expected %f, got %f", 2.0*0.7, peri)
	}

	apo := el.Radius(math.Pi)
	if math.Abs(apo-2.0*1.3) > 1e-12 {
		t.Errorf("apoastron radius: expected %f, got %f", 2.0*1.3, apo)
	}
}

func TestTrueAnomalyPrincipalBranch(t *testing.T) {
	el := Elements{SemiMajor: 1.0, Ecc: 0.847}

	// Periastron and apoastron map to the ends of the branch.
	if f := el.TrueAnomaly(0); math.Abs(f) > 1e-7 {
		t.Errorf("true anomaly at periastron: expected 0, got %g", f)
	}
	if f := el.TrueAnomaly(math.Pi); math.Abs(f-math.Pi) > 1e-7 {
		t.Errorf("true anomaly at apoastron: expected pi, got %g", f)
	}

	// Interior values stay on [0, pi] and increase with E.
	prev := 0.0
	for i := 1; i <= 100; i++ {
		E := float64(i) / 100 * math.Pi
		f := el.TrueAnomaly(E)
		if f < 0 || f > math.Pi {
			t.Fatalf("true anomaly %g outside principal branch at E=%g", f, E)
		}
		if f < prev {
			t.Fatalf("true anomaly not monotonic at E=%g", E)
		}
		prev = f
	}
}

func TestRadialVelocityEquation(t *testing.T) {
	el := Elements{K: 0.464, Omega: 52.2, Ecc: 0.847, Vsys: -68.54}
	w := el.Omega * math.Pi / 180

	for _, f := range []float64{0, 0.5, math.Pi, 4.0, 2 * math.Pi} {
		want := el.Vsys + el.K*(math.Cos(w+f)+el.Ecc*math.Cos(w))
		if got := el.RadialVelocity(f); math.Abs(got-want) > 1e-15 {
			t.Errorf("RV(%g): expected %g, got %g", f, want, got)
		}
	}

	// Extremes are bounded by Vsys +/- K*(1+e).
	for i := 0; i <= 1000; i++ {
		f := float64(i) / 1000 * 2 * math.Pi
		v := el.RadialVelocity(f)
		if v < el.Vsys-el.K*(1+el.Ecc)-1e-9 || v > el.Vsys+el.K*(1+el.Ecc)+1e-9 {
			t.Fatalf("RV %g outside envelope at f=%g", v, f)
		}
	}
}

func TestSemiAmplitude(t *testing.T) {
	// Face-on orbit contributes nothing.
	if k := SemiAmplitude(1, 0.001, 0.017, 1.0, 0, 0.2); k != 0 {
		t.Errorf("expected 0 for zero inclination, got %g", k)
	}

	// Eccentricity inflates the amplitude.
	k1 := SemiAmplitude(1, 0.001, 0.017, 1.0, math.Pi/2, 0)
	k2 := SemiAmplitude(1, 0.001, 0.017, 1.0, math.Pi/2, 0.8)
	if k2 <= k1 {
		t.Errorf("amplitude should grow with eccentricity: %g <= %g", k2, k1)
	}
}

func TestTrigTable(t *testing.T) {
	tbl := NewTrigTable(4096)

	for _, x := range []float64{-7.3, -math.Pi, 0, 0.1, 1.0, math.Pi, 5.9, 12.4} {
		sin, cos := tbl.SinCos(x)
		if math.Abs(sin-math.Sin(x)) > 1e-5 {
			t.Errorf("sin(%g): expected %g, got %g", x, math.Sin(x), sin)
		}
		if math.Abs(cos-math.Cos(x)) > 1e-5 {
			t.Errorf("cos(%g): expected %g, got %g", x, math.Cos(x), cos)
		}
	}
}
