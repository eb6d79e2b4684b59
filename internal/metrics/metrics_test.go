package metrics

import (
	"math"
	"testing"
)

func TestPeakToPeak(t *testing.T) {
	m := NewPeakToPeak()

	if m.Value() != 0 {
		t.Error("empty metric should be 0")
	}

	for i, v := range []float64{-1.0, 3.0, 0.5, -2.5} {
		m.Observe(float64(i), v)
	}
	if m.Value() != 5.5 {
		t.Errorf("expected 5.5, got %f", m.Value())
	}

	m.Reset()
	m.Observe(0, 7)
	if m.Value() != 0 {
		t.Errorf("single sample after reset should give 0 swing, got %f", m.Value())
	}
}

func TestMean(t *testing.T) {
	m := NewMean()

	if m.Value() != 0 {
		t.Error("empty metric should be 0")
	}

	for i, v := range []float64{1, 2, 3, 4} {
		m.Observe(float64(i), v)
	}
	if m.Value() != 2.5 {
		t.Errorf("expected 2.5, got %f", m.Value())
	}
}

func TestRMS(t *testing.T) {
	m := NewRMS(-68.54)

	if m.Value() != 0 {
		t.Error("empty metric should be 0")
	}

	// Constant offset of 0.3 from systemic velocity.
	for i := 0; i < 10; i++ {
		m.Observe(float64(i), -68.54+0.3)
	}
	if math.Abs(m.Value()-0.3) > 1e-12 {
		t.Errorf("expected 0.3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear accumulation")
	}
}
