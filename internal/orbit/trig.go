package orbit

import "math"

// TrigTable provides precomputed sin/cos with linear interpolation
// between entries. The live orbit view redraws the full ellipse outline
// every frame; table lookups keep that redraw cheap without affecting
// the solver path, which always uses math.Sin/math.Cos directly.
type TrigTable struct {
	sin []float64
	cos []float64
	n   int
}

// Default table: 4096 entries, ~0.0015 rad resolution.
var DefaultTrigTable = NewTrigTable(4096)

// NewTrigTable creates a lookup table with n entries over [0, 2*pi).
func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}
	return t
}

// SinCos returns interpolated sin and cos for x in radians.
func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	frac := idx - float64(i)

	i0 := i % t.n
	i1 := (i + 1) % t.n

	sin = t.sin[i0]*(1-frac) + t.sin[i1]*frac
	cos = t.cos[i0]*(1-frac) + t.cos[i1]*frac
	return
}

// FastSinCos uses the default table.
func FastSinCos(x float64) (float64, float64) {
	return DefaultTrigTable.SinCos(x)
}
