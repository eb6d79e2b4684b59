package export

import (
	"strings"
	"testing"
)

func TestCurveToSVG(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	values := []float64{-68.5, -68.2, -68.9, -68.5}

	out := CurveToSVG(times, values, 800, 400, "")

	if !strings.HasPrefix(out, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(out, "<polyline") {
		t.Error("missing polyline")
	}
	if !strings.Contains(out, "#00ff00") {
		t.Error("default stroke color not applied")
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Error("missing closing tag")
	}
}

func TestCurveToSVGDegenerate(t *testing.T) {
	if CurveToSVG([]float64{1}, []float64{2}, 800, 400, "") != "" {
		t.Error("single sample should render nothing")
	}
	if CurveToSVG([]float64{1, 2}, []float64{3}, 800, 400, "") != "" {
		t.Error("mismatched lengths should render nothing")
	}

	// Flat curves must not divide by zero.
	out := CurveToSVG([]float64{0, 1, 2}, []float64{5, 5, 5}, 800, 400, "#fff")
	if out == "" || !strings.Contains(out, "#fff") {
		t.Error("flat curve should still render")
	}
}
