// Package export renders stored RV curves to SVG.
package export

import (
	"fmt"
	"strings"
)

// CurveToSVG renders a sampled curve as an SVG polyline with 5% padding
// around the data bounds. Returns "" for fewer than 2 samples.
func CurveToSVG(times, values []float64, width, height int, strokeColor string) string {
	if len(times) < 2 || len(times) != len(values) {
		return ""
	}
	if strokeColor == "" {
		strokeColor = "#00ff00"
	}

	minT, maxT := times[0], times[len(times)-1]
	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rangeT := maxT - minT
	rangeV := maxV - minV
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeV == 0 {
		rangeV = 1
	}
	minT -= rangeT * 0.05
	minV -= rangeV * 0.05
	rangeT *= 1.1
	rangeV *= 1.1

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline fill="none" stroke="%s" stroke-width="1.5" points="`,
		width, height, width, height, strokeColor))

	for i := range times {
		x := (times[i] - minT) / rangeT * float64(width)
		y := float64(height) - (values[i]-minV)/rangeV*float64(height)
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
