package store

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the flattened JSON form of a stored run.
type ExportData struct {
	ID      string             `json:"id"`
	Label   string             `json:"label"`
	Solver  string             `json:"solver"`
	Samples int                `json:"samples"`
	Times   []float64          `json:"times"`
	Values  []float64          `json:"values"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run's metadata and samples as one JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, times, values []float64) error {
	data := ExportData{
		ID:      meta.ID,
		Label:   meta.Label,
		Solver:  meta.Solver,
		Samples: len(times),
		Times:   times,
		Values:  values,
		Metrics: meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONStdout is a convenience wrapper for the CLI.
func ExportJSONStdout(meta *RunMetadata, times, values []float64) error {
	return ExportJSON(os.Stdout, meta, times, values)
}
