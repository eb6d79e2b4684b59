package store

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/rvlab/internal/orbit"
	"github.com/san-kum/rvlab/internal/rv"
)

func testResult() (orbit.Elements, rv.Config, *rv.Result) {
	el := orbit.Elements{K: 0.464, Period: 359.51, Tperi: 3998.1, Omega: 52.2, Ecc: 0.847, SemiMajor: 0.993, Vsys: -68.54}
	cfg := rv.Config{Start: 3600, End: 3601, NT: 100, N: 3}
	result := &rv.Result{
		Curve: rv.Curve{
			Times:  []float64{3600, 3600.5, 3601},
			Values: []float64{-68.5, -68.4, -68.3},
		},
		Metrics: map[string]float64{"peak_to_peak": 0.2},
	}
	return el, cfg, result
}

func TestSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	el, cfg, result := testResult()
	runID, err := st.Save("hd156846b", "newton", el, cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Label != "hd156846b" {
		t.Errorf("expected label hd156846b, got %s", meta.Label)
	}
	if meta.Solver != "newton" {
		t.Errorf("expected solver newton, got %s", meta.Solver)
	}
	if meta.Elements.Ecc != 0.847 {
		t.Errorf("expected eccentricity 0.847, got %f", meta.Elements.Ecc)
	}
	if meta.Metrics["peak_to_peak"] != 0.2 {
		t.Errorf("expected metric 0.2, got %f", meta.Metrics["peak_to_peak"])
	}
}

func TestLoadSamples(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	el, cfg, result := testResult()
	runID, err := st.Save("test", "newton", el, cfg, result)
	if err != nil {
		t.Fatal(err)
	}

	times, values, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}

	if len(times) != 3 || len(values) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d", len(times), len(values))
	}
	for i := range times {
		if math.Abs(times[i]-result.Times[i]) > 1e-6 {
			t.Errorf("time %d: expected %f, got %f", i, result.Times[i], times[i])
		}
		if math.Abs(values[i]-result.Values[i]) > 1e-6 {
			t.Errorf("value %d: expected %f, got %f", i, result.Values[i], values[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store should be empty, got %d runs", len(runs))
	}

	el, cfg, result := testResult()
	if _, err := st.Save("a", "newton", el, cfg, result); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/rvlab-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Error("expected no runs")
	}
}

func TestExportJSON(t *testing.T) {
	el, _, result := testResult()
	meta := &RunMetadata{ID: "x_1", Label: "x", Solver: "halley", Elements: el, Metrics: result.Metrics}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, result.Times, result.Values); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if got.ID != "x_1" || got.Samples != 3 {
		t.Errorf("unexpected export content: %+v", got)
	}
}
