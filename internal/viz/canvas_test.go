package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("pixel not set")
	}

	// Out of bounds is a no-op, not a panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("clear left pixels behind")
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}

func TestScatter(t *testing.T) {
	xs := []float64{0, 0.25, 0.5, 0.75, 1}
	ys := []float64{0, 1, 0, -1, 0}

	out := Scatter(xs, ys, 20, 8)
	if out == "" {
		t.Fatal("expected non-empty plot")
	}

	set := 0
	for _, r := range out {
		if r > 0x2800 && r <= 0x28FF {
			set++
		}
	}
	if set == 0 {
		t.Error("expected at least one braille cell set")
	}

	if Scatter(nil, nil, 20, 8) != "" {
		t.Error("empty input should render nothing")
	}
	if Scatter([]float64{1}, []float64{1, 2}, 20, 8) != "" {
		t.Error("mismatched input should render nothing")
	}
}
