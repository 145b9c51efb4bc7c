package viz

import (
	"strings"
	"testing"
)

func TestSparklineWidth(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	if got := []rune(stripped(SparklineChart(values, 20))); len(got) != 20 {
		t.Errorf("expected 20 cells, got %d", len(got))
	}
	if got := SparklineChart(nil, 5); got != "─────" {
		t.Errorf("expected placeholder, got %q", got)
	}
	if got := SparklineChart(values, 0); got != "" {
		t.Errorf("expected empty sparkline, got %q", got)
	}
}

func TestMetricRowsSorted(t *testing.T) {
	rows := MetricRows(map[string]float64{"length": 6.28, "drift": 0.5, "ropelength": 3141})
	want := []string{"drift", "length", "ropelength"}
	for i, r := range rows {
		if r.Label != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], r.Label)
		}
	}
}

func TestTableContainsValues(t *testing.T) {
	out := Table([]Row{F("energy", 1.5), I("steps", 200), S("integrator", "rk4")})
	for _, s := range []string{"energy", "1.5", "steps", "200", "integrator", "rk4"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 3 lines, got %d", n+1)
	}
}

func TestPlot(t *testing.T) {
	out := Plot([]float64{0, 1, 4, 9, 16}, "z(t)", 30, 5)
	if !strings.Contains(out, "z(t)") {
		t.Errorf("plot missing caption:\n%s", out)
	}
	if !strings.Contains(Plot(nil, "empty", 30, 5), "no samples") {
		t.Error("expected placeholder for empty history")
	}
	if !strings.Contains(PlotMany([][]float64{{1, 2, 3}, {3, 2, 1}}, "cmp", 30, 5), "cmp") {
		t.Error("multi plot missing caption")
	}
}

// stripped drops ANSI escape sequences.
func stripped(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && r == 'm':
			esc = false
		case !esc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
