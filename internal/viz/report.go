package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Row is one labelled value of a report table.
type Row struct {
	Label string
	Value string
}

func F(label string, v float64) Row { return Row{Label: label, Value: fmt.Sprintf("%.6g", v)} }

func I(label string, v int) Row { return Row{Label: label, Value: fmt.Sprintf("%d", v)} }

func S(label, v string) Row { return Row{Label: label, Value: v} }

// Table aligns rows into a two-column block.
func Table(rows []Row) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.Label))
	}
	label := MetricLabel.Width(width + 2)

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = label.Render(r.Label) + MetricValue.Render(r.Value)
	}
	return strings.Join(lines, "\n")
}

// MetricRows lists a metric map sorted by name.
func MetricRows(metrics map[string]float64) []Row {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, len(names))
	for i, name := range names {
		rows[i] = F(name, metrics[name])
	}
	return rows
}

// Plot draws a history as an ASCII line chart.
func Plot(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return Subtle.Render("(no samples for " + caption + ")")
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotMany overlays several series of equal meaning, one color each.
func PlotMany(series [][]float64, caption string, width, height int) string {
	if len(series) == 0 {
		return Subtle.Render("(no samples for " + caption + ")")
	}
	colors := []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Magenta, asciigraph.Yellow, asciigraph.Green}
	sc := make([]asciigraph.AnsiColor, len(series))
	for i := range series {
		sc[i] = colors[i%len(colors)]
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(sc...),
	)
}
