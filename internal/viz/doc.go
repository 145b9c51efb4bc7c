// Package viz renders run reports for the terminal: lipgloss-styled
// tables and panels, sparklines, and asciigraph line charts of metric
// histories.
package viz
