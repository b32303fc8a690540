package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aqualand/internal/geom"
	"aqualand/internal/ui/headless/theme"
	"aqualand/internal/visual"
)

const gaugeCell = "█"

// GaugeRows samples a gauge of rows cells filled to fraction and returns
// one color per row, top first. Cells are sampled at their vertical center;
// where the overlapping gradient segments meet, the later segment wins.
func GaugeRows(rows int, fraction float64, g visual.GradientStop, segments int, track visual.Color) []visual.Color {
	box := geom.Rect{W: 1, H: float64(rows)}
	fill := visual.FillRectangle(box, fraction)
	segs := visual.SegmentGradient(fill, g, segments)

	out := make([]visual.Color, rows)
	for y := range rows {
		center := float64(y) + 0.5
		out[y] = track
		if center < fill.Y {
			continue
		}
		for _, seg := range segs {
			if center >= seg.Rect.Y && center < seg.Rect.Bottom() {
				out[y] = seg.Color
			}
		}
	}
	return out
}

func renderGauge(cols int, rows []visual.Color, track visual.Color) string {
	lines := make([]string, len(rows))
	run := strings.Repeat(gaugeCell, max(cols, 1))
	for i, c := range rows {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Blend(c, track)))
		lines[i] = style.Render(run)
	}
	return strings.Join(lines, "\n")
}
