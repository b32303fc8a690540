package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"aqualand/internal/level"
	"aqualand/internal/scene"
	"aqualand/internal/ui/headless/render"
	"aqualand/internal/ui/headless/theme"
	"aqualand/internal/visual"
)

const (
	// One terminal cell covers this many layout units.
	cellWidth  = 12.5
	cellHeight = 25

	frameInnerInset = 4
	gaugeGap        = 3
	buttonGap       = 2
	sectionGap      = "\n\n"
)

func RenderApp(state *State, pres visual.Presentation) string {
	if state.Width == 0 {
		return "initializing..."
	}
	page := state.PageWidth()

	header := theme.TitleStyle(scene.TitleColor).Render(render.TruncateDisplayWidth(state.Layout.Title, page))
	status := theme.Foreground(pres.StatusColor).Render(render.TruncateDisplayWidth(pres.StatusLabel, page))
	sections := []string{
		header,
		status,
		renderGauges(state, pres, page),
		renderButtons(state),
		theme.HelpStyle.Render(state.HelpView.View(state.Keys)),
	}
	if state.LastEvent != "" {
		sections = append(sections, theme.EventStyle.Render(render.TruncateDisplayWidth(state.LastEvent, page)))
	}
	return render.Frame(strings.Join(sections, sectionGap), state.ContentWidth(), theme.PanelStyle)
}

// GaugeSize converts the layout's bar and tank into cell counts that fit
// within page columns.
func GaugeSize(state *State, page int) (barCols int, tankCols int, rows int) {
	layout := state.Layout
	rows = max(int(layout.Bar.H/cellHeight), 1)
	barCols = max(int(layout.Bar.W/cellWidth), 1)
	tankCols = min(int(layout.Tank.W/cellWidth), page-barCols-gaugeGap)
	return barCols, max(tankCols, 1), rows
}

func renderGauges(state *State, pres visual.Presentation, page int) string {
	barCols, tankCols, rows := GaugeSize(state, page)
	fraction := level.Fraction(pres.Level)
	segments := state.Layout.Segments

	bar := renderGauge(barCols, GaugeRows(rows, fraction, pres.Gradient, segments, scene.TrackColor), scene.TrackColor)
	percent := theme.Foreground(pres.StatusColor).Render(pres.PercentText)
	barColumn := lipgloss.JoinVertical(lipgloss.Left, bar, percent)

	tank := renderGauge(tankCols, GaugeRows(rows, fraction, visual.WaterGradient, segments, scene.TrackColor), scene.TrackColor)
	return lipgloss.JoinHorizontal(lipgloss.Top, barColumn, strings.Repeat(" ", gaugeGap), tank)
}

func renderButtons(state *State) string {
	gap := strings.Repeat(" ", buttonGap)
	parts := make([]string, 0, 2*state.FocusCount())
	for i, b := range state.buttons() {
		id := ZoneFor(b.Action)
		style := theme.ButtonStyle(
			scene.ButtonFill(b.Action),
			scene.ButtonLabel(b.Action),
			state.HoverZone == id,
			state.Focus == i,
		)
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, zone.Mark(id, style.Render(b.Layout.Label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
