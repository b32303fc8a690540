// Package scene turns a Presentation into an ordered list of drawing
// primitives. Frontends implement Renderer; the draw order is fixed here.
package scene

import (
	"aqualand/internal/config"
	"aqualand/internal/game"
	"aqualand/internal/geom"
	"aqualand/internal/visual"
)

type Renderer interface {
	Clear(c visual.Color)
	// Roundness is the corner radius as a fraction of half the shorter side.
	FillRoundedRect(r geom.Rect, roundness float64, c visual.Color)
	StrokeRoundedRect(r geom.Rect, roundness float64, c visual.Color)
	FillRect(r geom.Rect, c visual.Color)
	// Text draws s with its top-left corner at p; size is the line height.
	Text(s string, p geom.Point, size float64, c visual.Color)
}

type buttonStyle struct {
	fill  visual.Color
	label visual.Color
}

var buttonStyles = map[game.Action]buttonStyle{
	game.Rain:      {fill: visual.SkyBlue, label: visual.DarkBlue},
	game.Evaporate: {fill: visual.Gold, label: visual.DarkBrown},
	game.Reset:     {fill: visual.Lime, label: visual.DarkGreen},
}

var (
	BackgroundColor = visual.RayWhite
	TrackColor      = visual.LightGray
	TitleColor      = visual.SkyBlue
	HoverColor      = visual.White
)

func ButtonFill(a game.Action) visual.Color  { return buttonStyles[a].fill }
func ButtonLabel(a game.Action) visual.Color { return buttonStyles[a].label }

// Draw issues one frame. hovered outlines the button under the pointer;
// pass game.None when the frontend has no pointer motion.
func Draw(r Renderer, layout config.Layout, p visual.Presentation, hovered game.Action) {
	r.Clear(BackgroundColor)
	r.Text(layout.Title, layout.TitleText.At, layout.TitleText.Size, TitleColor)
	r.Text(p.StatusLabel, layout.StatusText.At, layout.StatusText.Size, p.StatusColor)

	r.FillRoundedRect(layout.Bar, layout.BarRoundness, TrackColor)
	for _, seg := range p.BarSegments {
		r.FillRect(seg.Rect, seg.Color)
	}
	r.StrokeRoundedRect(p.BarFill, layout.BarRoundness, p.Gradient.Start)
	r.Text(p.PercentText, layout.PercentText.At, layout.PercentText.Size, p.StatusColor)

	r.FillRoundedRect(layout.Tank, layout.TankRoundness, TrackColor)
	for _, seg := range p.TankSegments {
		r.FillRect(seg.Rect, seg.Color)
	}
	r.StrokeRoundedRect(p.TankFill, layout.TankRoundness, visual.WaterOutline)

	for _, b := range game.Buttons(layout) {
		style := buttonStyles[b.Action]
		r.FillRoundedRect(b.Layout.Rect, layout.ButtonRoundness, style.fill)
		if b.Action == hovered {
			r.StrokeRoundedRect(b.Layout.Rect, layout.ButtonRoundness, HoverColor)
		}
		r.Text(b.Layout.Label, b.Layout.LabelAt, layout.LabelSize, style.label)
	}
}
