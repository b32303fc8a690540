//go:build !headless

package gui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"aqualand/internal/geom"
	"aqualand/internal/visual"
)

const outlineWidth = float32(1)

// painter implements scene.Renderer on top of Fyne canvas objects. Objects
// are pooled across frames; only the ones used by the last frame are
// returned from objects().
type painter struct {
	bounds  geom.Rect
	rects   []*canvas.Rectangle
	texts   []*canvas.Text
	nRect   int
	nText   int
	ordered []fyne.CanvasObject
}

func newPainter(bounds geom.Rect) *painter {
	return &painter{bounds: bounds}
}

func (p *painter) begin() {
	p.nRect = 0
	p.nText = 0
	p.ordered = p.ordered[:0]
}

func (p *painter) objects() []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, len(p.ordered))
	copy(out, p.ordered)
	return out
}

func (p *painter) nextRect(r geom.Rect) *canvas.Rectangle {
	if p.nRect == len(p.rects) {
		p.rects = append(p.rects, canvas.NewRectangle(color.Transparent))
	}
	rc := p.rects[p.nRect]
	p.nRect++
	rc.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	rc.Resize(fyne.NewSize(float32(r.W), float32(r.H)))
	p.ordered = append(p.ordered, rc)
	return rc
}

func (p *painter) Clear(c visual.Color) {
	p.FillRect(p.bounds, c)
}

func (p *painter) FillRoundedRect(r geom.Rect, roundness float64, c visual.Color) {
	rc := p.nextRect(r)
	rc.FillColor = c.NRGBA()
	rc.StrokeColor = color.Transparent
	rc.StrokeWidth = 0
	rc.CornerRadius = cornerRadius(r, roundness)
}

func (p *painter) StrokeRoundedRect(r geom.Rect, roundness float64, c visual.Color) {
	rc := p.nextRect(r)
	rc.FillColor = color.Transparent
	rc.StrokeColor = c.NRGBA()
	rc.StrokeWidth = outlineWidth
	rc.CornerRadius = cornerRadius(r, roundness)
}

func (p *painter) FillRect(r geom.Rect, c visual.Color) {
	rc := p.nextRect(r)
	rc.FillColor = c.NRGBA()
	rc.StrokeColor = color.Transparent
	rc.StrokeWidth = 0
	rc.CornerRadius = 0
}

func (p *painter) Text(s string, at geom.Point, size float64, c visual.Color) {
	if p.nText == len(p.texts) {
		p.texts = append(p.texts, canvas.NewText("", color.Black))
	}
	t := p.texts[p.nText]
	p.nText++
	t.Text = s
	t.Color = c.NRGBA()
	t.TextSize = float32(size)
	t.Move(fyne.NewPos(float32(at.X), float32(at.Y)))
	t.Resize(t.MinSize())
	p.ordered = append(p.ordered, t)
}

// cornerRadius converts a roundness in [0,1] into a radius: 1 makes the
// shorter side a full semicircle.
func cornerRadius(r geom.Rect, roundness float64) float32 {
	if roundness <= 0 {
		return 0
	}
	roundness = math.Min(roundness, 1)
	return float32(roundness * math.Min(r.W, r.H) / 2)
}
