//go:build raylib

package raylib

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"aqualand/internal/geom"
	"aqualand/internal/visual"
)

// painter draws scene commands straight to the current raylib frame.
type painter struct {
	cornerSegments int32
}

func toRectangle(r geom.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func toColor(c visual.Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (p painter) Clear(c visual.Color) {
	rl.ClearBackground(toColor(c))
}

func (p painter) FillRoundedRect(r geom.Rect, roundness float64, c visual.Color) {
	rl.DrawRectangleRounded(toRectangle(r), float32(roundness), p.cornerSegments, toColor(c))
}

func (p painter) StrokeRoundedRect(r geom.Rect, roundness float64, c visual.Color) {
	rl.DrawRectangleRoundedLines(toRectangle(r), float32(roundness), p.cornerSegments, toColor(c))
}

func (p painter) FillRect(r geom.Rect, c visual.Color) {
	rl.DrawRectangleRec(toRectangle(r), toColor(c))
}

func (p painter) Text(s string, at geom.Point, size float64, c visual.Color) {
	rl.DrawText(s, int32(at.X), int32(at.Y), int32(size), toColor(c))
}

// mouse polls raylib once per frame.
type mouse struct{}

func (mouse) Pointer() geom.Point {
	pos := rl.GetMousePosition()
	return geom.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (mouse) PrimaryPressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}
