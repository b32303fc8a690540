//go:build !headless

package gui

import (
	"bytes"
	"image/png"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"aqualand/internal/config"
	"aqualand/internal/game"
	"aqualand/internal/geom"
	"aqualand/internal/scene"
	"aqualand/internal/visual"
)

func TestCornerRadius(t *testing.T) {
	cases := []struct {
		rect      geom.Rect
		roundness float64
		want      float32
	}{
		{geom.Rect{W: 50, H: 300}, 0.2, 5},
		{geom.Rect{W: 600, H: 300}, 0.05, 7.5},
		{geom.Rect{W: 200, H: 60}, 0.2, 6},
		{geom.Rect{W: 200, H: 60}, 0, 0},
		{geom.Rect{W: 200, H: 60}, 3, 30},
	}
	for _, tc := range cases {
		if got := cornerRadius(tc.rect, tc.roundness); got != tc.want {
			t.Fatalf("cornerRadius(%v, %v) = %v, want %v", tc.rect, tc.roundness, got, tc.want)
		}
	}
}

func TestPainterMirrorsSceneCommands(t *testing.T) {
	test.NewTempApp(t)
	layout := config.DefaultLayout()
	pres := visual.NewMapper(layout.Bar, layout.Tank, layout.Segments).Present(20)

	rec := &scene.Recorder{}
	scene.Draw(rec, layout, pres, game.Rain)

	p := newPainter(layout.Bounds())
	p.begin()
	scene.Draw(p, layout, pres, game.Rain)
	objects := p.objects()

	if len(objects) != len(rec.Commands) {
		t.Fatalf("expected %d objects, got %d", len(rec.Commands), len(objects))
	}
	for i, cmd := range rec.Commands {
		switch cmd.Op {
		case scene.OpText:
			text, ok := objects[i].(*canvas.Text)
			if !ok {
				t.Fatalf("object %d: expected text, got %T", i, objects[i])
			}
			if text.Text != cmd.Text || text.Color != cmd.Color.NRGBA() {
				t.Fatalf("object %d: got %q %v, want %q %v", i, text.Text, text.Color, cmd.Text, cmd.Color)
			}
		case scene.OpStrokeRoundedRect:
			rect := objects[i].(*canvas.Rectangle)
			if rect.StrokeColor != cmd.Color.NRGBA() || rect.StrokeWidth != outlineWidth {
				t.Fatalf("object %d: unexpected stroke %v/%v", i, rect.StrokeColor, rect.StrokeWidth)
			}
		default:
			rect, ok := objects[i].(*canvas.Rectangle)
			if !ok {
				t.Fatalf("object %d: expected rectangle, got %T", i, objects[i])
			}
			if rect.FillColor != cmd.Color.NRGBA() {
				t.Fatalf("object %d: fill %v, want %v", i, rect.FillColor, cmd.Color)
			}
		}
	}
}

func TestPainterReusesObjectsAcrossFrames(t *testing.T) {
	test.NewTempApp(t)
	layout := config.DefaultLayout()
	mapper := visual.NewMapper(layout.Bar, layout.Tank, layout.Segments)
	p := newPainter(layout.Bounds())

	p.begin()
	scene.Draw(p, layout, mapper.Present(20), game.None)
	first := p.objects()

	p.begin()
	scene.Draw(p, layout, mapper.Present(90), game.None)
	second := p.objects()

	if len(first) != len(second) {
		t.Fatalf("expected equal object counts, got %d and %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Fatalf("expected pooled background rectangle to be reused")
	}
	if len(p.rects)+len(p.texts) != len(second) {
		t.Fatalf("pool grew beyond one frame: %d rects, %d texts", len(p.rects), len(p.texts))
	}
}

func TestIconIsValidPNG(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(aquaIconPNG()))
	if err != nil {
		t.Fatalf("decode icon: %v", err)
	}
	if b := img.Bounds(); b.Dx() != iconSize || b.Dy() != iconSize {
		t.Fatalf("unexpected icon size %v", b)
	}
	r, g, b, _ := img.At(iconSize/2, iconSize-1).RGBA()
	if r>>8 != 9 || g>>8 != 156 || b>>8 != 202 {
		t.Fatalf("expected deep water at the bottom, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}
