//go:build !headless

package gui

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"

	"aqualand/internal/geom"
	"aqualand/internal/visual"
)

const iconSize = 64

var aquaIconPNG = sync.OnceValue(func() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(visual.LightGray.NRGBA()), image.Point{}, draw.Src)

	water := visual.FillRectangle(geom.Rect{W: iconSize, H: iconSize}, 0.75)
	for _, seg := range visual.SegmentGradient(water, visual.WaterGradient, 8) {
		r := image.Rect(int(seg.Rect.X), int(seg.Rect.Y), int(seg.Rect.Right()), int(seg.Rect.Bottom()))
		draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(seg.Color.NRGBA()), image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("gui.aquaIconPNG: " + err.Error())
	}
	return buf.Bytes()
})

func aquaIconResource() fyne.Resource {
	return fyne.NewStaticResource("aqualand-icon.png", aquaIconPNG())
}

func AppIconResource() fyne.Resource {
	return aquaIconResource()
}
