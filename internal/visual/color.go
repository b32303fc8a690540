package visual

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit RGBA value with non-premultiplied alpha.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

func RGBA(r uint8, g uint8, b uint8, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) Channels() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

func fromChannels(ch [4]uint8) Color {
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

// Named colors of the scene. Values match the raylib palette the toy was
// designed against.
var (
	RayWhite  = RGBA(245, 245, 245, 255)
	LightGray = RGBA(200, 200, 200, 255)
	SkyBlue   = RGBA(102, 191, 255, 255)
	Red       = RGBA(230, 41, 55, 255)
	DarkBlue  = RGBA(0, 82, 172, 255)
	Gold      = RGBA(255, 203, 0, 255)
	DarkBrown = RGBA(76, 63, 47, 255)
	Lime      = RGBA(0, 158, 47, 255)
	DarkGreen = RGBA(0, 117, 44, 255)
	White     = RGBA(255, 255, 255, 255)
)
