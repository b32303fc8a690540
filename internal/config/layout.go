package config

import (
	"aqualand/internal/geom"
	"aqualand/internal/level"
)

type TextLayout struct {
	At   geom.Point
	Size float64
}

type ButtonLayout struct {
	Rect    geom.Rect
	Label   string
	LabelAt geom.Point
}

// Layout holds the static screen layout in window units. It is not exposed as
// flags.
type Layout struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int

	Bar             geom.Rect
	Tank            geom.Rect
	BarRoundness    float64
	TankRoundness   float64
	ButtonRoundness float64
	CornerSegments  int
	Segments        int

	Step         int
	DefaultLevel int

	TitleText   TextLayout
	StatusText  TextLayout
	PercentText TextLayout
	LabelSize   float64

	Rain      ButtonLayout
	Evaporate ButtonLayout
	Reset     ButtonLayout
}

func DefaultLayout() Layout {
	return Layout{
		Title:     "Aqua Land",
		Width:     1280,
		Height:    720,
		TargetFPS: 60,

		Bar:             geom.Rect{X: 100, Y: 200, W: 50, H: 300},
		Tank:            geom.Rect{X: 200, Y: 200, W: 600, H: 300},
		BarRoundness:    0.2,
		TankRoundness:   0.05,
		ButtonRoundness: 0.2,
		CornerSegments:  10,
		Segments:        10,

		Step:         level.DefaultStep,
		DefaultLevel: level.DefaultLevel,

		TitleText:   TextLayout{At: geom.Point{X: 50, Y: 30}, Size: 50},
		StatusText:  TextLayout{At: geom.Point{X: 450, Y: 120}, Size: 35},
		PercentText: TextLayout{At: geom.Point{X: 110, Y: 510}, Size: 20},
		LabelSize:   20,

		Rain: ButtonLayout{
			Rect:    geom.Rect{X: 300, Y: 550, W: 200, H: 60},
			Label:   "Chover",
			LabelAt: geom.Point{X: 350, Y: 565},
		},
		Evaporate: ButtonLayout{
			Rect:    geom.Rect{X: 550, Y: 550, W: 200, H: 60},
			Label:   "Evaporar",
			LabelAt: geom.Point{X: 590, Y: 565},
		},
		Reset: ButtonLayout{
			Rect:    geom.Rect{X: 800, Y: 550, W: 200, H: 60},
			Label:   "Reiniciar",
			LabelAt: geom.Point{X: 840, Y: 565},
		},
	}
}

func (l Layout) LevelConfig() level.Config {
	return level.Config{Step: l.Step, Default: l.DefaultLevel}
}

func (l Layout) Bounds() geom.Rect {
	return geom.Rect{W: float64(l.Width), H: float64(l.Height)}
}
