package visual

import (
	"fmt"

	"aqualand/internal/geom"
	"aqualand/internal/level"
)

// Presentation is everything a renderer needs to draw one frame.
type Presentation struct {
	Level        int
	Band         Band
	StatusLabel  string
	StatusColor  Color
	Gradient     GradientStop
	PercentText  string
	BarFill      geom.Rect
	BarSegments  []Segment
	TankFill     geom.Rect
	TankSegments []Segment
}

type Mapper struct {
	bar      geom.Rect
	tank     geom.Rect
	segments int
}

func NewMapper(bar geom.Rect, tank geom.Rect, segments int) *Mapper {
	if segments < 1 {
		panic(fmt.Sprintf("visual.NewMapper: segments must be >= 1, got %d", segments))
	}
	return &Mapper{bar: bar, tank: tank, segments: segments}
}

func (m *Mapper) Present(lvl int) Presentation {
	band := Classify(lvl)
	gradient := GradientFor(band)
	fraction := level.Fraction(lvl)
	barFill := FillRectangle(m.bar, fraction)
	tankFill := FillRectangle(m.tank, fraction)
	return Presentation{
		Level:        lvl,
		Band:         band,
		StatusLabel:  StatusLabel(band),
		StatusColor:  StatusColor(band),
		Gradient:     gradient,
		PercentText:  fmt.Sprintf("%d%%", lvl),
		BarFill:      barFill,
		BarSegments:  SegmentGradient(barFill, gradient, m.segments),
		TankFill:     tankFill,
		TankSegments: SegmentGradient(tankFill, WaterGradient, m.segments),
	}
}
