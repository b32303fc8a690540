package visual

import (
	"fmt"

	"aqualand/internal/level"
)

type Band int

const (
	Critical Band = iota
	Moderate
	Good
)

// Lower bounds of the Moderate and Good bands. Each band excludes its upper
// bound, so 30 is Moderate and 60 is Good.
const (
	ModerateFrom = 30
	GoodFrom     = 60
)

func (b Band) String() string {
	switch b {
	case Critical:
		return "critical"
	case Moderate:
		return "moderate"
	case Good:
		return "good"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

func Classify(lvl int) Band {
	if lvl < level.Min || lvl > level.Max {
		panic(fmt.Sprintf("visual.Classify: level %d outside [%d, %d]", lvl, level.Min, level.Max))
	}
	switch {
	case lvl < ModerateFrom:
		return Critical
	case lvl < GoodFrom:
		return Moderate
	default:
		return Good
	}
}

type GradientStop struct {
	Start Color
	End   Color
}

type bandStyle struct {
	label    string
	color    Color
	gradient GradientStop
}

var bandStyles = [...]bandStyle{
	Critical: {
		label:    "Nível: Crítico",
		color:    Red,
		gradient: GradientStop{Start: RGBA(231, 111, 81, 255), End: RGBA(244, 165, 132, 180)},
	},
	Moderate: {
		label:    "Nível: Moderado",
		color:    RGBA(244, 162, 97, 255),
		gradient: GradientStop{Start: RGBA(244, 162, 97, 255), End: RGBA(255, 217, 125, 180)},
	},
	Good: {
		label:    "Nível: Bom",
		color:    RGBA(107, 207, 127, 255),
		gradient: GradientStop{Start: RGBA(107, 207, 127, 255), End: RGBA(168, 230, 176, 180)},
	},
}

// Water palette of the tank. It does not follow the status band.
var (
	WaterGradient = GradientStop{Start: RGBA(72, 202, 228, 255), End: RGBA(0, 150, 199, 255)}
	WaterOutline  = RGBA(14, 157, 164, 255)
)

func styleFor(b Band) bandStyle {
	if b < Critical || b > Good {
		panic(fmt.Sprintf("visual: unknown band %d", int(b)))
	}
	return bandStyles[b]
}

func GradientFor(b Band) GradientStop { return styleFor(b).gradient }
func StatusLabel(b Band) string        { return styleFor(b).label }
func StatusColor(b Band) Color         { return styleFor(b).color }
