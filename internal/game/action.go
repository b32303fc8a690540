package game

import (
	"aqualand/internal/config"
	"aqualand/internal/geom"
)

type Action int

const (
	None Action = iota
	Rain
	Evaporate
	Reset
)

func (a Action) String() string {
	switch a {
	case Rain:
		return "rain"
	case Evaporate:
		return "evaporate"
	case Reset:
		return "reset"
	default:
		return "none"
	}
}

// Buttons lists the clickable buttons in draw order.
func Buttons(layout config.Layout) []Button {
	return []Button{
		{Action: Rain, Layout: layout.Rain},
		{Action: Evaporate, Layout: layout.Evaporate},
		{Action: Reset, Layout: layout.Reset},
	}
}

type Button struct {
	Action Action
	Layout config.ButtonLayout
}

// HitTest returns the action of the first button containing p.
func HitTest(layout config.Layout, p geom.Point) Action {
	for _, b := range Buttons(layout) {
		if b.Layout.Rect.Contains(p) {
			return b.Action
		}
	}
	return None
}
