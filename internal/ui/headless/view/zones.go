package view

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"aqualand/internal/game"
)

const (
	zoneButtonRain      = "button-rain"
	zoneButtonEvaporate = "button-evaporate"
	zoneButtonReset     = "button-reset"
)

func ZoneFor(action game.Action) string {
	switch action {
	case game.Rain:
		return zoneButtonRain
	case game.Evaporate:
		return zoneButtonEvaporate
	case game.Reset:
		return zoneButtonReset
	default:
		return ""
	}
}

func ActionForZone(id string) game.Action {
	switch id {
	case zoneButtonRain:
		return game.Rain
	case zoneButtonEvaporate:
		return game.Evaporate
	case zoneButtonReset:
		return game.Reset
	default:
		return game.None
	}
}

// ZoneLookup reports whether the mouse event falls inside the zone id.
type ZoneLookup func(id string, msg tea.MouseMsg) bool

// MarkedZones resolves zones registered through zone.Mark on the last
// scanned frame.
func MarkedZones(id string, msg tea.MouseMsg) bool {
	return zone.Get(id).InBounds(msg)
}
