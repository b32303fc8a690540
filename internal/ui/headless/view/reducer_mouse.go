package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"aqualand/internal/game"
)

// ReduceMouse tracks the hovered button and returns the action of a left
// button release inside one.
func ReduceMouse(state State, msg tea.MouseMsg, inZone ZoneLookup) (State, game.Action) {
	if inZone == nil {
		panic("view.ReduceMouse: zone lookup must not be nil")
	}
	state.HoverZone = ""
	for _, b := range state.buttons() {
		id := ZoneFor(b.Action)
		if inZone(id, msg) {
			state.HoverZone = id
			break
		}
	}
	if state.HoverZone == "" {
		return state, game.None
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return state, game.None
	}
	action := ActionForZone(state.HoverZone)
	return state.withFocusOn(action), action
}
