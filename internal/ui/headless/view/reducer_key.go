package view

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"aqualand/internal/game"
)

type KeyEffect int

const (
	KeyEffectNone KeyEffect = iota
	KeyEffectRequestQuit
	KeyEffectApply
	KeyEffectToggleDebug
)

// ReduceKey maps a key press onto focus changes, a level action or quit. The
// action is only meaningful with KeyEffectApply.
func ReduceKey(state State, msg tea.KeyMsg) (State, KeyEffect, game.Action) {
	switch {
	case key.Matches(msg, state.Keys.Quit):
		return state, KeyEffectRequestQuit, game.None
	case key.Matches(msg, state.Keys.Debug):
		return state, KeyEffectToggleDebug, game.None
	case key.Matches(msg, state.Keys.Rain):
		return state, KeyEffectApply, game.Rain
	case key.Matches(msg, state.Keys.Evaporate):
		return state, KeyEffectApply, game.Evaporate
	case key.Matches(msg, state.Keys.Reset):
		return state, KeyEffectApply, game.Reset
	case key.Matches(msg, state.Keys.NextFocus):
		state.Focus = (state.Focus + 1) % state.FocusCount()
		return state, KeyEffectNone, game.None
	case key.Matches(msg, state.Keys.PrevFocus):
		state.Focus = (state.Focus + state.FocusCount() - 1) % state.FocusCount()
		return state, KeyEffectNone, game.None
	case key.Matches(msg, state.Keys.Activate):
		if action := state.FocusedAction(); action != game.None {
			return state, KeyEffectApply, action
		}
	}
	return state, KeyEffectNone, game.None
}
