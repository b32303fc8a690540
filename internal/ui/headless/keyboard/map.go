package keyboard

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Rain      key.Binding
	Evaporate key.Binding
	Reset     key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Activate  key.Binding
	Debug     key.Binding
	Quit      key.Binding
}

func New() Map {
	return Map{
		Rain: key.NewBinding(
			key.WithKeys("up", "+", "="),
			key.WithHelp("↑/+", "chover"),
		),
		Evaporate: key.NewBinding(
			key.WithKeys("down", "-"),
			key.WithHelp("↓/-", "evaporar"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reiniciar"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "press"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "debug"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.Rain, m.Evaporate, m.Reset, m.NextFocus, m.Activate, m.Quit}
}

func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Rain, m.Evaporate, m.Reset},
		{m.NextFocus, m.PrevFocus, m.Activate, m.Debug, m.Quit},
	}
}
