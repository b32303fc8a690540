package view

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"aqualand/internal/config"
	"aqualand/internal/game"
	"aqualand/internal/ui/headless/keyboard"
)

const defaultWidth = 80

type State struct {
	Layout config.Layout

	Focus     int
	HoverZone string
	LastEvent string

	HelpView help.Model
	Keys     keyboard.Map

	Width  int
	Height int
}

func NewState(layout config.Layout) State {
	helpView := help.New()
	helpView.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	helpView.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	helpView.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpView.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpView.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpView.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpView.Styles.Ellipsis = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return State{
		Layout:   layout,
		HelpView: helpView,
		Keys:     keyboard.New(),
	}
}

func (s State) WithWindowSize(width int, height int) State {
	s.Width = width
	s.Height = height
	s.HelpView.Width = s.PageWidth()
	return s
}

func (s State) WithLastEvent(line string) State {
	s.LastEvent = line
	return s
}

func (s State) ContentWidth() int {
	if s.Width <= 0 {
		return defaultWidth
	}
	return s.Width
}

// PageWidth is the width available inside the outer frame.
func (s State) PageWidth() int {
	return max(s.ContentWidth()-frameInnerInset, 1)
}

func (s State) buttons() []game.Button {
	return game.Buttons(s.Layout)
}

func (s State) FocusCount() int {
	return len(s.buttons())
}

func (s State) FocusedAction() game.Action {
	buttons := s.buttons()
	if s.Focus < 0 || s.Focus >= len(buttons) {
		return game.None
	}
	return buttons[s.Focus].Action
}

func (s State) withFocusOn(action game.Action) State {
	for i, b := range s.buttons() {
		if b.Action == action {
			s.Focus = i
			break
		}
	}
	return s
}
