package headless

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"aqualand/internal/game"
	"aqualand/internal/logging"
	headlessview "aqualand/internal/ui/headless/view"
)

func (m *headlessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		if _, ok := msg.(quitNowMsg); ok {
			m.cleanup()
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = m.ui.WithWindowSize(msg.Width, msg.Height)
		return m, nil
	case logMsg:
		m.ui = m.ui.WithLastEvent(strings.TrimRight(string(msg), "\n"))
		return m, waitForLog(m.rootCtx, m.logCh)
	case tea.MouseMsg:
		next, action := headlessview.ReduceMouse(m.ui, msg, m.inZone)
		m.ui = next
		m.apply(action)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *headlessModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, effect, action := headlessview.ReduceKey(m.ui, msg)
	m.ui = next
	switch effect {
	case headlessview.KeyEffectRequestQuit:
		return m, m.beginQuitCmd()
	case headlessview.KeyEffectApply:
		m.apply(action)
	case headlessview.KeyEffectToggleDebug:
		m.toggleDebug()
	}
	return m, nil
}

// apply forwards at most one action per input message to the session.
func (m *headlessModel) apply(action game.Action) {
	if action == game.None {
		return
	}
	m.session.Apply(action)
}

func (m *headlessModel) toggleDebug() {
	enabled := !m.logger.DebugEnabled()
	m.logger.SetDebugEnabled(enabled)
	m.logger.Info("debug output toggled", logging.Field("enabled", enabled))
}

func (m *headlessModel) beginQuitCmd() tea.Cmd {
	m.quitting = true
	return quitProgramCmd()
}

func quitProgramCmd() tea.Cmd {
	return tea.Sequence(func() tea.Msg {
		return tea.DisableMouse()
	}, waitForMouseDrainCmd(), func() tea.Msg {
		return quitNowMsg{}
	})
}

func waitForMouseDrainCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(120 * time.Millisecond)
		return nil
	}
}
