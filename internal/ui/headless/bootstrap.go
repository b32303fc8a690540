package headless

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"aqualand/internal/config"
	"aqualand/internal/game"
	"aqualand/internal/logging"
	headlessview "aqualand/internal/ui/headless/view"
)

const logChannelBufferSize = 64

// Run drives the terminal frontend until the user quits or rootCtx ends.
// Terminal log output is muted while the program owns the screen.
func Run(rootCtx context.Context, buildVersion string, layout config.Layout, logger *logging.Logger) error {
	if logger == nil {
		panic("headless.Run: logger must not be nil")
	}
	defer forceDisableMouseTracking()
	if rootCtx == nil {
		rootCtx = context.Background()
	}

	logger.SetTerminalOutputEnabled(false)
	defer logger.SetTerminalOutputEnabled(true)
	logger.Info("starting Aqua Land TUI", logging.Field("version", buildVersion))

	m := newHeadlessModel(rootCtx, buildVersion, layout, logger)
	zone.NewGlobal()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(rootCtx))
	result, runErr := program.Run()
	model, _ := result.(*headlessModel)
	if model != nil {
		model.cleanup()
	} else {
		m.cleanup()
	}
	if runErr != nil && rootCtx.Err() != nil && errors.Is(runErr, tea.ErrProgramKilled) {
		logger.Info("root context canceled; terminal UI stopped")
		return nil
	}
	return runErr
}

func forceDisableMouseTracking() {
	_, _ = os.Stdout.WriteString("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l\x1b[?1015l")
}

func newHeadlessModel(rootCtx context.Context, buildVersion string, layout config.Layout, logger *logging.Logger) *headlessModel {
	runCtx, runCancel := context.WithCancel(rootCtx)

	m := &headlessModel{
		buildVersion: buildVersion,
		modelDeps: modelDeps{
			logger:     logger,
			session:    game.NewSession(layout, logger),
			rootCtx:    runCtx,
			rootCancel: runCancel,
			inZone:     headlessview.MarkedZones,
		},
		logCh: make(chan string, logChannelBufferSize),
		ui:    headlessview.NewState(layout),
	}

	m.unsubscribe = logger.Subscribe(func(event logging.Event) {
		line := logging.FormatEventLine(event)
		select {
		case m.logCh <- line:
		default:
			select {
			case <-m.logCh:
			default:
			}
			select {
			case m.logCh <- line:
			default:
			}
		}
	})

	return m
}

func (m *headlessModel) Init() tea.Cmd {
	return waitForLog(m.rootCtx, m.logCh)
}

func waitForLog(ctx context.Context, ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-ch:
			if !ok {
				return nil
			}
			return logMsg(line)
		}
	}
}

func (m *headlessModel) cleanup() {
	m.cleanupOnce.Do(func() {
		m.logger.Debug("headless cleanup started")
		if m.rootCancel != nil {
			m.rootCancel()
		}
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		m.logger.Debug("headless cleanup complete", logging.Field("level", m.session.Level()))
	})
}
