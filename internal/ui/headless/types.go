package headless

import (
	"context"
	"sync"

	"aqualand/internal/game"
	"aqualand/internal/logging"
	headlessview "aqualand/internal/ui/headless/view"
)

type logMsg string

type quitNowMsg struct{}

type modelDeps struct {
	logger      *logging.Logger
	session     *game.Session
	unsubscribe func()
	rootCtx     context.Context
	rootCancel  context.CancelFunc
	inZone      headlessview.ZoneLookup
}

type headlessModel struct {
	buildVersion string
	modelDeps
	logCh       chan string
	quitting    bool
	cleanupOnce sync.Once
	ui          headlessview.State
}
