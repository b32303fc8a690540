//go:build !headless

package gui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"aqualand/internal/config"
	"aqualand/internal/game"
	"aqualand/internal/geom"
	"aqualand/internal/logging"
	"aqualand/internal/loop"
	"aqualand/internal/scene"
	"aqualand/internal/visual"
)

type controller struct {
	app     fyne.App
	win     fyne.Window
	logger  *logging.Logger
	layout  config.Layout
	session *game.Session
	frames  *loop.Controller

	surface *surface
	painter *painter

	latch         game.PointerLatch
	pointerInside bool
	pending       game.Action

	drawn      bool
	drawnLevel int
	drawnHover game.Action

	cleanupOnce  sync.Once
	quitOnce     sync.Once
	appCtx       context.Context
	appCancel    context.CancelFunc
	shuttingDown bool
}

func Run(rootCtx context.Context, buildVersion string, layout config.Layout, logger *logging.Logger) error {
	if logger == nil {
		panic("gui.Run: logger must not be nil")
	}
	uiApp := app.New()
	uiApp.Settings().SetTheme(newAquaTheme())
	c := newController(rootCtx, uiApp, layout, logger)
	c.logger.Info("starting Aqua Land window",
		logging.Field("version", buildVersion),
		logging.Field("width", layout.Width),
		logging.Field("height", layout.Height),
	)
	return c.run()
}

func newController(rootCtx context.Context, uiApp fyne.App, layout config.Layout, logger *logging.Logger) *controller {
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	appCtx, appCancel := context.WithCancel(rootCtx)

	c := &controller{
		app:       uiApp,
		logger:    logger,
		layout:    layout,
		session:   game.NewSession(layout, logger),
		frames:    loop.NewController(appCtx, logger),
		painter:   newPainter(layout.Bounds()),
		appCtx:    appCtx,
		appCancel: appCancel,
	}

	uiApp.SetIcon(aquaIconResource())
	c.win = uiApp.NewWindow(layout.Title)
	c.win.SetMaster()
	c.win.SetPadded(false)
	c.win.SetFixedSize(true)
	c.surface = newSurface(float32(layout.Width), float32(layout.Height), surfaceHandlers{
		Press: c.onPress,
		Move:  c.onMove,
		Leave: c.onLeave,
	})
	c.win.SetContent(c.surface)
	c.win.Resize(fyne.NewSize(float32(layout.Width), float32(layout.Height)))
	c.redraw(c.session.Presentation(), game.None)
	c.setupTray()
	c.app.Lifecycle().SetOnStopped(func() {
		c.logger.Debug("app lifecycle OnStopped hook triggered")
		c.cleanup()
	})
	return c
}

func (c *controller) run() error {
	if err := c.frames.Start(c.layout.TargetFPS, c.frame); err != nil {
		c.cleanup()
		return err
	}
	go func() {
		<-c.appCtx.Done()
		fyne.Do(func() {
			if c.shuttingDown {
				return
			}
			c.logger.Info("root context canceled; closing window")
			c.quitApp()
		})
	}()
	c.win.SetCloseIntercept(func() {
		c.logger.Debug("main window close intercepted: requesting quit")
		c.quitApp()
	})

	c.win.Show()
	c.app.Run()
	return nil
}

// frame runs on the loop goroutine; all state is touched on the Fyne thread.
func (c *controller) frame() {
	fyne.Do(c.step)
}

func (c *controller) step() {
	if c.shuttingDown {
		return
	}
	pres, action := c.session.Step(&c.latch)
	if action == game.None && c.pending != game.None {
		c.session.Apply(c.pending)
		c.pending = game.None
		pres = c.session.Presentation()
	}

	hover := game.None
	if c.pointerInside {
		hover = game.HitTest(c.layout, c.latch.Pointer())
	}
	if c.drawn && pres.Level == c.drawnLevel && hover == c.drawnHover {
		return
	}
	c.redraw(pres, hover)
}

func (c *controller) redraw(pres visual.Presentation, hover game.Action) {
	c.painter.begin()
	scene.Draw(c.painter, c.layout, pres, hover)
	c.surface.SetObjects(c.painter.objects())
	c.drawn = true
	c.drawnLevel = pres.Level
	c.drawnHover = hover
}

func (c *controller) onPress(p geom.Point) {
	c.pointerInside = true
	c.latch.Press(p)
}

func (c *controller) onMove(p geom.Point) {
	c.pointerInside = true
	c.latch.Move(p)
}

func (c *controller) onLeave() {
	c.pointerInside = false
}

// queue schedules an action from outside the drawing surface for the next
// frame. A newer action replaces one not yet applied.
func (c *controller) queue(action game.Action) {
	if c.pending != game.None {
		c.logger.Debug("replacing queued action",
			logging.Field("dropped", c.pending),
			logging.Field("action", action),
		)
	}
	c.pending = action
}

func (c *controller) cleanup() {
	c.cleanupOnce.Do(func() {
		c.shuttingDown = true
		c.logger.Debug("gui cleanup started")
		if c.appCancel != nil {
			c.appCancel()
		}
		if ok := c.frames.StopAndWait(2 * time.Second); !ok {
			c.logger.Warn("frame loop did not stop within timeout")
		}
		c.logger.Debug("gui cleanup complete", logging.Field("level", c.session.Level()))
	})
}

func (c *controller) quitApp() {
	c.quitOnce.Do(func() {
		c.logger.Debug("quit requested")
		c.cleanup()
		c.app.Quit()
	})
}
