//go:build !headless

package gui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"

	"aqualand/internal/config"
	"aqualand/internal/game"
	"aqualand/internal/geom"
	"aqualand/internal/logging"
)

var (
	rainCenter      = geom.Point{X: 400, Y: 580}
	evaporateCenter = geom.Point{X: 650, Y: 580}
	outsideButtons  = geom.Point{X: 20, Y: 700}
)

func newTestController(t *testing.T) *controller {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	logger := logging.NewWithWriter(nil, false, false)
	c := newController(ctx, test.NewTempApp(t), config.DefaultLayout(), logger)
	t.Cleanup(c.cleanup)
	return c
}

func TestStepAppliesLatchedPressOnce(t *testing.T) {
	c := newTestController(t)

	c.onPress(rainCenter)
	c.step()
	if got := c.session.Level(); got != 30 {
		t.Fatalf("expected level 30 after rain press, got %d", got)
	}
	c.step()
	if got := c.session.Level(); got != 30 {
		t.Fatalf("expected a press to apply once, got level %d", got)
	}
}

func TestStepDefersQueuedActionBehindPress(t *testing.T) {
	c := newTestController(t)

	c.onPress(evaporateCenter)
	c.queue(game.Rain)
	c.step()
	if got := c.session.Level(); got != 10 {
		t.Fatalf("expected only the press to apply (level 10), got %d", got)
	}
	if c.pending != game.Rain {
		t.Fatalf("expected rain to stay queued, got %v", c.pending)
	}

	c.step()
	if got := c.session.Level(); got != 20 {
		t.Fatalf("expected queued rain on the next frame (level 20), got %d", got)
	}
	if c.pending != game.None {
		t.Fatalf("expected queue to drain, got %v", c.pending)
	}
}

func TestStepAppliesQueuedActionWhenPressMisses(t *testing.T) {
	c := newTestController(t)

	c.onPress(outsideButtons)
	c.queue(game.Rain)
	c.step()
	if got := c.session.Level(); got != 30 {
		t.Fatalf("expected queued rain to apply, got level %d", got)
	}
}

func TestQueueKeepsNewestAction(t *testing.T) {
	c := newTestController(t)

	c.queue(game.Evaporate)
	c.queue(game.Rain)
	if c.pending != game.Rain {
		t.Fatalf("expected newest action queued, got %v", c.pending)
	}
	c.step()
	if got := c.session.Level(); got != 30 {
		t.Fatalf("expected only rain to apply, got level %d", got)
	}
	c.step()
	if got := c.session.Level(); got != 30 {
		t.Fatalf("expected replaced action to be dropped, got level %d", got)
	}
}

func TestStepSkipsRedrawWithoutChange(t *testing.T) {
	c := newTestController(t)

	c.step()
	c.surface.content.Objects = nil
	c.step()
	if c.surface.content.Objects != nil {
		t.Fatalf("expected unchanged frame to skip redraw")
	}

	c.onMove(rainCenter)
	c.step()
	if len(c.surface.content.Objects) == 0 {
		t.Fatalf("expected hover change to redraw")
	}
	if c.drawnHover != game.Rain {
		t.Fatalf("expected rain hovered, got %v", c.drawnHover)
	}

	c.surface.content.Objects = nil
	c.onLeave()
	c.step()
	if len(c.surface.content.Objects) == 0 || c.drawnHover != game.None {
		t.Fatalf("expected leaving the window to clear hover and redraw")
	}
}

func TestStepIgnoredAfterCleanup(t *testing.T) {
	c := newTestController(t)

	c.cleanup()
	c.queue(game.Rain)
	c.step()
	if got := c.session.Level(); got != 20 {
		t.Fatalf("expected no mutation after cleanup, got level %d", got)
	}
}
