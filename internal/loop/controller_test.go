package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"aqualand/internal/logging"
)

func newTestController(ctx context.Context) *Controller {
	return NewController(ctx, logging.NewWithWriter(nil, true, false))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestControllerRunsFramesUntilStopped(t *testing.T) {
	c := newTestController(context.Background())
	var calls atomic.Int64
	if err := c.Start(200, func() { calls.Add(1) }); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !c.IsRunning() {
		t.Fatalf("expected controller to report running")
	}
	waitFor(t, func() bool { return calls.Load() >= 3 })

	if !c.StopAndWait(time.Second) {
		t.Fatalf("loop did not stop in time")
	}
	if c.IsRunning() {
		t.Fatalf("expected controller to be stopped")
	}
	stoppedAt := calls.Load()
	time.Sleep(30 * time.Millisecond)
	if calls.Load() != stoppedAt {
		t.Fatalf("frame called after stop: %d -> %d", stoppedAt, calls.Load())
	}
	if c.Frames() != uint64(stoppedAt) {
		t.Fatalf("expected frame counter %d, got %d", stoppedAt, c.Frames())
	}
}

func TestControllerRejectsSecondStart(t *testing.T) {
	c := newTestController(context.Background())
	if err := c.Start(100, func() {}); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer c.StopAndWait(time.Second)

	if err := c.Start(100, func() {}); !errors.Is(err, ErrRunning) {
		t.Fatalf("expected ErrRunning, got %v", err)
	}
}

func TestControllerRejectsNonPositiveRate(t *testing.T) {
	c := newTestController(context.Background())
	if err := c.Start(0, func() {}); err == nil {
		t.Fatalf("expected error for zero fps")
	}
	if c.IsRunning() {
		t.Fatalf("expected controller to stay idle")
	}
}

func TestControllerStopsWhenRootContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := newTestController(ctx)
	if err := c.Start(100, func() {}); err != nil {
		t.Fatalf("start: %v", err)
	}
	cancel()
	if !c.Wait(time.Second) {
		t.Fatalf("loop did not exit after context cancel")
	}
	if c.IsRunning() {
		t.Fatalf("expected controller to be stopped")
	}
}

func TestControllerCanRestartAfterStop(t *testing.T) {
	c := newTestController(context.Background())
	if err := c.Start(100, func() {}); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.StopAndWait(time.Second)

	var calls atomic.Int64
	if err := c.Start(200, func() { calls.Add(1) }); err != nil {
		t.Fatalf("restart: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() >= 1 })
	c.StopAndWait(time.Second)
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	c := newTestController(nil)
	c.Stop()
	if !c.Wait(10 * time.Millisecond) {
		t.Fatalf("expected idle wait to return immediately")
	}
}
