// Package loop drives a frame callback at a fixed rate on its own goroutine.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"aqualand/internal/logging"
	"aqualand/internal/runctx"
)

var ErrRunning = errors.New("frame loop is already running")

type Controller struct {
	rootCtx context.Context
	logger  *logging.Logger
	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	frames  uint64
	wg      sync.WaitGroup
}

func NewController(rootCtx context.Context, logger *logging.Logger) *Controller {
	if logger == nil {
		panic("loop.NewController: logger must not be nil")
	}
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	return &Controller{rootCtx: rootCtx, logger: logger}
}

// Start calls frame fps times per second until Stop or until the root
// context ends. frame runs on the loop goroutine.
func (c *Controller) Start(fps int, frame func()) error {
	if frame == nil {
		panic("loop.Controller.Start: frame must not be nil")
	}
	if fps <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", fps)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return ErrRunning
	}
	interval := time.Second / time.Duration(fps)
	c.logger.Debug("frame loop start requested",
		logging.Field("fps", fps),
		logging.Field("interval", interval),
	)

	ctx, cancel := context.WithCancel(c.rootCtx)
	c.cancel = cancel
	c.running = true
	c.frames = 0
	c.wg.Go(func() {
		defer cancel()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			if _, ok := runctx.RecvOrDone(ctx, "frame loop", c.logger, ticker.C); !ok {
				break
			}
			frame()
			c.mu.Lock()
			c.frames++
			c.mu.Unlock()
		}

		c.mu.Lock()
		frames := c.frames
		c.running = false
		c.cancel = nil
		c.mu.Unlock()
		c.logger.Debug("frame loop exited", logging.Field("frames", frames))
	})

	return nil
}

func (c *Controller) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the loop goroutine returns. A non-positive timeout waits
// forever. It reports whether the loop finished in time.
func (c *Controller) Wait(timeout time.Duration) bool {
	waitDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(waitDone)
	}()
	if timeout <= 0 {
		<-waitDone
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-waitDone:
		return true
	case <-timer.C:
		return false
	}
}

func (c *Controller) StopAndWait(timeout time.Duration) bool {
	c.Stop()
	return c.Wait(timeout)
}

func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Frames is the number of frames run since the last Start.
func (c *Controller) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}
