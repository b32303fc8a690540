package runctx

import (
	"context"
	"testing"

	"aqualand/internal/logging"
)

func TestRecvOrDoneReceivesValue(t *testing.T) {
	logger := logging.NewWithWriter(nil, true, false)
	in := make(chan int, 1)
	in <- 7

	v, ok := RecvOrDone(context.Background(), "test", logger, in)
	if !ok || v != 7 {
		t.Fatalf("expected (7, true), got (%d, %v)", v, ok)
	}
}

func TestRecvOrDoneStopsOnCanceledContext(t *testing.T) {
	logger := logging.NewWithWriter(nil, true, false)
	var messages []string
	logger.Subscribe(func(e logging.Event) { messages = append(messages, e.Message) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v, ok := RecvOrDone(ctx, "ticker", logger, make(chan int))
	if ok || v != 0 {
		t.Fatalf("expected (0, false), got (%d, %v)", v, ok)
	}
	if len(messages) != 1 || messages[0] != "stopping ticker: context canceled" {
		t.Fatalf("unexpected log messages: %v", messages)
	}
}

func TestRecvOrDoneStopsOnClosedChannel(t *testing.T) {
	logger := logging.NewWithWriter(nil, true, false)
	in := make(chan string)
	close(in)

	if _, ok := RecvOrDone(context.Background(), "test", logger, in); ok {
		t.Fatalf("expected closed channel to report false")
	}
}

func TestRecvOrDonePanicsWithoutLogger(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	RecvOrDone(context.Background(), "test", nil, make(chan int))
}
