package shutdown

import (
	"context"
	"testing"
	"time"

	"drag-threshold/internal/logger"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(context.Background(), logger.NoOpLogger{})

	var order []int
	for i := 0; i < 3; i++ {
		i := i // per-iteration copy; go directive lowered to 1.21 (pre-1.22 loop semantics)
		m.Register(Func(func() { order = append(order, i) }))
	}

	m.Shutdown()
	m.Shutdown()

	if len(order) != 3 || order[0] != 2 || order[1] != 1 || order[2] != 0 {
		t.Errorf("Unexpected shutdown order: %v", order)
	}

	select {
	case <-m.Context().Done():
	default:
		t.Error("Context should be cancelled after shutdown")
	}
	select {
	case <-m.Done():
	default:
		t.Error("Done should be closed after shutdown")
	}
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	m := NewManager(context.Background(), logger.NoOpLogger{})
	m.timeout = 10 * time.Millisecond

	release := make(chan struct{})
	defer close(release)
	m.Register(Func(func() { <-release }))

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Shutdown blocked on a stuck component")
	}
}
