package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunLoopStopsWhenTickReturnsFalse(t *testing.T) {
	ticks := 0
	err := RunLoop(context.Background(), time.Millisecond, func() bool {
		ticks++
		return ticks < 5
	})

	if err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
	if ticks != 5 {
		t.Errorf("Expected 5 ticks, got %d", ticks)
	}
}

func TestRunLoopCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- RunLoop(ctx, time.Millisecond, func() bool { return true })
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("RunLoop did not return after cancellation")
	}
}
