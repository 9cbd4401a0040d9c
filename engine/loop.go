package engine

import (
	"context"
	"time"
)

// RunLoop calls tick on every interval until ctx is cancelled or tick returns false
// Returns ctx.Err() on cancellation, nil when tick stops the loop
func RunLoop(ctx context.Context, interval time.Duration, tick func() bool) error {
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !tick() {
				return nil
			}
		}
	}
}
