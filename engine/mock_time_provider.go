package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/blob/parameter"
)

// MockTimeProvider is a hand-driven clock for deterministic gander, debounce and audio throttle tests
// The audio speaker goroutine may read it while a test advances it, hence the lock
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Elapsed returns how far the clock moved since construction
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}

// Advance moves the clock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// AdvanceFrames moves the clock by n simulation frames and returns the new time
func (m *MockTimeProvider) AdvanceFrames(n int) time.Time {
	return m.Advance(time.Duration(n) * parameter.FrameUpdateInterval)
}
