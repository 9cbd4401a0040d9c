package engine

import (
	"testing"
	"time"
)

func TestDebounce(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	d := NewDebounce(500 * time.Millisecond)

	if d.Active(clock.Now()) {
		t.Error("Expected fresh debounce inactive")
	}
	if !d.Allow(clock.Now()) {
		t.Fatal("Expected first request accepted")
	}

	steps := []struct {
		advance time.Duration
		want    bool
	}{
		{0, false},
		{100 * time.Millisecond, false},
		{399 * time.Millisecond, false},
		{time.Millisecond, true},
		{10 * time.Millisecond, false},
	}
	for i, s := range steps {
		clock.Advance(s.advance)
		if got := d.Allow(clock.Now()); got != s.want {
			t.Errorf("Step %d: expected Allow=%v, got %v", i, s.want, got)
		}
	}
}
