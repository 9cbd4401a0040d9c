package controls

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/parameter"
	"github.com/lixenwraith/blob/vmath"
)

func newTestControls(gravityOn bool) (*Controls, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(clock, gravityOn, parameter.DefaultFPS), clock
}

// TestResetDebounce verifies repeated reset requests are rejected inside the window
func TestResetDebounce(t *testing.T) {
	c, clock := newTestControls(false)

	if !c.RequestReset() {
		t.Fatal("Expected first reset accepted")
	}
	clock.Advance(parameter.ResetDebounce - time.Millisecond)
	if c.RequestReset() {
		t.Error("Expected reset inside the window rejected")
	}
	clock.Advance(time.Millisecond)
	if !c.RequestReset() {
		t.Error("Expected reset accepted once the window closed")
	}
}

func TestToggles(t *testing.T) {
	c, _ := newTestControls(false)

	if !c.ToggleDebug() || !c.Debug() {
		t.Error("Expected debug on after toggle")
	}
	if c.ToggleDebug() {
		t.Error("Expected debug off after second toggle")
	}
	if !c.ToggleMute() || !c.Muted() {
		t.Error("Expected muted after toggle")
	}

	c.SetDebug(true)
	c.SetMuted(false)
	if !c.Debug() || c.Muted() {
		t.Error("Expected setters to apply")
	}
}

func TestRotateAndTilt(t *testing.T) {
	c, _ := newTestControls(false)

	c.Rotate(6)
	if !c.Gravity.Active() {
		t.Fatal("Expected rotation to switch gravity on")
	}
	if !nearVec(c.Gravity.Direction(), vmath.V2(-1, 0), 1e-9) {
		t.Errorf("Expected six steps to turn down into left, got %v", c.Gravity.Direction())
	}

	c.Tilt(-2)
	if !nearVec(vmath.V2(c.Gravity.Magnitude(), 0), vmath.V2(0.8, 0), 1e-9) {
		t.Errorf("Expected magnitude 0.8, got %f", c.Gravity.Magnitude())
	}
}

func TestStatus(t *testing.T) {
	c, _ := newTestControls(false)
	if got := c.Status(); got != parameter.StatusGravityOff {
		t.Errorf("Expected %q, got %q", parameter.StatusGravityOff, got)
	}

	c.Gravity.Toggle()
	c.ToggleDebug()
	c.ToggleMute()
	got := c.Status()
	for _, want := range []string{parameter.StatusGravityOn, "↓", "100%", parameter.StatusDebug, parameter.StatusMuted} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected status %q to contain %q", got, want)
		}
	}
}
