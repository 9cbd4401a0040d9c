package controls

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/parameter"
)

// Controls holds the user-facing toggles shared by both hosts
type Controls struct {
	Gravity *Gravity
	Dial    *Dial

	debug bool
	muted bool

	reset *engine.Debounce
	clock engine.TimeProvider
}

// New creates controls with gravity initially on or off, the dial animated at fps
func New(clock engine.TimeProvider, gravityOn bool, fps int) *Controls {
	g := NewGravity(gravityOn)
	return &Controls{
		Gravity: g,
		Dial:    NewDial(g, fps),
		reset:   engine.NewDebounce(parameter.ResetDebounce),
		clock:   clock,
	}
}

// ToggleDebug flips x-ray rendering and returns the new state
func (c *Controls) ToggleDebug() bool {
	c.debug = !c.debug
	return c.debug
}

func (c *Controls) SetDebug(on bool) {
	c.debug = on
}

func (c *Controls) Debug() bool {
	return c.debug
}

// ToggleMute flips audio muting and returns the new state
func (c *Controls) ToggleMute() bool {
	c.muted = !c.muted
	return c.muted
}

func (c *Controls) SetMuted(on bool) {
	c.muted = on
}

func (c *Controls) Muted() bool {
	return c.muted
}

// RequestReset reports whether a reset may run now, rejecting repeats inside the debounce window
func (c *Controls) RequestReset() bool {
	return c.reset.Allow(c.clock.Now())
}

// Rotate turns gravity by steps of parameter.GravityRotateStep, positive is clockwise on screen
func (c *Controls) Rotate(steps int) {
	c.Gravity.Rotate(float64(steps) * parameter.GravityRotateStep)
}

// Tilt changes gravity strength by steps of parameter.GravityMagnitudeStep
func (c *Controls) Tilt(steps int) {
	c.Gravity.Adjust(float64(steps) * parameter.GravityMagnitudeStep)
}

// Update advances control animations by one frame
func (c *Controls) Update() {
	c.Dial.Update()
}

// Status renders the status line segments for the terminal host
func (c *Controls) Status() string {
	parts := make([]string, 0, 4)
	if c.Gravity.Active() {
		parts = append(parts, parameter.StatusGravityOn+" "+string(c.Gravity.Arrow())+" "+percent(c.Gravity.Magnitude()))
	} else {
		parts = append(parts, parameter.StatusGravityOff)
	}
	if c.debug {
		parts = append(parts, parameter.StatusDebug)
	}
	if c.muted {
		parts = append(parts, parameter.StatusMuted)
	}
	return strings.Join(parts, " | ")
}

func percent(f float64) string {
	return strconv.Itoa(int(f*100+0.5)) + "%"
}
