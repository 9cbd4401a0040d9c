package engine

import "time"

// Debounce rejects repeated requests inside Window of the last accepted one
type Debounce struct {
	Window time.Duration
	until  time.Time
	armed  bool
}

// NewDebounce creates a guard that accepts the first request
func NewDebounce(window time.Duration) *Debounce {
	return &Debounce{Window: window}
}

// Allow accepts the request and arms the window, or rejects it while the window is open
func (d *Debounce) Allow(now time.Time) bool {
	if d.Active(now) {
		return false
	}
	d.until = now.Add(d.Window)
	d.armed = true
	return true
}

// Active reports whether requests at now would be rejected
func (d *Debounce) Active(now time.Time) bool {
	return d.armed && now.Before(d.until)
}
