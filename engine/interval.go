package engine

import "time"

// Interval is a clock-polled repeating timer
// It fires at most once per Due call; missed periods are skipped, not queued
type Interval struct {
	Period  time.Duration
	next    time.Time
	running bool
}

// NewInterval creates a stopped interval
func NewInterval(period time.Duration) *Interval {
	return &Interval{Period: period}
}

// Start (re)arms the interval so the first fire is one period after now
func (i *Interval) Start(now time.Time) {
	i.next = now.Add(i.Period)
	i.running = true
}

// Stop disarms the interval
func (i *Interval) Stop() {
	i.running = false
}

// Running reports whether the interval is armed
func (i *Interval) Running() bool {
	return i.running
}

// Due reports whether a period elapsed since the last fire and schedules the next one
func (i *Interval) Due(now time.Time) bool {
	if !i.running || now.Before(i.next) {
		return false
	}
	if i.Period <= 0 {
		i.next = now
		return true
	}

	// Catch up without replaying every missed period
	missed := now.Sub(i.next)/i.Period + 1
	i.next = i.next.Add(missed * i.Period)
	return true
}
