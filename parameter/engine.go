package parameter

import "time"

// Frame loop
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS backs the -fps flag
	DefaultFPS = 60

	// MaxFPS caps the -fps flag; the simulation is tuned for DT and only gets faster
	MaxFPS = 240

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// ResetDebounce blocks repeated reset requests within this window
const ResetDebounce = 500 * time.Millisecond
