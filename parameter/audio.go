package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 0.5

	// MinSoundGap between consecutive sounds of the same type
	MinSoundGap = 50 * time.Millisecond
)

// Squeak Sound (grab)
const (
	SqueakSoundDuration = 120 * time.Millisecond
	SqueakSoundAttack   = 5 * time.Millisecond
	SqueakSoundRelease  = 60 * time.Millisecond
	SqueakStartFreq     = 600.0  // Hz
	SqueakEndFreq       = 1200.0 // Hz
)

// Pop Sound (release)
const (
	PopSoundDuration = 90 * time.Millisecond
	PopSoundAttack   = 2 * time.Millisecond
	PopSoundRelease  = 70 * time.Millisecond
	PopFreq          = 330.0 // Hz
	PopOvertoneFreq  = 660.0 // Hz
)

// Gasp Sound (terror)
const (
	GaspSoundDuration = 250 * time.Millisecond
	GaspSoundAttack   = 40 * time.Millisecond
	GaspSoundRelease  = 150 * time.Millisecond
	GaspStartFreq     = 900.0 // Hz
	GaspEndFreq       = 400.0 // Hz
)

// Hum Sound (gagged)
const (
	HumSoundDuration = 400 * time.Millisecond
	HumSoundAttack   = 30 * time.Millisecond
	HumSoundRelease  = 200 * time.Millisecond
	HumFreq          = 110.0 // Hz
)
