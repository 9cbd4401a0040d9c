package audio

import (
	"errors"

	"github.com/lixenwraith/blob/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundSqueak SoundType = iota // Member grabbed
	SoundPop                     // Member released
	SoundGasp                    // Blob terrified
	SoundHum                     // Mouth held shut
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundSqueak:
		return "squeak"
	case SoundPop:
		return "pop"
	case SoundGasp:
		return "gasp"
	case SoundHum:
		return "hum"
	default:
		return "unknown"
	}
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundSqueak: 0.6,
			SoundPop:    0.8,
			SoundGasp:   0.5,
			SoundHum:    0.4,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrAudioDisabled  = errors.New("audio disabled by configuration")
	ErrUnknownSound   = errors.New("unknown sound type")
)
