package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "BLOB_AUDIO_ENABLED"
	EnvMasterVolume = "BLOB_MASTER_VOLUME"
	EnvSFXVolumes   = "BLOB_SFX_VOLUMES"
	EnvSampleRate   = "BLOB_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100, stored as 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes as JSON, e.g. {"squeak":0.5,"hum":0}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = min(max(v, 0), 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
