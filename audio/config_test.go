package audio

import (
	"testing"

	"github.com/lixenwraith/blob/parameter"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}
	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != parameter.AudioMasterVolume {
		t.Errorf("Expected default master volume %f, got %f", parameter.AudioMasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		vol, ok := cfg.EffectVolumes[st]
		if !ok {
			t.Errorf("Expected volume for %s to be set", st)
			continue
		}
		if vol <= 0 || vol > 1 {
			t.Errorf("Expected %s volume in (0,1], got %f", st, vol)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSFXVolumes, "")
	t.Setenv(EnvSampleRate, "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadAudioConfigFromEnv verifies every variable is applied
func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "25")
	t.Setenv(EnvSFXVolumes, `{"squeak":0.1,"hum":0}`)
	t.Setenv(EnvSampleRate, "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.25 {
		t.Errorf("Expected master volume 0.25, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundSqueak] != 0.1 {
		t.Errorf("Expected squeak volume 0.1, got %f", cfg.EffectVolumes[SoundSqueak])
	}
	if cfg.EffectVolumes[SoundHum] != 0 {
		t.Errorf("Expected hum volume 0, got %f", cfg.EffectVolumes[SoundHum])
	}
	if cfg.EffectVolumes[SoundPop] != DefaultAudioConfig().EffectVolumes[SoundPop] {
		t.Error("Expected unlisted effect to keep its default volume")
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigClampsVolume verifies master volume is clamped to [0,1]
func TestLoadAudioConfigClampsVolume(t *testing.T) {
	tests := []struct {
		env  string
		want float64
	}{
		{"150", 1},
		{"-20", 0},
		{"100", 1},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(EnvMasterVolume, tt.env)
			cfg := LoadAudioConfig()
			if cfg.MasterVolume != tt.want {
				t.Errorf("Expected %f, got %f", tt.want, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigIgnoresMalformed verifies bad values keep the defaults
func TestLoadAudioConfigIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSFXVolumes, "{not json")
	t.Setenv(EnvSampleRate, "-1")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Error("Expected Enabled default kept")
	}
	if cfg.MasterVolume != def.MasterVolume {
		t.Errorf("Expected master volume default kept, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected sample rate default kept, got %d", cfg.SampleRate)
	}
	for st, v := range def.EffectVolumes {
		if cfg.EffectVolumes[st] != v {
			t.Errorf("Expected %s volume default kept", st)
		}
	}
}
