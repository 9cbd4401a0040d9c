package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/blob/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping linearly between two frequencies
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// freq returns the instantaneous frequency at the current position
func (o *oscillator) freq() float64 {
	if o.duration <= 1 || o.startFreq == o.endFreq {
		return o.startFreq
	}
	t := float64(o.position) / float64(o.duration-1)
	return o.startFreq + (o.endFreq-o.startFreq)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 1)
		o.phase += o.freq() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// effectVolume is the per-effect volume scaled by master
func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// Sound effect generators

// CreateSqueakSound generates a short rising chirp for grabbing a member
func CreateSqueakSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.SqueakStartFreq, parameter.SqueakEndFreq, parameter.SqueakSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.SqueakSoundDuration, parameter.SqueakSoundAttack, parameter.SqueakSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundSqueak))
}

// CreatePopSound generates a soft plucked pop for releasing a member
func CreatePopSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(parameter.PopFreq, parameter.PopSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.PopSoundDuration, parameter.PopSoundAttack, parameter.PopSoundRelease, rate)

	over := NewOscillator(parameter.PopOvertoneFreq, parameter.PopSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.PopSoundDuration, parameter.PopSoundAttack, parameter.PopSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, effectVolume(cfg, SoundPop))
}

// CreateGaspSound generates a falling breathy sweep for terror
func CreateGaspSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewSweep(parameter.GaspStartFreq, parameter.GaspEndFreq, parameter.GaspSoundDuration, WaveSaw, rate)
	toneShaped := NewEnvelope(tone, parameter.GaspSoundDuration, parameter.GaspSoundAttack, parameter.GaspSoundRelease, rate)

	breath := NewOscillator(0, parameter.GaspSoundDuration, WaveNoise, rate)
	breathShaped := NewEnvelope(breath, parameter.GaspSoundDuration, parameter.GaspSoundAttack, parameter.GaspSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.4),
		newVolume(breathShaped, 0.3),
	)

	return newVolume(mixed, effectVolume(cfg, SoundGasp))
}

// CreateHumSound generates a muffled low hum for a held mouth
func CreateHumSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var tone beep.Streamer
	if sine, err := generators.SineTone(rate, parameter.HumFreq); err == nil {
		tone = beep.Take(rate.N(parameter.HumSoundDuration), sine)
	} else {
		tone = NewOscillator(parameter.HumFreq, parameter.HumSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, parameter.HumSoundDuration, parameter.HumSoundAttack, parameter.HumSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundHum))
}

// GetSoundEffect returns the sound effect streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundSqueak:
		return CreateSqueakSound(cfg)
	case SoundPop:
		return CreatePopSound(cfg)
	case SoundGasp:
		return CreateGaspSound(cfg)
	case SoundHum:
		return CreateHumSound(cfg)
	default:
		return nil
	}
}
