package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blob/engine"
	"github.com/lixenwraith/blob/parameter"
)

// SoundManager plays the one-shot sound effects through a single speaker mixer
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	clock       engine.TimeProvider
	mixer       *beep.Mixer
	master      *beep.Ctrl
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, clock engine.TimeProvider) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		clock:  clock,
		mixer:  mixer,
		master: &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	sm.master.Paused = sm.muted
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted pauses or resumes all output, queued sounds stay queued
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.master.Paused = muted
	if muted {
		sm.mixer.Clear()
	}
	speaker.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a sound effect
// Repeats of the same effect within parameter.MinSoundGap are dropped
func (sm *SoundManager) Play(st SoundType) error {
	if st < 0 || st >= soundTypeCount {
		return fmt.Errorf("play %d: %w", st, ErrUnknownSound)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted || !sm.admit(st, sm.clock.Now()) {
		return nil
	}

	streamer := GetSoundEffect(st, sm.cfg)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// admit records a play of st at now unless the previous one is too recent
// Caller holds mu
func (sm *SoundManager) admit(st SoundType, now time.Time) bool {
	last := sm.lastPlayed[st]
	if !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}
