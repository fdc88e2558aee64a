// Package audio plays the ball landing sound through the beep speaker
package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/lucky-lotto/constants"
)

const sampleRate = beep.SampleRate(constants.SampleRate)

// Config controls audio output
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0..1
	LandingVolume float64 // 0..1, scaled by MasterVolume
	LandingSample string  // Optional .wav/.mp3 path, empty synthesizes the sound
}

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	config      Config
	mixer       *beep.Mixer
	sample      *beep.Buffer
	initialized bool

	muted  atomic.Bool
	voices atomic.Int32
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker and loads the landing sample if configured.
// A sample that fails to load falls back to the synthesized sound.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if sm.config.LandingSample != "" {
		buf, err := LoadSample(sm.config.LandingSample, sampleRate)
		if err != nil {
			log.Printf("Landing sample unavailable, using synthesized sound: %v", err)
		} else {
			sm.sample = buf
			log.Printf("Loaded landing sample %s", sm.config.LandingSample)
		}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
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

	sm.voices.Store(0)
	sm.initialized = false
}

// SetVolume sets the master volume, clamped to [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.config.MasterVolume = clamp01(v)
}

// Volume returns the effective landing volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume()
}

func (sm *SoundManager) volume() float64 {
	return clamp01(sm.config.LandingVolume) * clamp01(sm.config.MasterVolume)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether sound output is suppressed
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// PlayLanding plays the landing sound once.
// Dropped when muted, uninitialized, or when MaxVoices are already playing.
func (sm *SoundManager) PlayLanding() {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.voices.Load() >= constants.MaxVoices {
		return
	}

	var src beep.Streamer
	if sm.sample != nil {
		src = newVolume(sm.sample.Streamer(0, sm.sample.Len()), sm.volume())
	} else {
		src = CreateLandingSound(sampleRate, sm.volume())
	}

	sm.voices.Add(1)
	voice := beep.Seq(src, beep.Callback(func() {
		sm.voices.Add(-1)
	}))

	speaker.Lock()
	sm.mixer.Add(voice)
	speaker.Unlock()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
