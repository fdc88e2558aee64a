package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func TestNewSoundManagerMutedWhenDisabled(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: false})
	if !sm.Muted() {
		t.Error("Disabled sound manager should start muted")
	}

	sm = NewSoundManager(Config{Enabled: true})
	if sm.Muted() {
		t.Error("Enabled sound manager should start unmuted")
	}
}

func TestToggleMute(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: true})

	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("First toggle should mute")
	}
	if sm.ToggleMute() || sm.Muted() {
		t.Error("Second toggle should unmute")
	}
}

func TestVolumeScaling(t *testing.T) {
	tests := []struct {
		name           string
		master, effect float64
		want           float64
	}{
		{"full", 1, 1, 1},
		{"scaled", 0.5, 0.5, 0.25},
		{"clamped high", 2, 1, 1},
		{"clamped low", -1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSoundManager(Config{Enabled: true, MasterVolume: tt.master, LandingVolume: tt.effect})
			if got := sm.Volume(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Volume() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSetVolumeClamps(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: true, MasterVolume: 0.5, LandingVolume: 1})

	sm.SetVolume(3)
	if sm.Volume() != 1 {
		t.Errorf("Volume() = %f after SetVolume(3), want 1", sm.Volume())
	}
}

// TestPlayLandingWithoutSpeaker verifies playback is a no-op before Initialize
func TestPlayLandingWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(Config{Enabled: true, MasterVolume: 1, LandingVolume: 1})

	sm.PlayLanding()
	if sm.voices.Load() != 0 {
		t.Errorf("Expected no voices, got %d", sm.voices.Load())
	}

	// Cleanup without Initialize must not touch the speaker
	sm.Cleanup()
}

func TestLoadSampleUnsupported(t *testing.T) {
	_, err := LoadSample("blop.ogg", sampleRate)
	if !errors.Is(err, ErrUnsupportedSample) {
		t.Errorf("Expected ErrUnsupportedSample, got %v", err)
	}
}

func TestLoadSampleMissing(t *testing.T) {
	_, err := LoadSample(filepath.Join(t.TempDir(), "missing.wav"), sampleRate)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

// TestLoadSampleWAV round-trips a synthesized landing sound through a WAV file
func TestLoadSampleWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blop.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rate := beep.SampleRate(22050)
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, CreateLandingSound(rate, 1), format); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	f.Close()

	buf, err := LoadSample(path, sampleRate)
	if err != nil {
		t.Fatalf("LoadSample failed: %v", err)
	}

	// Resampled to the output rate, so roughly twice the source length
	want := sampleRate.N(120 * time.Millisecond)
	if diff := buf.Len() - want; diff < -want/10 || diff > want/10 {
		t.Errorf("Buffer length = %d, want about %d", buf.Len(), want)
	}
}
