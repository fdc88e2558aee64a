package constants

import "time"

// Landing Sound Timing
const (
	LandingSoundDuration = 120 * time.Millisecond
	LandingSoundAttack   = 4 * time.Millisecond
	LandingSoundRelease  = 90 * time.Millisecond

	// LandingSoundStartFreq and LandingSoundEndFreq bound the downward "blop" sweep
	LandingSoundStartFreq = 520.0
	LandingSoundEndFreq   = 180.0
)

// Audio engine
const (
	// SampleRate is the speaker output rate
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// MaxVoices caps concurrently playing landing sounds
	MaxVoices = 10
)
