package constants

import "time"

// Game Loop Timing
const (
	// AnimationTickInterval is the default shared animation clock tick
	AnimationTickInterval = 50 * time.Millisecond

	// StaggerDelay is the release delay added per ball column
	StaggerDelay = 500 * time.Millisecond

	// EventChannelSize is the input event buffer between poller and main loop
	EventChannelSize = 256
)

// Draw defaults
const (
	// BallsToPick is the default number of balls drawn per pick
	BallsToPick = 6

	// TotalBalls is the default pool size, numbers run 1..TotalBalls
	TotalBalls = 49

	// MaxPool is the largest pool renderable with two-digit sprites
	MaxPool = 99

	// DropSpeed is the default number of rows a ball falls per tick
	DropSpeed = 1
)
