package components

import (
	"time"

	"github.com/lixenwraith/lucky-lotto/asset"
)

// BallState is a ball's position in its drop lifecycle
type BallState int

const (
	StateIdle     BallState = iota // Detached, not drawn
	StateDropping                  // Attached, falls once StartAt passes
	StateLanded                    // Resting on the destination line
)

func (s BallState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDropping:
		return "Dropping"
	case StateLanded:
		return "Landed"
	default:
		return "Unknown"
	}
}

// Ball is one numbered lottery ball.
// Balls are plain records; the board's lock guards their fields.
type Ball struct {
	Number int
	Sprite *asset.Sprite

	X, Y  int // Top-left cell
	Speed int // Rows per tick

	State   BallState
	Index   int       // Column among the dropped set
	StartAt time.Time // Release time, staggered by Index
}

// NewBall creates an idle ball parked off-screen
func NewBall(number int, sprite *asset.Sprite, speed int) *Ball {
	return &Ball{
		Number: number,
		Sprite: sprite,
		X:      -sprite.Width(),
		Y:      -sprite.Height(),
		Speed:  speed,
		State:  StateIdle,
	}
}

// Attached reports whether the ball is on screen
func (b *Ball) Attached() bool {
	return b.State != StateIdle
}

// Release attaches the ball at (x, y) and schedules its fall
func (b *Ball) Release(index, x, y int, startAt time.Time) {
	b.Index = index
	b.X = x
	b.Y = y
	b.StartAt = startAt
	b.State = StateDropping
}

// Detach returns the ball to idle
func (b *Ball) Detach() {
	b.State = StateIdle
}

// Step advances a dropping ball by Speed rows.
// Reaching or passing dest clamps Y to dest and lands the ball; returns true on landing.
func (b *Ball) Step(dest int) bool {
	if b.State != StateDropping {
		return false
	}

	b.Y += b.Speed
	if b.Y < dest {
		return false
	}

	b.Y = dest
	b.State = StateLanded
	return true
}
