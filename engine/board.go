package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/lucky-lotto/asset"
	"github.com/lixenwraith/lucky-lotto/components"
	"github.com/lixenwraith/lucky-lotto/lottery"
)

// BoardConfig holds draw and layout parameters
type BoardConfig struct {
	Count   int           // Balls per pick
	Pool    int           // Numbers run 1..Pool
	Speed   int           // Rows per tick
	Gap     int           // Blank columns between balls
	Stagger time.Duration // Release delay per column
}

// Board owns every ball and the currently chosen set.
// All ball fields are guarded by mu; the animation clock and renderer both go through it.
type Board struct {
	mu sync.RWMutex

	cfg          BoardConfig
	picker       *lottery.Picker
	timeProvider TimeProvider

	balls  []*components.Ball // Indexed by number, slot 0 unused
	chosen []*components.Ball

	width, height int
	spriteW       int
	spriteH       int
}

// NewBoard builds one ball per number from the registry.
// A missing sprite is returned as an error; callers treat it as fatal.
func NewBoard(cfg BoardConfig, sprites *asset.Registry, picker *lottery.Picker, tp TimeProvider, width, height int) (*Board, error) {
	b := &Board{
		cfg:          cfg,
		picker:       picker,
		timeProvider: tp,
		balls:        make([]*components.Ball, cfg.Pool+1),
		width:        width,
		height:       height,
	}

	for n := 1; n <= cfg.Pool; n++ {
		sprite, err := sprites.Lookup(asset.SpriteName(n))
		if err != nil {
			return nil, fmt.Errorf("load ball %d: %w", n, err)
		}
		b.balls[n] = components.NewBall(n, sprite, cfg.Speed)
	}

	// All balls share the size of the last one
	last := b.balls[cfg.Pool].Sprite
	b.spriteW = last.Width()
	b.spriteH = last.Height()

	return b, nil
}

// Destination returns the row balls come to rest on
func (b *Board) Destination() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.destination()
}

func (b *Board) destination() int {
	return b.height / 2
}

// SpriteSize returns the shared ball sprite size.
// Set once in NewBoard and never modified, so no lock is taken.
func (b *Board) SpriteSize() (int, int) {
	return b.spriteW, b.spriteH
}

// Size returns the play area size
func (b *Board) Size() (int, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.width, b.height
}

// Resize updates the play area, landed balls follow the new destination.
// Dropping balls below the new line are held on it and land on their next tick.
func (b *Board) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.width = width
	b.height = height

	dest := b.destination()
	for _, ball := range b.chosen {
		switch {
		case ball.State == components.StateLanded:
			ball.Y = dest
		case ball.State == components.StateDropping && ball.Y > dest:
			ball.Y = dest
		}
	}
}

// PickAndDrop draws a fresh set and drops it from above the screen
func (b *Board) PickAndDrop() ([]int, error) {
	numbers, err := b.picker.Pick(b.cfg.Count, b.cfg.Pool)
	if err != nil {
		return nil, err
	}
	log.Printf("Picked numbers %s", lottery.FormatNumbers(numbers))

	b.Drop(numbers, -b.spriteH)
	return numbers, nil
}

// SortAndDrop re-drops the chosen numbers in ascending order from just above the line.
// Returns false when nothing has been picked yet.
func (b *Board) SortAndDrop() ([]int, bool) {
	current := b.Chosen()
	if len(current) == 0 {
		return nil, false
	}
	log.Printf("Sorting numbers %s", lottery.FormatNumbers(current))

	numbers := lottery.SortNumbers(current)
	b.Drop(numbers, b.Destination()-b.spriteH/2)
	return numbers, true
}

// Drop replaces the chosen set with numbers, lays them out side by side
// centred on the play area, and releases each one column-staggered.
func (b *Board) Drop(numbers []int, startY int) {
	now := b.timeProvider.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ball := range b.chosen {
		ball.Detach()
	}

	cellWidth := b.spriteW + b.cfg.Gap
	x := b.width/2 - (len(numbers)/2)*cellWidth

	chosen := make([]*components.Ball, 0, len(numbers))
	for i, n := range numbers {
		if n < 1 || n >= len(b.balls) {
			log.Printf("Skipping ball number %d outside pool", n)
			continue
		}
		log.Printf("Starting x pos is %d for ball number %d", x, n)

		ball := b.balls[n]
		ball.Release(i, x, startY, now.Add(time.Duration(i)*b.cfg.Stagger))
		chosen = append(chosen, ball)
		x += cellWidth
	}
	b.chosen = chosen
}

// Chosen returns the displayed numbers in display order
func (b *Board) Chosen() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	numbers := make([]int, len(b.chosen))
	for i, ball := range b.chosen {
		numbers[i] = ball.Number
	}
	return numbers
}

// Snapshot copies the attached chosen balls for rendering
func (b *Board) Snapshot() []components.Ball {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]components.Ball, 0, len(b.chosen))
	for _, ball := range b.chosen {
		if ball.Attached() {
			out = append(out, *ball)
		}
	}
	return out
}

// Ball returns a copy of ball n
func (b *Board) Ball(n int) (components.Ball, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n < 1 || n >= len(b.balls) {
		return components.Ball{}, false
	}
	return *b.balls[n], true
}

// Animating reports whether any chosen ball is still dropping
func (b *Board) Animating() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ball := range b.chosen {
		if ball.State == components.StateDropping {
			return true
		}
	}
	return false
}

// Tick advances every released dropping ball one step.
// Returns the numbers that landed on this tick and whether any ball moved.
func (b *Board) Tick(now time.Time) (landed []int, moved bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	dest := b.destination()
	for _, ball := range b.chosen {
		if ball.State != components.StateDropping || now.Before(ball.StartAt) {
			continue
		}
		moved = true
		if ball.Step(dest) {
			log.Printf("Stopping ball %d", ball.Number)
			landed = append(landed, ball.Number)
		}
	}
	return landed, moved
}
