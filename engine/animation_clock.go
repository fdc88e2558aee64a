package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lucky-lotto/core"
)

// AnimationClock drives every ball on the board from one fixed tick.
// After a tick that moved anything it posts a redraw signal for the main loop,
// and reports each landing once through onLand.
type AnimationClock struct {
	board        *Board
	timeProvider TimeProvider
	tickInterval time.Duration
	onLand       func(number int)

	// Redraw signal, buffered 1 and coalescing
	redraw chan struct{}

	// Tick counter for debugging and tests
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewAnimationClock creates a clock with the given tick interval.
// Returns the clock and the redraw channel the main loop selects on.
func NewAnimationClock(board *Board, tp TimeProvider, tickInterval time.Duration, onLand func(number int)) (*AnimationClock, <-chan struct{}) {
	redraw := make(chan struct{}, 1)

	ac := &AnimationClock{
		board:        board,
		timeProvider: tp,
		tickInterval: tickInterval,
		onLand:       onLand,
		redraw:       redraw,
		stopChan:     make(chan struct{}),
	}
	return ac, redraw
}

// Start begins the tick loop
func (ac *AnimationClock) Start() {
	if ac.running.CompareAndSwap(false, true) {
		ac.wg.Add(1)
		core.Go(ac.loop)
	}
}

// Stop halts the tick loop and waits for it to exit
func (ac *AnimationClock) Stop() {
	ac.stopOnce.Do(func() {
		if ac.running.CompareAndSwap(true, false) {
			close(ac.stopChan)
			ac.wg.Wait()
		}
	})
}

// TickCount returns the number of processed ticks
func (ac *AnimationClock) TickCount() uint64 {
	return ac.tickCount.Load()
}

func (ac *AnimationClock) loop() {
	defer ac.wg.Done()

	ticker := time.NewTicker(ac.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ac.stopChan:
			return
		case <-ticker.C:
			ac.ProcessTick()
		}
	}
}

// ProcessTick runs one tick at the provider's current time
func (ac *AnimationClock) ProcessTick() {
	ac.tickCount.Add(1)

	landed, moved := ac.board.Tick(ac.timeProvider.Now())
	if !moved {
		return
	}

	// Landing callbacks run outside the board lock
	if ac.onLand != nil {
		for _, n := range landed {
			ac.onLand(n)
		}
	}

	select {
	case ac.redraw <- struct{}{}:
	default:
	}
}
