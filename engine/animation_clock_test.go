package engine

import (
	"sync"
	"testing"
	"time"
)

// TestProcessTickSignalsRedraw verifies movement posts a coalesced redraw
func TestProcessTickSignalsRedraw(t *testing.T) {
	b, tp := newTestBoard(t)
	clock, redraw := NewAnimationClock(b, tp, 10*time.Millisecond, nil)

	clock.ProcessTick()
	select {
	case <-redraw:
		t.Fatal("Idle board should not request a redraw")
	default:
	}

	b.Drop([]int{1, 2}, -3)
	clock.ProcessTick()
	clock.ProcessTick()

	select {
	case <-redraw:
	default:
		t.Fatal("Expected a redraw signal")
	}
	select {
	case <-redraw:
		t.Fatal("Redraw signals should coalesce")
	default:
	}

	if clock.TickCount() != 3 {
		t.Errorf("TickCount() = %d, want 3", clock.TickCount())
	}
}

// TestProcessTickLandingCallback verifies each landing is reported once
func TestProcessTickLandingCallback(t *testing.T) {
	b, tp := newTestBoard(t)

	var mu sync.Mutex
	landed := make(map[int]int)
	clock, _ := NewAnimationClock(b, tp, 10*time.Millisecond, func(n int) {
		mu.Lock()
		landed[n]++
		mu.Unlock()
	})

	b.Drop([]int{4, 8}, b.Destination()-1)
	for i := 0; i < 5; i++ {
		clock.ProcessTick()
		tp.Advance(500 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if landed[4] != 1 || landed[8] != 1 {
		t.Errorf("Landing counts = %v, want one each for 4 and 8", landed)
	}
}

// TestClockStartStop verifies the loop runs against real time and stops cleanly
func TestClockStartStop(t *testing.T) {
	tp := NewMonotonicTimeProvider()
	b, _ := newTestBoard(t)
	b.timeProvider = tp

	done := make(chan int, 1)
	clock, _ := NewAnimationClock(b, tp, time.Millisecond, func(n int) {
		select {
		case done <- n:
		default:
		}
	})

	b.Drop([]int{9}, b.Destination()-2)
	clock.Start()
	clock.Start() // idempotent

	select {
	case n := <-done:
		if n != 9 {
			t.Errorf("Landed ball = %d, want 9", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Ball did not land")
	}

	clock.Stop()
	clock.Stop() // idempotent

	ticks := clock.TickCount()
	time.Sleep(10 * time.Millisecond)
	if clock.TickCount() != ticks {
		t.Error("Clock ticked after Stop")
	}
}

// TestShrinkBeforeLandingReportsEachBallOnce verifies balls pushed onto a
// raised line by a resize still land through the clock and sound once
func TestShrinkBeforeLandingReportsEachBallOnce(t *testing.T) {
	b, tp := newTestBoard(t)

	landed := make(map[int]int)
	clock, _ := NewAnimationClock(b, tp, 10*time.Millisecond, func(n int) {
		landed[n]++
	})

	b.Drop([]int{4, 8}, b.Destination()-1)
	b.Resize(80, 10)

	for i := 0; i < 10; i++ {
		clock.ProcessTick()
		tp.Advance(100 * time.Millisecond)
	}

	if landed[4] != 1 || landed[8] != 1 {
		t.Errorf("Landing counts = %v, want one each for 4 and 8", landed)
	}
	for _, n := range []int{4, 8} {
		ball, _ := b.Ball(n)
		if ball.Y != 5 {
			t.Errorf("Ball %d Y = %d, want 5", n, ball.Y)
		}
	}
}
