package animation

import (
	"testing"
	"time"
)

func TestTickerStartStop(t *testing.T) {
	clk := newStubClock()
	prev := SetClock(clk)
	defer SetClock(prev)

	ticks := 0
	ticker := NewTicker(func(elapsed time.Duration) { ticks++ })

	if ticker.IsActive() {
		t.Error("New ticker should be inactive")
	}
	ticker.Start()
	if !ticker.IsActive() {
		t.Error("Ticker should be active after Start")
	}
	if !HasActiveTickers() {
		t.Error("HasActiveTickers should report the running ticker")
	}

	pumpFrames(clk, 3, 16*time.Millisecond)
	if ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", ticks)
	}

	ticker.Stop()
	pumpFrames(clk, 3, 16*time.Millisecond)
	if ticks != 3 {
		t.Errorf("Stopped ticker still ticked: %d", ticks)
	}
	if HasActiveTickers() {
		t.Error("HasActiveTickers should be false after Stop")
	}
}

func TestTickerElapsed(t *testing.T) {
	clk := newStubClock()
	prev := SetClock(clk)
	defer SetClock(prev)

	var got time.Duration
	ticker := NewTicker(func(elapsed time.Duration) { got = elapsed })
	ticker.Start()
	defer ticker.Stop()

	pumpFrames(clk, 2, 16*time.Millisecond)
	if got != 32*time.Millisecond {
		t.Errorf("Expected elapsed 32ms on second frame, got %s", got)
	}
	if ticker.Elapsed() != 32*time.Millisecond {
		t.Errorf("Expected Elapsed 32ms, got %s", ticker.Elapsed())
	}
}

func TestTickerStopsItselfDuringStep(t *testing.T) {
	clk := newStubClock()
	prev := SetClock(clk)
	defer SetClock(prev)

	ticks := 0
	var ticker *Ticker
	ticker = NewTicker(func(elapsed time.Duration) {
		ticks++
		ticker.Stop()
	})
	ticker.Start()

	pumpFrames(clk, 5, 16*time.Millisecond)
	if ticks != 1 {
		t.Errorf("Ticker that stops itself should tick once, got %d", ticks)
	}
}

func TestTickerDoubleStart(t *testing.T) {
	clk := newStubClock()
	prev := SetClock(clk)
	defer SetClock(prev)

	ticks := 0
	ticker := NewTicker(func(elapsed time.Duration) { ticks++ })
	ticker.Start()
	defer ticker.Stop()

	pumpFrames(clk, 1, 16*time.Millisecond)
	ticker.Start() // no-op: must not reset the start time
	pumpFrames(clk, 1, 16*time.Millisecond)

	if ticker.Elapsed() != 32*time.Millisecond {
		t.Errorf("Double Start reset elapsed time: %s", ticker.Elapsed())
	}
	if ticks != 2 {
		t.Errorf("Expected 2 ticks, got %d", ticks)
	}
}

func TestStepTickersEmpty(t *testing.T) {
	// Must not panic with nothing registered.
	StepTickers()
}
