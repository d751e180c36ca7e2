// Package animation provides the timing and physics primitives that
// move a drawer: a cooperative frame loop, spring simulations for
// gesture-driven settling, and duration-based controllers with easing
// curves for everything else.
//
// # Core Components
//
//   - [SpringAnimation]: drives a scalar value toward a target with
//     damped harmonic-oscillator physics, seeded with release velocity
//     from a gesture. This is the primary way a drawer settles onto a
//     snap point.
//
//   - [SpringSimulation]: the underlying pure integrator, stepped
//     manually with a time delta. Use it directly when the caller owns
//     the frame loop.
//
//   - [AnimationController]: duration-and-curve based value progression
//     from 0 to 1, for fades and other non-physical transitions.
//
//   - [Ticker]: the low-level per-frame callback primitive. The host
//     loop calls [StepTickers] once per frame; each active ticker then
//     runs exactly one step before the next frame is scheduled.
//
// # Time
//
// The package reads time through a replaceable [Clock]. Tests install a
// fake clock with [SetClock] and pump frames deterministically.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [SpringAnimation]
// and [AnimationController]. Most code should use those types rather
// than Ticker directly.
//
// The callback receives the elapsed time since Start was called.
// Tickers are driven by the host's frame loop via [StepTickers]; a
// ticker never schedules itself recursively, so a pathological config
// can stall progress but cannot overflow the stack.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. A stopped ticker receives no further
// callbacks, including any step already due in the current frame.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy to avoid holding the lock during callbacks, which may
	// start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
