package animation

import "time"

// Clock is the time source the drawer's tickers and springs read
// from. Production code runs on system time; tests swap in a
// controllable clock with SetClock and step frames by hand.
type Clock interface {
	Now() time.Time
}

// realClock reads system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package time source. Every ticker elapsed calculation
// goes through it, so replacing it freezes the whole animation layer
// onto the injected time.
var clock Clock = realClock{}

// SetClock swaps the animation time source and hands back the one it
// replaced, for restoring in a test cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the active clock.
func Now() time.Time { return clock.Now() }
