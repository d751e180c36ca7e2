package testing

import (
	"time"

	"github.com/go-drawer/drawer/pkg/animation"
)

// DefaultFrameInterval matches a 60fps display.
const DefaultFrameInterval = 16 * time.Millisecond

// PumpFrames advances the clock by interval and steps all active
// tickers, n times. The clock must already be installed via
// animation.SetClock.
func PumpFrames(clock *FakeClock, n int, interval time.Duration) {
	for i := 0; i < n; i++ {
		clock.Advance(interval)
		animation.StepTickers()
	}
}

// PumpUntilIdle pumps frames at DefaultFrameInterval until no ticker
// is active, up to maxFrames. It returns the number of frames pumped.
func PumpUntilIdle(clock *FakeClock, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		if !animation.HasActiveTickers() {
			return i
		}
		clock.Advance(DefaultFrameInterval)
		animation.StepTickers()
	}
	return maxFrames
}
