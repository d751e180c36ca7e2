// Package testing provides deterministic test support for the drawer
// runtime: a controllable clock for spring animations, frame pumping,
// and scripted drag gestures for the pointer tracker.
package testing

import (
	"sync"
	"time"
)

// FakeClock is a hand-stepped time source. Install it with
// animation.SetClock and advance it between frames to walk springs
// and tickers through deterministic timelines. Safe for concurrent
// use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock pinned to a fixed epoch so drag
// scripts and pump helpers produce repeatable timestamps.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now reports the clock's current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance steps the clock forward by d, simulating elapsed frame
// time.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
