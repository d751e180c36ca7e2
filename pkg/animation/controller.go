package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is where a timed animation currently stands: running
// toward 1 (AnimationForward), running toward 0 (AnimationReverse), or
// settled at either end (AnimationCompleted, AnimationDismissed).
type AnimationStatus int

const (
	// AnimationDismissed means the animation rests at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is running toward 1.
	AnimationForward
	// AnimationReverse means the animation is running toward 0.
	AnimationReverse
	// AnimationCompleted means the animation rests at 1.
	AnimationCompleted
)

var statusNames = [...]string{"dismissed", "forward", "reverse", "completed"}

func (s AnimationStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
	return statusNames[s]
}

// AnimationController runs a unit value from 0 to 1 over a fixed
// duration, optionally shaped by a Curve. It covers the drawer
// transitions that a spring does not: backdrop and highlight fades,
// handle hints, anything keyed to progress rather than to a release
// velocity. Pair it with a [Tween] to map the unit value onto a
// concrete range, and use [SpringAnimation] for gesture settling.
//
// Call Dispose when the controller is no longer needed.
type AnimationController struct {
	// Value is the current unit progress, 0 through 1.
	Value float64

	// Duration is how long a full 0-to-1 run takes.
	Duration time.Duration

	// Curve shapes linear progress. Nil means linear.
	Curve Curve

	status          AnimationStatus
	frames          *Ticker
	from            float64
	to              float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListener    int
}

// NewAnimationController creates a controller resting at 0.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward runs from the current value to 1.
func (c *AnimationController) Forward() {
	c.run(1, AnimationForward)
}

// Reverse runs from the current value to 0.
func (c *AnimationController) Reverse() {
	c.run(0, AnimationReverse)
}

// AnimateTo runs to an arbitrary target value.
func (c *AnimationController) AnimateTo(target float64) {
	if target > c.Value {
		c.run(target, AnimationForward)
	} else {
		c.run(target, AnimationReverse)
	}
}

func (c *AnimationController) run(target float64, heading AnimationStatus) {
	if c.frames != nil {
		c.frames.Stop()
	}
	c.from = c.Value
	c.to = target
	c.setStatus(heading)

	c.frames = NewTicker(c.tick)
	c.frames.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	frac := 1.0
	if c.Duration > 0 {
		frac = min(elapsed.Seconds()/c.Duration.Seconds(), 1)
	}

	eased := frac
	if c.Curve != nil {
		eased = c.Curve(frac)
	}
	c.Value = c.from + (c.to-c.from)*eased
	for _, fn := range c.listeners {
		fn()
	}

	if frac >= 1 {
		c.settle()
	}
}

// settle stops the frame ticker and, when the value came to rest at
// an end of the unit range, records the resting status. A stop midway
// keeps the heading so a later run can resume from it.
func (c *AnimationController) settle() {
	c.Stop()
	if c.Value <= 0 {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= 1 {
		c.setStatus(AnimationCompleted)
	}
}

// Reset stops the animation and puts the value back at 0.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationDismissed)
	for _, fn := range c.listeners {
		fn()
	}
}

// Stop halts the animation at its current value.
func (c *AnimationController) Stop() {
	if c.frames != nil {
		c.frames.Stop()
		c.frames = nil
	}
}

// Status reports where the animation stands.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether a run is in progress.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// IsCompleted reports whether the animation rests at 1.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed reports whether the animation rests at 0.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AddListener registers a callback for value changes and returns its
// unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// AddStatusListener registers a callback for status transitions and
// returns its unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListener
	c.nextListener++
	c.statusListeners[id] = fn
	return func() { delete(c.statusListeners, id) }
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, fn := range c.statusListeners {
		fn(status)
	}
}

// Dispose stops the animation and drops every listener.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
