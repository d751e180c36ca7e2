// Package gestures converts raw pointer samples into drag state for
// drawer interactions.
//
// The central type is [Tracker], which consumes timestamped pointer
// samples and maintains a [State] snapshot: position delta from the
// gesture start, a windowed velocity estimate, and a coarse drag
// direction. The surrounding input layer (terminal, platform channel,
// test script) is responsible for delivering samples in order; the
// tracker itself never blocks and never fails.
package gestures

import (
	"fmt"
	"math"
	"time"
)

// DefaultTouchSlop is the distance in logical pixels a pointer must
// travel before a drag should be recognized. Callers that gate drag
// acceptance (for example to let scrollable content win the gesture)
// compare against this before handing samples to a Tracker.
const DefaultTouchSlop = 8.0

// historyCap bounds the sample window used for velocity estimation.
const historyCap = 5

// directionThreshold is the minimum absolute delta in logical pixels
// before a drag direction is reported.
const directionThreshold = 5.0

// Sample is a single timestamped pointer observation.
type Sample struct {
	X         float64
	Y         float64
	Time      time.Time
	PointerID int64
}

// Direction is the coarse axis-aligned direction of a drag.
type Direction int

const (
	// DirectionNone means the pointer has not moved past the
	// direction threshold on either axis.
	DirectionNone Direction = iota
	// DirectionUp means the dominant movement is toward negative Y.
	DirectionUp
	// DirectionDown means the dominant movement is toward positive Y.
	DirectionDown
	// DirectionLeft means the dominant movement is toward negative X.
	DirectionLeft
	// DirectionRight means the dominant movement is toward positive X.
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// State is a snapshot of an in-progress or completed gesture.
//
// Velocity is reported in logical pixels per millisecond, computed as
// the slope between the oldest and newest samples retained in the
// tracker's bounded history window.
type State struct {
	Dragging bool

	StartX   float64
	StartY   float64
	CurrentX float64
	CurrentY float64

	DeltaX float64
	DeltaY float64

	VelocityX float64
	VelocityY float64

	Direction Direction

	// LastTime is the timestamp of the most recent sample applied.
	LastTime time.Time
}

// Tracker turns a stream of pointer samples into drag state.
//
// A Tracker owns its state exclusively and is not safe for concurrent
// use; feed it from a single goroutine. All methods are total: they
// never return errors and never panic on well-formed samples.
type Tracker struct {
	state   State
	history sampleRing
}

// NewTracker returns a tracker with no active gesture.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start begins a new gesture at the given sample, discarding any
// previous gesture, and returns the initial state.
func (t *Tracker) Start(s Sample) State {
	t.history.clear()
	t.history.push(s)
	t.state = State{
		Dragging: true,
		StartX:   s.X,
		StartY:   s.Y,
		CurrentX: s.X,
		CurrentY: s.Y,
		LastTime: s.Time,
	}
	return t.state
}

// Move applies a move sample to the active gesture and returns the
// updated state. When no gesture is active it is a no-op and returns
// the last state unchanged.
func (t *Tracker) Move(s Sample) State {
	if !t.state.Dragging {
		return t.state
	}
	t.history.push(s)

	t.state.CurrentX = s.X
	t.state.CurrentY = s.Y
	t.state.DeltaX = s.X - t.state.StartX
	t.state.DeltaY = s.Y - t.state.StartY
	t.state.VelocityX, t.state.VelocityY = t.history.velocity()
	t.state.Direction = classifyDirection(t.state.DeltaX, t.state.DeltaY)
	t.state.LastTime = s.Time
	return t.state
}

// End applies one final move sample and finalizes the gesture,
// returning the terminal state with Dragging set to false.
func (t *Tracker) End(s Sample) State {
	if !t.state.Dragging {
		return t.state
	}
	t.Move(s)
	t.state.Dragging = false
	return t.state
}

// Reset clears the gesture state and the sample history.
func (t *Tracker) Reset() {
	t.state = State{}
	t.history.clear()
}

// State returns the current state snapshot.
func (t *Tracker) State() State {
	return t.state
}

// classifyDirection maps a start-relative delta to a coarse direction.
// Movement below the threshold on both axes reports no direction;
// otherwise the axis with the larger absolute delta wins, signed by
// that delta.
func classifyDirection(dx, dy float64) Direction {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < directionThreshold && ay < directionThreshold {
		return DirectionNone
	}
	if ax > ay {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}
