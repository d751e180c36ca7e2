package testing

import (
	"time"

	"github.com/go-drawer/drawer/pkg/gestures"
)

// nextPointerID is incremented for each new scripted pointer to avoid
// collisions between concurrent scripts.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// DragScript describes a synthetic drag gesture: a straight-line
// pointer motion from (FromX, FromY) to (ToX, ToY) delivered as a
// down event, Steps evenly spaced move events, and an up event.
type DragScript struct {
	FromX, FromY float64
	ToX, ToY     float64
	// Steps is the number of move events. Zero defaults to 10.
	Steps int
	// Interval is the time between events. Zero defaults to 16ms.
	Interval time.Duration
	// PointerID identifies the pointer. Zero allocates a fresh ID.
	PointerID int64
}

func (s DragScript) normalized() DragScript {
	if s.Steps <= 0 {
		s.Steps = 10
	}
	if s.Interval <= 0 {
		s.Interval = DefaultFrameInterval
	}
	if s.PointerID == 0 {
		s.PointerID = allocPointerID()
	}
	return s
}

// Samples expands the script into the full event sequence starting at
// the given time. The first sample is the down event, the last is the
// up event at the final position.
func (s DragScript) Samples(start time.Time) []gestures.Sample {
	s = s.normalized()
	out := make([]gestures.Sample, 0, s.Steps+2)
	out = append(out, gestures.Sample{
		X: s.FromX, Y: s.FromY, Time: start, PointerID: s.PointerID,
	})
	dx := (s.ToX - s.FromX) / float64(s.Steps)
	dy := (s.ToY - s.FromY) / float64(s.Steps)
	t := start
	for i := 1; i <= s.Steps; i++ {
		t = t.Add(s.Interval)
		out = append(out, gestures.Sample{
			X:         s.FromX + dx*float64(i),
			Y:         s.FromY + dy*float64(i),
			Time:      t,
			PointerID: s.PointerID,
		})
	}
	// Up event repeats the final position with no extra delay.
	out = append(out, gestures.Sample{
		X: s.ToX, Y: s.ToY, Time: t, PointerID: s.PointerID,
	})
	return out
}

// Apply feeds the script into a tracker and returns the final state
// reported by End.
func (s DragScript) Apply(tracker *gestures.Tracker, start time.Time) gestures.State {
	samples := s.Samples(start)
	tracker.Start(samples[0])
	for _, m := range samples[1 : len(samples)-1] {
		tracker.Move(m)
	}
	return tracker.End(samples[len(samples)-1])
}

// Drive delivers the script to arbitrary down/move/up callbacks. Any
// nil callback is skipped. This is how higher-level components are
// exercised without this package depending on them.
func (s DragScript) Drive(start time.Time, down, move, up func(gestures.Sample)) {
	samples := s.Samples(start)
	if down != nil {
		down(samples[0])
	}
	if move != nil {
		for _, m := range samples[1 : len(samples)-1] {
			move(m)
		}
	}
	if up != nil {
		up(samples[len(samples)-1])
	}
}
