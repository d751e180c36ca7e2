package gestures

import "math"

// Axis selects a drag recognizer's primary axis.
type Axis int

const (
	// AxisVertical recognizes up and down drags.
	AxisVertical Axis = iota
	// AxisHorizontal recognizes left and right drags.
	AxisHorizontal
)

// Recognizer turns raw pointer samples into an accepted drag gesture.
//
// A pointer must travel past the touch slop with the primary axis
// dominant before the gesture is accepted; movement dominated by the
// orthogonal axis rejects it so a scroll or swipe elsewhere is not
// captured. Once accepted, OnStart fires once and OnUpdate fires for
// every move until OnEnd delivers the release velocity.
type Recognizer struct {
	// Axis is the primary drag axis.
	Axis Axis
	// Slop is the recognition distance in pixels. Zero uses
	// DefaultTouchSlop.
	Slop float64
	// ShouldStart, when set, is consulted once the slop is exceeded
	// with the total primary-axis delta. Returning false rejects the
	// gesture.
	ShouldStart func(totalPrimaryDelta float64) bool

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	tracker  Tracker
	active   bool
	accepted bool
	rejected bool
}

func (r *Recognizer) slop() float64 {
	if r.Slop > 0 {
		return r.Slop
	}
	return DefaultTouchSlop
}

func (r *Recognizer) primary(x, y float64) float64 {
	if r.Axis == AxisHorizontal {
		return x
	}
	return y
}

// Down begins tracking a pointer. The gesture is not yet accepted.
func (r *Recognizer) Down(s Sample) {
	r.tracker.Start(s)
	r.active = true
	r.accepted = false
	r.rejected = false
}

// Move feeds a pointer movement. It decides acceptance once the slop
// is exceeded and dispatches OnUpdate while the gesture is accepted.
func (r *Recognizer) Move(s Sample) {
	if !r.active || r.rejected {
		return
	}
	state := r.tracker.Move(s)

	if !r.accepted {
		primary := math.Abs(r.primary(state.DeltaX, state.DeltaY))
		orthogonal := math.Abs(r.primary(state.DeltaY, state.DeltaX))
		switch {
		case primary > r.slop() && primary >= orthogonal:
			if r.ShouldStart != nil && !r.ShouldStart(r.primary(state.DeltaX, state.DeltaY)) {
				r.reject()
				return
			}
			r.accepted = true
			if r.OnStart != nil {
				r.OnStart(DragStartDetails{X: state.StartX, Y: state.StartY})
			}
		case orthogonal > r.slop():
			r.reject()
			return
		default:
			return
		}
	}

	if r.OnUpdate != nil {
		r.OnUpdate(DragUpdateDetails{
			X:            state.CurrentX,
			Y:            state.CurrentY,
			DeltaX:       state.DeltaX,
			DeltaY:       state.DeltaY,
			PrimaryDelta: r.primary(state.DeltaX, state.DeltaY),
		})
	}
}

// Up ends the gesture. OnEnd fires only if the gesture was accepted.
func (r *Recognizer) Up(s Sample) {
	if !r.active || r.rejected {
		r.active = false
		return
	}
	state := r.tracker.End(s)
	r.active = false
	if !r.accepted {
		return
	}
	r.accepted = false
	if r.OnEnd != nil {
		r.OnEnd(DragEndDetails{
			X:               state.CurrentX,
			Y:               state.CurrentY,
			VelocityX:       state.VelocityX,
			VelocityY:       state.VelocityY,
			PrimaryVelocity: r.primary(state.VelocityX, state.VelocityY),
		})
	}
}

// Cancel abandons the gesture without an end event. OnCancel fires if
// the gesture had been accepted.
func (r *Recognizer) Cancel() {
	wasAccepted := r.accepted
	r.active = false
	r.accepted = false
	r.rejected = false
	r.tracker.Reset()
	if wasAccepted && r.OnCancel != nil {
		r.OnCancel()
	}
}

// IsAccepted reports whether the current gesture has passed slop and
// been accepted.
func (r *Recognizer) IsAccepted() bool {
	return r.accepted
}

func (r *Recognizer) reject() {
	r.rejected = true
	r.tracker.Reset()
}
