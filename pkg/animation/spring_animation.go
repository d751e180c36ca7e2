package animation

import "time"

// maxSpringStep caps the integration step so a long pause between
// frames (background tab, debugger, dropped frames) cannot destabilize
// the integration when the loop resumes.
const maxSpringStep = 64 * time.Millisecond

// SpringAnimation animates a scalar value toward a target using a
// [SpringSimulation] driven by a [Ticker].
//
// Set a target with SetTarget, optionally seeding the spring with a
// gesture's release velocity. The animation runs one cooperative step
// per frame, emitting OnUpdate after each step and OnComplete exactly
// once when the value comes to rest on the target.
//
// A SpringAnimation owns its state exclusively and must be used from a
// single goroutine, the same one that pumps [StepTickers].
type SpringAnimation struct {
	// OnUpdate fires after every integration step with the new value
	// and velocity.
	OnUpdate func(value, velocity float64)
	// OnComplete fires exactly once each time the value reaches a
	// target, after the final OnUpdate.
	OnComplete func()

	config   SpringConfig
	value    float64
	velocity float64

	sim      *SpringSimulation
	ticker   *Ticker
	lastTick time.Time
}

// NewSpringAnimation creates an idle animation holding the initial
// value. Zero config fields fall back to [SpringDefault] values.
func NewSpringAnimation(initial float64, config SpringConfig) *SpringAnimation {
	return &SpringAnimation{
		config: config.normalize(),
		value:  initial,
	}
}

// SetTarget directs the value toward target, seeding the spring with
// the given velocity (use 0 when not driven by a gesture). If the
// animation is idle the frame loop is started; if it is already
// running the spring is redirected without restarting.
func (a *SpringAnimation) SetTarget(target, velocity float64) {
	if a.sim != nil && a.ticker != nil && a.ticker.IsActive() {
		a.sim.Retarget(target, velocity)
		return
	}

	a.sim = NewSpringSimulation(a.config, a.value, velocity, target)
	a.lastTick = Now()
	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

func (a *SpringAnimation) tick(time.Duration) {
	if a.sim == nil {
		a.stopTicker()
		return
	}

	now := Now()
	dt := now.Sub(a.lastTick)
	a.lastTick = now
	if dt > maxSpringStep {
		dt = maxSpringStep
	}

	done := a.sim.Step(dt.Seconds())
	a.value = a.sim.Position()
	a.velocity = a.sim.Velocity()

	if a.OnUpdate != nil {
		a.OnUpdate(a.value, a.velocity)
	}
	if done {
		a.stopTicker()
		if a.OnComplete != nil {
			a.OnComplete()
		}
	}
}

func (a *SpringAnimation) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}

// Stop cancels the animation at its current value. No further
// callbacks fire until the next SetTarget.
func (a *SpringAnimation) Stop() {
	a.stopTicker()
	a.sim = nil
}

// SetValue moves the value directly and cancels any running
// animation. Used when something else takes over the value, such as a
// pointer drag.
func (a *SpringAnimation) SetValue(value float64) {
	a.Stop()
	a.value = value
	a.velocity = 0
}

// SetConfig merges the non-zero fields of config into the live config
// without restarting the animation; a running spring picks up the new
// parameters on its next step.
func (a *SpringAnimation) SetConfig(config SpringConfig) {
	a.config = a.config.merge(config)
	if a.sim != nil {
		a.sim.Config = a.config
	}
}

// Config returns the effective spring configuration.
func (a *SpringAnimation) Config() SpringConfig {
	return a.config
}

// Value returns the current animated value.
func (a *SpringAnimation) Value() float64 {
	return a.value
}

// Velocity returns the current velocity in units per second.
func (a *SpringAnimation) Velocity() float64 {
	return a.velocity
}

// IsAnimating reports whether the spring is running.
func (a *SpringAnimation) IsAnimating() bool {
	return a.ticker != nil && a.ticker.IsActive()
}
