package animation

import "math"

// SpringConfig describes a damped harmonic oscillator.
//
// Stiffness and Damping are expressed per second; Precision is the
// rest threshold applied to both the position error and the velocity.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	Precision float64
}

// normalize fills zero fields with the corresponding default values so
// a partially specified config is always integrable.
func (c SpringConfig) normalize() SpringConfig {
	defaults := SpringDefault()
	if c.Stiffness <= 0 {
		c.Stiffness = defaults.Stiffness
	}
	if c.Damping <= 0 {
		c.Damping = defaults.Damping
	}
	if c.Mass <= 0 {
		c.Mass = defaults.Mass
	}
	if c.Precision <= 0 {
		c.Precision = defaults.Precision
	}
	return c
}

// merge overlays the non-zero fields of other onto c.
func (c SpringConfig) merge(other SpringConfig) SpringConfig {
	if other.Stiffness > 0 {
		c.Stiffness = other.Stiffness
	}
	if other.Damping > 0 {
		c.Damping = other.Damping
	}
	if other.Mass > 0 {
		c.Mass = other.Mass
	}
	if other.Precision > 0 {
		c.Precision = other.Precision
	}
	return c
}

// SpringDefault is a critically smooth spring with no visible
// oscillation, suitable for most drawer settling.
func SpringDefault() SpringConfig {
	return SpringConfig{Stiffness: 170, Damping: 26, Mass: 1, Precision: 0.01}
}

// SpringGentle settles slowly with a soft approach.
func SpringGentle() SpringConfig {
	return SpringConfig{Stiffness: 120, Damping: 14, Mass: 1, Precision: 0.01}
}

// SpringWobbly overshoots noticeably before coming to rest.
func SpringWobbly() SpringConfig {
	return SpringConfig{Stiffness: 180, Damping: 12, Mass: 1, Precision: 0.01}
}

// SpringStiff snaps quickly with minimal travel time.
func SpringStiff() SpringConfig {
	return SpringConfig{Stiffness: 210, Damping: 20, Mass: 1, Precision: 0.01}
}

// IOSSpring approximates the feel of iOS sheet presentation.
func IOSSpring() SpringConfig {
	return SpringConfig{Stiffness: 600, Damping: 49, Mass: 1.2, Precision: 0.05}
}

// BouncySpring is an underdamped spring for playful overscroll and
// fling effects.
func BouncySpring() SpringConfig {
	return SpringConfig{Stiffness: 600, Damping: 22, Mass: 1, Precision: 0.05}
}

// SpringSimulation integrates a damped harmonic oscillator toward a
// target position.
//
// The simulation is pure: callers own the frame loop and call Step
// with the elapsed time in seconds. When both the position error and
// the velocity fall under the config's Precision, Step snaps the
// position exactly to the target, zeroes the velocity, and reports
// done. See ExampleSpringSimulation for usage.
type SpringSimulation struct {
	// Config may be adjusted between steps; changes apply from the
	// next Step call.
	Config SpringConfig

	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation creates a simulation at the given position with
// an initial velocity (positive toward larger positions, typically
// seeded from a fling gesture) heading for target.
func NewSpringSimulation(config SpringConfig, position, velocity, target float64) *SpringSimulation {
	return &SpringSimulation{
		Config:   config.normalize(),
		position: position,
		velocity: velocity,
		target:   target,
	}
}

// Step advances the simulation by dt seconds and reports whether the
// spring has come to rest. Once done, further steps are no-ops.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt <= 0 {
		return false
	}

	cfg := s.Config.normalize()
	displacement := s.position - s.target
	springForce := -cfg.Stiffness * displacement
	dampingForce := -cfg.Damping * s.velocity
	acceleration := (springForce + dampingForce) / cfg.Mass

	s.velocity += acceleration * dt
	s.position += s.velocity * dt

	if math.Abs(s.position-s.target) < cfg.Precision && math.Abs(s.velocity) < cfg.Precision {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current velocity.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// IsDone reports whether the spring has come to rest at the target.
func (s *SpringSimulation) IsDone() bool {
	return s.done
}

// Retarget redirects the simulation toward a new target, keeping the
// current position and replacing the velocity with the given seed.
func (s *SpringSimulation) Retarget(target, velocity float64) {
	s.target = target
	s.velocity = velocity
	s.done = false
}

// Target returns the position the spring is heading for.
func (s *SpringSimulation) Target() float64 {
	return s.target
}
