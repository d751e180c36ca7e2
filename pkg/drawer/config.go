// Package drawer composes the gesture, snap, and spring kernels into a
// draggable drawer controller. The controller is render-agnostic: the
// host feeds it pointer samples and container metrics, and reads back
// the extent each frame to position whatever surface it draws.
package drawer

import (
	"github.com/go-drawer/drawer/pkg/animation"
	"github.com/go-drawer/drawer/pkg/snap"
)

// Side selects which edge the drawer is anchored to. It determines the
// drag axis and which pointer direction opens the drawer.
type Side int

const (
	// SideBottom anchors the drawer to the bottom edge. Dragging up
	// opens it.
	SideBottom Side = iota
	// SideTop anchors to the top edge. Dragging down opens it.
	SideTop
	// SideLeft anchors to the left edge. Dragging right opens it.
	SideLeft
	// SideRight anchors to the right edge. Dragging left opens it.
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "bottom"
	}
}

// horizontal reports whether the drag axis is the X axis.
func (s Side) horizontal() bool {
	return s == SideLeft || s == SideRight
}

// axisDelta maps a pointer-space delta to extent space: positive means
// the drawer is opening.
func (s Side) axisDelta(dx, dy float64) float64 {
	switch s {
	case SideTop:
		return dy
	case SideLeft:
		return dx
	case SideRight:
		return -dx
	default:
		return -dy
	}
}

// Config configures a drawer controller.
type Config struct {
	// Side is the anchoring edge. Defaults to SideBottom.
	Side Side
	// SnapPoints are the resting positions along the drag axis.
	// Empty defaults to a single full-extent point.
	SnapPoints []snap.Descriptor
	// InitialSnap is the index the drawer opens to. Out-of-range
	// values fall back to 0.
	InitialSnap int
	// Spring shapes the settle animation. A zero value falls back to
	// IOSSpring.
	Spring animation.SpringConfig
	// VelocityThreshold is the release speed in px/ms above which the
	// drawer advances a snap point instead of settling on the nearest.
	// Zero defaults to snap.DefaultVelocityThreshold.
	VelocityThreshold float64
	// DismissFactor is the fraction of the lowest snap offset below
	// which a release with closing velocity dismisses. Zero defaults
	// to 0.5.
	DismissFactor float64
	// DampenFactor scales drag movement past the highest snap point.
	// Zero defaults to 0.3.
	DampenFactor float64
	// Dismissible allows the drawer to animate fully closed. When
	// false a release always lands on a snap point.
	Dismissible bool
}

func defaultConfig() Config {
	return Config{
		SnapPoints:        []snap.Descriptor{snap.Fraction(1)},
		Spring:            animation.IOSSpring(),
		VelocityThreshold: snap.DefaultVelocityThreshold,
		DismissFactor:     0.5,
		DampenFactor:      0.3,
	}
}

// normalizeConfig fills zero values from defaults, leaving set fields
// untouched.
func normalizeConfig(value Config) Config {
	defaults := defaultConfig()
	if len(value.SnapPoints) == 0 {
		value.SnapPoints = defaults.SnapPoints
	}
	if value.InitialSnap < 0 || value.InitialSnap >= len(value.SnapPoints) {
		value.InitialSnap = 0
	}
	if value.Spring == (animation.SpringConfig{}) {
		value.Spring = defaults.Spring
	}
	if value.VelocityThreshold <= 0 {
		value.VelocityThreshold = defaults.VelocityThreshold
	}
	if value.DismissFactor <= 0 {
		value.DismissFactor = defaults.DismissFactor
	}
	if value.DampenFactor <= 0 {
		value.DampenFactor = defaults.DampenFactor
	}
	return value
}
