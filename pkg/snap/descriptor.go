// Package snap resolves drawer snap point descriptors into absolute
// pixel offsets and answers nearest/next queries against them.
//
// A snap point can be described as a fraction of the container size, an
// absolute pixel value, a percentage, or a viewport-relative unit. The
// [Calculator] resolves a descriptor list against concrete container
// and viewport dimensions, and re-resolves wholesale whenever either
// changes.
package snap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit identifies how a descriptor's value scales into an offset.
type Unit int

const (
	// UnitFraction scales the value by the container size (0.5 = half).
	UnitFraction Unit = iota
	// UnitPixels uses the value as an absolute offset.
	UnitPixels
	// UnitPercent scales value/100 by the container size.
	UnitPercent
	// UnitViewportHeight scales value/100 by the viewport height.
	UnitViewportHeight
	// UnitViewportWidth scales value/100 by the viewport width.
	UnitViewportWidth
)

func (u Unit) String() string {
	switch u {
	case UnitFraction:
		return "fraction"
	case UnitPixels:
		return "px"
	case UnitPercent:
		return "%"
	case UnitViewportHeight:
		return "vh"
	case UnitViewportWidth:
		return "vw"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Descriptor describes a single snap position before resolution.
// The zero value is a fraction of 0 (fully closed) with a synthesized id.
type Descriptor struct {
	Value float64
	Unit  Unit
	// ID labels the resolved point. When empty, the calculator
	// synthesizes "snap-<index>".
	ID string
}

// WithID returns a copy of the descriptor carrying an explicit id.
func (d Descriptor) WithID(id string) Descriptor {
	d.ID = id
	return d
}

// Fraction describes a snap point as a ratio of the container size.
func Fraction(v float64) Descriptor {
	return Descriptor{Value: v, Unit: UnitFraction}
}

// Pixels describes a snap point as an absolute pixel offset.
func Pixels(v float64) Descriptor {
	return Descriptor{Value: v, Unit: UnitPixels}
}

// Percent describes a snap point as a percentage of the container size.
func Percent(v float64) Descriptor {
	return Descriptor{Value: v, Unit: UnitPercent}
}

// Vh describes a snap point as a percentage of the viewport height.
func Vh(v float64) Descriptor {
	return Descriptor{Value: v, Unit: UnitViewportHeight}
}

// Vw describes a snap point as a percentage of the viewport width.
func Vw(v float64) Descriptor {
	return Descriptor{Value: v, Unit: UnitViewportWidth}
}

// Parse converts a unit string into a descriptor. Recognized suffixes
// are "px", "%", "vh" and "vw"; anything else is parsed as a bare
// number and treated as a container fraction.
//
// Parse is total: malformed numbers produce a NaN value that flows
// through resolution as a NaN offset rather than an error, matching
// the package's no-failure contract.
func Parse(s string) Descriptor {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(trimmed, "px"):
		return Pixels(parseNumber(strings.TrimSuffix(trimmed, "px")))
	case strings.HasSuffix(trimmed, "vh"):
		return Vh(parseNumber(strings.TrimSuffix(trimmed, "vh")))
	case strings.HasSuffix(trimmed, "vw"):
		return Vw(parseNumber(strings.TrimSuffix(trimmed, "vw")))
	case strings.HasSuffix(trimmed, "%"):
		return Percent(parseNumber(strings.TrimSuffix(trimmed, "%")))
	default:
		return Fraction(parseNumber(trimmed))
	}
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
