package snap

import (
	"fmt"
	"math"
)

// DefaultVelocityThreshold is the release speed in px/ms above which a
// drag advances to the next snap point instead of the nearest one.
const DefaultVelocityThreshold = 0.5

// Config holds the inputs a calculator resolves against.
type Config struct {
	Points []Descriptor
	// ContainerSize is the drawer's travel range in pixels along its
	// drag axis.
	ContainerSize float64
	// ViewportWidth and ViewportHeight resolve vw/vh descriptors.
	ViewportWidth  float64
	ViewportHeight float64
}

// Resolved is a snap point mapped to an absolute offset.
type Resolved struct {
	ID     string
	Offset float64
	// Relative records whether the source descriptor scales with the
	// container (fractions and percentages) rather than being an
	// absolute or viewport-derived offset.
	Relative bool
}

// Calculator resolves snap descriptors against container and viewport
// dimensions and answers position queries.
//
// Resolution happens wholesale in [Calculator.UpdateConfig]: the
// resolved list is rebuilt and swapped atomically, never mutated in
// place, so accessors always observe a consistent snapshot. A
// Calculator owns its state exclusively and is not safe for concurrent
// use.
type Calculator struct {
	config   Config
	resolved []Resolved
}

// NewCalculator creates a calculator and resolves the initial config.
func NewCalculator(config Config) *Calculator {
	c := &Calculator{}
	c.UpdateConfig(config)
	return c
}

// UpdateConfig replaces the configuration and recomputes every
// resolved point synchronously.
func (c *Calculator) UpdateConfig(config Config) {
	resolved := make([]Resolved, len(config.Points))
	for i, d := range config.Points {
		resolved[i] = resolve(d, i, config)
	}
	c.config = config
	c.resolved = resolved
}

func resolve(d Descriptor, index int, config Config) Resolved {
	var offset float64
	switch d.Unit {
	case UnitFraction:
		offset = d.Value * config.ContainerSize
	case UnitPixels:
		offset = d.Value
	case UnitPercent:
		offset = d.Value / 100 * config.ContainerSize
	case UnitViewportHeight:
		offset = d.Value / 100 * config.ViewportHeight
	case UnitViewportWidth:
		offset = d.Value / 100 * config.ViewportWidth
	}

	id := d.ID
	if id == "" {
		id = fmt.Sprintf("snap-%d", index)
	}
	relative := d.Unit == UnitFraction || d.Unit == UnitPercent
	return Resolved{ID: id, Offset: offset, Relative: relative}
}

// FindNearest returns the snap point closest to the given offset and
// its index. Exact ties keep the lowest index. An empty point list
// degrades to a zero-offset fallback at index 0 with id "snap-0".
func (c *Calculator) FindNearest(offset float64) (Resolved, int) {
	if len(c.resolved) == 0 {
		return Resolved{ID: "snap-0"}, 0
	}
	best := 0
	bestDist := math.Abs(offset - c.resolved[0].Offset)
	for i := 1; i < len(c.resolved); i++ {
		dist := math.Abs(offset - c.resolved[i].Offset)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return c.resolved[best], best
}

// FindNext steps one snap point in the direction of travel. It returns
// false when the speed does not exceed the threshold, or when the step
// is clamped back to the current index because the drawer is already
// at the first or last point.
func (c *Calculator) FindNext(current int, velocity, threshold float64) (Resolved, int, bool) {
	if math.Abs(velocity) <= threshold {
		return Resolved{}, current, false
	}
	if len(c.resolved) == 0 {
		return Resolved{}, current, false
	}

	next := current
	if velocity > 0 {
		next++
	} else {
		next--
	}
	if next < 0 {
		next = 0
	}
	if next > len(c.resolved)-1 {
		next = len(c.resolved) - 1
	}
	if next == current {
		return Resolved{}, current, false
	}
	return c.resolved[next], next, true
}

// Point returns the resolved snap point at index.
func (c *Calculator) Point(index int) (Resolved, bool) {
	if index < 0 || index >= len(c.resolved) {
		return Resolved{}, false
	}
	return c.resolved[index], true
}

// Points returns a copy of every resolved snap point.
func (c *Calculator) Points() []Resolved {
	out := make([]Resolved, len(c.resolved))
	copy(out, c.resolved)
	return out
}

// Count returns the number of snap points.
func (c *Calculator) Count() int {
	return len(c.resolved)
}

// Config returns the current configuration. The descriptor slice is
// copied to keep internal state immutable from outside.
func (c *Calculator) Config() Config {
	cfg := c.config
	cfg.Points = make([]Descriptor, len(c.config.Points))
	copy(cfg.Points, c.config.Points)
	return cfg
}
