package drawer

import (
	"github.com/go-drawer/drawer/pkg/animation"
	"github.com/go-drawer/drawer/pkg/errors"
	"github.com/go-drawer/drawer/pkg/gestures"
	"github.com/go-drawer/drawer/pkg/snap"
)

// Controller drives a drawer: it tracks pointer input, resolves snap
// points against the container, and settles the extent with a spring.
//
// The extent is the drawer's visible size along its drag axis, in
// pixels, measured from the anchoring edge. Zero means fully closed.
// Snap points are expected in ascending extent order; the first is
// treated as the lowest resting position and the last as the highest.
//
// A Controller is not safe for concurrent use; feed it from the same
// goroutine that steps the animation tickers.
type Controller struct {
	// OnSnapChange fires when a settle animation completes at a snap
	// point.
	OnSnapChange func(index int, point snap.Resolved)
	// OnDismiss fires when a dismiss animation reaches the closed
	// position.
	OnDismiss func()

	config  Config
	tracker *gestures.Tracker
	calc    *snap.Calculator
	anim    *animation.SpringAnimation

	containerSize float64
	metricsReady  bool

	extent          float64
	targetIndex     int
	dragging        bool
	dragStartExtent float64
	dismissing      bool

	listeners         map[int]func(extent float64)
	progressListeners map[int]func(progress float64)
	nextListener      int
}

// NewController creates a controller with the given configuration.
// The drawer stays closed until SetMetrics provides dimensions.
func NewController(config Config) *Controller {
	config = normalizeConfig(config)
	c := &Controller{
		config:      config,
		tracker:     gestures.NewTracker(),
		calc:        snap.NewCalculator(snap.Config{Points: config.SnapPoints}),
		targetIndex: config.InitialSnap,
	}
	c.anim = animation.NewSpringAnimation(0, config.Spring)
	c.anim.OnUpdate = func(value, velocity float64) {
		c.setExtent(clamp(value, 0, c.containerSize))
	}
	c.anim.OnComplete = func() {
		c.settleComplete()
	}
	return c
}

// SetMetrics supplies the container size along the drag axis and the
// viewport dimensions used by vh/vw snap points. On first call the
// drawer animates open to its initial snap point; on subsequent calls
// (resize, rotation) the extent rescales proportionally.
func (c *Controller) SetMetrics(containerSize, viewportW, viewportH float64) {
	prev := c.containerSize
	c.containerSize = containerSize
	c.calc.UpdateConfig(snap.Config{
		Points:         c.config.SnapPoints,
		ContainerSize:  containerSize,
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
	})

	if !c.metricsReady {
		c.metricsReady = true
		if point, ok := c.calc.Point(c.config.InitialSnap); ok {
			c.animateTo(point, c.config.InitialSnap, 0)
		}
		return
	}

	if prev > 0 && prev != containerSize {
		ratio := containerSize / prev
		c.setExtent(clamp(c.extent*ratio, 0, containerSize))
	}
	// Keep an in-flight settle aimed at the point's new offset.
	if c.anim.IsAnimating() && !c.dismissing {
		if point, ok := c.calc.Point(c.targetIndex); ok {
			c.anim.SetTarget(point.Offset, c.anim.Velocity())
		}
	}
}

// HandleDown begins a drag. Any running settle animation stops and the
// drawer follows the pointer from its current extent.
func (c *Controller) HandleDown(s gestures.Sample) {
	if !c.metricsReady {
		return
	}
	c.anim.Stop()
	c.tracker.Start(s)
	c.dragging = true
	c.dismissing = false
	c.dragStartExtent = c.extent
}

// HandleMove updates the extent from pointer movement. Dragging past
// the highest snap point is dampened.
func (c *Controller) HandleMove(s gestures.Sample) {
	if !c.dragging {
		return
	}
	state := c.tracker.Move(s)
	delta := c.config.Side.axisDelta(state.DeltaX, state.DeltaY)
	ext := c.dragStartExtent + delta

	max := c.maxSnapOffset()
	if max > 0 && ext > max {
		ext = max + (ext-max)*c.config.DampenFactor
	}
	c.setExtent(clamp(ext, 0, c.containerSize))
}

// HandleUp ends a drag and resolves where the drawer settles: dismiss
// when released low with closing velocity, one snap point in the
// direction of travel on a fast release, otherwise the nearest point.
func (c *Controller) HandleUp(s gestures.Sample) {
	if !c.dragging {
		return
	}
	state := c.tracker.End(s)
	c.dragging = false

	velocity := c.config.Side.axisDelta(state.VelocityX, state.VelocityY)

	if c.shouldDismiss(velocity) {
		c.startDismiss(velocity)
		return
	}

	if point, idx, ok := c.calc.FindNext(c.releaseBaseIndex(velocity), velocity, c.config.VelocityThreshold); ok {
		c.animateTo(point, idx, velocity)
		return
	}

	point, idx := c.calc.FindNearest(c.extent)
	c.animateTo(point, idx, velocity)
}

// releaseBaseIndex picks the snap index a fast release steps from,
// relative to where the drawer is now rather than where the drag began.
// Opening steps from the last point at or below the extent, closing
// from the first point at or above it, so a fling always lands on the
// next point in the direction of travel even when the drag crossed
// intermediate points. The sentinel values outside the point range make
// FindNext land on the boundary point itself when the extent sits past
// every snap on that side.
func (c *Controller) releaseBaseIndex(velocity float64) int {
	points := c.calc.Points()
	if velocity > 0 {
		idx := -1
		for i, p := range points {
			if p.Offset <= c.extent {
				idx = i
			}
		}
		return idx
	}
	idx := len(points)
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Offset >= c.extent {
			idx = i
		}
	}
	return idx
}

// shouldDismiss applies the release thresholds: below the dismiss
// fraction of the lowest snap point without opening velocity, or a
// fast closing fling while near the bottom.
func (c *Controller) shouldDismiss(velocity float64) bool {
	if !c.config.Dismissible {
		return false
	}
	min := c.minSnapOffset()
	if min <= 0 {
		return false
	}
	if c.extent < min*c.config.DismissFactor && velocity <= 0 {
		return true
	}
	if velocity < -c.config.VelocityThreshold && c.extent < min*0.8 {
		return true
	}
	return false
}

// SnapTo animates to the snap point at index. Out-of-range indices
// fall back to 0. A no-op before SetMetrics.
func (c *Controller) SnapTo(index int) {
	if !c.metricsReady {
		return
	}
	if index < 0 || index >= c.calc.Count() {
		index = 0
	}
	if point, ok := c.calc.Point(index); ok {
		c.animateTo(point, index, 0)
	}
}

// SnapToFraction animates to an arbitrary fraction of the container.
// Completion reports the nearest snap index.
func (c *Controller) SnapToFraction(fraction float64) {
	if !c.metricsReady {
		return
	}
	offset := clamp(fraction, 0, 1) * c.containerSize
	point, idx := c.calc.FindNearest(offset)
	point.Offset = offset
	c.animateTo(point, idx, 0)
}

// Open animates to the current target snap point, or the initial one
// when the drawer was dismissed.
func (c *Controller) Open() {
	if c.dismissing || c.extent == 0 && !c.anim.IsAnimating() {
		c.SnapTo(c.config.InitialSnap)
		return
	}
	c.SnapTo(c.targetIndex)
}

// Dismiss animates the drawer fully closed regardless of the
// Dismissible setting.
func (c *Controller) Dismiss() {
	if c.dismissing {
		return
	}
	c.startDismiss(0)
}

func (c *Controller) startDismiss(velocity float64) {
	if !c.metricsReady {
		c.notifyDismiss()
		return
	}
	c.dismissing = true
	if !c.anim.IsAnimating() {
		c.anim.SetValue(c.extent)
	}
	c.anim.SetTarget(0, velocity*1000)
}

// animateTo settles the extent at a resolved snap point. Velocity is
// in px/ms and is converted to the spring's px/s.
func (c *Controller) animateTo(point snap.Resolved, index int, velocity float64) {
	c.dismissing = false
	c.targetIndex = index
	if !c.anim.IsAnimating() {
		c.anim.SetValue(c.extent)
	}
	c.anim.SetTarget(clamp(point.Offset, 0, c.containerSize), velocity*1000)
}

func (c *Controller) settleComplete() {
	if c.dismissing {
		c.dismissing = false
		c.notifyDismiss()
		return
	}
	if c.OnSnapChange != nil {
		point, ok := c.calc.Point(c.targetIndex)
		if !ok {
			return
		}
		index := c.targetIndex
		safeCall("drawer.OnSnapChange", func() {
			c.OnSnapChange(index, point)
		})
	}
}

func (c *Controller) notifyDismiss() {
	if c.OnDismiss != nil {
		safeCall("drawer.OnDismiss", c.OnDismiss)
	}
}

// Extent returns the current visible size along the drag axis.
func (c *Controller) Extent() float64 {
	return c.extent
}

// Progress returns the extent as a fraction of the highest snap
// point, clamped to [0, 1].
func (c *Controller) Progress() float64 {
	max := c.maxSnapOffset()
	if max <= 0 {
		return 0
	}
	return clamp(c.extent/max, 0, 1)
}

// Target returns the index of the snap point the drawer is resting at
// or settling toward.
func (c *Controller) Target() int {
	return c.targetIndex
}

// IsDragging reports whether a pointer is currently moving the drawer.
func (c *Controller) IsDragging() bool {
	return c.dragging
}

// IsAnimating reports whether a settle or dismiss animation is
// running.
func (c *Controller) IsAnimating() bool {
	return c.anim.IsAnimating()
}

// AddListener registers a callback for extent changes. The returned
// function unsubscribes it.
func (c *Controller) AddListener(listener func(extent float64)) func() {
	if listener == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func(float64))
	}
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

// AddProgressListener registers a callback for progress changes. The
// returned function unsubscribes it.
func (c *Controller) AddProgressListener(listener func(progress float64)) func() {
	if listener == nil {
		return func() {}
	}
	if c.progressListeners == nil {
		c.progressListeners = make(map[int]func(float64))
	}
	id := c.nextListener
	c.nextListener++
	c.progressListeners[id] = listener
	return func() {
		delete(c.progressListeners, id)
	}
}

func (c *Controller) setExtent(value float64) {
	if value == c.extent {
		return
	}
	c.extent = value
	for _, listener := range c.listeners {
		l := listener
		safeCall("drawer.extentListener", func() { l(value) })
	}
	if len(c.progressListeners) > 0 {
		progress := c.Progress()
		for _, listener := range c.progressListeners {
			l := listener
			safeCall("drawer.progressListener", func() { l(progress) })
		}
	}
}

func (c *Controller) minSnapOffset() float64 {
	if point, ok := c.calc.Point(0); ok {
		return point.Offset
	}
	return 0
}

func (c *Controller) maxSnapOffset() float64 {
	if point, ok := c.calc.Point(c.calc.Count() - 1); ok {
		return point.Offset
	}
	return 0
}

// safeCall runs a host callback with panic recovery so one faulting
// listener cannot take down the frame loop.
func safeCall(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
