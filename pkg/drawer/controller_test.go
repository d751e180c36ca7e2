package drawer

import (
	"math"
	"testing"
	"time"

	"github.com/go-drawer/drawer/pkg/animation"
	"github.com/go-drawer/drawer/pkg/errors"
	"github.com/go-drawer/drawer/pkg/gestures"
	"github.com/go-drawer/drawer/pkg/snap"
	drawertest "github.com/go-drawer/drawer/pkg/testing"
)

// threeSnaps resolves to offsets 100, 200, 360 in a 400px container.
func threeSnaps() []snap.Descriptor {
	return []snap.Descriptor{
		snap.Fraction(0.25),
		snap.Fraction(0.5),
		snap.Fraction(0.9),
	}
}

// newTestController installs a fake clock, opens the drawer to its
// initial snap point, and pumps the opening animation to rest.
func newTestController(t *testing.T, cfg Config) (*Controller, *drawertest.FakeClock) {
	t.Helper()
	clk := drawertest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })

	c := NewController(cfg)
	c.SetMetrics(400, 800, 600)
	drawertest.PumpUntilIdle(clk, 2000)
	return c, clk
}

// drag delivers a straight vertical drag through the controller's
// pointer handlers. Screen coordinates: smaller Y is higher.
func drag(c *Controller, clk *drawertest.FakeClock, fromY, toY float64, steps int, interval time.Duration) {
	script := drawertest.DragScript{
		FromX: 50, FromY: fromY,
		ToX: 50, ToY: toY,
		Steps: steps, Interval: interval,
	}
	script.Drive(clk.Now(),
		func(s gestures.Sample) { c.HandleDown(s) },
		func(s gestures.Sample) { c.HandleMove(s) },
		func(s gestures.Sample) { c.HandleUp(s) },
	)
}

func TestOpensToInitialSnap(t *testing.T) {
	c, _ := newTestController(t, Config{SnapPoints: threeSnaps()})
	if c.Extent() != 100 {
		t.Errorf("Extent = %v, want 100", c.Extent())
	}
	if c.Target() != 0 {
		t.Errorf("Target = %d, want 0", c.Target())
	}
}

func TestOpensToConfiguredInitialSnap(t *testing.T) {
	c, _ := newTestController(t, Config{SnapPoints: threeSnaps(), InitialSnap: 1})
	if c.Extent() != 200 {
		t.Errorf("Extent = %v, want 200", c.Extent())
	}
}

func TestDefaultsToFullExtentPoint(t *testing.T) {
	c, _ := newTestController(t, Config{})
	if c.Extent() != 400 {
		t.Errorf("Extent = %v, want 400", c.Extent())
	}
}

func TestFastFlingAdvancesOneSnap(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	// 80px up over 80ms is 1.0 px/ms, above the 0.5 threshold. The
	// release at extent 180 steps to the next higher point at 200.
	drag(c, clk, 500, 420, 8, 10*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 1 {
		t.Errorf("Target = %d, want 1", c.Target())
	}
	if c.Extent() != 200 {
		t.Errorf("Extent = %v, want 200", c.Extent())
	}
}

func TestFastFlingFromSnapPointSkipsPast(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	// Dragging exactly onto the middle point and flinging upward
	// continues to the point above it, not back to where it sits.
	drag(c, clk, 500, 400, 10, 10*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 2 {
		t.Errorf("Target = %d, want 2", c.Target())
	}
	if c.Extent() != 360 {
		t.Errorf("Extent = %v, want 360", c.Extent())
	}
}

func TestFastFlingPastIntermediateSnap(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	// The drag crosses the middle point at 200 before releasing at
	// extent 290 with upward velocity. The fling resolves against the
	// drawer's position, so it lands on the highest point, not one
	// step from where the drag began.
	drag(c, clk, 500, 310, 19, 10*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 2 {
		t.Errorf("Target = %d, want 2", c.Target())
	}
	if c.Extent() != 360 {
		t.Errorf("Extent = %v, want 360", c.Extent())
	}
}

func TestFastFlingDownPastIntermediateSnap(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps(), InitialSnap: 2})

	// From the top point at 360, the drag crosses 200 and releases at
	// extent 150 moving fast downward, settling on the lowest point.
	drag(c, clk, 300, 510, 21, 10*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 0 {
		t.Errorf("Target = %d, want 0", c.Target())
	}
	if c.Extent() != 100 {
		t.Errorf("Extent = %v, want 100", c.Extent())
	}
}

func TestFastFlingDownRetreatsOneSnap(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps(), InitialSnap: 1})

	drag(c, clk, 400, 500, 10, 10*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 0 {
		t.Errorf("Target = %d, want 0", c.Target())
	}
	if c.Extent() != 100 {
		t.Errorf("Extent = %v, want 100", c.Extent())
	}
}

func TestSlowReleaseSettlesNearest(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	// 80px up over 640ms is 0.125 px/ms: extent 180, nearest is 200.
	drag(c, clk, 500, 420, 8, 80*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 1 {
		t.Errorf("Target = %d, want 1", c.Target())
	}
	if c.Extent() != 200 {
		t.Errorf("Extent = %v, want 200", c.Extent())
	}
}

func TestSlowShortDragStaysPut(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	// 30px up leaves the extent at 130, still nearest to 100.
	drag(c, clk, 500, 470, 6, 80*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 0 {
		t.Errorf("Target = %d, want 0", c.Target())
	}
	if c.Extent() != 100 {
		t.Errorf("Extent = %v, want 100", c.Extent())
	}
}

func TestOverdragIsDampened(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps(), InitialSnap: 2})
	if c.Extent() != 360 {
		t.Fatalf("setup Extent = %v, want 360", c.Extent())
	}

	base := clk.Now()
	c.HandleDown(gestures.Sample{X: 50, Y: 500, Time: base})
	c.HandleMove(gestures.Sample{X: 50, Y: 400, Time: base.Add(50 * time.Millisecond)})

	// 100px past the highest snap, scaled by the 0.3 dampen factor.
	if math.Abs(c.Extent()-390) > 1e-9 {
		t.Errorf("Extent = %v, want 390", c.Extent())
	}
	if !c.IsDragging() {
		t.Error("controller should report dragging")
	}
}

func TestDragFollowsPointer(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	base := clk.Now()
	c.HandleDown(gestures.Sample{X: 50, Y: 500, Time: base})
	c.HandleMove(gestures.Sample{X: 50, Y: 450, Time: base.Add(16 * time.Millisecond)})
	if c.Extent() != 150 {
		t.Errorf("Extent = %v, want 150", c.Extent())
	}
	c.HandleMove(gestures.Sample{X: 50, Y: 480, Time: base.Add(32 * time.Millisecond)})
	if c.Extent() != 120 {
		t.Errorf("Extent = %v, want 120", c.Extent())
	}
}

func TestLowReleaseDismisses(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps(), Dismissible: true})

	var dismissed bool
	c.OnDismiss = func() { dismissed = true }

	// Down 60px leaves the extent at 40, below half of the lowest
	// snap point, with closing velocity.
	drag(c, clk, 500, 560, 6, 10*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if !dismissed {
		t.Error("OnDismiss should fire")
	}
	if c.Extent() != 0 {
		t.Errorf("Extent = %v, want 0", c.Extent())
	}
}

func TestFastClosingFlingNearBottomDismisses(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps(), Dismissible: true})

	var dismissed bool
	c.OnDismiss = func() { dismissed = true }

	// Extent 75 is above the dismiss threshold (50) but below 80% of
	// the lowest snap, and the fling is fast and closing.
	drag(c, clk, 500, 525, 5, 5*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if !dismissed {
		t.Error("fast closing fling near the bottom should dismiss")
	}
}

func TestNonDismissibleNeverDismissesFromDrag(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	var dismissed bool
	c.OnDismiss = func() { dismissed = true }

	drag(c, clk, 500, 560, 6, 10*time.Millisecond)
	drawertest.PumpUntilIdle(clk, 2000)

	if dismissed {
		t.Error("OnDismiss should not fire when not dismissible")
	}
	if c.Extent() != 100 {
		t.Errorf("Extent = %v, want 100 (settled on lowest snap)", c.Extent())
	}
}

func TestSnapTo(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	c.SnapTo(2)
	drawertest.PumpUntilIdle(clk, 2000)
	if c.Extent() != 360 || c.Target() != 2 {
		t.Errorf("Extent = %v Target = %d, want 360/2", c.Extent(), c.Target())
	}

	// Out of range falls back to index 0.
	c.SnapTo(7)
	drawertest.PumpUntilIdle(clk, 2000)
	if c.Extent() != 100 || c.Target() != 0 {
		t.Errorf("Extent = %v Target = %d, want 100/0", c.Extent(), c.Target())
	}
}

func TestSnapToFraction(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	c.SnapToFraction(0.75)
	drawertest.PumpUntilIdle(clk, 2000)
	if c.Extent() != 300 {
		t.Errorf("Extent = %v, want 300", c.Extent())
	}
}

func TestDismissAndReopen(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	var dismissed bool
	c.OnDismiss = func() { dismissed = true }

	c.Dismiss()
	drawertest.PumpUntilIdle(clk, 2000)
	if !dismissed || c.Extent() != 0 {
		t.Fatalf("dismissed = %v Extent = %v, want true/0", dismissed, c.Extent())
	}

	c.Open()
	drawertest.PumpUntilIdle(clk, 2000)
	if c.Extent() != 100 {
		t.Errorf("Extent = %v, want 100 after reopen", c.Extent())
	}
}

func TestOnSnapChangeFiresOncePerSettle(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	var indices []int
	var lastPoint snap.Resolved
	c.OnSnapChange = func(index int, point snap.Resolved) {
		indices = append(indices, index)
		lastPoint = point
	}

	c.SnapTo(1)
	drawertest.PumpUntilIdle(clk, 2000)
	c.SnapTo(2)
	drawertest.PumpUntilIdle(clk, 2000)

	if len(indices) != 2 || indices[0] != 1 || indices[1] != 2 {
		t.Errorf("indices = %v, want [1 2]", indices)
	}
	if lastPoint.Offset != 360 {
		t.Errorf("point.Offset = %v, want 360", lastPoint.Offset)
	}
}

func TestProgress(t *testing.T) {
	c, _ := newTestController(t, Config{SnapPoints: threeSnaps()})
	want := 100.0 / 360.0
	if math.Abs(c.Progress()-want) > 1e-9 {
		t.Errorf("Progress = %v, want %v", c.Progress(), want)
	}
}

func TestExtentListener(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	var updates int
	remove := c.AddListener(func(extent float64) { updates++ })

	c.SnapTo(1)
	drawertest.PumpUntilIdle(clk, 2000)
	if updates == 0 {
		t.Fatal("listener should observe extent changes")
	}

	seen := updates
	remove()
	c.SnapTo(0)
	drawertest.PumpUntilIdle(clk, 2000)
	if updates != seen {
		t.Error("removed listener should not be called")
	}
}

func TestProgressListener(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	var last float64
	c.AddProgressListener(func(p float64) { last = p })

	c.SnapTo(2)
	drawertest.PumpUntilIdle(clk, 2000)
	if last != 1 {
		t.Errorf("final progress = %v, want 1", last)
	}
}

func TestPanickingListenerIsContained(t *testing.T) {
	quiet := &countingHandler{}
	errors.SetHandler(quiet)
	defer errors.SetHandler(nil)

	c, clk := newTestController(t, Config{SnapPoints: threeSnaps()})

	var updates int
	c.AddListener(func(float64) { panic("listener bug") })
	c.AddListener(func(float64) { updates++ })

	c.SnapTo(1)
	drawertest.PumpUntilIdle(clk, 2000)

	if updates == 0 {
		t.Error("healthy listener should still run")
	}
	if quiet.panics == 0 {
		t.Error("panic should be reported to the error handler")
	}
	if c.Extent() != 200 {
		t.Errorf("Extent = %v, want 200 (settle should survive the panic)", c.Extent())
	}
}

type countingHandler struct {
	errs   int
	panics int
}

func (h *countingHandler) HandleError(*errors.DrawerError) { h.errs++ }
func (h *countingHandler) HandlePanic(*errors.PanicError)  { h.panics++ }

func TestResizeRescalesExtent(t *testing.T) {
	c, _ := newTestController(t, Config{SnapPoints: threeSnaps()})

	c.SetMetrics(800, 800, 600)
	if c.Extent() != 200 {
		t.Errorf("Extent = %v, want 200 after doubling the container", c.Extent())
	}
	// Fractional points track the new container size.
	if c.Progress() != 200.0/720.0 {
		t.Errorf("Progress = %v, want %v", c.Progress(), 200.0/720.0)
	}
}

func TestHandlersBeforeMetricsAreNoOps(t *testing.T) {
	c := NewController(Config{SnapPoints: threeSnaps()})
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c.HandleDown(gestures.Sample{X: 50, Y: 500, Time: base})
	c.HandleMove(gestures.Sample{X: 50, Y: 400, Time: base.Add(16 * time.Millisecond)})
	c.HandleUp(gestures.Sample{X: 50, Y: 400, Time: base.Add(32 * time.Millisecond)})
	c.SnapTo(1)

	if c.Extent() != 0 {
		t.Errorf("Extent = %v, want 0 before metrics", c.Extent())
	}
	if c.IsAnimating() {
		t.Error("nothing should animate before metrics")
	}
}

func TestMoveWithoutDownIsNoOp(t *testing.T) {
	c, _ := newTestController(t, Config{SnapPoints: threeSnaps()})
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	c.HandleMove(gestures.Sample{X: 50, Y: 100, Time: base})
	c.HandleUp(gestures.Sample{X: 50, Y: 100, Time: base})

	if c.Extent() != 100 {
		t.Errorf("Extent = %v, want 100", c.Extent())
	}
}

func TestLeftDrawerAxis(t *testing.T) {
	c, clk := newTestController(t, Config{SnapPoints: threeSnaps(), Side: SideLeft})

	// For a left drawer, dragging right opens. 80px right over 100ms
	// is a fast opening fling from extent 180 to the point at 200.
	script := drawertest.DragScript{
		FromX: 100, FromY: 300,
		ToX: 180, ToY: 300,
		Steps: 10, Interval: 10 * time.Millisecond,
	}
	script.Drive(clk.Now(),
		func(s gestures.Sample) { c.HandleDown(s) },
		func(s gestures.Sample) { c.HandleMove(s) },
		func(s gestures.Sample) { c.HandleUp(s) },
	)
	drawertest.PumpUntilIdle(clk, 2000)

	if c.Target() != 1 {
		t.Errorf("Target = %d, want 1", c.Target())
	}
}

func TestSideString(t *testing.T) {
	cases := []struct {
		side Side
		want string
	}{
		{SideBottom, "bottom"},
		{SideTop, "top"},
		{SideLeft, "left"},
		{SideRight, "right"},
	}
	for _, tc := range cases {
		if got := tc.side.String(); got != tc.want {
			t.Errorf("Side(%d).String() = %q, want %q", tc.side, got, tc.want)
		}
	}
}
