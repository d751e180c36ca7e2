package cmd

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/go-drawer/drawer/cmd/drawer/internal/config"
	"github.com/go-drawer/drawer/pkg/animation"
	"github.com/go-drawer/drawer/pkg/drawer"
	"github.com/go-drawer/drawer/pkg/gestures"
	"github.com/go-drawer/drawer/pkg/snap"
)

// cellPixels maps one terminal cell to this many virtual pixels so
// the controller's px/ms velocity thresholds behave like they do on a
// touch screen.
const cellPixels = 20.0

func newDemoCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal drawer",
		Long: `Demo opens a full-screen terminal drawer driven by the physics kernels.
Drag it with the mouse, fling it between snap points, press number keys
to snap directly, o to open, d to dismiss, and q or Esc to quit.

Snap points, spring preset, and thresholds are read from drawer.yaml in
the config directory when present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			fileCfg, err := config.LoadOptional(configDir)
			if err != nil {
				return err
			}
			cfg, err := fileCfg.Resolve()
			if err != nil {
				return err
			}
			if len(cfg.SnapPoints) == 0 {
				cfg.SnapPoints = []snap.Descriptor{
					snap.Fraction(0.25),
					snap.Fraction(0.5),
					snap.Fraction(0.9),
				}
				cfg.Dismissible = true
			}

			logger.Debug("starting demo", "side", cfg.Side, "snap_points", len(cfg.SnapPoints))
			return runDemo(cfg)
		},
	}

	cmd.Flags().StringVarP(&configDir, "config", "c", ".", "directory containing drawer.yaml")
	return cmd
}

// demo holds the terminal state for the interactive drawer.
type demo struct {
	screen        tcell.Screen
	controller    *drawer.Controller
	side          drawer.Side
	width, height int
	mouseDown     bool
	lastSnap      string

	// flash briefly highlights the handle and status bar after the
	// drawer settles, fading out over flashLevel.
	flash      *animation.AnimationController
	flashLevel *animation.Tween[float64]
}

func runDemo(cfg drawer.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	d := &demo{
		screen:     screen,
		controller: drawer.NewController(cfg),
		side:       cfg.Side,
		flash:      animation.NewAnimationController(400 * time.Millisecond),
		flashLevel: animation.TweenFloat64(1, 0),
	}
	d.flash.Curve = animation.EaseOut
	defer d.flash.Dispose()

	d.controller.OnSnapChange = func(index int, point snap.Resolved) {
		d.lastSnap = fmt.Sprintf("%s (%.0fpx)", point.ID, point.Offset)
		d.flash.Reset()
		d.flash.Forward()
	}
	d.controller.OnDismiss = func() {
		d.lastSnap = "dismissed"
		d.flash.Reset()
		d.flash.Forward()
	}
	d.handleResize()

	d.run()
	return nil
}

func (d *demo) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}
		case <-ticker.C:
			animation.StepTickers()
			d.draw()
		}
	}
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
			return false
		case ev.Rune() >= '1' && ev.Rune() <= '9':
			d.controller.SnapTo(int(ev.Rune() - '1'))
		case ev.Rune() == 'o':
			d.controller.Open()
		case ev.Rune() == 'd':
			d.controller.Dismiss()
		}
	case *tcell.EventMouse:
		d.handleMouse(ev)
	case *tcell.EventResize:
		d.handleResize()
	}
	return true
}

func (d *demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	sample := gestures.Sample{
		X:         float64(x) * cellPixels,
		Y:         float64(y) * cellPixels,
		Time:      time.Now(),
		PointerID: 1,
	}

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !d.mouseDown:
		d.mouseDown = true
		d.controller.HandleDown(sample)
	case pressed && d.mouseDown:
		d.controller.HandleMove(sample)
	case !pressed && d.mouseDown:
		d.mouseDown = false
		d.controller.HandleUp(sample)
	}
}

func (d *demo) handleResize() {
	d.screen.Sync()
	d.width, d.height = d.screen.Size()

	axisCells := d.height
	if d.side == drawer.SideLeft || d.side == drawer.SideRight {
		axisCells = d.width
	}
	d.controller.SetMetrics(
		float64(axisCells)*cellPixels,
		float64(d.width)*cellPixels,
		float64(d.height)*cellPixels,
	)
}

func (d *demo) draw() {
	d.screen.Clear()

	cells := int(d.controller.Extent()/cellPixels + 0.5)
	if cells > 0 {
		d.fillDrawer(cells)
	}
	d.drawStatus()
	d.screen.Show()
}

// fillDrawer paints the drawer surface anchored to its edge.
func (d *demo) fillDrawer(cells int) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkSlateBlue)
	handleColor := tcell.ColorWhite
	if d.flashLevel.Transform(d.flash) > 0.3 {
		handleColor = tcell.ColorYellow
	}
	handle := tcell.StyleDefault.Background(tcell.ColorDarkSlateBlue).Foreground(handleColor)

	switch d.side {
	case drawer.SideTop:
		for y := 0; y < min(cells, d.height); y++ {
			for x := 0; x < d.width; x++ {
				d.screen.SetContent(x, y, ' ', nil, style)
			}
		}
		d.drawHandleRow(min(cells, d.height)-1, handle)
	case drawer.SideLeft:
		for x := 0; x < min(cells, d.width); x++ {
			for y := 0; y < d.height; y++ {
				d.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	case drawer.SideRight:
		for x := d.width - min(cells, d.width); x < d.width; x++ {
			for y := 0; y < d.height; y++ {
				d.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	default:
		top := d.height - min(cells, d.height)
		for y := top; y < d.height; y++ {
			for x := 0; x < d.width; x++ {
				d.screen.SetContent(x, y, ' ', nil, style)
			}
		}
		d.drawHandleRow(top, handle)
	}
}

// drawHandleRow draws the grab handle on the drawer's leading edge.
func (d *demo) drawHandleRow(y int, style tcell.Style) {
	if y < 0 || y >= d.height {
		return
	}
	start := d.width/2 - 3
	for i := 0; i < 6; i++ {
		d.screen.SetContent(start+i, y, '─', nil, style)
	}
}

func (d *demo) drawStatus() {
	status := fmt.Sprintf(
		" extent %4.0fpx  progress %3.0f%%  snap %d %s  [1-9] snap  [o]pen  [d]ismiss  [q]uit ",
		d.controller.Extent(),
		d.controller.Progress()*100,
		d.controller.Target(),
		d.lastSnap,
	)
	style := tcell.StyleDefault.Reverse(true)
	if d.flashLevel.Transform(d.flash) > 0.3 {
		style = style.Bold(true).Foreground(tcell.ColorYellow)
	}
	row := 0
	if d.side == drawer.SideTop {
		row = d.height - 1
	}
	for i, r := range status {
		if i >= d.width {
			break
		}
		d.screen.SetContent(i, row, r, nil, style)
	}
}
