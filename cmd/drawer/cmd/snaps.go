package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/go-drawer/drawer/cmd/drawer/internal/config"
	"github.com/go-drawer/drawer/pkg/snap"
)

func newSnapsCmd() *cobra.Command {
	var (
		configDir string
		container float64
		viewportW float64
		viewportH float64
	)

	cmd := &cobra.Command{
		Use:   "snaps",
		Short: "Resolve and print the configured snap points",
		Long: `Snaps resolves the snap points from drawer.yaml against the given
container and viewport dimensions and prints the resulting offsets.
Useful for checking a configuration without starting the demo.`,
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
				return fmt.Errorf("no snap points configured in %s/drawer.yaml", configDir)
			}

			calc := snap.NewCalculator(snap.Config{
				Points:         cfg.SnapPoints,
				ContainerSize:  container,
				ViewportWidth:  viewportW,
				ViewportHeight: viewportH,
			})

			logger.Debug("resolved snap points", "count", calc.Count(), "container", container)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "container %.0fpx, viewport %.0fx%.0f\n", container, viewportW, viewportH)
			for i, point := range calc.Points() {
				kind := "absolute"
				if point.Relative {
					kind = "relative"
				}
				if math.IsNaN(point.Offset) {
					fmt.Fprintf(out, "%2d  %-12s  unresolved (malformed value)\n", i, point.ID)
					continue
				}
				fmt.Fprintf(out, "%2d  %-12s  %7.1fpx  %s\n", i, point.ID, point.Offset, kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configDir, "config", "c", ".", "directory containing drawer.yaml")
	cmd.Flags().Float64Var(&container, "container", 800, "container size along the drag axis in px")
	cmd.Flags().Float64Var(&viewportW, "viewport-width", 1280, "viewport width in px")
	cmd.Flags().Float64Var(&viewportH, "viewport-height", 800, "viewport height in px")
	return cmd
}
