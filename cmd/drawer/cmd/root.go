// Package cmd implements the drawer demo CLI.
//
// The root command dispatches to subcommands (demo, snaps) and wires a
// context logger controlled by the --verbose flag.
package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Execute runs the drawer CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "drawer",
		Short:        "Interactive drawer physics playground",
		Long:         `Drawer demonstrates the gesture, snap, and spring kernels with an interactive terminal drawer. Drag it with the mouse, fling it between snap points, and tune the physics from drawer.yaml.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("drawer %s\nbuilt: %s\n", Version, BuildTime))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newSnapsCmd())

	return root.ExecuteContext(context.Background())
}
