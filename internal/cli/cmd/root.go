// Package cmd provides Cobra CLI commands for bsptile.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bsptile/internal/cli"
	"github.com/bnema/bsptile/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "bsptile",
		Short: "Binary space partitioning window placement",
		Long: `bsptile - a binary space partitioning tiling engine.

Every window is a leaf of a per-desktop binary tree. Mapping a window
splits the leftmost leaf along its longer axis; removing one lets its
sibling take the space back.

Features:
  - Four layouts: default (BSP), master, stack and grid
  - Floating and fullscreen windows anchored in the tree
  - Fixed set of virtual desktops with window transfer
  - Layout snapshots stored in SQLite, with debounced autosave
  - Scenario replay against a simulated display, no X server needed

Use 'bsptile tile' to lay out the windows of a running X session, or
'bsptile simulate' to replay a scenario file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/bsptile/config.toml)")
}

// exitError carries a process exit code for errors the command has
// already reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	// PersistentPostRun is skipped when a command fails.
	if app != nil {
		_ = app.Close()
	}
	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
