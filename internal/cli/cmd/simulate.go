package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/cli/styles"
	"github.com/bnema/bsptile/internal/infrastructure/scenario"
	"github.com/bnema/bsptile/internal/infrastructure/sim"
	"github.com/bnema/bsptile/internal/infrastructure/snapshot"
	"github.com/bnema/bsptile/internal/logging"
)

var (
	simulateCheck    bool
	simulateJSON     bool
	simulateEvents   bool
	simulateQuiet    bool
	simulateSave     string
	simulateAutosave bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.toml>",
	Short: "Replay a scenario against a simulated display",
	Long: `Replay a TOML scenario of window events against the tiling engine
without an X server. Steps run in order and stop at the first failure;
expect steps assert window rectangles and desktop counts.

Examples:
  bsptile simulate three.toml                 # Replay and print the final placement
  bsptile simulate three.toml --check         # Validate every tree after each step
  bsptile simulate three.toml --save work     # Store the final layout as "work"
  bsptile simulate three.toml --json          # Print the final layout as JSON`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulateCheck, "check", false, "validate tree invariants after every step")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "print the final layout snapshot as JSON")
	simulateCmd.Flags().BoolVar(&simulateEvents, "events", false, "print the placement calls sent to the display")
	simulateCmd.Flags().BoolVarP(&simulateQuiet, "quiet", "q", false, "do not print each step")
	simulateCmd.Flags().StringVar(&simulateSave, "save", "", "save the final layout under this name")
	simulateCmd.Flags().BoolVar(&simulateAutosave, "autosave", false, "autosave the layout while replaying")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)
	renderer := styles.NewSimulateRenderer(app.Theme)

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	server := sim.NewServer(sc.Screen)

	var autosave *snapshot.Service
	tracker := snapshot.NewTracker()
	if simulateAutosave {
		autosave = snapshot.NewService(app.SnapshotUC, tracker, app.Config.Snapshots.IntervalMs)
		autosave.Start(ctx)
	}

	printSteps := !simulateJSON && !simulateQuiet
	if printSteps {
		fmt.Println(renderer.RenderHeader(sc))
	}

	uc := usecase.NewRunScenarioUseCase(server, server, app.Config.ArenaOptions())
	out, runErr := uc.Execute(ctx, usecase.RunScenarioInput{
		Scenario: sc,
		Check:    simulateCheck,
		OnStep: func(s usecase.StepResult) {
			if printSteps {
				fmt.Println(renderer.RenderStep(s))
			}
			if autosave != nil {
				tracker.Capture(s.Set, sc.Screen)
				autosave.MarkDirty()
			}
		},
	})

	if autosave != nil {
		if err := autosave.Stop(ctx); err != nil {
			log.Warn().Err(err).Msg("final autosave failed")
		}
	}
	if runErr != nil {
		if out == nil {
			return runErr
		}
		fmt.Fprintln(os.Stderr, renderer.RenderFailed(runErr))
		code := 1
		if errors.Is(runErr, usecase.ErrExpectationFailed) {
			code = 2
		}
		return &exitError{code: code, err: runErr}
	}

	if simulateEvents {
		for _, ev := range server.Events() {
			fmt.Println(ev)
		}
	}

	snap := usecase.CaptureLayout(out.Set, sc.Screen, simulateSave)
	if simulateSave != "" {
		if err := app.SnapshotUC.Save(ctx, snap); err != nil {
			return fmt.Errorf("save layout: %w", err)
		}
	}

	if simulateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	if !simulateQuiet {
		fmt.Println()
		fmt.Println(renderer.RenderWindows(out))
	}
	fmt.Println(renderer.RenderPassed(out))
	if simulateSave != "" {
		fmt.Println(styles.NewLayoutsCLIRenderer(app.Theme).RenderSaved(snap))
	}
	return nil
}
