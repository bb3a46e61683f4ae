package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/cli/styles"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/infrastructure/x11"
	"github.com/bnema/bsptile/internal/logging"
)

var (
	tileDisplay string
	tileLayout  string
	tileRestore string
	tileSave    string
	tileQuiet   bool
)

var tileCmd = &cobra.Command{
	Use:   "tile",
	Short: "Lay out the windows of a running X session",
	Long: `Read the client list of the running X session, insert every window
into the first desktop's tree and move the windows into place.

Dialogs and transient windows are kept floating. With --restore, a saved
layout is rebuilt first and windows it does not know are added to it.
When snapshots.enabled is set, the result is autosaved unless --save names it.

Examples:
  bsptile tile                     # Tile with the configured default layout
  bsptile tile --layout master     # Pointer window becomes the master
  bsptile tile --restore work      # Rebuild the layout saved as "work"
  bsptile tile --save work         # Store the resulting layout`,
	Args: cobra.NoArgs,
	RunE: runTile,
}

func init() {
	rootCmd.AddCommand(tileCmd)
	tileCmd.Flags().StringVar(&tileDisplay, "display", "", "X display to connect to (default $DISPLAY)")
	tileCmd.Flags().StringVarP(&tileLayout, "layout", "l", "", "layout to apply: default, master, stack or grid")
	tileCmd.Flags().StringVar(&tileRestore, "restore", "", "restore a saved layout by id or name first")
	tileCmd.Flags().StringVar(&tileSave, "save", "", "save the resulting layout under this name")
	tileCmd.Flags().BoolVarP(&tileQuiet, "quiet", "q", false, "do not print the resulting tree")
}

func runTile(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "tile")
	log := logging.FromContext(ctx)
	cfg := app.Config

	mode := cfg.LayoutMode()
	if tileLayout != "" {
		var err error
		if mode, err = entity.ParseLayoutMode(tileLayout); err != nil {
			return err
		}
	}

	conn, err := x11.Connect(ctx, tileDisplay)
	if err != nil {
		return err
	}
	defer conn.Close()
	display := x11.NewDisplay(conn)
	placer := x11.NewPlacer(conn)

	set := bsp.NewDesktopSet(bsp.NewArena(cfg.ArenaOptions()), cfg.DesktopNames(), cfg.LayoutMode())
	render := usecase.NewRenderDesktopUseCase(placer)
	windows := usecase.NewManageWindowsUseCase(set, display, render)

	live, err := display.ManagedWindows(ctx)
	if err != nil {
		return err
	}
	states, err := display.WindowStates(ctx, live)
	if err != nil {
		return err
	}

	if tileRestore != "" {
		snap, err := app.SnapshotUC.Load(ctx, tileRestore)
		if err != nil {
			return err
		}
		if err := app.SnapshotUC.Restore(ctx, set, snap); err != nil {
			return err
		}
		pruneGone(ctx, set, windows, live)
		if !tileQuiet {
			fmt.Println(styles.NewLayoutsCLIRenderer(app.Theme).RenderRestored(snap))
		}
	}

	for _, win := range live {
		out, err := windows.Map(ctx, usecase.MapWindowInput{Window: win, State: states[win]})
		if err != nil {
			return fmt.Errorf("map %s: %w", win, err)
		}
		if !out.AlreadyManaged {
			log.Debug().Stringer("window", win).Int("desktop", out.Desktop).Msg("window tiled")
		}
	}

	if tileRestore == "" || tileLayout != "" {
		master, err := display.WindowUnderPointer(ctx)
		if err != nil {
			master = entity.NoWindow
		}
		err = usecase.NewApplyLayoutUseCase(set, display, render).Execute(ctx, usecase.ApplyLayoutInput{
			Desktop: usecase.FocusedDesktop,
			Mode:    mode,
			Master:  master,
		})
		if err != nil {
			return err
		}
	} else if err := render.Render(ctx, set.Arena, set.Focused()); err != nil {
		return err
	}

	screen, err := display.Screen(ctx)
	if err != nil {
		return err
	}
	snap := usecase.CaptureLayout(set, screen, tileSave)
	layouts := styles.NewLayoutsCLIRenderer(app.Theme)
	if tileSave != "" {
		if err := app.SnapshotUC.Save(ctx, snap); err != nil {
			return fmt.Errorf("save layout: %w", err)
		}
		fmt.Println(layouts.RenderSaved(snap))
	} else if cfg.Snapshots.Enabled {
		// Unnamed snapshots are pruned to snapshots.max_kept.
		if err := app.SnapshotUC.Save(ctx, snap); err != nil {
			log.Warn().Err(err).Msg("failed to autosave layout")
		}
	}
	if !tileQuiet {
		fmt.Println(layouts.RenderTree(snap, nil))
	}
	return nil
}

// pruneGone drops restored clients whose windows no longer exist.
func pruneGone(ctx context.Context, set *bsp.DesktopSet, windows *usecase.ManageWindowsUseCase, live []entity.WindowID) {
	alive := make(map[entity.WindowID]bool, len(live))
	for _, w := range live {
		alive[w] = true
	}
	var gone []entity.WindowID
	for _, d := range set.Desktops {
		set.Arena.Walk(d.Root, func(id bsp.NodeID) bool {
			if c := set.Arena.Client(id); c != nil && !alive[c.Window] {
				gone = append(gone, c.Window)
			}
			return true
		})
	}
	for _, w := range gone {
		if _, err := windows.Unmap(ctx, w); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Stringer("window", w).Msg("failed to drop stale window")
		}
	}
}
