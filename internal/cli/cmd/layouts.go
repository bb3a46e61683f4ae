package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bsptile/internal/cli/model"
	"github.com/bnema/bsptile/internal/cli/styles"
)

var layoutsJSON bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `List, inspect and delete layout snapshots.

Snapshots are written by 'bsptile tile --save', 'bsptile simulate --save'
and by autosave. Autosaved snapshots are unnamed and pruned to
snapshots.max_kept; named ones are kept until deleted.`,
	RunE: runLayoutsList,
}

var layoutsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved layouts",
	Args:    cobra.NoArgs,
	RunE:    runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show the desktop trees of a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutsShow,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:     "delete <id|name>...",
	Aliases: []string{"rm"},
	Short:   "Delete saved layouts",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runLayoutsDelete,
}

var layoutsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved layouts interactively",
	Args:  cobra.NoArgs,
	RunE:  runLayoutsBrowse,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd, layoutsShowCmd, layoutsDeleteCmd, layoutsBrowseCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
	layoutsShowCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
}

func runLayoutsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	snaps, err := app.SnapshotUC.List(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if layoutsJSON {
		return printJSON(snaps)
	}
	fmt.Println(renderer.RenderList(snaps))
	return nil
}

func runLayoutsShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	snap, err := app.SnapshotUC.Load(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	if layoutsJSON {
		return printJSON(snap)
	}
	fmt.Println(renderer.RenderTree(snap, nil))
	return nil
}

func runLayoutsDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	var failed int
	for _, ref := range args {
		snap, err := app.SnapshotUC.Load(ctx, ref)
		if err == nil {
			err = app.SnapshotUC.Delete(ctx, snap.ID)
		}
		if err != nil {
			failed++
			fmt.Println(renderer.RenderError(err))
			continue
		}
		fmt.Println(renderer.RenderDeleted(snap.ID))
	}
	if failed > 0 {
		return &exitError{code: 1, err: fmt.Errorf("%d of %d layouts not deleted", failed, len(args))}
	}
	return nil
}

func runLayoutsBrowse(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewLayoutsModel(app.Ctx(), app.Theme, app.SnapshotUC)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run layout browser: %w", err)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
