package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/cli/styles"
	"github.com/bnema/bsptile/internal/infrastructure/config"
	"github.com/bnema/bsptile/internal/logging"
)

var (
	configSchemaJSON    bool
	configSchemaSection string
	configWriteSchema   bool
	configWriteDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the files bsptile reads and writes",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show every configuration key with its type and default",
	Long: `List all configuration keys with their types, defaults and allowed values.

With --write-json-schema, config.schema.json is written next to config.toml
for editor completion (taplo, Even Better TOML).`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configWriteCmd = &cobra.Command{
	Use:   "write [path]",
	Short: "Write the effective configuration as ordered TOML",
	Long: `Write the configuration currently in effect, environment overrides
included, as TOML with sorted tables. The default target is the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigWrite,
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and report reloads",
	Args:  cobra.NoArgs,
	RunE:  runConfigWatch,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configWriteCmd, configWatchCmd)

	configSchemaCmd.Flags().BoolVar(&configSchemaJSON, "json", false, "output as JSON")
	configSchemaCmd.Flags().StringVar(&configSchemaSection, "section", "", "only show keys of this section")
	configSchemaCmd.Flags().BoolVar(&configWriteSchema, "write-json-schema", false, "write config.schema.json")
	configWriteCmd.Flags().BoolVar(&configWriteDefaults, "defaults", false, "write the built-in defaults instead")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	schemaFile, err := config.GetSchemaFile()
	if err != nil {
		schemaFile = ""
	}
	logDir := ""
	if app.Config.Logging.EnableFileLog {
		logDir = app.Config.Logging.LogDir
	}
	fmt.Print(renderer.RenderPaths([]styles.PathEntry{
		{Label: "Config", Path: app.Manager.GetConfigFile(), Icon: styles.IconConfig},
		{Label: "Schema", Path: schemaFile, Icon: styles.IconConfig},
		{Label: "Database", Path: app.DB.Path(), Icon: styles.IconFolder},
		{Label: "Logs", Path: logDir, Icon: styles.IconFolder},
	}))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configWriteSchema {
		renderer := styles.NewConfigRenderer(app.Theme)
		path, err := config.GenerateSchemaFile()
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		fmt.Print(renderer.RenderSchemaWritten(path))
		return nil
	}

	out, err := app.SchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSchemaSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("no config keys in section %q", configSchemaSection)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configSchemaJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Print(renderer.Render(out.Keys))
	return nil
}

func runConfigWrite(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.Manager.GetConfigFile()
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}

	cfg := app.Config
	if configWriteDefaults {
		cfg = config.DefaultConfig()
	}
	if err := config.WriteConfigOrdered(cfg, path); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Print(renderer.RenderPaths([]styles.PathEntry{{Label: "Written", Path: path, Icon: styles.IconCheck}}))
	return nil
}

func runConfigWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	log := logging.FromContext(app.Ctx())
	renderer := styles.NewConfigRenderer(app.Theme)

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		fmt.Println(renderer.RenderReloaded(cfg.Layout.Gap, cfg.LayoutMode().String(), cfg.Desktops.Count))
	})
	if err := app.Manager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	fmt.Print(renderer.RenderWatching(app.Manager.GetConfigFile()))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		log.Debug().Str("signal", s.String()).Msg("stopped watching config")
	case <-app.Ctx().Done():
	}
	return nil
}
