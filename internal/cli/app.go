// Package cli wires configuration, logging and storage for the CLI commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/cli/styles"
	"github.com/bnema/bsptile/internal/domain/build"
	"github.com/bnema/bsptile/internal/domain/repository"
	"github.com/bnema/bsptile/internal/infrastructure/config"
	"github.com/bnema/bsptile/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bsptile/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// The database is opened on first use so commands that never touch
	// stored layouts do not create it.
	DB      *sqlite.LazyDB
	Layouts repository.LayoutRepository

	// Use cases
	SnapshotUC *usecase.SnapshotLayoutUseCase
	SchemaUC   *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration (configFile overrides the XDG location),
// sets up logging and prepares the lazy layout store.
func NewApp(configFile string) (*App, error) {
	mgr, err := newManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", mgr.GetConfigFile()).Str("db_path", cfg.Database.Path).Msg("cli initialized")

	lazyDB := sqlite.NewLazyDB(cfg.Database.Path)
	layouts := sqlite.NewLazyLayoutRepository(lazyDB)

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		DB:         lazyDB,
		Layouts:    layouts,
		SnapshotUC: usecase.NewSnapshotLayoutUseCase(layouts, cfg.Snapshots.MaxKept),
		SchemaUC:   usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

func newManager(configFile string) (*config.Manager, error) {
	if configFile != "" {
		return config.NewManagerForFile(configFile)
	}
	return config.NewManager()
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
